// Package tcloudtest 提供不访问云API的Caller，用于单元测试
package tcloudtest

import (
	"context"
	"db-cloudops/model"
	"db-cloudops/tcloud"
	"encoding/json"
	"sync"
)

type Call struct {
	Product tcloud.Product
	Action  string
	Params  map[string]interface{}
}

// Caller 按Action返回预置的Response内容
type Caller struct {
	Responses map[string]string
	Errors    map[string]error
	// Handler 不为空时优先使用
	Handler func(action string, params map[string]interface{}) (string, error)

	mu    sync.Mutex
	calls []Call
}

func NewCaller() *Caller {
	return &Caller{Responses: map[string]string{}, Errors: map[string]error{}}
}

func (self *Caller) Call(ctx context.Context, product tcloud.Product, action string, params map[string]interface{}, out interface{}) error {
	self.mu.Lock()
	self.calls = append(self.calls, Call{Product: product, Action: action, Params: params})
	self.mu.Unlock()

	var body string
	var err error
	if self.Handler != nil {
		body, err = self.Handler(action, params)
	} else {
		body, err = self.Responses[action], self.Errors[action]
	}
	if err != nil {
		return err
	}
	if body == "" {
		body = "{}"
	}
	return json.Unmarshal([]byte(body), out)
}

func (self *Caller) Calls() []Call {
	self.mu.Lock()
	defer self.mu.Unlock()
	return append([]Call(nil), self.calls...)
}

func (self *Caller) Count(action string) int {
	n := 0
	for _, c := range self.Calls() {
		if c.Action == action {
			n++
		}
	}
	return n
}

// Factory 所有实例共用同一个Caller
func (self *Caller) Factory() tcloud.ClientFactory {
	return func(inst *model.CloudInstance) *tcloud.Client {
		return tcloud.NewClient(inst.DBInstanceID, self)
	}
}

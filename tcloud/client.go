// Package tcloud 腾讯云数据库相关接口的封装，每个方法对应一个云API
package tcloud

import (
	"bytes"
	"context"
	"db-cloudops/model"
	"encoding/json"
	"fmt"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	tchttp "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/http"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
)

type Product struct {
	Service string
	Version string
}

func (self Product) Endpoint() string {
	return self.Service + ".tencentcloudapi.com"
}

var (
	CDB       = Product{"cdb", "2017-03-20"}
	DCDB      = Product{"dcdb", "2018-04-11"}
	DBbrain   = Product{"dbbrain", "2019-10-16"}
	SQLServer = Product{"sqlserver", "2018-03-28"}
	MongoDB   = Product{"mongodb", "2019-07-25"}
	Redis     = Product{"redis", "2018-04-12"}
)

// Caller 发起一次云API调用，把Response部分解析到out
type Caller interface {
	Call(ctx context.Context, product Product, action string, params map[string]interface{}, out interface{}) error
}

// Error 云API调用失败，只保留可读的错误信息
type Error struct {
	Op  string
	Err error
}

func (self *Error) Error() string {
	return fmt.Sprintf("腾讯云%s失败：%v", self.Op, self.Err)
}

func (self *Error) Unwrap() error {
	return self.Err
}

// SDKCaller 每次调用都新建client，不做复用
type SDKCaller struct {
	SecretID  string
	SecretKey string
	Region    string
}

func NewSDKCaller(secretID, secretKey, region string) *SDKCaller {
	return &SDKCaller{SecretID: secretID, SecretKey: secretKey, Region: region}
}

func (self *SDKCaller) Call(ctx context.Context, product Product, action string, params map[string]interface{}, out interface{}) error {
	credential := common.NewCredential(self.SecretID, self.SecretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = product.Endpoint()
	client := common.NewCommonClient(credential, self.Region, cpf)

	request := tchttp.NewCommonRequest(product.Service, product.Version, action)
	request.SetContext(ctx)
	if err := request.SetActionParameters(params); err != nil {
		return err
	}

	response := tchttp.NewCommonResponse()
	if err := client.Send(request, response); err != nil {
		return err
	}
	return decodeResponse(response.GetBody(), out)
}

type apiError struct {
	Code    string
	Message string
}

// decodeResponse 解析 {"Response": {...}}，Response里带Error的按失败处理
func decodeResponse(body []byte, out interface{}) error {
	var envelope struct {
		Response json.RawMessage
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("解析返回结果失败: %w", err)
	}
	if len(bytes.TrimSpace(envelope.Response)) == 0 {
		return fmt.Errorf("返回结果缺少Response: %s", body)
	}

	var head struct {
		Error     *apiError
		RequestId string
	}
	if err := json.Unmarshal(envelope.Response, &head); err != nil {
		return fmt.Errorf("解析返回结果失败: %w", err)
	}
	if head.Error != nil {
		return fmt.Errorf("[%s] %s (RequestId=%s)", head.Error.Code, head.Error.Message, head.RequestId)
	}

	if err := json.Unmarshal(envelope.Response, out); err != nil {
		return fmt.Errorf("解析返回结果失败: %w", err)
	}
	return nil
}

// Client 绑定一个云上实例
type Client struct {
	InstanceID string
	caller     Caller
}

func NewClient(instanceID string, caller Caller) *Client {
	return &Client{InstanceID: instanceID, caller: caller}
}

// ClientFactory 根据实例配置创建Client，测试时可替换
type ClientFactory func(inst *model.CloudInstance) *Client

func NewClientFor(inst *model.CloudInstance) *Client {
	return NewClient(inst.DBInstanceID, NewSDKCaller(inst.SecretID, inst.SecretKey, inst.Region))
}

func (self *Client) call(ctx context.Context, op string, product Product, action string, params map[string]interface{}, out interface{}) error {
	if params == nil {
		params = map[string]interface{}{}
	}
	if err := self.caller.Call(ctx, product, action, params, out); err != nil {
		return &Error{Op: op, Err: err}
	}
	return nil
}

func (self *Client) instanceParams() map[string]interface{} {
	return map[string]interface{}{"InstanceId": self.InstanceID}
}

// pageParams limit/offset为0时不传，使用云API默认值
func pageParams(params map[string]interface{}, limit, offset int) map[string]interface{} {
	if limit > 0 {
		params["Limit"] = limit
	}
	if offset > 0 {
		params["Offset"] = offset
	}
	return params
}

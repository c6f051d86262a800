package model

const (
	StatusOK     = 0
	StatusFailed = 1
)

// Result 返回给前端的统一格式
type Result struct {
	Total  int         `json:"total"`
	Rows   interface{} `json:"rows"`
	Msg    string      `json:"msg,omitempty"`
	Status int         `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

func Success[T any](total int, rows []T) *Result {
	if rows == nil {
		rows = []T{}
	}
	return &Result{Total: total, Rows: rows, Status: StatusOK}
}

func Fail(msg string) *Result {
	return &Result{Total: 0, Rows: []struct{}{}, Msg: msg, Status: StatusFailed}
}

func Created(msg string, data interface{}) *Result {
	return &Result{Total: 0, Rows: []struct{}{}, Msg: msg, Status: StatusOK, Data: data}
}

func (self *Result) Failed() bool {
	return self.Status != StatusOK
}

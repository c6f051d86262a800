package tcloud

import "context"

type SlowLogTopSQL struct {
	LockTime        float64 `json:"LockTime"`
	LockTimeMax     float64 `json:"LockTimeMax"`
	LockTimeMin     float64 `json:"LockTimeMin"`
	RowsExamined    int64   `json:"RowsExamined"`
	RowsExaminedMax int64   `json:"RowsExaminedMax"`
	RowsExaminedMin int64   `json:"RowsExaminedMin"`
	QueryTime       float64 `json:"QueryTime"`
	QueryTimeMax    float64 `json:"QueryTimeMax"`
	QueryTimeMin    float64 `json:"QueryTimeMin"`
	RowsSent        int64   `json:"RowsSent"`
	RowsSentMax     int64   `json:"RowsSentMax"`
	RowsSentMin     int64   `json:"RowsSentMin"`
	ExecTimes       int64   `json:"ExecTimes"`
	SQLTemplate     string  `json:"SqlTemplate"`
	SQLText         string  `json:"SqlText"`
	Schema          string  `json:"Schema"`
	QueryTimeRatio  float64 `json:"QueryTimeRatio"`
	Md5             string  `json:"Md5"`
}

type SlowLogTopSQLs struct {
	TotalCount int             `json:"TotalCount"`
	Rows       []SlowLogTopSQL `json:"Rows"`
	RequestID  string          `json:"RequestId"`
}

// DescribeSlowLogTopSqls 通过DBbrain获取慢日志统计，时间格式为 2006-01-02 15:04:05
// product: mysql, cynosdb
func (self *Client) DescribeSlowLogTopSqls(ctx context.Context, product, startTime, endTime string, limit, offset int) (*SlowLogTopSQLs, error) {
	resp := new(SlowLogTopSQLs)
	params := self.instanceParams()
	params["StartTime"] = startTime
	params["EndTime"] = endTime
	params["Product"] = product
	params = pageParams(params, limit, offset)
	if err := self.call(ctx, "获取DBbrain慢日志统计", DBbrain, "DescribeSlowLogTopSqls", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

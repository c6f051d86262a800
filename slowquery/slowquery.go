// Package slowquery 慢日志统计与明细，目前只有CDB支持
package slowquery

import (
	"context"
	"db-cloudops/model"
	"db-cloudops/tcloud"
	"db-cloudops/util"
	"errors"
	"fmt"
	"github.com/gookit/slog"
	"math"
	"strings"
)

var ErrUnsupported = errors.New("该云产品类型不支持慢日志查询")

// DBbrain的Product参数
var dbbrainProducts = map[model.ProductType]string{
	model.ProductCDB: "mysql",
}

type ConfigStore interface {
	CloudConfig(ctx context.Context, instanceName string) (*model.CloudInstance, error)
}

type Service struct {
	Store     ConfigStore
	NewClient tcloud.ClientFactory
}

func NewService(store ConfigStore, newClient tcloud.ClientFactory) *Service {
	return &Service{Store: store, NewClient: newClient}
}

// Review 慢日志统计，total为云API返回的总数，不受本地过滤影响
func (self *Service) Review(ctx context.Context, q *model.SlowQueryQuery) (*model.Result, error) {
	inst, err := self.Store.CloudConfig(ctx, q.InstanceName)
	if err != nil {
		return nil, err
	}
	product, ok := dbbrainProducts[inst.ProductType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, inst.ProductType.Label())
	}

	start, end := util.DayBounds(q.StartDate, q.EndDate)
	resp, err := self.NewClient(inst).DescribeSlowLogTopSqls(ctx, product, start, end, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	return model.Success(resp.TotalCount, ReviewRows(resp.Rows, q)), nil
}

// History 慢日志明细，库名过滤交给云API
func (self *Service) History(ctx context.Context, q *model.SlowQueryQuery) (*model.Result, error) {
	inst, err := self.Store.CloudConfig(ctx, q.InstanceName)
	if err != nil {
		return nil, err
	}
	if inst.ProductType != model.ProductCDB {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, inst.ProductType.Label())
	}

	start, end := util.DayBounds(q.StartDate, q.EndDate)
	startTs, err := util.Datetime2Timestamp(start)
	if err != nil {
		return nil, err
	}
	endTs, err := util.Datetime2Timestamp(end)
	if err != nil {
		return nil, err
	}

	resp, err := self.NewClient(inst).DescribeCdbSlowLogData(ctx, startTs, endTs, q.Limit, q.Offset, q.DBName)
	if err != nil {
		return nil, err
	}
	return model.Success(resp.TotalCount, HistoryRows(resp.Items, q.Search)), nil
}

func ReviewRows(items []tcloud.SlowLogTopSQL, q *model.SlowQueryQuery) []model.SlowQueryRow {
	rows := make([]model.SlowQueryRow, 0, len(items))
	for _, v := range items {
		if q.DBName != "" && v.Schema != q.DBName {
			continue
		}
		if !matchSearch(v.SQLText, q.Search) {
			continue
		}
		rows = append(rows, model.SlowQueryRow{
			SQLText:                   v.SQLText,
			CreateTime:                q.StartDate,
			DBName:                    v.Schema,
			MySQLTotalExecutionCounts: v.ExecTimes,
			MySQLTotalExecutionTimes:  v.QueryTime,
			QueryTimeAvg:              average(v),
			ParseTotalRowCounts:       v.RowsExamined,
			ReturnTotalRowCounts:      v.RowsSent,
		})
	}
	return rows
}

func HistoryRows(items []tcloud.CdbSlowLogItem, search string) []model.SlowQueryDetailRow {
	rows := make([]model.SlowQueryDetailRow, 0, len(items))
	for _, v := range items {
		if !matchSearch(v.SQLText, search) {
			continue
		}
		rows = append(rows, model.SlowQueryDetailRow{
			SQLText:              v.SQLText,
			ExecutionStartTime:   util.Timestamp2Datetime(v.Timestamp),
			DBName:               v.Database,
			HostAddress:          fmt.Sprintf("'%s'@'%s'", v.UserName, v.UserHost),
			LockTimes:            v.LockTime,
			ParseRowCounts:       v.RowsExamined,
			QueryTimePct95:       v.QueryTime,
			QueryTimes:           v.QueryTime,
			ReturnRowCounts:      v.RowsSent,
			TotalExecutionCounts: 1,
		})
	}
	return rows
}

// average 执行次数为0时返回nil，JSON中为null
func average(v tcloud.SlowLogTopSQL) *float64 {
	avg := v.QueryTime / float64(v.ExecTimes)
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		slog.Warnf("慢日志执行次数为0，无法计算平均耗时: %s", v.Md5)
		return nil
	}
	return &avg
}

func matchSearch(sqlText, search string) bool {
	return search == "" || strings.Contains(sqlText, search)
}

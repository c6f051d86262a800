package mssql

import (
	"context"
	"db-cloudops/model"
	"db-cloudops/tcloud"
	"db-cloudops/util"
	"fmt"
)

type API interface {
	DescribeSqlserverBackups(ctx context.Context, startTime, endTime string, limit, offset int) (*tcloud.SqlserverBackups, error)
	CreateSqlserverBackup(ctx context.Context, strategy int) (*tcloud.SqlserverCreateBackup, error)
}

var statusTable = map[int]string{
	0: model.StateRunning,
	1: model.StateSuccess,
	2: model.StateFailed,
}

var wayTable = map[int]string{
	0: model.TriggerAutomatic,
	1: model.TriggerManual,
}

var strategyTable = map[int]string{
	0: model.MethodFull,
	1: model.MethodPartial,
}

// 手动备份只发起实例备份
var instanceBackupMethods = []string{"", model.MethodFull, model.BackupLogical, model.BackupPhysical}

type Checker struct {
	API API
}

// Backups 云API返回的大小单位为KB
func (self *Checker) Backups(ctx context.Context, q *model.BackupQuery) (*model.Result, error) {
	resp, err := self.API.DescribeSqlserverBackups(ctx, q.StartTime, q.EndTime, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	rows := make([]model.BackupRow, 0, len(resp.Backups))
	for _, v := range resp.Backups {
		size := v.Size * 1024
		rows = append(rows, model.BackupRow{
			Date:        util.DatePart(v.StartTime),
			FileName:    v.FileName,
			StartTime:   v.StartTime,
			FinishTime:  v.EndTime,
			Size:        util.Bytes2Human(size),
			SizeBytes:   &size,
			BackupType:  model.BackupPhysical,
			Trigger:     model.Translate(wayTable, v.BackupWay),
			Method:      model.Translate(strategyTable, v.Strategy),
			Status:      model.Translate(statusTable, v.Status),
			DownloadURL: v.ExternalAddr,
			InternalURL: v.InternalAddr,
			ExternalURL: v.ExternalAddr,
		})
	}
	return model.Success(resp.TotalCount, rows), nil
}

func (self *Checker) CreateBackup(ctx context.Context, method string) (*model.Result, error) {
	if !util.InSlice(method, instanceBackupMethods) {
		return nil, fmt.Errorf("MSSQL不支持该备份方式: %s", method)
	}

	resp, err := self.API.CreateSqlserverBackup(ctx, 0)
	if err != nil {
		return nil, err
	}
	return model.Created(fmt.Sprintf("MSSQL备份任务已提交，FlowId: %d", resp.FlowID),
		map[string]interface{}{"flow_id": resp.FlowID}), nil
}

package cdb

import (
	"context"
	"db-cloudops/model"
	"db-cloudops/tcloud"
	"db-cloudops/util"
	"fmt"
)

type API interface {
	DescribeCdbBackups(ctx context.Context, limit, offset int) (*tcloud.CdbBackups, error)
	CreateCdbBackup(ctx context.Context, method string) (*tcloud.CdbCreateBackup, error)
}

var typeTable = map[string]string{
	"logical":  model.BackupLogical,
	"physical": model.BackupPhysical,
}

var wayTable = map[string]string{
	"manual":    model.TriggerManual,
	"automatic": model.TriggerAutomatic,
}

var methodTable = map[string]string{
	"full":    model.MethodFull,
	"partial": model.MethodPartial,
}

var statusTable = map[string]string{
	"SUCCESS": model.StateSuccess,
	"FAILED":  model.StateFailed,
	"RUNNING": model.StateRunning,
}

type Checker struct {
	API API
}

func (self *Checker) Backups(ctx context.Context, q *model.BackupQuery) (*model.Result, error) {
	resp, err := self.API.DescribeCdbBackups(ctx, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	rows := make([]model.BackupRow, 0, len(resp.Items))
	for _, v := range resp.Items {
		size := v.Size
		rows = append(rows, model.BackupRow{
			Date:        util.DatePart(v.Date),
			FileName:    v.Name,
			StartTime:   v.StartTime,
			FinishTime:  v.FinishTime,
			Size:        util.Bytes2Human(size),
			SizeBytes:   &size,
			BackupType:  model.Translate(typeTable, v.Type),
			Trigger:     model.Translate(wayTable, v.Way),
			Method:      model.Translate(methodTable, v.Method),
			Status:      model.Translate(statusTable, v.Status),
			DownloadURL: v.InternetURL,
			InternalURL: v.IntranetURL,
			ExternalURL: v.InternetURL,
		})
	}
	return model.Success(resp.TotalCount, rows), nil
}

func (self *Checker) CreateBackup(ctx context.Context, method string) (*model.Result, error) {
	if method == "" {
		method = model.BackupLogical
	}
	if _, ok := typeTable[method]; !ok {
		return nil, fmt.Errorf("CDB不支持该备份方式: %s", method)
	}

	resp, err := self.API.CreateCdbBackup(ctx, method)
	if err != nil {
		return nil, err
	}
	return model.Created(fmt.Sprintf("CDB备份任务已提交，BackupId: %d", resp.BackupID),
		map[string]interface{}{"backup_id": resp.BackupID}), nil
}

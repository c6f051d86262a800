package redis

import (
	"context"
	"db-cloudops/model"
	"db-cloudops/tcloud"
	"db-cloudops/util"
	"fmt"
)

const statusNormal = 2

type API interface {
	DescribeRedisBackups(ctx context.Context, beginTime, endTime string, limit, offset int) (*tcloud.RedisBackups, error)
	DescribeRedisBackupURL(ctx context.Context, backupID string) (*tcloud.RedisBackupURL, error)
	CreateRedisBackup(ctx context.Context) (*tcloud.RedisCreateBackup, error)
}

var triggerTable = map[string]string{
	"0": model.TriggerManual,
	"1": model.TriggerAutomatic,
}

var statusTable = map[int]string{
	1: model.StateRunning,
	2: model.StateSuccess,
	3: model.StateFailed,
	4: model.StateRunning,
}

type Checker struct {
	API API
}

// Backups 云API没有返回备份大小，Size为空，SizeBytes为null
func (self *Checker) Backups(ctx context.Context, q *model.BackupQuery) (*model.Result, error) {
	resp, err := self.API.DescribeRedisBackups(ctx, q.StartTime, q.EndTime, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	rows := make([]model.BackupRow, 0, len(resp.BackupSet))
	for _, v := range resp.BackupSet {
		row := model.BackupRow{
			Date:       util.DatePart(v.StartTime),
			FileName:   v.BackupID,
			StartTime:  v.StartTime,
			BackupType: model.BackupPhysical,
			Trigger:    model.Translate(triggerTable, v.BackupType),
			Method:     model.MethodFull,
			Status:     model.Translate(statusTable, v.Status),
		}

		if v.Status == statusNormal {
			u, err := self.API.DescribeRedisBackupURL(ctx, v.BackupID)
			if err != nil {
				return nil, err
			}
			if len(u.DownloadURL) > 0 {
				row.DownloadURL = u.DownloadURL[0]
				row.ExternalURL = u.DownloadURL[0]
			}
			if len(u.InnerDownloadURL) > 0 {
				row.InternalURL = u.InnerDownloadURL[0]
			}
		}
		rows = append(rows, row)
	}
	return model.Success(resp.TotalCount, rows), nil
}

func (self *Checker) CreateBackup(ctx context.Context, method string) (*model.Result, error) {
	resp, err := self.API.CreateRedisBackup(ctx)
	if err != nil {
		return nil, err
	}
	return model.Created(fmt.Sprintf("Redis备份任务已提交，TaskId: %d", resp.TaskID),
		map[string]interface{}{"task_id": resp.TaskID}), nil
}

package mongodb

import (
	"context"
	"db-cloudops/model"
	"db-cloudops/tcloud"
	"db-cloudops/util"
	"fmt"
	"strings"
)

const DownloadNote = "备份文件存放在COS存储桶中，需使用COSCMD/COSCLI工具配合临时密钥下载，不能直接通过HTTP获取"

const statusSuccess = 2

type API interface {
	DescribeMongoBackups(ctx context.Context) (*tcloud.MongoBackups, error)
	DescribeMongoBackupAccess(ctx context.Context, backupName string) (*tcloud.MongoBackupAccess, error)
	CreateMongoBackup(ctx context.Context, method int) (*tcloud.MongoCreateBackup, error)
}

var typeTable = map[int]string{
	0: model.BackupLogical,
	1: model.BackupPhysical,
}

var triggerTable = map[int]string{
	0: model.TriggerAutomatic,
	1: model.TriggerManual,
}

var statusTable = map[int]string{
	1: model.StateRunning,
	2: model.StateSuccess,
}

var createMethods = map[string]int{
	"":                   0,
	model.BackupLogical:  0,
	model.BackupPhysical: 1,
}

type Checker struct {
	API API
}

func BucketURL(bucket, region, file string) string {
	return fmt.Sprintf("https://%s.cos.%s.myqcloud.com/%s", bucket, region, strings.TrimPrefix(file, "/"))
}

// Backups 每个备份再调用一次DescribeBackupAccess取存储桶信息，每个副本集文件一行
func (self *Checker) Backups(ctx context.Context, q *model.BackupQuery) (*model.Result, error) {
	resp, err := self.API.DescribeMongoBackups(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]model.BackupRow, 0, len(resp.BackupList))
	for _, v := range resp.BackupList {
		size := v.BackupSize
		row := model.BackupRow{
			Date:       util.DatePart(v.StartTime),
			FileName:   v.BackupName,
			StartTime:  v.StartTime,
			FinishTime: v.EndTime,
			Size:       util.Bytes2Human(size),
			SizeBytes:  &size,
			BackupType: model.Translate(typeTable, v.BackupMethod),
			Trigger:    model.Translate(triggerTable, v.BackupType),
			Method:     model.MethodFull,
			Status:     model.Translate(statusTable, v.Status),
		}

		// 备份中的没有文件
		if v.Status != statusSuccess {
			rows = append(rows, row)
			continue
		}

		access, err := self.API.DescribeMongoBackupAccess(ctx, v.BackupName)
		if err != nil {
			return nil, err
		}
		if len(access.Files) == 0 {
			rows = append(rows, row)
			continue
		}
		for _, f := range access.Files {
			r := row
			r.FileName = f.File
			r.ReplicaSetID = f.ReplicateSetID
			r.DownloadURL = BucketURL(access.Bucket, access.Region, f.File)
			r.DownloadNote = DownloadNote
			rows = append(rows, r)
		}
	}

	return model.Success(len(rows), util.Paginate(rows, q.Offset, q.Limit)), nil
}

func (self *Checker) CreateBackup(ctx context.Context, method string) (*model.Result, error) {
	m, ok := createMethods[method]
	if !ok {
		return nil, fmt.Errorf("MongoDB不支持该备份方式: %s", method)
	}

	resp, err := self.API.CreateMongoBackup(ctx, m)
	if err != nil {
		return nil, err
	}
	return model.Created(fmt.Sprintf("MongoDB备份任务已提交，AsyncRequestId: %s", resp.AsyncRequestID),
		map[string]interface{}{"async_request_id": resp.AsyncRequestID}), nil
}

package tcloud

import "context"

type MongoBackup struct {
	InstanceID   string `json:"InstanceId"`
	BackupType   int    `json:"BackupType"` // 0-自动备份 1-手动备份
	BackupName   string `json:"BackupName"`
	BackupDesc   string `json:"BackupDesc"`
	BackupSize   int64  `json:"BackupSize"` // 字节
	StartTime    string `json:"StartTime"`
	EndTime      string `json:"EndTime"`
	Status       int    `json:"Status"`       // 1-备份中 2-备份成功
	BackupMethod int    `json:"BackupMethod"` // 0-逻辑备份 1-物理备份
}

type MongoBackups struct {
	BackupList []MongoBackup `json:"BackupList"`
	TotalCount int           `json:"TotalCount"`
	RequestID  string        `json:"RequestId"`
}

type MongoBackupFile struct {
	ReplicateSetID string `json:"ReplicateSetId"`
	File           string `json:"File"`
}

type MongoBackupAccess struct {
	Region    string            `json:"Region"`
	Bucket    string            `json:"Bucket"`
	Files     []MongoBackupFile `json:"Files"`
	RequestID string            `json:"RequestId"`
}

type MongoCreateBackup struct {
	AsyncRequestID string `json:"AsyncRequestId"`
	RequestID      string `json:"RequestId"`
}

// DescribeMongoBackups 获取MongoDB的备份列表
func (self *Client) DescribeMongoBackups(ctx context.Context) (*MongoBackups, error) {
	resp := new(MongoBackups)
	if err := self.call(ctx, "获取MongoDB备份列表", MongoDB, "DescribeDBBackups", self.instanceParams(), resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DescribeMongoBackupAccess 获取备份文件所在的存储桶和路径
func (self *Client) DescribeMongoBackupAccess(ctx context.Context, backupName string) (*MongoBackupAccess, error) {
	resp := new(MongoBackupAccess)
	params := self.instanceParams()
	params["BackupName"] = backupName
	if err := self.call(ctx, "获取MongoDB备份文件", MongoDB, "DescribeBackupAccess", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateMongoBackup method: 0-逻辑备份 1-物理备份，3.6及以下的版本只支持逻辑备份
func (self *Client) CreateMongoBackup(ctx context.Context, method int) (*MongoCreateBackup, error) {
	resp := new(MongoCreateBackup)
	params := self.instanceParams()
	params["BackupMethod"] = method
	params["BackupRemark"] = "手工备份，3.6及以下的版本只支持逻辑备份"
	if err := self.call(ctx, "创建MongoDB备份", MongoDB, "CreateBackupDBInstance", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

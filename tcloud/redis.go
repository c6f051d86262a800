package tcloud

import "context"

// RedisBackup 没有备份大小字段
type RedisBackup struct {
	StartTime  string `json:"StartTime"`
	BackupID   string `json:"BackupId"`
	BackupType string `json:"BackupType"` // 1-凌晨系统发起的备份 0-用户发起的手动备份
	Status     int    `json:"Status"`     // 1-被其它流程锁定 2-正常 3-被覆盖 4-锁定
	Remark     string `json:"Remark"`
	Locked     int    `json:"Locked"`
}

type RedisBackups struct {
	TotalCount int           `json:"TotalCount"`
	BackupSet  []RedisBackup `json:"BackupSet"`
	RequestID  string        `json:"RequestId"`
}

type RedisBackupURL struct {
	DownloadURL      []string `json:"DownloadUrl"`
	InnerDownloadURL []string `json:"InnerDownloadUrl"`
	RequestID        string   `json:"RequestId"`
}

type RedisCreateBackup struct {
	TaskID    int64  `json:"TaskId"`
	RequestID string `json:"RequestId"`
}

// DescribeRedisBackups 查询Redis实例备份列表
func (self *Client) DescribeRedisBackups(ctx context.Context, beginTime, endTime string, limit, offset int) (*RedisBackups, error) {
	resp := new(RedisBackups)
	params := self.instanceParams()
	if beginTime != "" {
		params["BeginTime"] = beginTime
	}
	if endTime != "" {
		params["EndTime"] = endTime
	}
	params = pageParams(params, limit, offset)
	if err := self.call(ctx, "获取Redis备份列表", Redis, "DescribeInstanceBackups", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DescribeRedisBackupURL 查询备份rdb下载地址
func (self *Client) DescribeRedisBackupURL(ctx context.Context, backupID string) (*RedisBackupURL, error) {
	resp := new(RedisBackupURL)
	params := self.instanceParams()
	params["BackupId"] = backupID
	if err := self.call(ctx, "获取rdb下载地址", Redis, "DescribeBackupUrl", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (self *Client) CreateRedisBackup(ctx context.Context) (*RedisCreateBackup, error) {
	resp := new(RedisCreateBackup)
	params := self.instanceParams()
	params["Remark"] = "手工备份"
	if err := self.call(ctx, "创建Redis备份", Redis, "ManualBackupInstance", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

package tcloud

import "context"

type SqlserverBackup struct {
	FileName     string   `json:"FileName"`
	Size         int64    `json:"Size"` // KB
	StartTime    string   `json:"StartTime"`
	EndTime      string   `json:"EndTime"`
	InternalAddr string   `json:"InternalAddr"`
	ExternalAddr string   `json:"ExternalAddr"`
	ID           int64    `json:"Id"`
	Status       int      `json:"Status"` // 0-创建中 1-成功 2-失败
	DBs          []string `json:"DBs"`
	Strategy     int      `json:"Strategy"`  // 0-实例备份 1-多库备份
	BackupWay    int      `json:"BackupWay"` // 0-定时备份 1-手动临时备份
	BackupName   string   `json:"BackupName"`
}

type SqlserverBackups struct {
	TotalCount int               `json:"TotalCount"`
	Backups    []SqlserverBackup `json:"Backups"`
	RequestID  string            `json:"RequestId"`
}

type SqlserverCreateBackup struct {
	FlowID    int64  `json:"FlowId"`
	RequestID string `json:"RequestId"`
}

// DescribeSqlserverBackups 获取MSSQL的备份文件列表，StartTime/EndTime必传
func (self *Client) DescribeSqlserverBackups(ctx context.Context, startTime, endTime string, limit, offset int) (*SqlserverBackups, error) {
	resp := new(SqlserverBackups)
	params := self.instanceParams()
	params["StartTime"] = startTime
	params["EndTime"] = endTime
	params = pageParams(params, limit, offset)
	if err := self.call(ctx, "获取MS SQL备份文件", SQLServer, "DescribeBackups", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateSqlserverBackup strategy: 0-实例备份 1-多库备份
func (self *Client) CreateSqlserverBackup(ctx context.Context, strategy int) (*SqlserverCreateBackup, error) {
	resp := new(SqlserverCreateBackup)
	params := self.instanceParams()
	params["Strategy"] = strategy
	if err := self.call(ctx, "创建MSSQL备份", SQLServer, "CreateBackup", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

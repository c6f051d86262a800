package tcloud

import "context"

type CdbBackupInfo struct {
	Name             string `json:"Name"`
	Size             int64  `json:"Size"` // 字节
	Date             string `json:"Date"`
	IntranetURL      string `json:"IntranetUrl"`
	InternetURL      string `json:"InternetUrl"`
	Type             string `json:"Type"` // logical, physical
	BackupID         int64  `json:"BackupId"`
	Status           string `json:"Status"` // SUCCESS, FAILED, RUNNING
	FinishTime       string `json:"FinishTime"`
	Creator          string `json:"Creator"`
	StartTime        string `json:"StartTime"`
	Method           string `json:"Method"` // full, partial
	Way              string `json:"Way"`    // manual, automatic
	ManualBackupName string `json:"ManualBackupName"`
}

type CdbBackups struct {
	TotalCount int             `json:"TotalCount"`
	Items      []CdbBackupInfo `json:"Items"`
	RequestID  string          `json:"RequestId"`
}

type CdbCreateBackup struct {
	BackupID  int64  `json:"BackupId"`
	RequestID string `json:"RequestId"`
}

type CdbSlowLogItem struct {
	Timestamp    int64   `json:"Timestamp"`
	QueryTime    float64 `json:"QueryTime"`
	SQLText      string  `json:"SqlText"`
	UserHost     string  `json:"UserHost"`
	UserName     string  `json:"UserName"`
	Database     string  `json:"Database"`
	LockTime     float64 `json:"LockTime"`
	RowsExamined int64   `json:"RowsExamined"`
	RowsSent     int64   `json:"RowsSent"`
	SQLTemplate  string  `json:"SqlTemplate"`
	Md5          string  `json:"Md5"`
}

type CdbSlowLogData struct {
	TotalCount int              `json:"TotalCount"`
	Items      []CdbSlowLogItem `json:"Items"`
	RequestID  string           `json:"RequestId"`
}

// DescribeCdbBackups 获取CDB的备份文件列表
// https://cloud.tencent.com/document/api/236/15842
func (self *Client) DescribeCdbBackups(ctx context.Context, limit, offset int) (*CdbBackups, error) {
	resp := new(CdbBackups)
	params := pageParams(self.instanceParams(), limit, offset)
	if err := self.call(ctx, "获取CDB备份文件", CDB, "DescribeBackups", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateCdbBackup 为CDB创建备份，method: logical, physical
func (self *Client) CreateCdbBackup(ctx context.Context, method string) (*CdbCreateBackup, error) {
	resp := new(CdbCreateBackup)
	params := self.instanceParams()
	params["BackupMethod"] = method
	if err := self.call(ctx, "创建CDB备份", CDB, "CreateBackup", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DescribeCdbSlowLogData 慢日志明细，时间为时间戳
func (self *Client) DescribeCdbSlowLogData(ctx context.Context, startTs, endTs int64, limit, offset int, database string) (*CdbSlowLogData, error) {
	resp := new(CdbSlowLogData)
	params := self.instanceParams()
	params["StartTime"] = startTs
	params["EndTime"] = endTs
	params = pageParams(params, limit, offset)
	if database != "" {
		params["DataBases"] = []string{database}
	}
	if err := self.call(ctx, "获取CDB慢日志详情", CDB, "DescribeSlowLogData", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

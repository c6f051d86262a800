package model

type SlowQueryQuery struct {
	InstanceName string
	DBName       string
	StartDate    string // 2006-01-02
	EndDate      string
	Limit        int
	Offset       int
	Search       string
}

// SlowQueryRow 慢日志统计，字段名与前端保持一致
type SlowQueryRow struct {
	SQLText                   string   `json:"SQLText"`
	CreateTime                string   `json:"CreateTime"`
	DBName                    string   `json:"DBName"`
	MySQLTotalExecutionCounts int64    `json:"MySQLTotalExecutionCounts"`
	MySQLTotalExecutionTimes  float64  `json:"MySQLTotalExecutionTimes"`
	QueryTimeAvg              *float64 `json:"QueryTimeAvg"`
	ParseTotalRowCounts       int64    `json:"ParseTotalRowCounts"`
	ReturnTotalRowCounts      int64    `json:"ReturnTotalRowCounts"`
}

// SlowQueryDetailRow 慢日志明细，每次执行一行
type SlowQueryDetailRow struct {
	SQLText              string  `json:"SQLText"`
	ExecutionStartTime   string  `json:"ExecutionStartTime"`
	DBName               string  `json:"DBName"`
	HostAddress          string  `json:"HostAddress"`
	LockTimes            float64 `json:"LockTimes"`
	ParseRowCounts       int64   `json:"ParseRowCounts"`
	QueryTimePct95       float64 `json:"QueryTimePct95"`
	QueryTimes           float64 `json:"QueryTimes"`
	ReturnRowCounts      int64   `json:"ReturnRowCounts"`
	TotalExecutionCounts int     `json:"TotalExecutionCounts"`
}

package model

import "context"

const (
	BackupLogical  = "logical"
	BackupPhysical = "physical"

	TriggerManual    = "manual"
	TriggerAutomatic = "automatic"

	MethodFull    = "full"
	MethodPartial = "partial"

	StateSuccess = "success"
	StateFailed  = "failed"
	StateRunning = "running"

	Unknown = "unknown"
)

type BackupQuery struct {
	StartTime string // 2006-01-02 15:04:05
	EndTime   string
	Limit     int
	Offset    int
}

// BackupRow 各产品的备份记录统一成这一种格式
type BackupRow struct {
	Date         string `json:"date"`
	FileName     string `json:"file_name"`
	StartTime    string `json:"start_time"`
	FinishTime   string `json:"finish_time"`
	Size         string `json:"size"`
	SizeBytes    *int64 `json:"size_bytes"` // Redis没有大小字段，为null
	BackupType   string `json:"backup_type"`
	Trigger      string `json:"trigger"`
	Method       string `json:"method"`
	Status       string `json:"status"`
	DownloadURL  string `json:"download_url"`
	ReplicaSetID string `json:"replica_set_id,omitempty"`
	InternalURL  string `json:"internal_url,omitempty"`
	ExternalURL  string `json:"external_url,omitempty"`
	DownloadNote string `json:"download_note,omitempty"`
}

type GroupBackupRow struct {
	InstanceName string `json:"instance_name"`
	Status       int    `json:"status"`
	Msg          string `json:"msg"`
}

// BackupChecker 每种云产品一个实现
type BackupChecker interface {
	Backups(ctx context.Context, q *BackupQuery) (*Result, error)
	CreateBackup(ctx context.Context, method string) (*Result, error)
}

// Translate 厂商状态码转换，查不到返回unknown
func Translate[K comparable](table map[K]string, key K) string {
	if v, ok := table[key]; ok {
		return v
	}
	return Unknown
}

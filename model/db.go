package model

type DBConfig struct {
	Host     string `ini:"host"`
	Port     int    `ini:"port"`
	User     string `ini:"user"`
	Password string `ini:"password"`
	Database string `ini:"database"`
}

type LogConfig struct {
	Level      string `ini:"level"`
	File       string `ini:"file"`
	HttpFile   string `ini:"http_file"`
	MaxSize    int    `ini:"max_size"` // MB
	MaxBackups int    `ini:"max_backups"`
	MaxAge     int    `ini:"max_age"` // 天
}

// ScheduleConfig 定时按组备份
type ScheduleConfig struct {
	BackupCron   string   `ini:"backup_cron"`
	BackupGroups []string `ini:"backup_groups" delim:","`
	BackupMethod string   `ini:"backup_method"`
}

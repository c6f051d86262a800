package config

import (
	"db-cloudops/model"
	"fmt"
	"github.com/go-ini/ini"
)

var Global *Config

type Config struct {
	HttpPort         int                  `ini:"http_port"`
	GroupBackupDelay int                  `ini:"group_backup_delay"` // 组备份时两个实例之间的间隔(s)
	DB               model.DBConfig       `ini:"db"`
	Log              model.LogConfig      `ini:"log"`
	Schedule         model.ScheduleConfig `ini:"schedule"`
}

// Load 加载配置文件并设置到Global
func Load(fileName string) (*Config, error) {
	c, err := ini.Load(fileName)
	if err != nil {
		return nil, fmt.Errorf("加载配置文件 '%s' 失败: %w", fileName, err)
	}

	cfg := new(Config)
	err = c.MapTo(cfg)
	if err != nil {
		return nil, fmt.Errorf("映射配置信息失败: %w", err)
	}
	cfg.setDefaults()

	Global = cfg
	return cfg, nil
}

func (self *Config) setDefaults() {
	if self.HttpPort == 0 {
		self.HttpPort = 8080
	}

	if self.GroupBackupDelay == 0 {
		self.GroupBackupDelay = 60
	}

	if self.DB.Port == 0 {
		self.DB.Port = 3306
	}

	if self.Log.Level == "" {
		self.Log.Level = "info"
	}
	if self.Log.MaxSize == 0 {
		self.Log.MaxSize = 100
	}
	if self.Log.MaxBackups == 0 {
		self.Log.MaxBackups = 7
	}
	if self.Log.MaxAge == 0 {
		self.Log.MaxAge = 30
	}

	if self.Schedule.BackupMethod == "" {
		self.Schedule.BackupMethod = model.BackupLogical
	}
}

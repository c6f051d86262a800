package util

import (
	"db-cloudops/model"
	"github.com/gookit/slog"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
	"strings"
)

func newRotateWriter(fileName string, cfg *model.LogConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   true,
	}
}

// InitLogger 配置全局日志，返回给gin使用的访问日志输出
func InitLogger(cfg *model.LogConfig) io.Writer {
	formatter := slog.NewTextFormatter()
	formatter.SetTemplate("[{{datetime}}] [{{level}}] [{{caller}}] {{message}}\n")
	formatter.TimeFormat = "2006-01-02T15:04:05.000"
	formatter.EnableColor = false // 禁用颜色输出
	slog.SetFormatter(formatter)

	if cfg.Level != "" {
		slog.SetLogLevel(slog.LevelByName(strings.ToLower(cfg.Level)))
	}

	if cfg.File != "" {
		slog.Std().Output = io.MultiWriter(os.Stdout, newRotateWriter(cfg.File, cfg))
	}

	if cfg.HttpFile == "" {
		return os.Stdout
	}
	return newRotateWriter(cfg.HttpFile, cfg)
}

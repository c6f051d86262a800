package main

import (
	"db-cloudops/backup"
	"db-cloudops/config"
	"db-cloudops/http"
	"db-cloudops/slowquery"
	"db-cloudops/store"
	"db-cloudops/tcloud"
	"db-cloudops/util"
	"github.com/gookit/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

/*
####################################################################################################
#  Name        :  DBCloudOps
#  Date        :  2026-10-16
#  Description :  腾讯云数据库备份检查与慢日志查询
#  Updates     :
#      Version     When            What
#      --------    -----------     -----------------------------------------------------------------
#      v1.0        2026-10-16      支持CDB、DCDB、MSSQL、MongoDB、Redis的备份检查和手工备份
#      v1.1        2026-10-16      增加按组备份和定时备份
####################################################################################################
*/

func main() {
	// 进入工作目录
	util.EnterWorkDir()

	cfg, err := config.Load("config.ini")
	if err != nil {
		slog.Errorf("%v", err)
		os.Exit(1)
	}
	httpLog := util.InitLogger(&cfg.Log)

	db, err := util.NewMysqlORM(&cfg.DB)
	if err != nil {
		slog.Errorf("连接数据库报错: %s", err)
		os.Exit(1)
	}

	st := store.New(db)
	services := &http.Services{
		Store:     st,
		Backup:    backup.NewService(st, tcloud.NewClientFor, time.Duration(cfg.GroupBackupDelay)*time.Second),
		SlowQuery: slowquery.NewService(st, tcloud.NewClientFor),
	}

	//定时备份
	if cfg.Schedule.BackupCron != "" && len(cfg.Schedule.BackupGroups) > 0 {
		scheduler, err := backup.NewScheduler(services.Backup, cfg.Schedule.BackupCron, cfg.Schedule.BackupGroups, cfg.Schedule.BackupMethod)
		if err != nil {
			slog.Errorf("%v", err)
			os.Exit(1)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	//启动http服务
	go func() {
		slog.Infof("http服务启动，端口: %d", cfg.HttpPort)
		if err := http.StartService(cfg.HttpPort, httpLog, services); err != nil {
			slog.Errorf("http服务退出: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Infof("程序退出成功")
}

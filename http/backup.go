package http

import (
	"context"
	"db-cloudops/backup"
	"db-cloudops/model"
	"db-cloudops/util"
	"fmt"
	"github.com/gin-gonic/gin"
	"net/http"
)

type BackupParams struct {
	InstanceName string `form:"instance_name" binding:"required"`
	StartTime    string `form:"StartTime"`
	EndTime      string `form:"EndTime"`
	Limit        int    `form:"limit"`
	Offset       int    `form:"offset"`
}

type CreateBackupParams struct {
	InstanceName string `form:"instance_name" binding:"required"`
	BackupMethod string `form:"backup_method"`
}

// GroupBackupParams async=true时后台执行，结果只写日志
type GroupBackupParams struct {
	GroupName    string `form:"group_name" binding:"required"`
	BackupMethod string `form:"backup_method"`
	Async        bool   `form:"async"`
}

func CheckBackup(svc *backup.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p BackupParams
		if err := c.ShouldBind(&p); err != nil {
			badRequest(c, err)
			return
		}
		start, end, err := dateRange(p.StartTime, p.EndTime)
		if err != nil {
			badRequest(c, err)
			return
		}

		q := &model.BackupQuery{Limit: pageLimit(p.Limit), Offset: p.Offset}
		q.StartTime, q.EndTime = util.DayBounds(start, end)

		r, err := svc.Check(c.Request.Context(), p.InstanceName, q)
		reply(c, r, err)
	}
}

func CreateBackup(svc *backup.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p CreateBackupParams
		if err := c.ShouldBind(&p); err != nil {
			badRequest(c, err)
			return
		}
		r, err := svc.Create(c.Request.Context(), p.InstanceName, p.BackupMethod)
		reply(c, r, err)
	}
}

// BackupGroup 组内实例之间有固定间隔，耗时较长，实例多时应使用async
func BackupGroup(svc *backup.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p GroupBackupParams
		if err := c.ShouldBind(&p); err != nil {
			badRequest(c, err)
			return
		}

		if p.Async {
			go svc.RunGroup(context.Background(), p.GroupName, p.BackupMethod)
			c.JSON(http.StatusOK, model.Created(fmt.Sprintf("组%s备份任务已提交，结果见日志", p.GroupName),
				gin.H{"group_name": p.GroupName}))
			return
		}

		r, err := svc.BackupGroup(c.Request.Context(), p.GroupName, p.BackupMethod)
		reply(c, r, err)
	}
}

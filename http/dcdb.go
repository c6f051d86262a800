package http

import (
	"db-cloudops/backup"
	"db-cloudops/tcloud"
	"fmt"
	"github.com/gin-gonic/gin"
)

type DcdbParams struct {
	InstanceName string `form:"instance_name" binding:"required"`
}

type DcdbLogFileParams struct {
	InstanceName string `form:"instance_name" binding:"required"`
	ShardID      string `form:"shard_id" binding:"required"`
	Type         string `form:"type"`
}

func DcdbInstances(svc *backup.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p DcdbParams
		if err := c.ShouldBindQuery(&p); err != nil {
			badRequest(c, err)
			return
		}
		r, err := svc.DcdbInstances(c.Request.Context(), p.InstanceName)
		reply(c, r, err)
	}
}

func DcdbShards(svc *backup.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p DcdbParams
		if err := c.ShouldBindQuery(&p); err != nil {
			badRequest(c, err)
			return
		}
		r, err := svc.Shards(c.Request.Context(), p.InstanceName)
		reply(c, r, err)
	}
}

// DcdbLogFiles type默认为backup
func DcdbLogFiles(svc *backup.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p DcdbLogFileParams
		if err := c.ShouldBindQuery(&p); err != nil {
			badRequest(c, err)
			return
		}

		fileType := tcloud.LogFileBackup
		if p.Type != "" {
			t, ok := tcloud.ParseLogFileType(p.Type)
			if !ok {
				badRequest(c, fmt.Errorf("文件类型错误 '%s'", p.Type))
				return
			}
			fileType = t
		}

		r, err := svc.LogFiles(c.Request.Context(), p.InstanceName, p.ShardID, fileType)
		reply(c, r, err)
	}
}

package http

import (
	"db-cloudops/backup"
	"db-cloudops/slowquery"
	"db-cloudops/store"
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
)

type Services struct {
	Store     *store.Store
	Backup    *backup.Service
	SlowQuery *slowquery.Service
}

func NewRouter(s *Services) *gin.Engine {
	r := gin.Default()

	// 跨域中间件抽取
	r.Use(corsMiddleware())
	r.Use(requestIDMiddleware())
	r.Use(brotliMiddleware())

	// 路由分组
	root := r.Group("/db-cloudops")
	{
		// API 分组
		api := root.Group("/api")
		{
			bak := api.Group("/backup")
			{
				bak.POST("/check", CheckBackup(s.Backup))
				bak.POST("/create", CreateBackup(s.Backup))
				bak.POST("/group", BackupGroup(s.Backup))
			}

			slow := api.Group("/slowquery")
			{
				slow.POST("/review", SlowQueryReview(s.SlowQuery))
				slow.POST("/review_history", SlowQueryHistory(s.SlowQuery))
			}

			dcdb := api.Group("/dcdb")
			{
				dcdb.GET("/instances", DcdbInstances(s.Backup))
				dcdb.GET("/shards", DcdbShards(s.Backup))
				dcdb.GET("/logfiles", DcdbLogFiles(s.Backup))
			}

			config := api.Group("/config")
			{
				config.POST("/", CreateConfig(s.Store))
				config.GET("/", ListConfig(s.Store))
				config.GET("/:id", GetConfig(s.Store))
				config.PUT("/:id", UpdateConfig(s.Store))
				config.DELETE("/:id", DeleteConfig(s.Store))
			}
		}
	}
	return r
}

// StartService 访问日志写到logWriter，阻塞直到服务退出
func StartService(port int, logWriter io.Writer, s *Services) error {
	gin.DefaultWriter = logWriter
	gin.DefaultErrorWriter = logWriter

	r := NewRouter(s)
	return r.Run(fmt.Sprintf(":%d", port))
}

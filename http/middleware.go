package http

import (
	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gookit/slog"
	"strings"
)

const RequestIDHeader = "X-Request-ID"

// 提取跨域中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// requestIDMiddleware 请求结束后按请求id记录handler里c.Error收集的错误
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)

		c.Next()

		for _, e := range c.Errors {
			slog.Errorf("[%s] %s %s: %v", id, c.Request.Method, c.Request.URL.Path, e.Err)
		}
	}
}

type brotliWriter struct {
	gin.ResponseWriter
	writer *brotli.Writer
}

func (self *brotliWriter) Write(data []byte) (int, error) {
	return self.writer.Write(data)
}

func (self *brotliWriter) WriteString(s string) (int, error) {
	return self.writer.Write([]byte(s))
}

// brotliMiddleware 浏览器支持br时压缩返回结果
func brotliMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Accept-Encoding"), "br") {
			c.Next()
			return
		}

		bw := brotli.NewWriterLevel(c.Writer, brotli.DefaultCompression)
		c.Header("Content-Encoding", "br")
		c.Header("Vary", "Accept-Encoding")
		c.Writer = &brotliWriter{ResponseWriter: c.Writer, writer: bw}
		defer bw.Close()

		c.Next()
	}
}

package http

import (
	"db-cloudops/model"
	"db-cloudops/util"
	"fmt"
	"github.com/gin-gonic/gin"
	"net/http"
	"time"
)

const defaultLimit = 20

// reply 业务错误也返回200，错误信息放在msg里
func reply(c *gin.Context, r *model.Result, err error) {
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusOK, model.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, r)
}

func badRequest(c *gin.Context, err error) {
	c.Error(err)
	c.JSON(http.StatusBadRequest, model.Fail("参数错误: "+err.Error()))
}

// dateRange 默认最近7天
func dateRange(start, end string) (string, string, error) {
	today := time.Now()
	if start == "" {
		start = today.AddDate(0, 0, -6).Format(util.DateLayout)
	}
	if end == "" {
		end = today.Format(util.DateLayout)
	}
	for _, v := range []string{start, end} {
		if _, err := time.ParseInLocation(util.DateLayout, v, time.Local); err != nil {
			return "", "", fmt.Errorf("日期格式错误 '%s'", v)
		}
	}
	return start, end, nil
}

func pageLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}

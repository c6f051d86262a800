package util

import (
	"fmt"
	"time"
)

const (
	DatetimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
)

// Datetime2Timestamp 本地时区，按无夏令时的时区处理，夏令时结束时重复的那一小时无法互转
func Datetime2Timestamp(s string) (int64, error) {
	t, err := time.ParseInLocation(DatetimeLayout, s, time.Local)
	if err != nil {
		return 0, fmt.Errorf("时间格式错误 '%s': %w", s, err)
	}
	return t.Unix(), nil
}

func Timestamp2Datetime(ts int64) string {
	return time.Unix(ts, 0).In(time.Local).Format(DatetimeLayout)
}

// DayBounds 前端传入的是日期，补齐成整天的起止时间
func DayBounds(startDate, endDate string) (string, string) {
	return startDate + " 00:00:00", endDate + " 23:59:59"
}

// DatePart 截取日期部分
func DatePart(datetime string) string {
	if len(datetime) >= len(DateLayout) {
		return datetime[:len(DateLayout)]
	}
	return datetime
}

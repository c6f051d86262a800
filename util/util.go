package util

import (
	"fmt"
	"github.com/gookit/slog"
	"os"
	"path/filepath"
	"time"
)

func EnterWorkDir() {
	fullpath, err := os.Executable()
	if err != nil {
		panic(err)
	}
	dir, _ := filepath.Split(fullpath)
	err = os.Chdir(dir)
	if err != nil {
		panic(err)
	}
	currentDir, _ := os.Getwd()
	fmt.Printf("当前目录为: %s\n", currentDir)
}

func TimeCost() func(str string) {
	//计算耗时
	bts := time.Now().Unix()
	return func(str string) {
		ts := time.Now().Unix() - bts
		slog.Infof("%s，耗时%ds", str, ts)
	}
}

func InSlice[T comparable](target T, list []T) bool {
	for i := range list {
		if target == list[i] {
			return true
		}
	}
	return false
}

// Paginate 厂商接口不支持分页时在本地分页
func Paginate[T any](rows []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []T{}
	}
	end := len(rows)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return rows[offset:end]
}

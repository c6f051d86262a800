// Package checker 按云产品类型选择备份检查的实现
package checker

import (
	"db-cloudops/checker/cdb"
	"db-cloudops/checker/dcdb"
	"db-cloudops/checker/mongodb"
	"db-cloudops/checker/mssql"
	"db-cloudops/checker/redis"
	"db-cloudops/model"
	"db-cloudops/tcloud"
	"errors"
	"fmt"
)

var ErrUnsupported = errors.New("不支持该云产品类型")

// New 新增产品类型时在这里加一个分支
func New(productType model.ProductType, api *tcloud.Client) (c model.BackupChecker, err error) {
	switch productType {
	case model.ProductCDB:
		c = &cdb.Checker{API: api}
	case model.ProductDCDB:
		c = &dcdb.Checker{API: api}
	case model.ProductSQLServer:
		c = &mssql.Checker{API: api}
	case model.ProductMongoDB:
		c = &mongodb.Checker{API: api}
	case model.ProductRedis:
		c = &redis.Checker{API: api}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, productType.Label())
	}
	return
}

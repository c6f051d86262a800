package util

import (
	"db-cloudops/model"
	"fmt"
	driver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"time"
)

func MysqlDSN(cfg *model.DBConfig) string {
	c := driver.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	c.DBName = cfg.Database
	c.Timeout = 5 * time.Second
	c.Loc = time.Local
	c.ParseTime = true
	return c.FormatDSN()
}

func NewMysqlORM(cfg *model.DBConfig) (*gorm.DB, error) {
	config := &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		NamingStrategy:         schema.NamingStrategy{SingularTable: true},
	}

	db, err := gorm.Open(mysql.Open(MysqlDSN(cfg)), config)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(16)                  //最大连接数
	sqlDB.SetMaxIdleConns(4)                   //连接池里最大空闲连接数。必须要比maxOpenConns小
	sqlDB.SetConnMaxLifetime(time.Second * 60) //最大存活保持时间
	sqlDB.SetConnMaxIdleTime(time.Second * 5)  //最大空闲保持时间

	return db, nil
}

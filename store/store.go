// Package store 读写实例与腾讯云产品的配置，数据在平台自己的MySQL库里
package store

import (
	"context"
	"db-cloudops/model"
	"errors"
	"fmt"
	"gorm.io/gorm"
)

var (
	ErrInstanceNotFound = errors.New("实例不存在")
	ErrNotConfigured    = errors.New("实例未配置腾讯云信息")
	ErrInvalidProduct   = errors.New("云产品类型错误")
	ErrDuplicateEnabled = errors.New("该实例已有启用的云配置")
)

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

type cloudConfigRow struct {
	InstanceName string
	ProductType  *string
	DBInstanceID *string `gorm:"column:cdb_dbinstanceid"`
	Region       *string
	SecretID     *string `gorm:"column:raw_key_id"`
	SecretKey    *string `gorm:"column:raw_key_secret"`
}

const cloudConfigSQL = `select i.instance_name, c.product_type, c.cdb_dbinstanceid, c.region, k.raw_key_id, k.raw_key_secret
from sql_instance i
left join tcloud_cdb_config c on c.instance_id = i.id and c.is_enable = 1
left join cloud_access_key k on k.id = c.ak_id
where i.instance_name = ?
order by c.id`

// CloudConfig 实例名 -> 启用的云配置 -> 访问密钥，每次请求都重新查询
func (self *Store) CloudConfig(ctx context.Context, instanceName string) (*model.CloudInstance, error) {
	var rows []cloudConfigRow
	if err := self.DB.WithContext(ctx).Raw(cloudConfigSQL, instanceName).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("查询实例云配置-> %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInstanceNotFound, instanceName)
	}

	row := rows[0]
	if row.ProductType == nil || row.DBInstanceID == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotConfigured, instanceName)
	}
	if row.SecretID == nil || row.SecretKey == nil {
		return nil, fmt.Errorf("%w: %s 访问密钥不存在", ErrNotConfigured, instanceName)
	}

	return &model.CloudInstance{
		InstanceName: row.InstanceName,
		ProductType:  model.ProductType(*row.ProductType),
		DBInstanceID: *row.DBInstanceID,
		Region:       deref(row.Region),
		SecretID:     *row.SecretID,
		SecretKey:    *row.SecretKey,
	}, nil
}

// GroupInstances 按id顺序返回组内实例名
func (self *Store) GroupInstances(ctx context.Context, group string) ([]string, error) {
	var names []string
	err := self.DB.WithContext(ctx).Model(&model.Instance{}).
		Where("group_name = ?", group).
		Order("id").
		Pluck("instance_name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("查询实例组-> %w", err)
	}
	return names, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

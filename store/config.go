package store

import (
	"context"
	"db-cloudops/model"
	"fmt"
)

var configColumns = []string{"instance_id", "product_type", "cdb_dbinstanceid", "region", "ak_id", "is_enable"}

func (self *Store) ListConfigs(ctx context.Context, productType string) ([]model.CloudConfig, error) {
	query := self.DB.WithContext(ctx).Model(&model.CloudConfig{})
	if productType != "" {
		query = query.Where("product_type = ?", productType)
	}

	var list []model.CloudConfig
	if err := query.Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (self *Store) GetConfig(ctx context.Context, id int64) (*model.CloudConfig, error) {
	var cfg model.CloudConfig
	if err := self.DB.WithContext(ctx).First(&cfg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (self *Store) CreateConfig(ctx context.Context, cfg *model.CloudConfig) error {
	if err := self.validate(ctx, cfg); err != nil {
		return err
	}
	return self.DB.WithContext(ctx).Create(cfg).Error
}

// UpdateConfig 全字段更新，is_enable可以改成false
func (self *Store) UpdateConfig(ctx context.Context, id int64, cfg *model.CloudConfig) error {
	cfg.ID = id
	if err := self.validate(ctx, cfg); err != nil {
		return err
	}
	return self.DB.WithContext(ctx).Model(&model.CloudConfig{}).
		Where("id = ?", id).
		Select(configColumns).
		Updates(cfg).Error
}

func (self *Store) DeleteConfig(ctx context.Context, id int64) error {
	return self.DB.WithContext(ctx).Delete(&model.CloudConfig{}, "id = ?", id).Error
}

// validate 一个实例只允许一条启用的配置
func (self *Store) validate(ctx context.Context, cfg *model.CloudConfig) error {
	if !cfg.ProductType.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidProduct, cfg.ProductType)
	}
	if !cfg.IsEnable {
		return nil
	}

	var n int64
	err := self.DB.WithContext(ctx).Model(&model.CloudConfig{}).
		Where("instance_id = ? and is_enable = ? and id <> ?", cfg.InstanceID, true, cfg.ID).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: instance_id=%d", ErrDuplicateEnabled, cfg.InstanceID)
	}
	return nil
}

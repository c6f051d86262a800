package backup

import (
	"context"
	"db-cloudops/model"
	"db-cloudops/tcloud"
	"fmt"
)

func (self *Service) dcdbClient(ctx context.Context, instanceName string) (*tcloud.Client, error) {
	inst, err := self.Store.CloudConfig(ctx, instanceName)
	if err != nil {
		return nil, err
	}
	if inst.ProductType != model.ProductDCDB {
		return nil, fmt.Errorf("%w: %s", ErrNotDcdb, instanceName)
	}
	return self.NewClient(inst), nil
}

// DcdbInstances 列出该实例所用账号下的所有DCDB实例
func (self *Service) DcdbInstances(ctx context.Context, instanceName string) (*model.Result, error) {
	api, err := self.dcdbClient(ctx, instanceName)
	if err != nil {
		return nil, err
	}
	resp, err := api.DescribeDcdbInstances(ctx)
	if err != nil {
		return nil, err
	}
	return model.Success(resp.TotalCount, resp.Instances), nil
}

func (self *Service) Shards(ctx context.Context, instanceName string) (*model.Result, error) {
	api, err := self.dcdbClient(ctx, instanceName)
	if err != nil {
		return nil, err
	}
	resp, err := api.DescribeDcdbShards(ctx)
	if err != nil {
		return nil, err
	}
	return model.Success(resp.TotalCount, resp.Shards), nil
}

// LogFiles 下载地址为前缀+Uri，前缀放在data里
func (self *Service) LogFiles(ctx context.Context, instanceName, shardID string, fileType tcloud.LogFileType) (*model.Result, error) {
	api, err := self.dcdbClient(ctx, instanceName)
	if err != nil {
		return nil, err
	}
	resp, err := api.DescribeDcdbLogFiles(ctx, shardID, fileType)
	if err != nil {
		return nil, err
	}
	result := model.Success(resp.Total, resp.Files)
	result.Data = map[string]string{"vpc_prefix": resp.VpcPrefix, "normal_prefix": resp.NormalPrefix}
	return result, nil
}

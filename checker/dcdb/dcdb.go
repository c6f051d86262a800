package dcdb

import (
	"context"
	"db-cloudops/model"
	"db-cloudops/tcloud"
	"db-cloudops/util"
	"errors"
)

var ErrCreateUnsupported = errors.New("DCDB不支持手动发起备份")

type API interface {
	DescribeDcdbShards(ctx context.Context) (*tcloud.DcdbShards, error)
	DescribeDcdbLogFiles(ctx context.Context, shardInstanceID string, fileType tcloud.LogFileType) (*tcloud.DcdbLogFiles, error)
}

type Checker struct {
	API API
}

// Backups 先取所有分片，再逐个分片取冷备文件。云API不返回状态和类型，这里统一按成功的自动全量物理备份展示
func (self *Checker) Backups(ctx context.Context, q *model.BackupQuery) (*model.Result, error) {
	shards, err := self.API.DescribeDcdbShards(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]model.BackupRow, 0)
	for _, shard := range shards.Shards {
		files, err := self.API.DescribeDcdbLogFiles(ctx, shard.ShardInstanceID, tcloud.LogFileBackup)
		if err != nil {
			return nil, err
		}

		prefix := files.NormalPrefix
		if shard.Private() {
			prefix = files.VpcPrefix
		}

		for _, f := range files.Files {
			size := f.Length
			mtime := util.Timestamp2Datetime(f.Mtime)
			rows = append(rows, model.BackupRow{
				Date:        util.DatePart(mtime),
				FileName:    shard.ShardInstanceID + "_" + f.FileName,
				StartTime:   mtime,
				FinishTime:  mtime,
				Size:        util.Bytes2Human(size),
				SizeBytes:   &size,
				BackupType:  model.BackupPhysical,
				Trigger:     model.TriggerAutomatic,
				Method:      model.MethodFull,
				Status:      model.StateSuccess,
				DownloadURL: prefix + f.URI,
			})
		}
	}

	return model.Success(len(rows), util.Paginate(rows, q.Offset, q.Limit)), nil
}

func (self *Checker) CreateBackup(ctx context.Context, method string) (*model.Result, error) {
	return nil, ErrCreateUnsupported
}

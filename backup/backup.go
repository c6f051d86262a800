// Package backup 备份查询、手工备份和按组备份
package backup

import (
	"context"
	"db-cloudops/checker"
	"db-cloudops/model"
	"db-cloudops/tcloud"
	"db-cloudops/util"
	"errors"
	"fmt"
	"github.com/gookit/slog"
	"golang.org/x/time/rate"
	"time"
)

const SkippedMsg = "因前序实例备份失败，已跳过"

var ErrNotDcdb = errors.New("该实例不是DCDB")

type ConfigStore interface {
	CloudConfig(ctx context.Context, instanceName string) (*model.CloudInstance, error)
	GroupInstances(ctx context.Context, group string) ([]string, error)
}

type Service struct {
	Store     ConfigStore
	NewClient tcloud.ClientFactory
	Delay     time.Duration // 组内两次备份之间的间隔
}

func NewService(store ConfigStore, newClient tcloud.ClientFactory, delay time.Duration) *Service {
	return &Service{Store: store, NewClient: newClient, Delay: delay}
}

func (self *Service) checker(ctx context.Context, instanceName string) (model.BackupChecker, error) {
	inst, err := self.Store.CloudConfig(ctx, instanceName)
	if err != nil {
		return nil, err
	}
	return checker.New(inst.ProductType, self.NewClient(inst))
}

func (self *Service) Check(ctx context.Context, instanceName string, q *model.BackupQuery) (*model.Result, error) {
	c, err := self.checker(ctx, instanceName)
	if err != nil {
		return nil, err
	}
	return c.Backups(ctx, q)
}

func (self *Service) Create(ctx context.Context, instanceName, method string) (*model.Result, error) {
	c, err := self.checker(ctx, instanceName)
	if err != nil {
		return nil, err
	}
	r, err := c.CreateBackup(ctx, method)
	if err != nil {
		return nil, err
	}
	slog.Infof("[%s] %s", instanceName, r.Msg)
	return r, nil
}

// BackupGroup 组内实例逐个备份，一个失败后剩下的都跳过
func (self *Service) BackupGroup(ctx context.Context, group, method string) (*model.Result, error) {
	names, err := self.Store.GroupInstances(ctx, group)
	if err != nil {
		return nil, err
	}

	limiter := rate.NewLimiter(rate.Every(self.Delay), 1)
	// 上一个实例的调用结束后重新计时，间隔不受云API耗时影响
	restart := func() {
		limiter = rate.NewLimiter(rate.Every(self.Delay), 1)
		limiter.Allow()
	}
	rows := make([]model.GroupBackupRow, 0, len(names))
	var failed string
	for _, name := range names {
		if failed != "" {
			rows = append(rows, model.GroupBackupRow{InstanceName: name, Status: model.StatusFailed, Msg: SkippedMsg})
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			failed = name
			rows = append(rows, model.GroupBackupRow{InstanceName: name, Status: model.StatusFailed, Msg: err.Error()})
			continue
		}

		r, err := self.Create(ctx, name, method)
		restart()
		if err != nil {
			slog.Errorf("[%s] 组%s备份失败: %v", name, group, err)
			failed = name
			rows = append(rows, model.GroupBackupRow{InstanceName: name, Status: model.StatusFailed, Msg: err.Error()})
			continue
		}
		rows = append(rows, model.GroupBackupRow{InstanceName: name, Status: model.StatusOK, Msg: r.Msg})
	}

	result := model.Success(len(rows), rows)
	if failed != "" {
		result.Status = model.StatusFailed
		result.Msg = fmt.Sprintf("实例%s备份失败，组%s的备份已中止", failed, group)
	}
	return result, nil
}

// RunGroup 执行组备份并记录结果，用于定时任务和后台执行
func (self *Service) RunGroup(ctx context.Context, group, method string) {
	timeCost := util.TimeCost()
	r, err := self.BackupGroup(ctx, group, method)
	if err != nil {
		slog.Errorf("组%s备份失败: %v", group, err)
		return
	}
	if r.Failed() {
		slog.Errorf("组%s备份失败: %s", group, r.Msg)
		return
	}
	timeCost(fmt.Sprintf("组%s备份完成，共%d个实例", group, r.Total))
}

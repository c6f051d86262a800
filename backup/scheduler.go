package backup

import (
	"context"
	"db-cloudops/util"
	"fmt"
	"github.com/gookit/slog"
	"github.com/robfig/cron/v3"
	"time"
)

// Scheduler 按cron表达式定时对配置的实例组发起备份，支持带秒的表达式，上一次未结束时跳过本次
type Scheduler struct {
	cron   *cron.Cron
	svc    *Service
	groups []string
	method string
	ctx    context.Context
	cancel context.CancelFunc
}

func NewScheduler(svc *Service, cronExpr string, groups []string, method string) (*Scheduler, error) {
	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:   cron.New(cron.WithParser(parser), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		svc:    svc,
		groups: groups,
		method: method,
		ctx:    ctx,
		cancel: cancel,
	}
	if _, err := s.cron.AddFunc(cronExpr, s.Run); err != nil {
		cancel()
		return nil, fmt.Errorf("定时备份表达式错误 '%s'-> %w", cronExpr, err)
	}
	return s, nil
}

func (self *Scheduler) Start() {
	self.cron.Start()
	slog.Infof("定时备份已启动，下次执行时间: %s", self.Next().Format(util.DatetimeLayout))
}

// Stop 先取消正在执行的组备份，再等待任务退出
func (self *Scheduler) Stop() {
	self.cancel()
	<-self.cron.Stop().Done()
}

func (self *Scheduler) Next() time.Time {
	entries := self.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if !entries[0].Next.IsZero() {
		return entries[0].Next
	}
	return entries[0].Schedule.Next(time.Now())
}

// Run 各组依次执行，一个组失败不影响其他组
func (self *Scheduler) Run() {
	for _, group := range self.groups {
		if self.ctx.Err() != nil {
			slog.Warnf("定时备份已停止，跳过组%s", group)
			continue
		}
		self.svc.RunGroup(self.ctx, group, self.method)
	}
}

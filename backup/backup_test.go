package backup

import (
	"context"
	"db-cloudops/checker"
	"db-cloudops/model"
	"db-cloudops/store"
	"db-cloudops/tcloud"
	"db-cloudops/tcloud/tcloudtest"
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
	"time"
)

type fakeStore struct {
	instances map[string]*model.CloudInstance
	groups    map[string][]string
}

func (self *fakeStore) CloudConfig(ctx context.Context, name string) (*model.CloudInstance, error) {
	if inst, ok := self.instances[name]; ok {
		return inst, nil
	}
	return nil, fmt.Errorf("%w: %s", store.ErrInstanceNotFound, name)
}

func (self *fakeStore) GroupInstances(ctx context.Context, group string) ([]string, error) {
	return self.groups[group], nil
}

func newStore() *fakeStore {
	return &fakeStore{
		instances: map[string]*model.CloudInstance{
			"a":     {InstanceName: "a", ProductType: model.ProductCDB, DBInstanceID: "cdb-a"},
			"b":     {InstanceName: "b", ProductType: model.ProductCDB, DBInstanceID: "cdb-b"},
			"c":     {InstanceName: "c", ProductType: model.ProductCDB, DBInstanceID: "cdb-c"},
			"dcdb1": {InstanceName: "dcdb1", ProductType: model.ProductDCDB, DBInstanceID: "dcdbt-1"},
			"bad":   {InstanceName: "bad", ProductType: "oracle", DBInstanceID: "x"},
		},
		groups: map[string][]string{"g1": {"a", "b", "c"}},
	}
}

func TestCheckUnsupported(t *testing.T) {
	caller := tcloudtest.NewCaller()
	svc := NewService(newStore(), caller.Factory(), 0)

	_, err := svc.Check(context.Background(), "bad", &model.BackupQuery{})
	assert.ErrorIs(t, err, checker.ErrUnsupported)

	_, err = svc.Check(context.Background(), "nope", &model.BackupQuery{})
	assert.ErrorIs(t, err, store.ErrInstanceNotFound)
	assert.Empty(t, caller.Calls())
}

func TestCheck(t *testing.T) {
	caller := tcloudtest.NewCaller()
	caller.Responses["DescribeBackups"] = `{"TotalCount":1,"Items":[{"Name":"a.xb","Size":1024,"Status":"SUCCESS"}]}`
	svc := NewService(newStore(), caller.Factory(), 0)

	r, err := svc.Check(context.Background(), "a", &model.BackupQuery{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Total)
	assert.Equal(t, "cdb-a", caller.Calls()[0].Params["InstanceId"])
}

// 第二个实例失败，第三个实例不再调用云API
func TestBackupGroupShortCircuit(t *testing.T) {
	caller := tcloudtest.NewCaller()
	caller.Handler = func(action string, params map[string]interface{}) (string, error) {
		if params["InstanceId"] == "cdb-b" {
			return "", errors.New("[ResourceNotFound] 实例不存在")
		}
		return `{"BackupId":1}`, nil
	}
	svc := NewService(newStore(), caller.Factory(), 0)

	r, err := svc.BackupGroup(context.Background(), "g1", "")
	require.NoError(t, err)
	assert.Equal(t, model.StatusFailed, r.Status)
	assert.Contains(t, r.Msg, "b")

	rows := r.Rows.([]model.GroupBackupRow)
	require.Len(t, rows, 3)
	assert.Equal(t, model.StatusOK, rows[0].Status)
	assert.Equal(t, model.StatusFailed, rows[1].Status)
	assert.Contains(t, rows[1].Msg, "ResourceNotFound")
	assert.Equal(t, "c", rows[2].InstanceName)
	assert.Equal(t, SkippedMsg, rows[2].Msg)

	assert.Equal(t, 2, caller.Count("CreateBackup"))
	for _, call := range caller.Calls() {
		assert.NotEqual(t, "cdb-c", call.Params["InstanceId"])
	}
}

func TestBackupGroupDelay(t *testing.T) {
	caller := tcloudtest.NewCaller()
	caller.Responses["CreateBackup"] = `{"BackupId":1}`
	svc := NewService(newStore(), caller.Factory(), 30*time.Millisecond)

	start := time.Now()
	r, err := svc.BackupGroup(context.Background(), "g1", "physical")
	require.NoError(t, err)
	assert.Equal(t, model.StatusOK, r.Status)
	assert.Equal(t, 3, r.Total)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	assert.Equal(t, 3, caller.Count("CreateBackup"))
}

// 云API调用耗时超过间隔时，上一个调用结束到下一个调用开始仍要间隔Delay
func TestBackupGroupDelayAfterSlowCall(t *testing.T) {
	var mu sync.Mutex
	var starts, ends []time.Time
	caller := tcloudtest.NewCaller()
	caller.Handler = func(action string, params map[string]interface{}) (string, error) {
		mu.Lock()
		starts = append(starts, time.Now())
		mu.Unlock()
		time.Sleep(80 * time.Millisecond)
		mu.Lock()
		ends = append(ends, time.Now())
		mu.Unlock()
		return `{"BackupId":1}`, nil
	}
	svc := NewService(newStore(), caller.Factory(), 50*time.Millisecond)

	r, err := svc.BackupGroup(context.Background(), "g1", "")
	require.NoError(t, err)
	assert.Equal(t, model.StatusOK, r.Status)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, starts, 3)
	for i := 1; i < len(starts); i++ {
		assert.GreaterOrEqual(t, starts[i].Sub(ends[i-1]), 40*time.Millisecond, "instance %d", i)
	}
}

func TestBackupGroupCanceled(t *testing.T) {
	caller := tcloudtest.NewCaller()
	svc := NewService(newStore(), caller.Factory(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, err := svc.BackupGroup(ctx, "g1", "")
	require.NoError(t, err)
	assert.True(t, r.Failed())
	rows := r.Rows.([]model.GroupBackupRow)
	require.Len(t, rows, 3)
	assert.Equal(t, SkippedMsg, rows[1].Msg)
	assert.Empty(t, caller.Calls())
}

func TestBackupGroupEmpty(t *testing.T) {
	svc := NewService(newStore(), tcloudtest.NewCaller().Factory(), 0)
	r, err := svc.BackupGroup(context.Background(), "none", "")
	require.NoError(t, err)
	assert.Equal(t, 0, r.Total)
	assert.Equal(t, []model.GroupBackupRow{}, r.Rows)
}

func TestDcdb(t *testing.T) {
	caller := tcloudtest.NewCaller()
	caller.Responses["DescribeDBLogFiles"] = `{"Total":1,"VpcPrefix":"http://vpc","NormalPrefix":"http://normal","Files":[{"FileName":"x.log","Uri":"/x.log"}]}`
	caller.Responses["DescribeDCDBShards"] = `{"TotalCount":1,"Shards":[{"ShardInstanceId":"shard-1"}]}`
	svc := NewService(newStore(), caller.Factory(), 0)
	ctx := context.Background()

	r, err := svc.LogFiles(ctx, "dcdb1", "shard-1", tcloud.LogFileBinlog)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Total)
	assert.Equal(t, map[string]string{"vpc_prefix": "http://vpc", "normal_prefix": "http://normal"}, r.Data)
	assert.Equal(t, 1, caller.Calls()[0].Params["Type"])

	r, err = svc.Shards(ctx, "dcdb1")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Total)

	_, err = svc.Shards(ctx, "a")
	assert.ErrorIs(t, err, ErrNotDcdb)
	_, err = svc.DcdbInstances(ctx, "a")
	assert.ErrorIs(t, err, ErrNotDcdb)
}

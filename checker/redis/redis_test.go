package redis

import (
	"context"
	"db-cloudops/model"
	"db-cloudops/tcloud"
	"db-cloudops/tcloud/tcloudtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestBackups(t *testing.T) {
	caller := tcloudtest.NewCaller()
	caller.Responses["DescribeInstanceBackups"] = `{"TotalCount":9,"BackupSet":[
		{"StartTime":"2024-05-01 04:00:00","BackupId":"b-1","BackupType":"1","Status":2},
		{"StartTime":"2024-05-02 04:00:00","BackupId":"b-2","BackupType":"0","Status":4},
		{"StartTime":"2024-05-03 04:00:00","BackupId":"b-3","BackupType":"0","Status":3}
	]}`
	caller.Responses["DescribeBackupUrl"] = `{"DownloadUrl":["http://out/b-1"],"InnerDownloadUrl":["http://in/b-1"]}`

	c := &Checker{API: tcloud.NewClient("crs-1", caller)}
	r, err := c.Backups(context.Background(), &model.BackupQuery{StartTime: "2024-05-01 00:00:00", EndTime: "2024-05-07 23:59:59"})
	require.NoError(t, err)
	assert.Equal(t, 9, r.Total)

	rows := r.Rows.([]model.BackupRow)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Empty(t, row.Size)
		assert.Nil(t, row.SizeBytes)
		assert.Equal(t, model.BackupPhysical, row.BackupType)
		assert.Equal(t, model.MethodFull, row.Method)
	}
	assert.Equal(t, "http://out/b-1", rows[0].DownloadURL)
	assert.Equal(t, "http://in/b-1", rows[0].InternalURL)
	assert.Equal(t, model.TriggerAutomatic, rows[0].Trigger)
	assert.Equal(t, model.StateSuccess, rows[0].Status)
	assert.Equal(t, model.TriggerManual, rows[1].Trigger)
	assert.Equal(t, model.StateRunning, rows[1].Status)
	assert.Equal(t, model.StateFailed, rows[2].Status)
	assert.Empty(t, rows[2].DownloadURL)

	assert.Equal(t, 1, caller.Count("DescribeBackupUrl"))
	assert.Equal(t, "2024-05-01 00:00:00", caller.Calls()[0].Params["BeginTime"])
}

func TestCreateBackup(t *testing.T) {
	caller := tcloudtest.NewCaller()
	caller.Responses["ManualBackupInstance"] = `{"TaskId":31}`

	r, err := (&Checker{API: tcloud.NewClient("crs-1", caller)}).CreateBackup(context.Background(), "whatever")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"task_id": int64(31)}, r.Data)
	assert.Contains(t, r.Msg, "31")
}

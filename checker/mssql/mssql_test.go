package mssql

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
	caller.Responses["DescribeBackups"] = `{"TotalCount":3,"Backups":[
		{"FileName":"f1.bak","Size":97657,"StartTime":"2024-05-01 01:00:00","EndTime":"2024-05-01 01:05:00","InternalAddr":"http://in/f1","ExternalAddr":"http://out/f1","Status":1,"Strategy":0,"BackupWay":0},
		{"FileName":"f2.bak","Size":1,"Status":0,"Strategy":1,"BackupWay":1},
		{"FileName":"f3.bak","Size":1,"Status":2,"Strategy":5,"BackupWay":9}
	]}`

	c := &Checker{API: tcloud.NewClient("mssql-1", caller)}
	q := &model.BackupQuery{StartTime: "2024-05-01 00:00:00", EndTime: "2024-05-07 23:59:59", Limit: 20}
	r, err := c.Backups(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Total)

	rows := r.Rows.([]model.BackupRow)
	require.Len(t, rows, 3)
	assert.Equal(t, "95.37M", rows[0].Size)
	assert.Equal(t, int64(97657*1024), *rows[0].SizeBytes)
	assert.Equal(t, model.StateSuccess, rows[0].Status)
	assert.Equal(t, model.TriggerAutomatic, rows[0].Trigger)
	assert.Equal(t, model.MethodFull, rows[0].Method)
	assert.Equal(t, model.BackupPhysical, rows[0].BackupType)
	assert.Equal(t, "http://in/f1", rows[0].InternalURL)
	assert.Equal(t, "http://out/f1", rows[0].DownloadURL)

	assert.Equal(t, "1.0K", rows[1].Size)
	assert.Equal(t, model.StateRunning, rows[1].Status)
	assert.Equal(t, model.TriggerManual, rows[1].Trigger)
	assert.Equal(t, model.MethodPartial, rows[1].Method)

	assert.Equal(t, model.StateFailed, rows[2].Status)
	assert.Equal(t, model.Unknown, rows[2].Trigger)
	assert.Equal(t, model.Unknown, rows[2].Method)

	params := caller.Calls()[0].Params
	assert.Equal(t, q.StartTime, params["StartTime"])
	assert.Equal(t, q.EndTime, params["EndTime"])
}

func TestCreateBackup(t *testing.T) {
	caller := tcloudtest.NewCaller()
	caller.Responses["CreateBackup"] = `{"FlowId":7}`
	c := &Checker{API: tcloud.NewClient("mssql-1", caller)}

	for _, m := range []string{"", "full", "logical", "physical"} {
		r, err := c.CreateBackup(context.Background(), m)
		require.NoError(t, err, m)
		assert.Equal(t, map[string]interface{}{"flow_id": int64(7)}, r.Data)
	}
	for _, call := range caller.Calls() {
		assert.Equal(t, 0, call.Params["Strategy"])
	}

	_, err := c.CreateBackup(context.Background(), "partial")
	assert.Error(t, err)
	assert.Equal(t, 4, caller.Count("CreateBackup"))
}

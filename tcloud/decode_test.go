package tcloud

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDecodeResponse(t *testing.T) {
	var resp RedisBackupURL
	err := decodeResponse([]byte(`{"Response":{"DownloadUrl":["https://a/1.rdb"],"InnerDownloadUrl":["http://10.0.0.1/1.rdb"],"RequestId":"req-1"}}`), &resp)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a/1.rdb"}, resp.DownloadURL)
	assert.Equal(t, "req-1", resp.RequestID)
}

func TestDecodeResponseError(t *testing.T) {
	var resp CdbBackups
	err := decodeResponse([]byte(`{"Response":{"Error":{"Code":"ResourceNotFound.InstanceNotFound","Message":"实例不存在"},"RequestId":"req-2"}}`), &resp)
	require.Error(t, err)
	assert.Equal(t, "[ResourceNotFound.InstanceNotFound] 实例不存在 (RequestId=req-2)", err.Error())
}

func TestDecodeResponseMalformed(t *testing.T) {
	var resp CdbBackups
	assert.Error(t, decodeResponse([]byte(`not json`), &resp))
	assert.Error(t, decodeResponse([]byte(`{"Other":{}}`), &resp))
}

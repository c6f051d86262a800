package http

import (
	"context"
	"db-cloudops/backup"
	"db-cloudops/model"
	"db-cloudops/slowquery"
	"db-cloudops/store"
	"db-cloudops/tcloud/tcloudtest"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStore struct{}

var instances = map[string]*model.CloudInstance{
	"db1":    {InstanceName: "db1", ProductType: model.ProductCDB, DBInstanceID: "cdb-1"},
	"db2":    {InstanceName: "db2", ProductType: model.ProductCDB, DBInstanceID: "cdb-2"},
	"db3":    {InstanceName: "db3", ProductType: model.ProductCDB, DBInstanceID: "cdb-3"},
	"dcdb1":  {InstanceName: "dcdb1", ProductType: model.ProductDCDB, DBInstanceID: "dcdbt-1"},
	"oracle": {InstanceName: "oracle", ProductType: "", DBInstanceID: "x"},
}

func (fakeStore) CloudConfig(ctx context.Context, name string) (*model.CloudInstance, error) {
	if inst, ok := instances[name]; ok {
		return inst, nil
	}
	return nil, fmt.Errorf("%w: %s", store.ErrInstanceNotFound, name)
}

func (fakeStore) GroupInstances(ctx context.Context, group string) ([]string, error) {
	if group == "g1" {
		return []string{"db1", "db2", "db3"}, nil
	}
	return nil, nil
}

type envelope struct {
	Total  int                      `json:"total"`
	Rows   []map[string]interface{} `json:"rows"`
	Msg    string                   `json:"msg"`
	Status int                      `json:"status"`
	Data   map[string]interface{}   `json:"data"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *tcloudtest.Caller, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: db, SkipInitializeWithVersion: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	caller := tcloudtest.NewCaller()
	r := NewRouter(&Services{
		Store:     store.New(gdb),
		Backup:    backup.NewService(fakeStore{}, caller.Factory(), 0),
		SlowQuery: slowquery.NewService(fakeStore{}, caller.Factory()),
	})
	return r, caller, mock
}

func postForm(r http.Handler, path string, form url.Values, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decode(t *testing.T, body io.Reader) envelope {
	var e envelope
	require.NoError(t, json.NewDecoder(body).Decode(&e))
	return e
}

func TestCheckBackupUnconfigured(t *testing.T) {
	r, caller, _ := newTestRouter(t)

	for _, name := range []string{"nope", "oracle"} {
		w := postForm(r, "/db-cloudops/api/backup/check", url.Values{"instance_name": {name}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"rows":[]`)

		e := decode(t, w.Body)
		assert.Equal(t, 0, e.Total)
		assert.Empty(t, e.Rows)
		assert.Equal(t, model.StatusFailed, e.Status)
		assert.NotEmpty(t, e.Msg)
	}
	assert.Empty(t, caller.Calls())
}

func TestCheckBackupMissingParam(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := postForm(r, "/db-cloudops/api/backup/check", url.Values{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, model.StatusFailed, decode(t, w.Body).Status)

	w = postForm(r, "/db-cloudops/api/backup/check", url.Values{"instance_name": {"db1"}, "StartTime": {"2024/01/01"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckBackup(t *testing.T) {
	r, caller, _ := newTestRouter(t)
	caller.Responses["DescribeBackups"] = `{"TotalCount":1,"Items":[{"Name":"a.xb","Size":1024,"Type":"logical","Status":"SUCCESS","Way":"manual","Method":"full"}]}`

	w := postForm(r, "/db-cloudops/api/backup/check", url.Values{
		"instance_name": {"db1"}, "StartTime": {"2024-05-01"}, "EndTime": {"2024-05-07"}, "offset": {"0"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	e := decode(t, w.Body)
	assert.Equal(t, 1, e.Total)
	assert.Equal(t, model.StatusOK, e.Status)
	require.Len(t, e.Rows, 1)
	assert.Equal(t, "1.0K", e.Rows[0]["size"])
	assert.Equal(t, "success", e.Rows[0]["status"])

	assert.Equal(t, defaultLimit, caller.Calls()[0].Params["Limit"])
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestBrotliResponse(t *testing.T) {
	r, caller, _ := newTestRouter(t)
	caller.Responses["DescribeBackups"] = `{"TotalCount":0,"Items":[]}`

	w := postForm(r, "/db-cloudops/api/backup/check", url.Values{"instance_name": {"db1"}},
		"Accept-Encoding", "gzip, deflate, br", RequestIDHeader, "req-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "br", w.Header().Get("Content-Encoding"))
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))

	e := decode(t, brotli.NewReader(w.Body))
	assert.Equal(t, model.StatusOK, e.Status)
	assert.Equal(t, 0, e.Total)
}

func TestCors(t *testing.T) {
	r, _, _ := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/db-cloudops/api/backup/check", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCreateBackup(t *testing.T) {
	r, caller, _ := newTestRouter(t)
	caller.Responses["CreateBackup"] = `{"BackupId":9}`

	w := postForm(r, "/db-cloudops/api/backup/create", url.Values{"instance_name": {"db1"}, "backup_method": {"physical"}})
	e := decode(t, w.Body)
	assert.Equal(t, model.StatusOK, e.Status)
	assert.Equal(t, float64(9), e.Data["backup_id"])

	w = postForm(r, "/db-cloudops/api/backup/create", url.Values{"instance_name": {"dcdb1"}})
	e = decode(t, w.Body)
	assert.Equal(t, model.StatusFailed, e.Status)
	assert.Equal(t, 1, caller.Count("CreateBackup"))
}

func TestBackupGroup(t *testing.T) {
	r, caller, _ := newTestRouter(t)
	caller.Handler = func(action string, params map[string]interface{}) (string, error) {
		if params["InstanceId"] == "cdb-2" {
			return "", errors.New("[InternalError] 备份失败")
		}
		return `{"BackupId":1}`, nil
	}

	w := postForm(r, "/db-cloudops/api/backup/group", url.Values{"group_name": {"g1"}})
	require.Equal(t, http.StatusOK, w.Code)
	e := decode(t, w.Body)
	assert.Equal(t, model.StatusFailed, e.Status)
	require.Len(t, e.Rows, 3)
	assert.Equal(t, backup.SkippedMsg, e.Rows[2]["msg"])
	assert.Equal(t, 2, caller.Count("CreateBackup"))
}

func TestBackupGroupAsync(t *testing.T) {
	r, caller, _ := newTestRouter(t)
	caller.Responses["CreateBackup"] = `{"BackupId":1}`

	w := postForm(r, "/db-cloudops/api/backup/group", url.Values{"group_name": {"g1"}, "async": {"true"}})
	require.Equal(t, http.StatusOK, w.Code)
	e := decode(t, w.Body)
	assert.Equal(t, model.StatusOK, e.Status)
	assert.Equal(t, "g1", e.Data["group_name"])
	assert.Empty(t, e.Rows)

	require.Eventually(t, func() bool { return caller.Count("CreateBackup") == 3 }, 2*time.Second, 10*time.Millisecond)
}

func TestSlowQueryReview(t *testing.T) {
	r, caller, _ := newTestRouter(t)
	caller.Responses["DescribeSlowLogTopSqls"] = `{"TotalCount":2,"Rows":[
		{"SqlText":"select 1","Schema":"a","ExecTimes":2,"QueryTime":4},
		{"SqlText":"select 2","Schema":"b","ExecTimes":0,"QueryTime":4}]}`

	w := postForm(r, "/db-cloudops/api/slowquery/review", url.Values{
		"instance_name": {"db1"}, "db_name": {"a"}, "StartTime": {"2024-05-01"}, "EndTime": {"2024-05-01"}, "limit": {"14"},
	})
	e := decode(t, w.Body)
	assert.Equal(t, 2, e.Total)
	require.Len(t, e.Rows, 1)
	assert.Equal(t, float64(2), e.Rows[0]["QueryTimeAvg"])
	assert.Equal(t, 14, caller.Calls()[0].Params["Limit"])

	w = postForm(r, "/db-cloudops/api/slowquery/review", url.Values{"instance_name": {"db1"}, "db_name": {"b"}})
	e = decode(t, w.Body)
	require.Len(t, e.Rows, 1)
	assert.Nil(t, e.Rows[0]["QueryTimeAvg"])
}

func TestSlowQueryHistoryUnsupported(t *testing.T) {
	r, caller, _ := newTestRouter(t)

	w := postForm(r, "/db-cloudops/api/slowquery/review_history", url.Values{"instance_name": {"dcdb1"}, "SQLId": {"abc"}})
	assert.Equal(t, http.StatusOK, w.Code)
	e := decode(t, w.Body)
	assert.Equal(t, model.StatusFailed, e.Status)
	assert.Equal(t, 0, e.Total)
	assert.Empty(t, e.Rows)
	assert.Empty(t, caller.Calls())
}

func TestDcdbLogFiles(t *testing.T) {
	r, caller, _ := newTestRouter(t)
	caller.Responses["DescribeDBLogFiles"] = `{"Total":1,"Files":[{"FileName":"binlog.000001","Uri":"/b1"}],"VpcPrefix":"http://vpc"}`

	w := get(r, "/db-cloudops/api/dcdb/logfiles?instance_name=dcdb1&shard_id=shard-1&type=binlog")
	e := decode(t, w.Body)
	assert.Equal(t, 1, e.Total)
	assert.Equal(t, "http://vpc", e.Data["vpc_prefix"])
	assert.Equal(t, 1, caller.Calls()[0].Params["Type"])

	w = get(r, "/db-cloudops/api/dcdb/logfiles?instance_name=dcdb1&shard_id=shard-1&type=9")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(r, "/db-cloudops/api/dcdb/shards")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfigHandlers(t *testing.T) {
	r, _, mock := newTestRouter(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `tcloud_cdb_config` WHERE product_type = ? ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "instance_id", "product_type", "cdb_dbinstanceid", "region", "ak_id", "is_enable"}).
			AddRow(1, 10, "cdb", "cdb-1", "ap-guangzhou", 2, true))

	w := get(r, "/db-cloudops/api/config/?product_type=cdb")
	require.Equal(t, http.StatusOK, w.Code)
	e := decode(t, w.Body)
	assert.Equal(t, 1, e.Total)
	assert.Equal(t, "cdb-1", e.Rows[0]["cdb_dbinstanceid"])
	assert.NoError(t, mock.ExpectationsWereMet())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/db-cloudops/api/config/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/db-cloudops/api/config/", strings.NewReader(`{"instance_id":1,"product_type":"oracle"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w.Body).Msg, "云产品类型错误")
}

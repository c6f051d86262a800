package tcloud

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
)

type LogFileType int

const (
	LogFileBinlog  LogFileType = 1
	LogFileBackup  LogFileType = 2
	LogFileErrlog  LogFileType = 3
	LogFileSlowlog LogFileType = 4
)

var logFileTypes = map[string]LogFileType{
	"binlog":  LogFileBinlog,
	"backup":  LogFileBackup,
	"errlog":  LogFileErrlog,
	"slowlog": LogFileSlowlog,
}

// ParseLogFileType 支持名称或数字
func ParseLogFileType(s string) (LogFileType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if v, ok := logFileTypes[s]; ok {
		return v, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(LogFileBinlog) || n > int(LogFileSlowlog) {
		return 0, false
	}
	return LogFileType(n), true
}

// FlexString 云API有的版本返回数字，有的返回字符串
type FlexString string

func (self *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*self = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*self = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*self = FlexString(n.String())
	return nil
}

func (self FlexString) IsZero() bool {
	return self == "" || self == "0"
}

type DcdbInstance struct {
	InstanceID   string     `json:"InstanceId"`
	InstanceName string     `json:"InstanceName"`
	Region       string     `json:"Region"`
	Zone         string     `json:"Zone"`
	VpcID        FlexString `json:"VpcId"`
	Vip          string     `json:"Vip"`
	Vport        int        `json:"Vport"`
	Status       int        `json:"Status"`
	StatusDesc   string     `json:"StatusDesc"`
	ShardCount   int        `json:"ShardCount"`
	DbVersion    string     `json:"DbVersion"`
	CreateTime   string     `json:"CreateTime"`
}

type DcdbInstances struct {
	TotalCount int            `json:"TotalCount"`
	Instances  []DcdbInstance `json:"Instances"`
	RequestID  string         `json:"RequestId"`
}

type DcdbShard struct {
	InstanceID      string     `json:"InstanceId"`
	ShardSerialID   string     `json:"ShardSerialId"`
	ShardInstanceID string     `json:"ShardInstanceId"`
	Status          int        `json:"Status"`
	StatusDesc      string     `json:"StatusDesc"`
	CreateTime      string     `json:"Createtime"`
	VpcID           FlexString `json:"VpcId"`
	SubnetID        FlexString `json:"SubnetId"`
	Region          string     `json:"Region"`
	Zone            string     `json:"Zone"`
	Memory          int        `json:"Memory"`
	Storage         int        `json:"Storage"`
	ShardID         int        `json:"ShardId"`
}

// Private 分片是否在私有网络中
func (self *DcdbShard) Private() bool {
	return !self.VpcID.IsZero()
}

type DcdbShards struct {
	TotalCount int         `json:"TotalCount"`
	Shards     []DcdbShard `json:"Shards"`
	RequestID  string      `json:"RequestId"`
}

type DcdbLogFile struct {
	Mtime    int64  `json:"Mtime"`
	Length   int64  `json:"Length"` // 字节
	URI      string `json:"Uri"`
	FileName string `json:"FileName"`
}

type DcdbLogFiles struct {
	InstanceID   string        `json:"InstanceId"`
	Type         int           `json:"Type"`
	Total        int           `json:"Total"`
	Files        []DcdbLogFile `json:"Files"`
	VpcPrefix    string        `json:"VpcPrefix"`
	NormalPrefix string        `json:"NormalPrefix"`
	ShardID      string        `json:"ShardId"`
	RequestID    string        `json:"RequestId"`
}

// DescribeDcdbInstances 获取账号下的DCDB实例列表
func (self *Client) DescribeDcdbInstances(ctx context.Context) (*DcdbInstances, error) {
	resp := new(DcdbInstances)
	if err := self.call(ctx, "获取DCDB实例列表", DCDB, "DescribeDCDBInstances", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DescribeDcdbShards 获取该实例的所有分片
func (self *Client) DescribeDcdbShards(ctx context.Context) (*DcdbShards, error) {
	resp := new(DcdbShards)
	if err := self.call(ctx, "获取DCDB分片列表", DCDB, "DescribeDCDBShards", self.instanceParams(), resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DescribeDcdbLogFiles 获取分片的文件列表
func (self *Client) DescribeDcdbLogFiles(ctx context.Context, shardInstanceID string, fileType LogFileType) (*DcdbLogFiles, error) {
	resp := new(DcdbLogFiles)
	params := self.instanceParams()
	params["ShardId"] = shardInstanceID
	params["Type"] = int(fileType)
	if err := self.call(ctx, "获取DCDB文件列表", DCDB, "DescribeDBLogFiles", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

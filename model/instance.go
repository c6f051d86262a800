package model

type ProductType string

const (
	ProductCDB       ProductType = "cdb"       // 云数据库MySQL
	ProductDCDB      ProductType = "dcdb"      // 分布式数据库TDSQL
	ProductSQLServer ProductType = "sqlserver" // 云数据库SQL Server
	ProductMongoDB   ProductType = "mongodb"   // 云数据库MongoDB
	ProductRedis     ProductType = "redis"     // 云数据库Redis
)

var productLabels = map[ProductType]string{
	ProductCDB:       "CDB",
	ProductDCDB:      "DCDB",
	ProductSQLServer: "MSSQL",
	ProductMongoDB:   "MongoDB",
	ProductRedis:     "Redis",
}

func (self ProductType) Label() string {
	if v, ok := productLabels[self]; ok {
		return v
	}
	if self == "" {
		return "未设置"
	}
	return string(self)
}

func (self ProductType) Valid() bool {
	_, ok := productLabels[self]
	return ok
}

type Instance struct {
	ID           int64  `gorm:"column:id;primaryKey"  json:"id"`
	InstanceName string `gorm:"column:instance_name"  json:"instance_name"`
	GroupName    string `gorm:"column:group_name"     json:"group_name"`
}

func (Instance) TableName() string {
	return "sql_instance"
}

// CloudConfig 实例与腾讯云产品的对应关系，一个实例只允许一条启用的配置
type CloudConfig struct {
	ID           int64       `gorm:"column:id;primaryKey"      json:"id"`
	InstanceID   int64       `gorm:"column:instance_id"        json:"instance_id"`
	ProductType  ProductType `gorm:"column:product_type"       json:"product_type"`
	DBInstanceID string      `gorm:"column:cdb_dbinstanceid"   json:"cdb_dbinstanceid"`
	Region       string      `gorm:"column:region"             json:"region"`
	AccessKeyID  int64       `gorm:"column:ak_id"              json:"ak_id"`
	IsEnable     bool        `gorm:"column:is_enable"          json:"is_enable"`
}

func (CloudConfig) TableName() string {
	return "tcloud_cdb_config"
}

// CloudInstance 解析后的实例云配置，每次请求现查现用
type CloudInstance struct {
	InstanceName string
	ProductType  ProductType
	DBInstanceID string
	Region       string
	SecretID     string
	SecretKey    string
}

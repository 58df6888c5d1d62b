package config

import (
	"fmt"

	logger "github.com/iyouport-org/noticeboard/pkg/log"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

type dbType string

const (
	DBTypeMySQL      dbType = "mysql"
	DBTypePostgreSQL dbType = "postgresql"
	DBTypeSQLite3    dbType = "sqlite3"
	DBTypeSQLServer  dbType = "sqlserver"
)

type DBTOML struct {
	Type     string `mapstructure:"type" toml:"type" validate:"required,oneof=mysql postgresql sqlite3 sqlserver"`
	Username string `mapstructure:"username" toml:"username"`
	Password string `mapstructure:"password" toml:"password"`
	Host     string `mapstructure:"host" toml:"host"`
	Port     int    `mapstructure:"port" toml:"port" validate:"gte=0,lte=65535"`
	Database string `mapstructure:"database" toml:"database" validate:"required"`
}

type DBGo struct {
	Type dbType
	DB   *gorm.DB
}

// Dialector picks the gorm driver for the configured database type.
func (dbt *DBTOML) Dialector() (gorm.Dialector, dbType, error) {
	if dbType(dbt.Type) != DBTypeSQLite3 && dbt.Host == "" {
		return nil, "", fmt.Errorf("db.host is required for %s", dbt.Type)
	}
	switch dbType(dbt.Type) {
	case DBTypeMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", dbt.Username, dbt.Password, dbt.Host, dbt.Port, dbt.Database)
		return mysql.Open(dsn), DBTypeMySQL, nil
	case DBTypePostgreSQL:
		dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s", dbt.Host, dbt.Port, dbt.Username, dbt.Database, dbt.Password)
		return postgres.Open(dsn), DBTypePostgreSQL, nil
	case DBTypeSQLite3:
		return sqlite.Open(dbt.Database), DBTypeSQLite3, nil
	case DBTypeSQLServer:
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%d?database=%s", dbt.Username, dbt.Password, dbt.Host, dbt.Port, dbt.Database)
		return sqlserver.Open(dsn), DBTypeSQLServer, nil
	default:
		return nil, "", fmt.Errorf("unknown database type: %q", dbt.Type)
	}
}

func (dbt *DBTOML) Init() (dbg *DBGo, err error) {
	dialector, typ, err := dbt.Dialector()
	if err != nil {
		log.WithField("db.type", dbt.Type).Error(err)
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewDBLogger(log.StandardLogger()),
	})
	if err != nil {
		log.WithFields(log.Fields{
			"db.type": dbt.Type,
			"db.host": dbt.Host,
			"db.name": dbt.Database,
		}).Error(err)
		return nil, err
	}
	return &DBGo{
		Type: typ,
		DB:   db,
	}, nil
}

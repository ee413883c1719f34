package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// MySQLOption is a single DSN parameter, e.g. parseTime=true
type MySQLOption struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// MySQLConfig for the campaign storage
type MySQLConfig struct {
	Host     string `mapstructure:"host"`
	Port     uint16 `mapstructure:"port"`
	Database string `mapstructure:"database"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	MaxOpenConns           int `mapstructure:"max_open_conns"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSeconds int `mapstructure:"conn_max_lifetime_seconds"`

	Options []MySQLOption `mapstructure:"options"`
}

func (c MySQLConfig) optionsString() string {
	opts := make([]string, 0, len(c.Options))
	for _, o := range c.Options {
		opts = append(opts, url.QueryEscape(o.Key)+"="+url.QueryEscape(o.Value))
	}
	return strings.Join(opts, "&")
}

// DSN returns data source name
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.optionsString())
}

// MustConnect opens the pool and panics when the database is unreachable
func (c MySQLConfig) MustConnect(logger *zap.Logger) *sqlx.DB {
	db := sqlx.MustConnect("mysql", c.DSN())

	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	if c.ConnMaxLifetimeSeconds > 0 {
		db.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetimeSeconds) * time.Second)
	}

	logger.Info("connected to mysql",
		zap.String("host", c.Host),
		zap.Uint16("port", c.Port),
		zap.String("database", c.Database),
		zap.Int("maxOpenConns", c.MaxOpenConns),
		zap.Int("maxIdleConns", c.MaxIdleConns),
		zap.Int("connMaxLifetimeSeconds", c.ConnMaxLifetimeSeconds),
		zap.String("options", c.optionsString()),
	)
	return db
}

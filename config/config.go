package config

import (
	"fmt"
	"path"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config for the whole service
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Memcache MemcacheConfig `mapstructure:"memcache"`
	Jaeger   JaegerConfig   `mapstructure:"jaeger"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
}

// ServerListen for listening port
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ServerConfig for configuring gRPC and HTTP servers
type ServerConfig struct {
	GRPC ServerListen `mapstructure:"grpc"`
	HTTP ServerListen `mapstructure:"http"`
}

// LogConfig for zap
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// JaegerConfig for the trace exporter
type JaegerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// StorageDriver ...
type StorageDriver string

const (
	// StorageDriverMySQL ...
	StorageDriverMySQL StorageDriver = "mysql"
	// StorageDriverMemory keeps everything in process, data is lost on restart
	StorageDriverMemory StorageDriver = "memory"
)

// StorageConfig ...
type StorageConfig struct {
	Driver StorageDriver `mapstructure:"driver"`
}

// CacheDriver ...
type CacheDriver string

const (
	// CacheDriverNone disables caching
	CacheDriverNone CacheDriver = "none"
	// CacheDriverLocal uses freecache
	CacheDriverLocal CacheDriver = "local"
	// CacheDriverMemcache uses memcached
	CacheDriverMemcache CacheDriver = "memcache"
)

// CacheConfig ...
type CacheConfig struct {
	Driver     CacheDriver `mapstructure:"driver"`
	LocalSize  int         `mapstructure:"local_size"`
	TTLSeconds uint32      `mapstructure:"ttl_seconds"`
}

// TokenBalance is an initial balance of a development token
type TokenBalance struct {
	Account string `mapstructure:"account"`
	Amount  string `mapstructure:"amount"`
}

// TokenConfig describes a development token held in memory
type TokenConfig struct {
	Address  string         `mapstructure:"address"`
	Balances []TokenBalance `mapstructure:"balances"`
}

// LedgerConfig ...
type LedgerConfig struct {
	Address string        `mapstructure:"address"`
	Tokens  []TokenConfig `mapstructure:"tokens"`
}

// ListenString for listen to 0.0.0.0
func (s ServerListen) ListenString() string {
	return fmt.Sprintf(":%d", s.Port)
}

func (s ServerListen) String() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func loadConfigFromFile(v *viper.Viper) Config {
	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = v.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}

	if err := conf.validate(); err != nil {
		panic(err)
	}
	return conf
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.driver", string(StorageDriverMySQL))
	v.SetDefault("cache.driver", string(CacheDriverNone))
	v.SetDefault("cache.local_size", 64*1024*1024)
	v.SetDefault("cache.ttl_seconds", 300)
	v.SetDefault("mysql.max_open_conns", 20)
	v.SetDefault("mysql.max_idle_conns", 10)
	v.SetDefault("mysql.conn_max_lifetime_seconds", 300)
	v.SetDefault("ledger.address", "crowdfund-ledger")
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverMySQL, StorageDriverMemory:
	default:
		return fmt.Errorf("invalid storage driver: %q", c.Storage.Driver)
	}

	switch c.Cache.Driver {
	case CacheDriverNone, CacheDriverLocal, CacheDriverMemcache:
	default:
		return fmt.Errorf("invalid cache driver: %q", c.Cache.Driver)
	}

	if c.Ledger.Address == "" {
		return fmt.Errorf("ledger address must not be empty")
	}
	return nil
}

// Load config from config.yml in the working directory
func Load() Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	return loadConfigFromFile(v)
}

// LoadTestConfig loads config.test.yml from the root directory
func LoadTestConfig(rootDir string) Config {
	v := viper.New()
	v.SetConfigFile(path.Join(rootDir, "config.test.yml"))
	return loadConfigFromFile(v)
}

// NewLogger ...
func NewLogger(conf LogConfig) *zap.Logger {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(conf.Level)); err != nil {
		panic(err)
	}

	zapConf := zap.NewProductionConfig()
	zapConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

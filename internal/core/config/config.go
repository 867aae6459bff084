package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AdminHTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name  string
	Env   string
	Admin AdminHTTP
}

type Log struct {
	Level string
	JSON  bool
	// File 非空时额外写入文件并按大小切割
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DB struct {
	Driver             string // sqlite / postgres / mysql
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

// Store 数据存储：memory（进程内，重启即重建）或 gorm（使用 DB 配置）
type Store struct {
	Driver string
	Seed   bool
}

// Session 登录会话：memory 或 redis
type Session struct {
	Driver string
	TTLMin int
	Prefix string
}

type Auth struct {
	MockPassword string
}

type Inventory struct {
	SimulateLatency bool
}

type Config struct {
	App       App
	Log       Log
	JWT       JWT
	DB        DB
	Redis     Redis `mapstructure:"redis"`
	Store     Store
	Session   Session
	Auth      Auth
	Inventory Inventory
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "asset-inventory")
	v.SetDefault("app.admin.host", "0.0.0.0")
	v.SetDefault("app.admin.port", 8081)
	v.SetDefault("app.admin.readTimeoutSec", 5)
	v.SetDefault("app.admin.writeTimeoutSec", 10)
	v.SetDefault("app.admin.idleTimeoutSec", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("jwt.issuer", "asset-inventory")
	v.SetDefault("jwt.accessTokenTTLMin", 480)
	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.seed", true)
	v.SetDefault("session.driver", "memory")
	v.SetDefault("session.ttlMin", 480)
	v.SetDefault("session.prefix", "inventory:session:")
	v.SetDefault("auth.mockPassword", "password")
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &c
}

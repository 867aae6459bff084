package database

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
)

var ErrUnsupportedDriver = errors.New("unsupported db driver")

type Opts struct {
	Driver             string // sqlite / postgres / mysql
	DSN                string
	Username           string // 仅 mysql：覆盖 DSN 中的账号
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string // silent / error / warn / info
	// LogWriter gorm 日志输出；为空写 stdout
	LogWriter io.Writer
}

func NewGorm(o Opts) (*gorm.DB, error) {
	var w io.Writer = os.Stdout
	if o.LogWriter != nil {
		w = o.LogWriter
	}

	dial, err := dialector(o, w)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.New(log.New(w, "", 0), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel(o.LogLevel),
			IgnoreRecordNotFoundError: true,
		}),
		PrepareStmt:            true,
		SkipDefaultTransaction: true, // 只在需要原子性时手动开 Tx
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", o.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if o.Driver == "sqlite" {
		// sqlite 单写者
		o.MaxOpenConns = 1
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)
	return db, nil
}

func dialector(o Opts, w io.Writer) (gorm.Dialector, error) {
	switch o.Driver {
	case "sqlite":
		return sqlite.Open(o.DSN), nil
	case "postgres":
		return postgres.Open(o.DSN), nil
	case "mysql":
		cfg, err := mysqlConfig(o.DSN, o.Username, o.Password)
		if err != nil {
			return nil, err
		}
		masked := *cfg
		if masked.Passwd != "" {
			masked.Passwd = "****"
		}
		fmt.Fprintln(w, "[db] mysql dsn =", masked.FormatDSN())
		return mysql.Open(cfg.FormatDSN()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, o.Driver)
	}
}

func logLevel(s string) logger.LogLevel {
	switch s {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// mysqlConfig 同时接受驱动原生 DSN（user:pass@tcp(host)/db）
// 和 URL 形式（mysql://、jdbc:mysql://，带 JDBC 常见参数）
func mysqlConfig(input, user, pass string) (*gomysql.Config, error) {
	in := strings.TrimPrefix(strings.TrimSpace(input), "jdbc:")

	var cfg *gomysql.Config
	if strings.HasPrefix(in, "mysql://") {
		u, err := url.Parse(in)
		if err != nil {
			return nil, fmt.Errorf("parse mysql url: %w", err)
		}
		cfg = gomysql.NewConfig()
		cfg.Net = "tcp"
		cfg.Addr = u.Host
		cfg.DBName = strings.TrimPrefix(u.Path, "/")
		if u.User != nil {
			cfg.User = u.User.Username()
			cfg.Passwd, _ = u.User.Password()
		}
		applyJDBCParams(cfg, u.Query())
	} else {
		c, err := gomysql.ParseDSN(in)
		if err != nil {
			return nil, fmt.Errorf("parse mysql dsn: %w", err)
		}
		cfg = c
	}

	if user != "" {
		cfg.User = user
	}
	if pass != "" {
		cfg.Passwd = pass
	}
	cfg.ParseTime = true
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	if _, ok := cfg.Params["charset"]; !ok {
		cfg.Params["charset"] = "utf8mb4"
	}
	return cfg, nil
}

func applyJDBCParams(cfg *gomysql.Config, q url.Values) {
	if v := q.Get("user"); v != "" {
		cfg.User = v
	}
	if v := q.Get("password"); v != "" {
		cfg.Passwd = v
	}
	charset := q.Get("charset")
	if charset == "" {
		charset = q.Get("characterEncoding")
	}
	if charset != "" {
		cfg.Params = map[string]string{"charset": charset}
	}
	switch strings.ToLower(q.Get("useSSL")) {
	case "true", "1":
		cfg.TLSConfig = "true"
	case "skip-verify":
		cfg.TLSConfig = "skip-verify"
	case "preferred":
		cfg.TLSConfig = "preferred"
	case "false", "0":
		cfg.TLSConfig = "false"
	}
	if tz := q.Get("serverTimezone"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			cfg.Loc = loc
		}
	}
}

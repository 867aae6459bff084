package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"asset-inventory/internal/core/auth"
	"asset-inventory/internal/core/cache"
	"asset-inventory/internal/core/config"
	"asset-inventory/internal/core/database"
	"asset-inventory/internal/core/logger"
	"asset-inventory/internal/core/server"
	"asset-inventory/internal/domain"
	"asset-inventory/internal/repo"
	"asset-inventory/internal/service"
	"asset-inventory/internal/session"
	"asset-inventory/internal/transport/http/handler"
	"asset-inventory/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
		Enable:     cfg.Log.File != "",
		Filename:   cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	defer cleanup()
	restoreStdLog := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer restoreStdLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 数据存储
	store := mustOpenStore(ctx, cfg, log)

	// 会话存储
	sessions, closeSessions := mustOpenSessions(ctx, cfg, log)
	defer closeSessions()

	lat := service.NoLatency
	if cfg.Inventory.SimulateLatency {
		lat = service.DefaultLatency
		log.Info("latency simulation enabled")
	}
	assetSvc := service.NewAssetService(store, lat)
	locationSvc := service.NewLocationService(store, lat)
	userSvc := service.NewUserService(store, lat)
	authSvc := service.NewAuthService(store, cfg.Auth.MockPassword, lat)
	// 会话校验直接查存储，不叠加模拟延迟
	gate := session.NewGate(authSvc, store, sessions)

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	reg := router.NewRegistry(
		handler.NewAuthHandler(gate, jwter, log),
		handler.NewDashboardHandler(assetSvc, locationSvc),
		handler.NewAssetHandler(assetSvc, log),
		handler.NewLocationHandler(locationSvc, log),
		handler.NewUserHandler(userSvc, log),
	)
	r := router.NewAdminEngine(log, jwter, gate, reg, router.DefaultLimits)

	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r,
		time.Duration(cfg.App.Admin.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.Admin.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.Admin.IdleTimeoutSec)*time.Second,
	)

	// 启动前打印可点击地址
	host4human := cfg.App.Admin.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.Admin.Port)
	log.Info("inventory admin starting",
		zap.String("addr", addr),
		zap.String("store", cfg.Store.Driver),
		zap.String("session", cfg.Session.Driver),
		zap.String("health", baseURL+"/health"),
		zap.String("admin_v1", baseURL+"/admin/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("inventory admin start FAILED", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	log.Info("inventory admin stopped gracefully")
}

func mustOpenStore(ctx context.Context, cfg *config.Config, l *zap.Logger) domain.Repository {
	switch cfg.Store.Driver {
	case "", "memory":
		if cfg.Store.Seed {
			return repo.NewSeededMemory()
		}
		return repo.NewMemory()
	case "gorm":
	default:
		l.Fatal("unknown store driver", zap.String("driver", cfg.Store.Driver))
	}

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		LogWriter:          logger.ToWriter(l.Named("gorm"), zapcore.InfoLevel),
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	l.Info("database connected", zap.String("driver", cfg.DB.Driver))

	g := repo.NewGorm(db)
	if cfg.DB.AutoMigrate {
		if err := g.Migrate(ctx); err != nil {
			l.Fatal("automigrate failed", zap.Error(err))
		}
		l.Info("automigrate done")
	}
	if cfg.Store.Seed {
		if err := g.Seed(ctx); err != nil {
			l.Fatal("seed failed", zap.Error(err))
		}
	}
	return g
}

func mustOpenSessions(ctx context.Context, cfg *config.Config, l *zap.Logger) (session.Store, func()) {
	ttl := time.Duration(cfg.Session.TTLMin) * time.Minute
	switch cfg.Session.Driver {
	case "", "memory":
		return session.NewMemoryStore(ttl), func() {}
	case "redis":
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := c.Ping(pingCtx); err != nil {
			l.Fatal("redis ping", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		l.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
		return session.NewRedisStore(c, cfg.Session.Prefix, ttl), func() { _ = c.Close() }
	default:
		l.Fatal("unknown session driver", zap.String("driver", cfg.Session.Driver))
		return nil, nil
	}
}

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"asset-inventory/internal/core/auth"
	"asset-inventory/internal/core/server"
	"asset-inventory/internal/session"
	mdw "asset-inventory/internal/transport/http/middleware"
)

type Limits struct {
	RPS         rate.Limit
	Burst       int
	Concurrency int64
	MaxBody     int64
	Timeout     time.Duration
}

var DefaultLimits = Limits{
	RPS:         200,
	Burst:       400,
	Concurrency: 300,
	MaxBody:     16 << 20,
	Timeout:     10 * time.Second,
}

func NewAdminEngine(l *zap.Logger, jwter *auth.JWTer, gate *session.Gate, reg *Registry, lim Limits) *gin.Engine {
	r := server.NewRouter()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(lim.RPS, lim.Burst),
		mdw.ConcurrencyLimit(lim.Concurrency),
		mdw.MaxBodyBytes(lim.MaxBody),
		mdw.Timeout(lim.Timeout),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/admin/v1")
	reg.MountAllPublic(v1)

	// 其余接口统一要求登录
	authed := v1.Group("")
	authed.Use(mdw.AuthJWT(jwter, gate))
	reg.MountAllAdmin(authed)

	return r
}

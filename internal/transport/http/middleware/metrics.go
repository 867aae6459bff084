package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"asset-inventory/internal/report"
)

var (
	httpReqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Count of HTTP requests"},
		[]string{"path", "method", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"},
	)
	// 最近一次看板统计的资产数
	inventoryAssets = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "inventory_assets", Help: "Assets by state at last dashboard computation"},
		[]string{"state"},
	)
)

func init() { prometheus.MustRegister(httpReqTotal, httpLatency, inventoryAssets) }

// ObserveInventory 更新资产数量指标
func ObserveInventory(s report.Summary) {
	inventoryAssets.WithLabelValues("total").Set(float64(s.Total))
	inventoryAssets.WithLabelValues("inventoried").Set(float64(s.Inventoried))
	inventoryAssets.WithLabelValues("not_inventoried").Set(float64(s.NotInventoried))
	inventoryAssets.WithLabelValues("active").Set(float64(s.Active))
	inventoryAssets.WithLabelValues("inactive").Set(float64(s.Inactive))
	inventoryAssets.WithLabelValues("written_off").Set(float64(s.WrittenOff))
}

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		httpReqTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"asset-inventory/internal/report"
	"asset-inventory/internal/service"
	httpez "asset-inventory/internal/transport/http/ez"
	mdw "asset-inventory/internal/transport/http/middleware"
)

type DashboardHandler struct {
	assets    *service.AssetService
	locations *service.LocationService
}

func NewDashboardHandler(assets *service.AssetService, locations *service.LocationService) *DashboardHandler {
	return &DashboardHandler{assets: assets, locations: locations}
}

type dashboardOut struct {
	Summary    report.Summary         `json:"summary"`
	ByLocation []report.LocationTally `json:"byLocation"`
}

func (h *DashboardHandler) MountAdmin(g *gin.RouterGroup) {
	httpez.RegisterAction(httpez.New(g), httpez.Action[struct{}, dashboardOut]{
		Method: http.MethodGet,
		Path:   "/dashboard",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (dashboardOut, error) {
			ctx := c.Request.Context()
			assets, err := h.assets.List(ctx)
			if err != nil {
				return dashboardOut{}, err
			}
			locations, err := h.locations.List(ctx)
			if err != nil {
				return dashboardOut{}, err
			}
			sum := report.Summarize(assets)
			mdw.ObserveInventory(sum)
			return dashboardOut{
				Summary:    sum,
				ByLocation: report.TallyByLocation(assets, locations),
			}, nil
		},
	})
}

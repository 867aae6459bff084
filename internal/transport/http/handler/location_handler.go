package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"asset-inventory/internal/domain"
	"asset-inventory/internal/service"
	httpez "asset-inventory/internal/transport/http/ez"
)

type LocationHandler struct {
	locations *service.LocationService
	log       *zap.Logger
}

func NewLocationHandler(locations *service.LocationService, l *zap.Logger) *LocationHandler {
	return &LocationHandler{locations: locations, log: l}
}

type locationIn struct {
	Description string `json:"descricao" binding:"required,notblank"`
	Active      *bool  `json:"ativo"` // 缺省为启用
}

func (h *LocationHandler) MountAdmin(g *gin.RouterGroup) {
	ez := httpez.New(g)

	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.Location]{
		Method: http.MethodGet,
		Path:   "/locations",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Location, error) {
			return h.locations.List(c.Request.Context())
		},
	})

	httpez.RegisterAction(ez, httpez.Action[locationIn, domain.Location]{
		Method: http.MethodPost,
		Path:   "/locations",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *locationIn) (domain.Location, error) {
			l, err := h.locations.Create(c.Request.Context(), domain.Location{
				Description: strings.TrimSpace(in.Description),
				Active:      boolOr(in.Active, true),
			})
			if err != nil {
				return domain.Location{}, err
			}
			h.log.Info("location created", zap.Int("cod_local", l.Code), zap.String("by", actor(c)))
			return l, nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[locationIn, domain.Location]{
		Method: http.MethodPut,
		Path:   "/locations/:cod",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *locationIn) (domain.Location, error) {
			code, err := intParam(c, "cod")
			if err != nil {
				return domain.Location{}, err
			}
			l, err := h.locations.Update(c.Request.Context(), domain.Location{
				Code:        code,
				Description: strings.TrimSpace(in.Description),
				Active:      boolOr(in.Active, true),
			})
			if err != nil {
				return domain.Location{}, err
			}
			h.log.Info("location updated", zap.Int("cod_local", l.Code), zap.String("by", actor(c)))
			return l, nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/locations/:cod",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			code, err := intParam(c, "cod")
			if err != nil {
				return nil, err
			}
			if err := h.locations.Delete(c.Request.Context(), code); err != nil {
				return nil, err
			}
			h.log.Info("location deleted", zap.Int("cod_local", code), zap.String("by", actor(c)))
			return gin.H{"cod_local": code}, nil
		},
	})
}

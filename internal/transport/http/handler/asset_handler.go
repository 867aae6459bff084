package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"asset-inventory/internal/domain"
	"asset-inventory/internal/report"
	"asset-inventory/internal/service"
	httpez "asset-inventory/internal/transport/http/ez"
)

type AssetHandler struct {
	assets *service.AssetService
	log    *zap.Logger
}

func NewAssetHandler(assets *service.AssetService, l *zap.Logger) *AssetHandler {
	return &AssetHandler{assets: assets, log: l}
}

type assetIn struct {
	Code              string             `json:"codigo_bem"      binding:"required,notblank,number,max=8"`
	Description       string             `json:"descricao"       binding:"required,notblank"`
	AcquiredAt        string             `json:"data_aquisicao"  binding:"required,datetime=2006-01-02"`
	AcquisitionMethod *string            `json:"forma_aquisicao"`
	Supplier          *string            `json:"fornecedor"`
	LocationCode      int                `json:"local_fisico"    binding:"required"`
	Status            domain.AssetStatus `json:"situacao"        binding:"omitempty,oneof=Ativo Inativo Baixado"`
	Inventoried       bool               `json:"inventariado"`
	Notes             *string            `json:"observacoes"`
}

func (in *assetIn) toAsset(cod int) domain.Asset {
	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}
	return domain.Asset{
		Cod:               cod,
		Code:              strings.TrimSpace(in.Code),
		Description:       strings.TrimSpace(in.Description),
		AcquiredAt:        in.AcquiredAt,
		AcquisitionMethod: optional(in.AcquisitionMethod),
		Supplier:          optional(in.Supplier),
		LocationCode:      in.LocationCode,
		Status:            status,
		Inventoried:       in.Inventoried,
		Notes:             optional(in.Notes),
	}
}

// assetQuery 空值表示不限制；inventariado 接受 0/1/true/false
type assetQuery struct {
	Location    string `form:"local_fisico"`
	Status      string `form:"situacao"`
	Inventoried string `form:"inventariado"`
	Q           string `form:"q"`
}

func (q *assetQuery) filter() (report.AssetFilter, error) {
	f := report.AssetFilter{Search: q.Q}
	if q.Location != "" {
		v, err := strconv.Atoi(q.Location)
		if err != nil {
			return f, httpez.BadRequest("invalid local_fisico")
		}
		f.LocationCode = &v
	}
	if q.Status != "" {
		s := domain.AssetStatus(q.Status)
		if !s.Valid() {
			return f, httpez.BadRequest("invalid situacao")
		}
		f.Status = &s
	}
	if q.Inventoried != "" {
		b, err := strconv.ParseBool(q.Inventoried)
		if err != nil {
			return f, httpez.BadRequest("invalid inventariado")
		}
		f.Inventoried = &b
	}
	return f, nil
}

func (h *AssetHandler) MountAdmin(g *gin.RouterGroup) {
	ez := httpez.New(g)

	httpez.RegisterAction(ez, httpez.Action[assetQuery, []domain.Asset]{
		Method: http.MethodGet,
		Path:   "/assets",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *assetQuery) ([]domain.Asset, error) {
			f, err := in.filter()
			if err != nil {
				return nil, err
			}
			all, err := h.assets.List(c.Request.Context())
			if err != nil {
				return nil, err
			}
			return report.FilterAssets(all, f), nil
		},
	})

	// 扫码跳转：条码内容即资产编码，可不补零
	httpez.RegisterAction(ez, httpez.Action[struct{}, domain.Asset]{
		Method: http.MethodGet,
		Path:   "/scan/:code",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (domain.Asset, error) {
			return h.assets.GetByCode(c.Request.Context(), strings.TrimSpace(c.Param("code")))
		},
	})

	httpez.RegisterAction(ez, httpez.Action[assetIn, domain.Asset]{
		Method: http.MethodPost,
		Path:   "/assets",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *assetIn) (domain.Asset, error) {
			a, err := h.assets.Create(c.Request.Context(), in.toAsset(0))
			if err != nil {
				return domain.Asset{}, err
			}
			h.log.Info("asset created", zap.Int("cod", a.Cod), zap.String("codigo_bem", a.Code), zap.String("by", actor(c)))
			return a, nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[assetIn, domain.Asset]{
		Method: http.MethodPut,
		Path:   "/assets/:cod",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *assetIn) (domain.Asset, error) {
			cod, err := intParam(c, "cod")
			if err != nil {
				return domain.Asset{}, err
			}
			a, err := h.assets.Update(c.Request.Context(), in.toAsset(cod))
			if err != nil {
				return domain.Asset{}, err
			}
			h.log.Info("asset updated", zap.Int("cod", a.Cod), zap.String("by", actor(c)))
			return a, nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/assets/:cod",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			cod, err := intParam(c, "cod")
			if err != nil {
				return nil, err
			}
			if err := h.assets.Delete(c.Request.Context(), cod); err != nil {
				return nil, err
			}
			h.log.Info("asset deleted", zap.Int("cod", cod), zap.String("by", actor(c)))
			return gin.H{"cod": cod}, nil
		},
	})
}

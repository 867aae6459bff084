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

type UserHandler struct {
	users *service.UserService
	log   *zap.Logger
}

func NewUserHandler(users *service.UserService, l *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: l}
}

type userIn struct {
	Name               string  `json:"nome"      binding:"required,notblank,max=128"`
	Login              string  `json:"login"     binding:"required,notblank,max=64"`
	Email              string  `json:"email"     binding:"required,email"`
	Active             *bool   `json:"situacao"` // 缺省为启用
	RegistrationNumber *string `json:"matricula"`
}

func (in *userIn) toUser(id int) domain.User {
	return domain.User{
		ID:                 id,
		Name:               strings.TrimSpace(in.Name),
		Login:              strings.TrimSpace(in.Login),
		Email:              strings.TrimSpace(in.Email),
		Active:             boolOr(in.Active, true),
		RegistrationNumber: optional(in.RegistrationNumber),
	}
}

// 用户只增改，不删除
func (h *UserHandler) MountAdmin(g *gin.RouterGroup) {
	ez := httpez.New(g)

	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.User]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.User, error) {
			return h.users.List(c.Request.Context())
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, domain.User]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (domain.User, error) {
			id, err := intParam(c, "id")
			if err != nil {
				return domain.User{}, err
			}
			return h.users.Get(c.Request.Context(), id)
		},
	})

	httpez.RegisterAction(ez, httpez.Action[userIn, domain.User]{
		Method: http.MethodPost,
		Path:   "/users",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *userIn) (domain.User, error) {
			u, err := h.users.Create(c.Request.Context(), in.toUser(0))
			if err != nil {
				return domain.User{}, err
			}
			h.log.Info("user created", zap.Int("id", u.ID), zap.String("login", u.Login), zap.String("by", actor(c)))
			return u, nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[userIn, domain.User]{
		Method: http.MethodPut,
		Path:   "/users/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *userIn) (domain.User, error) {
			id, err := intParam(c, "id")
			if err != nil {
				return domain.User{}, err
			}
			u, err := h.users.Update(c.Request.Context(), in.toUser(id))
			if err != nil {
				return domain.User{}, err
			}
			h.log.Info("user updated", zap.Int("id", u.ID), zap.String("by", actor(c)))
			return u, nil
		},
	})
}

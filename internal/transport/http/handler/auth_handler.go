package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"asset-inventory/internal/core/auth"
	"asset-inventory/internal/domain"
	"asset-inventory/internal/session"
	httpez "asset-inventory/internal/transport/http/ez"
	mdw "asset-inventory/internal/transport/http/middleware"
)

var currentUser = mdw.CurrentUser

type AuthHandler struct {
	gate  *session.Gate
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewAuthHandler(gate *session.Gate, jwter *auth.JWTer, l *zap.Logger) *AuthHandler {
	return &AuthHandler{gate: gate, jwter: jwter, log: l}
}

func (h *AuthHandler) Priority() int { return 10 }

type loginIn struct {
	Login    string `json:"login"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginOut struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// MountPublic /auth/login 无需登录
func (h *AuthHandler) MountPublic(g *gin.RouterGroup) {
	ez := httpez.New(g)
	httpez.RegisterAction(ez, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			login := strings.TrimSpace(in.Login)
			u, sid, err := h.gate.Login(c.Request.Context(), login, in.Password)
			if err != nil {
				h.log.Info("login rejected", zap.String("login", login), zap.Error(err))
				return loginOut{}, err
			}
			tok, err := h.jwter.Issue(u.ID, u.Login, sid)
			if err != nil {
				_ = h.gate.Logout(c.Request.Context(), sid)
				return loginOut{}, httpez.Internal("issue token failed", err)
			}
			h.log.Info("login", zap.Int("user_id", u.ID), zap.String("login", u.Login))
			return loginOut{Token: tok, User: u}, nil
		},
	}, mdw.RateLimitPerIP(5, 10))
}

func (h *AuthHandler) MountAdmin(g *gin.RouterGroup) {
	ez := httpez.New(g)

	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			if err := h.gate.Logout(c.Request.Context(), c.GetString(mdw.KeySessionID)); err != nil {
				return nil, httpez.Internal("logout failed", err)
			}
			return gin.H{"login": actor(c)}, nil
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, domain.User]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (domain.User, error) {
			u, ok := currentUser(c)
			if !ok {
				return domain.User{}, httpez.Unauthorized("unauthorized")
			}
			return u, nil
		},
	})
}

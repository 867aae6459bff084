package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"asset-inventory/internal/core/auth"
	"asset-inventory/internal/domain"
	"asset-inventory/internal/session"
	resp "asset-inventory/internal/transport/http/response"
)

const (
	KeyUser      = "user"
	KeySessionID = "sid"
)

// AuthJWT 校验令牌并恢复会话；会话里的用户已不存在时视为未登录
func AuthJWT(j *auth.JWTer, gate *session.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		u, err := gate.Restore(c.Request.Context(), claims.SessionID())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "session expired"))
			return
		}
		// 令牌的 sub 必须与会话里的用户一致
		if claims.UserID() != u.ID {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		c.Set(KeyUser, u)
		c.Set(KeySessionID, claims.SessionID())
		c.Next()
	}
}

// CurrentUser 取当前登录用户（仅在 AuthJWT 之后可用）
func CurrentUser(c *gin.Context) (domain.User, bool) {
	v, ok := c.Get(KeyUser)
	if !ok {
		return domain.User{}, false
	}
	u, ok := v.(domain.User)
	return u, ok
}

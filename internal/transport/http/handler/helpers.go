package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	httpez "asset-inventory/internal/transport/http/ez"
)

func intParam(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, httpez.BadRequest("invalid " + name)
	}
	return v, nil
}

// optional 空串视为未填写
func optional(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func actor(c *gin.Context) string {
	if u, ok := currentUser(c); ok {
		return u.Login
	}
	return ""
}

// Package ez 用一行注册"绑定入参 → 执行 → 统一响应"的接口。
package ez

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"asset-inventory/internal/domain"
	"asset-inventory/internal/session"
	resp "asset-inventory/internal/transport/http/response"
)

type EZ struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) EZ { return EZ{g: g} }

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

// 统一错误对象（配合 resp.Error(int, msg)）
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: resp.CodeUnauthorized, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Code: resp.CodeServerError, Msg: msg, Err: err}
}

// CodeOf 把错误映射成业务码；领域错误原样透出文案
func CodeOf(err error) (int, string) {
	var ae *AErr
	switch {
	case errors.As(err, &ae):
		return ae.Code, ae.Error()
	case errors.Is(err, domain.ErrNotFound):
		return resp.CodeNotFound, err.Error()
	case errors.Is(err, domain.ErrLocationInUse):
		return resp.CodeConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, session.ErrNoSession):
		return resp.CodeUnauthorized, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return resp.CodeTimeout, "timeout"
	case errors.Is(err, context.Canceled):
		return resp.CodeCanceled, "request canceled"
	default:
		return resp.CodeServerError, err.Error()
	}
}

// Fail 写出错误响应
func Fail(c *gin.Context, err error) {
	code, msg := CodeOf(err)
	c.JSON(http.StatusOK, resp.Error(code, msg))
}

// 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Method  string // "GET" | "POST" | "PUT" | "DELETE"
	Path    string // 例："/auth/login"、"/assets/:cod"
	Binder  Binder
	Handler func(c *gin.Context, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O], mw ...gin.HandlerFunc) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone: 不绑定
		}
		if bindErr != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, bindErr.Error()))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			_ = c.Error(err)
			Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, resp.OK(out))
	}

	chain := append(append([]gin.HandlerFunc{}, mw...), h)
	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, chain...)
	case http.MethodPut:
		e.g.PUT(a.Path, chain...)
	case http.MethodDelete:
		e.g.DELETE(a.Path, chain...)
	default: // 默认 POST
		e.g.POST(a.Path, chain...)
	}
}

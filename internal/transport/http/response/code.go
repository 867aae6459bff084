package response

// 常见业务 系统级错误码（直接基于 HTTP 语义）
const (
	CodeOK           = 0
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeTimeout      = 504
	CodeCanceled     = 499 // 客户端已断开
	CodeServerError  = 500
)

// CodeMsgMap 用于集中管理 code - msg
var CodeMsgMap = map[int]string{
	CodeOK:           "OK",
	CodeBadRequest:   "Bad Request",
	CodeUnauthorized: "Unauthorized",
	CodeNotFound:     "Not Found",
	CodeConflict:     "Conflict",
	CodeTimeout:      "Gateway Timeout",
	CodeCanceled:     "Client Closed Request",
	CodeServerError:  "Internal Server Error",
}

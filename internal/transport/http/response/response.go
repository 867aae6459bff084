package response

import "reflect"

type Resp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// New 保证 data 不为 null：空值给 {}，nil 切片给 []
func New(code int, msg string, data any) Resp {
	switch {
	case data == nil:
		data = struct{}{}
	case isNilSlice(data):
		data = []struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

func isNilSlice(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Slice && rv.IsNil()
}

func OK(data any) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

// Error 失败响应（customMsg 为空时用默认文案）
func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, nil)
}

package response

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// AppError 接口层错误：业务码、对外消息、字段错误与原始原因
type AppError struct {
	Code    int
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 包装错误
func WrapError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// ValidationError 字段校验失败
func ValidationError(fields map[string]string) *AppError {
	return &AppError{Code: CodeBadRequest, Message: "validation failed", Fields: fields}
}

// AsAppError 从错误链中取出 AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Fail 输出 AppError，字段错误放在 data.errors 下
func Fail(c *gin.Context, appErr *AppError) {
	if appErr == nil {
		Error(c, CodeInternal, "internal server error")
		return
	}
	if len(appErr.Fields) > 0 {
		ErrorWithData(c, appErr.Code, appErr.Message, gin.H{"errors": appErr.Fields})
		return
	}
	Error(c, appErr.Code, appErr.Message)
}

package shared

import (
	"errors"

	"github.com/blog-next/internal/constants"
	"github.com/blog-next/internal/http/response"
	"github.com/blog-next/internal/logger"
	"github.com/blog-next/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalErrorMsg = "internal server error"

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get(constants.ContextKeyRequestID); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondErrorWithMsg 返回自定义消息错误响应，并在有原始错误时记录日志。
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"path", c.FullPath(),
			"error", err,
		)
	}
	response.Fail(c, appErr)
}

// RespondValidationError 返回包含字段错误表的 400 响应
func RespondValidationError(c *gin.Context, fields map[string]string) {
	response.Fail(c, response.ValidationError(fields))
}

// MappedError 业务错误到接口错误响应的映射关系。
type MappedError struct {
	Target error
	Code   int
	Msg    string
}

// serviceErrorRules 通用业务错误映射，按顺序匹配
var serviceErrorRules = []MappedError{
	{Target: service.ErrInvalidPagination, Code: response.CodeBadRequest, Msg: "page must be >= 1 and pageSize between 1 and 100"},
	{Target: service.ErrInvalidPostStatus, Code: response.CodeBadRequest, Msg: "status must be one of Draft, Published, Archived, Scheduled"},
	{Target: service.ErrCategoryNotFound, Code: response.CodeBadRequest, Msg: "category not found"},
	{Target: service.ErrTagNotFound, Code: response.CodeBadRequest, Msg: "tag not found"},
	{Target: service.ErrParentCommentInvalid, Code: response.CodeBadRequest, Msg: "parent comment does not belong to this post"},
	{Target: service.ErrForbidden, Code: response.CodeForbidden, Msg: "forbidden"},
	{Target: service.ErrInvalidToken, Code: response.CodeUnauthorized, Msg: "invalid token"},
}

// RespondServiceError 将业务错误映射为接口响应，未知错误记录日志并返回 500
func RespondServiceError(c *gin.Context, err error, notFoundMsg string, extra ...MappedError) {
	if errors.Is(err, service.ErrNotFound) {
		if notFoundMsg == "" {
			notFoundMsg = "not found"
		}
		RespondErrorWithMsg(c, response.CodeNotFound, notFoundMsg, nil)
		return
	}
	for _, rule := range extra {
		if errors.Is(err, rule.Target) {
			RespondErrorWithMsg(c, rule.Code, rule.Msg, nil)
			return
		}
	}
	for _, rule := range serviceErrorRules {
		if errors.Is(err, rule.Target) {
			RespondErrorWithMsg(c, rule.Code, rule.Msg, nil)
			return
		}
	}
	RespondErrorWithMsg(c, response.CodeInternal, internalErrorMsg, err)
}

package shared

import (
	"github.com/blog-next/internal/constants"
	"github.com/blog-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UserIDContextKey 鉴权中间件写入的用户 ID key
const UserIDContextKey = constants.ContextKeyUserID

// GetContextUint 从上下文读取 uint 值并统一处理错误响应。
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondErrorWithMsg(c, response.CodeUnauthorized, "unauthorized", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		if v == 0 {
			RespondErrorWithMsg(c, response.CodeUnauthorized, "unauthorized", nil)
			return 0, false
		}
		return v, true
	case int:
		if v <= 0 {
			RespondErrorWithMsg(c, response.CodeUnauthorized, "unauthorized", nil)
			return 0, false
		}
		return uint(v), true
	case float64:
		if v <= 0 {
			RespondErrorWithMsg(c, response.CodeUnauthorized, "unauthorized", nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondErrorWithMsg(c, response.CodeInternal, "user id type invalid", nil)
		return 0, false
	}
}

// GetUserID 读取当前登录用户 ID
func GetUserID(c *gin.Context) (uint, bool) {
	return GetContextUint(c, UserIDContextKey)
}

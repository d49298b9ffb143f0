package shared

import (
	"strconv"
	"strings"

	"github.com/blog-next/internal/http/response"
	"github.com/blog-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ParsePagination 读取 page/pageSize 查询参数，非整数时返回 400。
// 取值范围由 service 层校验。
func ParsePagination(c *gin.Context, defaultPageSize int) (int, int, bool) {
	if defaultPageSize <= 0 {
		defaultPageSize = 10
	}
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return 0, 0, false
	}
	pageSize, ok := queryInt(c, "pageSize", defaultPageSize)
	if !ok {
		return 0, 0, false
	}
	return page, pageSize, true
}

// ParseOptionalUintQuery 读取可选的正整数查询参数
func ParseOptionalUintQuery(c *gin.Context, key string) (*uint, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		RespondErrorWithMsg(c, response.CodeBadRequest, key+" must be a positive integer", nil)
		return nil, false
	}
	id := uint(value)
	return &id, true
}

// ParseUintParam 读取路径中的 ID 参数
func ParseUintParam(c *gin.Context, key string) (uint, bool) {
	value, err := strconv.ParseUint(strings.TrimSpace(c.Param(key)), 10, 64)
	if err != nil || value == 0 {
		RespondErrorWithMsg(c, response.CodeBadRequest, key+" must be a positive integer", nil)
		return 0, false
	}
	return uint(value), true
}

// ToPagination 转换分页元数据
func ToPagination(meta service.PageMeta) response.Pagination {
	return response.Pagination{
		CurrentPage: meta.CurrentPage,
		PageSize:    meta.PageSize,
		TotalPages:  meta.TotalPages,
		TotalItems:  meta.TotalItems,
		HasPrevious: meta.HasPrevious,
		HasNext:     meta.HasNext,
	}
}

func queryInt(c *gin.Context, key string, fallback int) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		RespondErrorWithMsg(c, response.CodeBadRequest, key+" must be an integer", nil)
		return 0, false
	}
	return value, true
}

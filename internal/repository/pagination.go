package repository

import (
	"math"

	"gorm.io/gorm"
)

// applyPagination 应用分页参数，统一处理非法页码与偏移量。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	return query.Limit(pageSize).Offset(pageOffset(page, pageSize))
}

// pageOffset 计算 (page-1)*pageSize，页码小于 1 时按第一页处理，溢出时返回 math.MaxInt。
func pageOffset(page, pageSize int) int {
	if page < 1 || pageSize <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

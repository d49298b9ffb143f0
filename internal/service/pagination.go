package service

import "math"

const maxPageSize = 100

// PageMeta 分页元数据
type PageMeta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
}

func validatePage(page, pageSize int) error {
	if page < 1 || pageSize < 1 || pageSize > maxPageSize {
		return ErrInvalidPagination
	}
	// 偏移量 (page-1)*pageSize 必须落在 int 范围内
	if page-1 > math.MaxInt/pageSize {
		return ErrInvalidPagination
	}
	return nil
}

func newPageMeta(page, pageSize int, total int64) PageMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return PageMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}

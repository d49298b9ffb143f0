package service

import "errors"

// 业务层哨兵错误，调用方使用 errors.Is 判断
var (
	ErrNotFound             = errors.New("resource not found")
	ErrForbidden            = errors.New("only the owner may modify this resource")
	ErrInvalidPagination    = errors.New("page must be >= 1 and pageSize must be between 1 and 100")
	ErrInvalidPostStatus    = errors.New("status must be one of Draft, Published, Archived, Scheduled")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrTagNotFound          = errors.New("one or more tags not found")
	ErrParentCommentInvalid = errors.New("parent comment does not belong to this post")
	ErrSlugExhausted        = errors.New("could not allocate a unique slug")
	ErrInvalidToken         = errors.New("invalid token")
)

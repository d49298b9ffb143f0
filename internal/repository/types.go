package repository

import "github.com/blog-next/internal/models"

// PostListFilter 查询文章列表的过滤条件，各条件之间为 AND 关系
type PostListFilter struct {
	Page       int
	PageSize   int
	Status     *models.PostStatus
	CategoryID *uint
	TagID      *uint
	Search     string
}

// CommentListFilter 查询评论的过滤条件
type CommentListFilter struct {
	PostID uint
}

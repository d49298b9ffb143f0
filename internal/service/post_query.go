package service

import (
	"context"
	"fmt"

	"github.com/blog-next/internal/logger"
	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/repository"
)

// PostListQuery 文章列表查询参数，空 Status 表示不过滤
type PostListQuery struct {
	Page       int
	PageSize   int
	Status     string
	CategoryID *uint
	TagID      *uint
	Search     string
}

// List 过滤、排序并分页文章列表，只读
func (s *PostService) List(ctx context.Context, query PostListQuery) (*PostPage, error) {
	if err := validatePage(query.Page, query.PageSize); err != nil {
		return nil, err
	}
	filter := repository.PostListFilter{
		Page:       query.Page,
		PageSize:   query.PageSize,
		CategoryID: query.CategoryID,
		TagID:      query.TagID,
		Search:     query.Search,
	}
	if query.Status != "" {
		status, ok := models.ParsePostStatus(query.Status)
		if !ok {
			return nil, ErrInvalidPostStatus
		}
		filter.Status = &status
	}

	posts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return &PostPage{
		Items:      toPostListItems(posts),
		Pagination: newPageMeta(query.Page, query.PageSize, total),
	}, nil
}

// GetByID 获取文章详情，成功后异步累加浏览量
func (s *PostService) GetByID(ctx context.Context, id uint) (*PostDetail, error) {
	post, err := s.repo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	if post == nil {
		return nil, ErrNotFound
	}
	s.dispatchViewIncrement(ctx, post.ID)
	return toPostDetail(post), nil
}

// GetBySlug 按 slug 获取文章详情，成功后异步累加浏览量
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*PostDetail, error) {
	post, err := s.repo.GetDetailBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get post by slug %q: %w", slug, err)
	}
	if post == nil {
		return nil, ErrNotFound
	}
	s.dispatchViewIncrement(ctx, post.ID)
	return toPostDetail(post), nil
}

// IncrementViewCount 原子累加浏览量，文章不存在时静默忽略
func (s *PostService) IncrementViewCount(ctx context.Context, id uint) error {
	if _, err := s.repo.IncrementViewCount(ctx, id); err != nil {
		return fmt.Errorf("increment view count of post %d: %w", id, err)
	}
	return nil
}

// dispatchViewIncrement 脱离请求上下文派发浏览量累加，错误只记录不返回
func (s *PostService) dispatchViewIncrement(ctx context.Context, id uint) {
	detached := context.WithoutCancel(ctx)
	timeout := s.options.ViewCountTimeout
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		incCtx, cancel := context.WithTimeout(detached, timeout)
		defer cancel()
		if err := s.IncrementViewCount(incCtx, id); err != nil {
			logger.Warnw("post_view_count_increment_failed", "post_id", id, "error", err)
		}
	}()
}

func (s *PostService) loadDetail(ctx context.Context, id uint) (*PostDetail, error) {
	post, err := s.repo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload post %d: %w", id, err)
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return toPostDetail(post), nil
}

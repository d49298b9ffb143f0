package service

import (
	"context"
	"fmt"

	"github.com/blog-next/internal/repository"
)

// BookmarkService 收藏业务服务
type BookmarkService struct {
	repo     repository.BookmarkRepository
	postRepo repository.PostRepository
}

// NewBookmarkService 创建收藏服务
func NewBookmarkService(repo repository.BookmarkRepository, postRepo repository.PostRepository) *BookmarkService {
	return &BookmarkService{repo: repo, postRepo: postRepo}
}

// Add 收藏存活文章，重复收藏视为成功
func (s *BookmarkService) Add(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("get post %d: %w", postID, err)
	}
	if post == nil {
		return ErrNotFound
	}
	if err := s.repo.Add(ctx, userID, postID); err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	return nil
}

// Remove 取消收藏，记录不存在时同样成功
func (s *BookmarkService) Remove(ctx context.Context, userID, postID uint) error {
	if _, err := s.repo.Remove(ctx, userID, postID); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	return nil
}

// List 分页列出用户收藏的文章
func (s *BookmarkService) List(ctx context.Context, userID uint, page, pageSize int) (*PostPage, error) {
	if err := validatePage(page, pageSize); err != nil {
		return nil, err
	}
	posts, total, err := s.repo.ListPosts(ctx, userID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks of user %d: %w", userID, err)
	}
	return &PostPage{
		Items:      toPostListItems(posts),
		Pagination: newPageMeta(page, pageSize, total),
	}, nil
}

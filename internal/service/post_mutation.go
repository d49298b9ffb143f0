package service

import (
	"context"
	"fmt"

	"github.com/blog-next/internal/authz"
	"github.com/blog-next/internal/logger"
	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/repository"

	"gorm.io/gorm"
)

// PostInput 创建/更新文章输入
type PostInput struct {
	Title           string
	Content         string
	Summary         *string
	CategoryID      *uint
	TagIDs          []uint
	ThumbnailURL    *string
	SEOKeywords     *string
	MetaDescription *string
	Status          string
	IsFeatured      bool
}

// CreatePostInput 创建文章输入
type CreatePostInput = PostInput

// UpdatePostInput 更新文章输入
type UpdatePostInput = PostInput

// Create 创建文章，作者为 authorUserID
func (s *PostService) Create(ctx context.Context, input CreatePostInput, authorUserID uint) (*PostDetail, error) {
	status, err := parseInputStatus(input.Status)
	if err != nil {
		return nil, err
	}
	tagIDs, err := s.resolveReferences(ctx, input.CategoryID, input.TagIDs)
	if err != nil {
		return nil, err
	}

	baseSlug := GenerateSlug(input.Title)
	post := &models.Post{
		UserID: authorUserID,
		Status: status,
	}
	applyPostInput(post, input)
	if status == models.PostStatusPublished {
		now := s.now()
		post.PublishedAt = &now
	}

	err = s.saveWithSlugRetry(ctx, post, baseSlug, 0, tagIDs, func(txRepo repository.PostRepository) error {
		post.ID = 0
		return txRepo.Create(ctx, post)
	})
	if err != nil {
		return nil, err
	}
	logger.Infow("post_created", "post_id", post.ID, "slug", post.Slug, "user_id", authorUserID)
	return s.loadDetail(ctx, post.ID)
}

// Update 更新文章，仅作者本人可操作
func (s *PostService) Update(ctx context.Context, id uint, input UpdatePostInput, requesterID uint) (*PostDetail, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if err := s.authorize(requesterID, post.UserID, authz.ObjectPost, authz.ActionUpdate); err != nil {
		return nil, err
	}
	status, err := parseInputStatus(input.Status)
	if err != nil {
		return nil, err
	}
	tagIDs, err := s.resolveReferences(ctx, input.CategoryID, input.TagIDs)
	if err != nil {
		return nil, err
	}

	// 标题未变时保留原 slug
	titleChanged := post.Title != input.Title
	applyPostInput(post, input)
	if post.Status != status {
		post.Status = status
		if status == models.PostStatusPublished && post.PublishedAt == nil {
			now := s.now()
			post.PublishedAt = &now
		}
	}

	update := func(txRepo repository.PostRepository) error {
		return txRepo.Update(ctx, post)
	}
	if titleChanged {
		err = s.saveWithSlugRetry(ctx, post, GenerateSlug(input.Title), post.ID, tagIDs, update)
	} else if err = s.persist(ctx, post, tagIDs, update); err != nil {
		err = fmt.Errorf("update post %d: %w", id, err)
	}
	if err != nil {
		return nil, err
	}
	logger.Infow("post_updated", "post_id", post.ID, "slug", post.Slug, "user_id", requesterID)
	return s.loadDetail(ctx, post.ID)
}

// Delete 软删除文章，仅作者本人可操作，关联数据保留
func (s *PostService) Delete(ctx context.Context, id uint, requesterID uint) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get post %d: %w", id, err)
	}
	if post == nil {
		return ErrNotFound
	}
	if err := s.authorize(requesterID, post.UserID, authz.ObjectPost, authz.ActionDelete); err != nil {
		return err
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	if !deleted {
		return ErrNotFound
	}
	logger.Infow("post_deleted", "post_id", id, "user_id", requesterID)
	return nil
}

// saveWithSlugRetry 分配空闲 slug 并在事务内写入，唯一索引冲突时换下一个后缀重试
func (s *PostService) saveWithSlugRetry(
	ctx context.Context,
	post *models.Post,
	baseSlug string,
	excludeID uint,
	tagIDs []uint,
	write func(txRepo repository.PostRepository) error,
) error {
	for attempt := 1; attempt <= s.options.SlugMaxAttempts; attempt++ {
		slug, err := s.nextFreeSlug(ctx, baseSlug, excludeID)
		if err != nil {
			return err
		}
		post.Slug = slug

		err = s.persist(ctx, post, tagIDs, write)
		if err == nil {
			return nil
		}
		if !repository.IsDuplicateKey(err) {
			return fmt.Errorf("save post: %w", err)
		}
		logger.Warnw("post_slug_conflict_retry", "slug", slug, "attempt", attempt)
	}
	return ErrSlugExhausted
}

// persist 在同一事务内写入文章并重建标签关联
func (s *PostService) persist(
	ctx context.Context,
	post *models.Post,
	tagIDs []uint,
	write func(txRepo repository.PostRepository) error,
) error {
	return s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := write(txRepo); err != nil {
			return err
		}
		return txRepo.ReplaceTags(ctx, post.ID, tagIDs)
	})
}

// resolveReferences 校验分类与标签存在，返回去重后的标签 ID
func (s *PostService) resolveReferences(ctx context.Context, categoryID *uint, tagIDs []uint) ([]uint, error) {
	if categoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *categoryID)
		if err != nil {
			return nil, fmt.Errorf("get category %d: %w", *categoryID, err)
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}

	unique := dedupeIDs(tagIDs)
	if len(unique) == 0 {
		return unique, nil
	}
	tags, err := s.tagRepo.ListByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	if len(tags) != len(unique) {
		return nil, ErrTagNotFound
	}
	return unique, nil
}

func (s *PostService) authorize(actorID, ownerID uint, object, action string) error {
	allowed, err := s.authorizer.CanModify(actorID, ownerID, object, action)
	if err != nil {
		return fmt.Errorf("authorize %s %s: %w", object, action, err)
	}
	if !allowed {
		return ErrForbidden
	}
	return nil
}

func applyPostInput(post *models.Post, input PostInput) {
	post.Title = input.Title
	post.Content = input.Content
	post.Summary = input.Summary
	post.CategoryID = input.CategoryID
	post.ThumbnailURL = input.ThumbnailURL
	post.SEOKeywords = input.SEOKeywords
	post.MetaDescription = input.MetaDescription
	post.IsFeatured = input.IsFeatured
	post.ReadingTimeMinutes = CalculateReadingTime(input.Content)
}

// parseInputStatus 空状态视为 Draft
func parseInputStatus(raw string) (models.PostStatus, error) {
	if raw == "" {
		return models.PostStatusDraft, nil
	}
	status, ok := models.ParsePostStatus(raw)
	if !ok {
		return "", ErrInvalidPostStatus
	}
	return status, nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

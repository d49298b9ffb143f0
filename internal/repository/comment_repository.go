package repository

import (
	"context"

	"github.com/blog-next/internal/models"

	"gorm.io/gorm"
)

// CommentRepository 评论数据访问接口
type CommentRepository interface {
	ListByPost(ctx context.Context, filter CommentListFilter) ([]models.Comment, error)
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) (bool, error)
}

// GormCommentRepository GORM 实现
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论仓库
func NewCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// ListByPost 按发表顺序列出文章的存活评论
func (r *GormCommentRepository) ListByPost(ctx context.Context, filter CommentListFilter) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", filter.PostID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// GetByID 根据 ID 获取评论
func (r *GormCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return findOne[models.Comment](r.db.WithContext(ctx).Preload("Author").Where("comments.id = ?", id))
}

// Create 创建评论
func (r *GormCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Omit("Post", "Author", "Parent").Create(comment).Error
}

// Delete 软删除评论，回复不级联
func (r *GormCommentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

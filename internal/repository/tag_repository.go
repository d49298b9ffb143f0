package repository

import (
	"context"

	"github.com/blog-next/internal/models"

	"gorm.io/gorm"
)

// TagRepository 标签数据访问接口
type TagRepository interface {
	List(ctx context.Context) ([]models.Tag, error)
	ListByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)
}

// GormTagRepository GORM 实现
type GormTagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建标签仓库
func NewTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// List 标签列表
func (r *GormTagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ListByIDs 批量获取标签
func (r *GormTagRepository) ListByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

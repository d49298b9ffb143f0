package repository

import (
	"context"

	"github.com/blog-next/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 分类只读访问
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List 按展示顺序返回全部分类
func (r *GormCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := r.db.WithContext(ctx).Order("display_order ASC").Order("id ASC").Find(&categories).Error
	return categories, err
}

// GetByID 未找到返回 nil
func (r *GormCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return findOne[models.Category](r.db.WithContext(ctx).Where("id = ?", id))
}

package repository

import (
	"context"

	"github.com/blog-next/internal/models"

	"gorm.io/gorm"
)

// UserRepository 作者账户查询，令牌解析时使用
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByID 不存在或已软删除时返回 nil
func (r *GormUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return findOne[models.User](r.db.WithContext(ctx).Where("id = ?", id))
}

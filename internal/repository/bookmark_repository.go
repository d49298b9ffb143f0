package repository

import (
	"context"

	"github.com/blog-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookmarkRepository 收藏数据访问接口
type BookmarkRepository interface {
	Add(ctx context.Context, userID, postID uint) error
	Remove(ctx context.Context, userID, postID uint) (bool, error)
	ListPosts(ctx context.Context, userID uint, page, pageSize int) ([]models.Post, int64, error)
}

// GormBookmarkRepository GORM 实现
type GormBookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository 创建收藏仓库
func NewBookmarkRepository(db *gorm.DB) *GormBookmarkRepository {
	return &GormBookmarkRepository{db: db}
}

// Add 收藏文章，重复收藏忽略
func (r *GormBookmarkRepository) Add(ctx context.Context, userID, postID uint) error {
	bookmark := models.Bookmark{UserID: userID, PostID: postID}
	return r.db.WithContext(ctx).
		Omit("User", "Post").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&bookmark).Error
}

// Remove 硬删除收藏记录
func (r *GormBookmarkRepository) Remove(ctx context.Context, userID, postID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Bookmark{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListPosts 列出用户收藏的存活文章，按收藏时间倒序
func (r *GormBookmarkRepository) ListPosts(ctx context.Context, userID uint, page, pageSize int) ([]models.Post, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Joins("JOIN bookmarks ON bookmarks.post_id = posts.id AND bookmarks.user_id = ?", userID).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	listQuery := applyPagination(withPostAssociations(base), page, pageSize)
	if err := listQuery.Order("bookmarks.created_at DESC, posts.id ASC").Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

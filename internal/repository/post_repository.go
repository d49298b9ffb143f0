package repository

import (
	"context"

	"github.com/blog-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 列表排序：创建时间倒序，同一时间按 ID 升序保证稳定
const postListOrder = "posts.created_at DESC, posts.id ASC"

// PostRepository 文章数据访问接口
type PostRepository interface {
	WithTx(tx *gorm.DB) PostRepository
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	List(ctx context.Context, filter PostListFilter) ([]models.Post, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetDetailByID(ctx context.Context, id uint) (*models.Post, error)
	GetDetailBySlug(ctx context.Context, slug string) (*models.Post, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	ReplaceTags(ctx context.Context, postID uint, tagIDs []uint) error
	Delete(ctx context.Context, id uint) (bool, error)
	IncrementViewCount(ctx context.Context, id uint) (bool, error)
}

// GormPostRepository GORM 实现
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建文章仓库
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// WithTx 绑定事务
func (r *GormPostRepository) WithTx(tx *gorm.DB) PostRepository {
	if tx == nil {
		return r
	}
	return &GormPostRepository{db: tx}
}

// Transaction 执行事务
func (r *GormPostRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// List 文章列表，返回当前页与过滤后的总数
func (r *GormPostRepository) List(ctx context.Context, filter PostListFilter) ([]models.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Post{})

	if filter.Status != nil {
		query = query.Where("posts.status = ?", *filter.Status)
	}
	if filter.CategoryID != nil {
		query = query.Where("posts.category_id = ?", *filter.CategoryID)
	}
	if filter.TagID != nil {
		query = query.Where("EXISTS (SELECT 1 FROM post_tags pt WHERE pt.post_id = posts.id AND pt.tag_id = ?)", *filter.TagID)
	}
	if search := filter.Search; search != "" {
		condition, argCount := buildContainsCondition(r.db, []string{"posts.title", "posts.content"})
		query = query.Where(condition, repeatArgs(search, argCount)...)
	}

	base := query.Session(&gorm.Session{})
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	listQuery := applyPagination(withPostAssociations(base), filter.Page, filter.PageSize)
	if err := listQuery.Order(postListOrder).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetByID 根据 ID 获取文章（不加载关联）
func (r *GormPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return r.first(r.db.WithContext(ctx).Where("posts.id = ?", id))
}

// GetDetailByID 根据 ID 获取文章及作者、分类、标签
func (r *GormPostRepository) GetDetailByID(ctx context.Context, id uint) (*models.Post, error) {
	return r.first(withPostAssociations(r.db.WithContext(ctx)).Where("posts.id = ?", id))
}

// GetDetailBySlug 根据 slug 获取文章及作者、分类、标签
func (r *GormPostRepository) GetDetailBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return r.first(withPostAssociations(r.db.WithContext(ctx)).Where("posts.slug = ?", slug))
}

func (r *GormPostRepository) first(query *gorm.DB) (*models.Post, error) {
	return findOne[models.Post](query)
}

// SlugExists 判断存活文章中是否已有该 slug，excludeID 为 0 时不排除
func (r *GormPostRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Post{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建文章，关联由 ReplaceTags 单独写入
func (r *GormPostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

// Update 整行覆盖更新文章标量字段，浏览量只由 IncrementViewCount 维护
func (r *GormPostRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations, "view_count").Save(post).Error
}

// ReplaceTags 删除后重建文章标签关联
func (r *GormPostRepository) ReplaceTags(ctx context.Context, postID uint, tagIDs []uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("post_id = ?", postID).Delete(&models.PostTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]models.PostTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, models.PostTag{PostID: postID, TagID: tagID})
	}
	return db.Create(&rows).Error
}

// Delete 软删除文章，返回是否命中存活行
func (r *GormPostRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IncrementViewCount 原子累加浏览量，不更新 updated_at
func (r *GormPostRepository) IncrementViewCount(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// withPostAssociations 预加载作者、分类与按名称排序的标签
func withPostAssociations(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Author").
		Preload("Category").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC, tags.id ASC")
		})
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// PostStatus 文章状态
type PostStatus string

const (
	PostStatusDraft     PostStatus = "Draft"
	PostStatusPublished PostStatus = "Published"
	PostStatusArchived  PostStatus = "Archived"
	PostStatusScheduled PostStatus = "Scheduled"
)

// ParsePostStatus 解析文章状态，大小写敏感
func ParsePostStatus(raw string) (PostStatus, bool) {
	switch PostStatus(raw) {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived, PostStatusScheduled:
		return PostStatus(raw), true
	default:
		return "", false
	}
}

// Post 文章表
type Post struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                                                                             // 主键
	UserID             uint           `gorm:"not null;index" json:"userId"`                                                                     // 作者
	CategoryID         *uint          `gorm:"index" json:"categoryId"`                                                                          // 分类
	Title              string         `gorm:"type:varchar(255);not null" json:"title"`                                                          // 标题
	Slug               string         `gorm:"type:varchar(300);not null;index:idx_posts_slug_live,unique,where:deleted_at IS NULL" json:"slug"` // 存活行唯一
	Content            string         `gorm:"type:text;not null" json:"content"`                                                                // 正文
	Summary            *string        `gorm:"type:varchar(500)" json:"summary"`                                                                 // 摘要
	ThumbnailURL       *string        `gorm:"type:varchar(500)" json:"thumbnailUrl"`                                                            // 缩略图
	ReadingTimeMinutes int            `gorm:"not null;default:1" json:"readingTimeMinutes"`                                                     // 阅读时长（分钟）
	SEOKeywords        *string        `gorm:"column:seo_keywords;type:varchar(500)" json:"seoKeywords"`                                         // SEO 关键词
	MetaDescription    *string        `gorm:"type:varchar(160)" json:"metaDescription"`                                                         // SEO 描述
	Status             PostStatus     `gorm:"type:varchar(20);not null;default:'Draft';index" json:"status"`                                    // 状态
	ViewCount          int64          `gorm:"not null;default:0" json:"viewCount"`                                                              // 浏览量
	IsFeatured         bool           `gorm:"not null;default:false" json:"isFeatured"`                                                         // 是否精选
	PublishedAt        *time.Time     `gorm:"index" json:"publishedAt"`                                                                         // 首次发布时间
	CreatedAt          time.Time      `gorm:"index" json:"createdAt"`                                                                           // 创建时间
	UpdatedAt          time.Time      `json:"updatedAt"`                                                                                        // 更新时间
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                                                                                   // 软删除时间

	Author   User      `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
	Tags     []Tag     `gorm:"many2many:post_tags;joinForeignKey:PostID;joinReferences:TagID" json:"-"`
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// PostTag 文章标签关联表
type PostTag struct {
	PostID uint `gorm:"primaryKey" json:"postId"`
	TagID  uint `gorm:"primaryKey;index" json:"tagId"`
}

// TableName 指定表名
func (PostTag) TableName() string {
	return "post_tags"
}

// PostRevision 文章修订快照，当前没有写入路径
type PostRevision struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	PostID         uint      `gorm:"not null;uniqueIndex:idx_post_revisions_post_number" json:"postId"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	Summary        *string   `gorm:"type:varchar(500)" json:"summary"`
	RevisionNumber int       `gorm:"not null;uniqueIndex:idx_post_revisions_post_number" json:"revisionNumber"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TableName 指定表名
func (PostRevision) TableName() string {
	return "post_revisions"
}

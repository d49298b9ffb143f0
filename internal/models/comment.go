package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment 评论表，ParentCommentID 仅作回指，不拥有父评论
type Comment struct {
	ID              uint           `gorm:"primarykey" json:"id"`              // 主键
	PostID          uint           `gorm:"not null;index" json:"postId"`      // 所属文章
	UserID          uint           `gorm:"not null;index" json:"userId"`      // 评论者
	ParentCommentID *uint          `gorm:"index" json:"parentCommentId"`      // 父评论
	Content         string         `gorm:"type:text;not null" json:"content"` // 内容
	CreatedAt       time.Time      `gorm:"index" json:"createdAt"`            // 创建时间
	UpdatedAt       time.Time      `json:"updatedAt"`                         // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间

	Post   Post     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Author User     `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
	Parent *Comment `gorm:"foreignKey:ParentCommentID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}

// Bookmark 收藏表，取消收藏为硬删除
type Bookmark struct {
	UserID    uint      `gorm:"primaryKey" json:"userId"`
	PostID    uint      `gorm:"primaryKey;index" json:"postId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (Bookmark) TableName() string {
	return "bookmarks"
}

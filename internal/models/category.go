package models

import "time"

// Category 分类表
type Category struct {
	ID           uint      `gorm:"primarykey" json:"id"`                               // 主键
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`             // 名称
	Slug         string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"` // 唯一标识
	Description  *string   `gorm:"type:varchar(500)" json:"description"`               // 描述
	DisplayOrder int       `gorm:"not null;default:0;index" json:"displayOrder"`       // 排序权重
	CreatedAt    time.Time `json:"createdAt"`                                          // 创建时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// Tag 标签表
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`                              // 主键
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`             // 名称
	Slug      string    `gorm:"type:varchar(60);uniqueIndex;not null" json:"slug"` // 唯一标识
	CreatedAt time.Time `json:"createdAt"`                                         // 创建时间
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}

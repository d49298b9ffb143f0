package models

import (
	"time"

	"gorm.io/gorm"
)

// MediaFile 媒体文件表，当前没有写入路径
type MediaFile struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"userId"`
	FileName    string         `gorm:"type:varchar(255);not null" json:"fileName"`
	StoragePath string         `gorm:"type:varchar(500);not null" json:"storagePath"`
	CDNURL      *string        `gorm:"column:cdn_url;type:varchar(500)" json:"cdnUrl"`
	MimeType    string         `gorm:"type:varchar(100);not null" json:"mimeType"`
	FileSize    int64          `gorm:"not null" json:"fileSize"`
	Width       *int           `json:"width"`
	Height      *int           `json:"height"`
	AltText     *string        `gorm:"type:varchar(255)" json:"altText"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName 指定表名
func (MediaFile) TableName() string {
	return "media_files"
}

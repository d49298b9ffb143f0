package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole 用户角色
type UserRole string

const (
	UserRoleUser   UserRole = "User"
	UserRoleEditor UserRole = "Editor"
	UserRoleAdmin  UserRole = "Admin"
)

// User 用户表
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                                                                    // 主键
	Email        string         `gorm:"type:varchar(255);not null;index:idx_users_email_live,unique,where:deleted_at IS NULL" json:"email"`      // 邮箱
	Username     string         `gorm:"type:varchar(50);not null;index:idx_users_username_live,unique,where:deleted_at IS NULL" json:"username"` // 用户名
	PasswordHash string         `gorm:"not null" json:"-"`                                                                                       // 密码哈希（不返回给前端）
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'User'" json:"role"`                                                    // 角色
	Bio          *string        `gorm:"type:text" json:"bio"`                                                                                    // 简介
	AvatarURL    *string        `gorm:"type:varchar(500)" json:"avatarUrl"`                                                                      // 头像
	CreatedAt    time.Time      `gorm:"index" json:"createdAt"`                                                                                  // 创建时间
	UpdatedAt    time.Time      `json:"updatedAt"`                                                                                               // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                                                                          // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// UserSession 刷新令牌会话，当前没有写入路径
type UserSession struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	RefreshToken string    `gorm:"type:varchar(500);not null;uniqueIndex" json:"-"`
	DeviceInfo   *string   `gorm:"type:varchar(255)" json:"deviceInfo"`
	IPAddress    *string   `gorm:"type:varchar(45)" json:"ipAddress"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `gorm:"not null;index" json:"expiresAt"`
	IsRevoked    bool      `gorm:"not null;default:false" json:"isRevoked"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (UserSession) TableName() string {
	return "user_sessions"
}

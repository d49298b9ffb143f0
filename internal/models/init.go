package models

import (
	"fmt"
	"strings"

	"github.com/blog-next/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultSeedPassword = "admin123"

// SeedOptions 初始数据配置
type SeedOptions struct {
	AdminEmail    string
	AdminUsername string
	AdminPassword string
}

// SeedResult 初始数据结果
type SeedResult struct {
	Admin   *User
	Skipped bool
}

// SeedDefaults 写入默认作者、分类与标签，已有用户时跳过
func SeedDefaults(db *gorm.DB, options SeedOptions) (*SeedResult, error) {
	if db == nil {
		return nil, fmt.Errorf("database not initialized")
	}
	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		var admin User
		err := db.Where("role = ?", UserRoleAdmin).Order("id asc").First(&admin).Error
		if err != nil {
			return &SeedResult{Skipped: true}, nil
		}
		return &SeedResult{Admin: &admin, Skipped: true}, nil
	}

	email := strings.TrimSpace(options.AdminEmail)
	if email == "" {
		email = "admin@blog.com"
	}
	username := strings.TrimSpace(options.AdminUsername)
	if username == "" {
		username = "admin"
	}
	password := options.AdminPassword
	if password == "" {
		password = defaultSeedPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	bio := "Blog administrator"
	admin := User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Role:         UserRoleAdmin,
		Bio:          &bio,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&admin).Error; err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		if err := tx.Create(defaultCategories()).Error; err != nil {
			return fmt.Errorf("create categories: %w", err)
		}
		if err := tx.Create(defaultTags()).Error; err != nil {
			return fmt.Errorf("create tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if password == defaultSeedPassword {
		logger.Warnw("default_admin_created_with_default_password", "username", username)
	} else {
		logger.Infow("default_admin_created", "username", username, "password_hidden", true)
	}
	return &SeedResult{Admin: &admin}, nil
}

func defaultCategories() []Category {
	tech := ".NET, C#, 데이터베이스 등 기술 관련 포스트"
	daily := "일상적인 이야기와 생각들"
	return []Category{
		{Name: "기술", Slug: "tech", Description: &tech, DisplayOrder: 1},
		{Name: "일상", Slug: "daily", Description: &daily, DisplayOrder: 2},
	}
}

func defaultTags() []Tag {
	return []Tag{
		{Name: "C#", Slug: "csharp"},
		{Name: ".NET", Slug: "dotnet"},
		{Name: "PostgreSQL", Slug: "postgresql"},
	}
}

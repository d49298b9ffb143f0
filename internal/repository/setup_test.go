package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/blog-next/internal/models"

	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := models.OpenDB("sqlite", dsn, models.DBOptions{Pool: models.DBPoolConfig{MaxOpenConns: 1}})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        username + "@blog.test",
		Username:     username,
		PasswordHash: "hash",
		Role:         models.UserRoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, slug string, order int) *models.Category {
	t.Helper()
	category := &models.Category{Name: strings.ToUpper(slug), Slug: slug, DisplayOrder: order}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func createTestTag(t *testing.T, db *gorm.DB, name, slug string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, Slug: slug}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("create tag failed: %v", err)
	}
	return tag
}

type testPostOption func(post *models.Post)

func withStatus(status models.PostStatus) testPostOption {
	return func(post *models.Post) { post.Status = status }
}

func withCategory(id uint) testPostOption {
	return func(post *models.Post) { post.CategoryID = &id }
}

func withContent(content string) testPostOption {
	return func(post *models.Post) { post.Content = content }
}

func withCreatedAt(at time.Time) testPostOption {
	return func(post *models.Post) { post.CreatedAt = at }
}

func createTestPost(t *testing.T, db *gorm.DB, userID uint, title, slug string, options ...testPostOption) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:             userID,
		Title:              title,
		Slug:               slug,
		Content:            "body of " + title,
		ReadingTimeMinutes: 1,
		Status:             models.PostStatusDraft,
	}
	for _, option := range options {
		option(post)
	}
	if err := NewPostRepository(db).Create(t.Context(), post); err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	return post
}

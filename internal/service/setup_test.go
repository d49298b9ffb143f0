package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/blog-next/internal/authz"
	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db        *gorm.DB
	postRepo  *repository.GormPostRepository
	posts     *PostService
	comments  *CommentService
	bookmarks *BookmarkService
	authz     *authz.Service
}

func setupServiceTest(t *testing.T) *serviceTestEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := models.OpenDB("sqlite", dsn, models.DBOptions{Pool: models.DBPoolConfig{MaxOpenConns: 1}})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	authzService, err := authz.NewService(db)
	require.NoError(t, err)
	require.NoError(t, authzService.BootstrapOwnerPolicies())

	postRepo := repository.NewPostRepository(db)
	env := &serviceTestEnv{
		db:       db,
		postRepo: postRepo,
		authz:    authzService,
	}
	env.posts = NewPostService(postRepo, repository.NewCategoryRepository(db), repository.NewTagRepository(db), authzService, PostServiceOptions{})
	env.comments = NewCommentService(repository.NewCommentRepository(db), postRepo, authzService)
	env.bookmarks = NewBookmarkService(repository.NewBookmarkRepository(db), postRepo)
	t.Cleanup(env.posts.WaitBackground)
	return env
}

func (e *serviceTestEnv) user(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        username + "@blog.test",
		Username:     username,
		PasswordHash: "hash",
		Role:         models.UserRoleUser,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *serviceTestEnv) category(t *testing.T, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Name: slug, Slug: slug}
	require.NoError(t, e.db.Create(category).Error)
	return category
}

func (e *serviceTestEnv) tag(t *testing.T, name, slug string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, Slug: slug}
	require.NoError(t, e.db.Create(tag).Error)
	return tag
}

func (e *serviceTestEnv) createPost(t *testing.T, authorID uint, title string) *PostDetail {
	t.Helper()
	detail, err := e.posts.Create(t.Context(), CreatePostInput{Title: title, Content: "content of " + title}, authorID)
	require.NoError(t, err)
	return detail
}

// racingPostRepository 让前 lies 次 slug 检查返回不存在，模拟并发写入
type racingPostRepository struct {
	*repository.GormPostRepository
	lies int
}

func (r *racingPostRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	if r.lies != 0 {
		if r.lies > 0 {
			r.lies--
		}
		return false, nil
	}
	return r.GormPostRepository.SlugExists(ctx, slug, excludeID)
}

// failingViewRepository 浏览量累加总是失败
type failingViewRepository struct {
	*repository.GormPostRepository
}

func (r *failingViewRepository) IncrementViewCount(context.Context, uint) (bool, error) {
	return false, errors.New("storage unavailable")
}

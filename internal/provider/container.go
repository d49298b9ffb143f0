package provider

import (
	"errors"

	"github.com/blog-next/internal/authz"
	"github.com/blog-next/internal/cache"
	"github.com/blog-next/internal/config"
	"github.com/blog-next/internal/logger"
	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/repository"
	"github.com/blog-next/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB

	// Repositories
	UserRepo     repository.UserRepository
	PostRepo     repository.PostRepository
	CategoryRepo repository.CategoryRepository
	TagRepo      repository.TagRepository
	CommentRepo  repository.CommentRepository
	BookmarkRepo repository.BookmarkRepository

	// Services
	AuthzService     *authz.Service
	PostService      *service.PostService
	CategoryService  *service.CategoryService
	TagService       *service.TagService
	CommentService   *service.CommentService
	BookmarkService  *service.BookmarkService
	UserTokenService *service.UserTokenService
}

// NewContainer 基于全局数据库初始化容器
func NewContainer(cfg *config.Config) *Container {
	// Redis 不可用时写接口不限流
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c, err := NewContainerWithDB(cfg, models.DB)
	if err != nil {
		logger.Errorw("provider_init_failed", "error", err)
		panic(err)
	}
	return c
}

// NewContainerWithDB 使用指定数据库连接初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if db == nil {
		return nil, errors.New("database is not initialized")
	}
	c := &Container{Config: cfg, DB: db}
	c.initRepositories(db)
	if err := c.initServices(db); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.UserRepo = repository.NewUserRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.TagRepo = repository.NewTagRepository(db)
	c.CommentRepo = repository.NewCommentRepository(db)
	c.BookmarkRepo = repository.NewBookmarkRepository(db)
}

func (c *Container) initServices(db *gorm.DB) error {
	authzService, err := authz.NewService(db)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		return err
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapOwnerPolicies(); err != nil {
		logger.Errorw("provider_bootstrap_owner_policies_failed", "error", err)
		return err
	}
	policies, err := c.AuthzService.Policies()
	if err != nil {
		logger.Errorw("provider_list_owner_policies_failed", "error", err)
		return err
	}
	logger.Infow("provider_owner_policies_loaded", "count", len(policies), "policies", policies)

	c.PostService = service.NewPostService(c.PostRepo, c.CategoryRepo, c.TagRepo, c.AuthzService, service.PostServiceOptions{
		SlugMaxAttempts:  c.Config.Post.SlugMaxAttempts,
		ViewCountTimeout: c.Config.Post.ViewCountTimeout(),
	})
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.TagService = service.NewTagService(c.TagRepo)
	c.CommentService = service.NewCommentService(c.CommentRepo, c.PostRepo, c.AuthzService)
	c.BookmarkService = service.NewBookmarkService(c.BookmarkRepo, c.PostRepo)
	c.UserTokenService = service.NewUserTokenService(c.Config.UserJWT, c.UserRepo)
	return nil
}

package service

import (
	"sync"
	"time"

	"github.com/blog-next/internal/repository"
)

const (
	defaultSlugMaxAttempts  = 5
	defaultViewCountTimeout = 2 * time.Second
)

// PostServiceOptions 文章服务配置
type PostServiceOptions struct {
	// SlugMaxAttempts 唯一索引冲突时的最大重试次数
	SlugMaxAttempts int
	// ViewCountTimeout 异步累加浏览量的超时
	ViewCountTimeout time.Duration
}

// PostService 文章业务服务
type PostService struct {
	repo         repository.PostRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
	authorizer   OwnerAuthorizer
	options      PostServiceOptions
	now          func() time.Time
	background   sync.WaitGroup
}

// NewPostService 创建文章服务
func NewPostService(
	repo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
	authorizer OwnerAuthorizer,
	options PostServiceOptions,
) *PostService {
	if options.SlugMaxAttempts <= 0 {
		options.SlugMaxAttempts = defaultSlugMaxAttempts
	}
	if options.ViewCountTimeout <= 0 {
		options.ViewCountTimeout = defaultViewCountTimeout
	}
	return &PostService{
		repo:         repo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		authorizer:   resolveAuthorizer(authorizer),
		options:      options,
		now:          time.Now,
	}
}

// WaitBackground 等待所有已派发的浏览量累加完成
func (s *PostService) WaitBackground() {
	s.background.Wait()
}

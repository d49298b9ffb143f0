package service

import (
	"context"
	"fmt"

	"github.com/blog-next/internal/repository"
)

// CategoryItem 分类列表项
type CategoryItem struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"displayOrder"`
}

// CategoryService 分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List 按展示顺序列出分类
func (s *CategoryService) List(ctx context.Context) ([]CategoryItem, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	items := make([]CategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, CategoryItem{
			ID:           category.ID,
			Name:         category.Name,
			Slug:         category.Slug,
			Description:  category.Description,
			DisplayOrder: category.DisplayOrder,
		})
	}
	return items, nil
}

// TagService 标签业务服务
type TagService struct {
	repo repository.TagRepository
}

// NewTagService 创建标签服务
func NewTagService(repo repository.TagRepository) *TagService {
	return &TagService{repo: repo}
}

// List 按名称列出标签
func (s *TagService) List(ctx context.Context) ([]TagSummary, error) {
	tags, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return toTagSummaries(tags), nil
}

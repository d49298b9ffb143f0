package service

import (
	"time"

	"github.com/blog-next/internal/models"
)

// AuthorSummary 作者公开信息
type AuthorSummary struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatarUrl"`
}

// CategorySummary 分类摘要
type CategorySummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TagSummary 标签摘要
type TagSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PostListItem 文章列表项
type PostListItem struct {
	ID                 uint             `json:"id"`
	Title              string           `json:"title"`
	Slug               string           `json:"slug"`
	Summary            *string          `json:"summary"`
	ThumbnailURL       *string          `json:"thumbnailUrl"`
	ReadingTimeMinutes int              `json:"readingTimeMinutes"`
	Status             string           `json:"status"`
	ViewCount          int64            `json:"viewCount"`
	IsFeatured         bool             `json:"isFeatured"`
	Author             AuthorSummary    `json:"author"`
	Category           *CategorySummary `json:"category"`
	Tags               []TagSummary     `json:"tags"`
	CreatedAt          time.Time        `json:"createdAt"`
	PublishedAt        *time.Time       `json:"publishedAt"`
}

// PostDetail 文章详情
type PostDetail struct {
	ID                 uint             `json:"id"`
	Title              string           `json:"title"`
	Slug               string           `json:"slug"`
	Content            string           `json:"content"`
	Summary            *string          `json:"summary"`
	ThumbnailURL       *string          `json:"thumbnailUrl"`
	ReadingTimeMinutes int              `json:"readingTimeMinutes"`
	Status             string           `json:"status"`
	ViewCount          int64            `json:"viewCount"`
	IsFeatured         bool             `json:"isFeatured"`
	Author             AuthorSummary    `json:"author"`
	Category           *CategorySummary `json:"category"`
	Tags               []TagSummary     `json:"tags"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
	PublishedAt        *time.Time       `json:"publishedAt"`
}

// PostPage 文章分页结果
type PostPage struct {
	Items      []PostListItem `json:"items"`
	Pagination PageMeta       `json:"pagination"`
}

func toAuthorSummary(user models.User) AuthorSummary {
	return AuthorSummary{
		ID:        user.ID,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
	}
}

func toCategorySummary(category *models.Category) *CategorySummary {
	if category == nil {
		return nil
	}
	return &CategorySummary{ID: category.ID, Name: category.Name, Slug: category.Slug}
}

func toTagSummaries(tags []models.Tag) []TagSummary {
	result := make([]TagSummary, 0, len(tags))
	for _, tag := range tags {
		result = append(result, TagSummary{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
	}
	return result
}

func toPostListItem(post *models.Post) PostListItem {
	return PostListItem{
		ID:                 post.ID,
		Title:              post.Title,
		Slug:               post.Slug,
		Summary:            post.Summary,
		ThumbnailURL:       post.ThumbnailURL,
		ReadingTimeMinutes: post.ReadingTimeMinutes,
		Status:             string(post.Status),
		ViewCount:          post.ViewCount,
		IsFeatured:         post.IsFeatured,
		Author:             toAuthorSummary(post.Author),
		Category:           toCategorySummary(post.Category),
		Tags:               toTagSummaries(post.Tags),
		CreatedAt:          post.CreatedAt,
		PublishedAt:        post.PublishedAt,
	}
}

func toPostListItems(posts []models.Post) []PostListItem {
	items := make([]PostListItem, 0, len(posts))
	for i := range posts {
		items = append(items, toPostListItem(&posts[i]))
	}
	return items
}

func toPostDetail(post *models.Post) *PostDetail {
	return &PostDetail{
		ID:                 post.ID,
		Title:              post.Title,
		Slug:               post.Slug,
		Content:            post.Content,
		Summary:            post.Summary,
		ThumbnailURL:       post.ThumbnailURL,
		ReadingTimeMinutes: post.ReadingTimeMinutes,
		Status:             string(post.Status),
		ViewCount:          post.ViewCount,
		IsFeatured:         post.IsFeatured,
		Author:             toAuthorSummary(post.Author),
		Category:           toCategorySummary(post.Category),
		Tags:               toTagSummaries(post.Tags),
		CreatedAt:          post.CreatedAt,
		UpdatedAt:          post.UpdatedAt,
		PublishedAt:        post.PublishedAt,
	}
}

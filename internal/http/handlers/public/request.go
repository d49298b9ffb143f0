package public

import (
	"errors"
	"strings"

	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/service"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var postStatusValues = []interface{}{
	string(models.PostStatusDraft),
	string(models.PostStatusPublished),
	string(models.PostStatusArchived),
	string(models.PostStatusScheduled),
}

// PostRequest 创建/更新文章请求体
type PostRequest struct {
	Title           string  `json:"title"`
	Content         string  `json:"content"`
	Summary         *string `json:"summary"`
	CategoryID      *uint   `json:"categoryId"`
	TagIDs          []uint  `json:"tagIds"`
	ThumbnailURL    *string `json:"thumbnailUrl"`
	SEOKeywords     *string `json:"seoKeywords"`
	MetaDescription *string `json:"metaDescription"`
	Status          string  `json:"status"`
	IsFeatured      bool    `json:"isFeatured"`
}

// Validate 校验请求字段，所有字段错误一并返回
func (r PostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.By(notBlank("title is required")),
			validation.RuneLength(1, 255).Error("title must be 1-255 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.By(notBlank("content is required")),
		),
		validation.Field(&r.Summary, validation.RuneLength(0, 500).Error("summary must be at most 500 characters")),
		validation.Field(&r.ThumbnailURL, is.URL.Error("thumbnailUrl must be a valid URL")),
		validation.Field(&r.SEOKeywords, validation.RuneLength(0, 500).Error("seoKeywords must be at most 500 characters")),
		validation.Field(&r.MetaDescription, validation.RuneLength(0, 160).Error("metaDescription must be at most 160 characters")),
		validation.Field(&r.Status, validation.In(postStatusValues...).Error("status must be one of Draft, Published, Archived, Scheduled")),
	)
}

// ToServiceInput 转换为 service 层输入
func (r PostRequest) ToServiceInput() service.PostInput {
	return service.PostInput{
		Title:           r.Title,
		Content:         r.Content,
		Summary:         r.Summary,
		CategoryID:      r.CategoryID,
		TagIDs:          r.TagIDs,
		ThumbnailURL:    r.ThumbnailURL,
		SEOKeywords:     r.SEOKeywords,
		MetaDescription: r.MetaDescription,
		Status:          r.Status,
		IsFeatured:      r.IsFeatured,
	}
}

// CommentRequest 发表评论请求体
type CommentRequest struct {
	Content         string `json:"content"`
	ParentCommentID *uint  `json:"parentCommentId"`
}

// Validate 校验评论内容
func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.By(notBlank("content is required")),
			validation.RuneLength(1, 2000).Error("content must be at most 2000 characters"),
		),
	)
}

func notBlank(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		text, _ := value.(string)
		if text != "" && strings.TrimSpace(text) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// validationFields 将 ozzo 错误展开为字段错误表，非字段错误返回 false
func validationFields(err error) (map[string]string, bool) {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return nil, false
	}
	fields := make(map[string]string, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		if fieldErr == nil {
			continue
		}
		fields[field] = fieldErr.Error()
	}
	return fields, true
}

package public

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(value string) *string {
	return &value
}

func TestPostRequestValidateAcceptsMinimal(t *testing.T) {
	req := PostRequest{Title: "제목", Content: "본문"}
	require.NoError(t, req.Validate())
}

func TestPostRequestValidateCountsRunes(t *testing.T) {
	req := PostRequest{Title: strings.Repeat("가", 255), Content: "body"}
	require.NoError(t, req.Validate())

	req.Title = strings.Repeat("가", 256)
	fields, ok := validationFields(req.Validate())
	require.True(t, ok)
	assert.Contains(t, fields, "title")
}

func TestPostRequestValidateCollectsFieldErrors(t *testing.T) {
	req := PostRequest{
		Title:           "   ",
		Summary:         strPtr(strings.Repeat("s", 501)),
		ThumbnailURL:    strPtr("not a url"),
		SEOKeywords:     strPtr(strings.Repeat("k", 501)),
		MetaDescription: strPtr(strings.Repeat("m", 161)),
		Status:          "Deleted",
	}
	fields, ok := validationFields(req.Validate())
	require.True(t, ok)
	for _, field := range []string{"title", "content", "summary", "thumbnailUrl", "seoKeywords", "metaDescription", "status"} {
		assert.Contains(t, fields, field)
	}
}

func TestPostRequestValidateOptionalFieldsMayBeEmpty(t *testing.T) {
	req := PostRequest{Title: "t", Content: "c", ThumbnailURL: strPtr(""), Status: ""}
	require.NoError(t, req.Validate())

	req.ThumbnailURL = strPtr("https://cdn.example.com/a.png")
	req.Status = "Scheduled"
	require.NoError(t, req.Validate())
}

func TestPostRequestToServiceInput(t *testing.T) {
	categoryID := uint(3)
	req := PostRequest{Title: "t", Content: "c", CategoryID: &categoryID, TagIDs: []uint{1, 2}, IsFeatured: true}
	input := req.ToServiceInput()
	assert.Equal(t, "t", input.Title)
	assert.Equal(t, &categoryID, input.CategoryID)
	assert.Equal(t, []uint{1, 2}, input.TagIDs)
	assert.True(t, input.IsFeatured)
}

func TestCommentRequestValidate(t *testing.T) {
	require.NoError(t, CommentRequest{Content: "nice post"}.Validate())

	fields, ok := validationFields(CommentRequest{Content: ""}.Validate())
	require.True(t, ok)
	assert.Contains(t, fields, "content")

	fields, ok = validationFields(CommentRequest{Content: strings.Repeat("c", 2001)}.Validate())
	require.True(t, ok)
	assert.Contains(t, fields, "content")
}

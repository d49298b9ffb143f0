package public

import (
	handlershared "github.com/blog-next/internal/http/handlers/shared"
	"github.com/blog-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	items, err := h.CategoryService.List(c.Request.Context())
	if err != nil {
		handlershared.RespondServiceError(c, err, "")
		return
	}
	response.Success(c, items)
}

// GetTags 获取标签列表
func (h *Handler) GetTags(c *gin.Context) {
	items, err := h.TagService.List(c.Request.Context())
	if err != nil {
		handlershared.RespondServiceError(c, err, "")
		return
	}
	response.Success(c, items)
}

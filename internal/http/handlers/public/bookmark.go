package public

import (
	handlershared "github.com/blog-next/internal/http/handlers/shared"
	"github.com/blog-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddBookmark 收藏文章，重复收藏不报错
func (h *Handler) AddBookmark(c *gin.Context) {
	userID, ok := handlershared.GetUserID(c)
	if !ok {
		return
	}
	postID, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.BookmarkService.Add(c.Request.Context(), userID, postID); err != nil {
		handlershared.RespondServiceError(c, err, postNotFoundMsg)
		return
	}
	response.NoContent(c)
}

// RemoveBookmark 取消收藏
func (h *Handler) RemoveBookmark(c *gin.Context) {
	userID, ok := handlershared.GetUserID(c)
	if !ok {
		return
	}
	postID, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.BookmarkService.Remove(c.Request.Context(), userID, postID); err != nil {
		handlershared.RespondServiceError(c, err, postNotFoundMsg)
		return
	}
	response.NoContent(c)
}

// GetMyBookmarks 当前用户收藏的文章
func (h *Handler) GetMyBookmarks(c *gin.Context) {
	userID, ok := handlershared.GetUserID(c)
	if !ok {
		return
	}
	page, pageSize, ok := handlershared.ParsePagination(c, h.defaultPageSize())
	if !ok {
		return
	}
	result, err := h.BookmarkService.List(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		handlershared.RespondServiceError(c, err, "")
		return
	}
	response.SuccessWithPage(c, result.Items, handlershared.ToPagination(result.Pagination))
}

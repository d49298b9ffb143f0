package public

import (
	handlershared "github.com/blog-next/internal/http/handlers/shared"
	"github.com/blog-next/internal/http/response"
	"github.com/blog-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetPostComments 获取文章评论树
func (h *Handler) GetPostComments(c *gin.Context) {
	postID, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	tree, err := h.CommentService.ListTree(c.Request.Context(), postID)
	if err != nil {
		handlershared.RespondServiceError(c, err, postNotFoundMsg)
		return
	}
	response.Success(c, tree)
}

// CreatePostComment 发表评论或回复
func (h *Handler) CreatePostComment(c *gin.Context) {
	userID, ok := handlershared.GetUserID(c)
	if !ok {
		return
	}
	postID, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req CommentRequest
	if !bindAndValidate(c, &req) {
		return
	}

	node, err := h.CommentService.Create(c.Request.Context(), postID, service.CreateCommentInput{
		Content:         req.Content,
		ParentCommentID: req.ParentCommentID,
	}, userID)
	if err != nil {
		handlershared.RespondServiceError(c, err, postNotFoundMsg)
		return
	}
	response.Created(c, "", node)
}

// DeleteComment 删除评论，仅作者本人可操作
func (h *Handler) DeleteComment(c *gin.Context) {
	userID, ok := handlershared.GetUserID(c)
	if !ok {
		return
	}
	commentID, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.CommentService.Delete(c.Request.Context(), commentID, userID); err != nil {
		handlershared.RespondServiceError(c, err, "comment not found")
		return
	}
	response.NoContent(c)
}

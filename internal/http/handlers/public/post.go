package public

import (
	"fmt"
	"strings"

	"github.com/blog-next/internal/constants"
	handlershared "github.com/blog-next/internal/http/handlers/shared"
	"github.com/blog-next/internal/http/response"
	"github.com/blog-next/internal/service"

	"github.com/gin-gonic/gin"
)

const postNotFoundMsg = "post not found"

// GetPosts 获取文章列表
func (h *Handler) GetPosts(c *gin.Context) {
	page, pageSize, ok := handlershared.ParsePagination(c, h.defaultPageSize())
	if !ok {
		return
	}
	categoryID, ok := handlershared.ParseOptionalUintQuery(c, "categoryId")
	if !ok {
		return
	}
	tagID, ok := handlershared.ParseOptionalUintQuery(c, "tagId")
	if !ok {
		return
	}

	result, err := h.PostService.List(c.Request.Context(), service.PostListQuery{
		Page:       page,
		PageSize:   pageSize,
		Status:     strings.TrimSpace(c.Query("status")),
		CategoryID: categoryID,
		TagID:      tagID,
		Search:     c.Query("searchQuery"),
	})
	if err != nil {
		handlershared.RespondServiceError(c, err, postNotFoundMsg)
		return
	}
	response.SuccessWithPage(c, result.Items, handlershared.ToPagination(result.Pagination))
}

// GetPostByID 根据 ID 获取文章详情
func (h *Handler) GetPostByID(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.PostService.GetByID(c.Request.Context(), id)
	if err != nil {
		handlershared.RespondServiceError(c, err, postNotFoundMsg)
		return
	}
	response.Success(c, detail)
}

// GetPostBySlug 根据 slug 获取文章详情
func (h *Handler) GetPostBySlug(c *gin.Context) {
	detail, err := h.PostService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handlershared.RespondServiceError(c, err, postNotFoundMsg)
		return
	}
	response.Success(c, detail)
}

// CreatePost 创建文章，作者为当前登录用户
func (h *Handler) CreatePost(c *gin.Context) {
	userID, ok := handlershared.GetUserID(c)
	if !ok {
		return
	}
	req, ok := bindPostRequest(c)
	if !ok {
		return
	}

	detail, err := h.PostService.Create(c.Request.Context(), req.ToServiceInput(), userID)
	if err != nil {
		handlershared.RespondServiceError(c, err, postNotFoundMsg)
		return
	}
	response.Created(c, fmt.Sprintf(constants.PostsLocation, detail.ID), detail)
}

// UpdatePost 更新文章，仅作者本人可操作
func (h *Handler) UpdatePost(c *gin.Context) {
	userID, ok := handlershared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	req, ok := bindPostRequest(c)
	if !ok {
		return
	}

	detail, err := h.PostService.Update(c.Request.Context(), id, req.ToServiceInput(), userID)
	if err != nil {
		handlershared.RespondServiceError(c, err, postNotFoundMsg)
		return
	}
	response.Success(c, detail)
}

// DeletePost 软删除文章，仅作者本人可操作
func (h *Handler) DeletePost(c *gin.Context) {
	userID, ok := handlershared.GetUserID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.PostService.Delete(c.Request.Context(), id, userID); err != nil {
		handlershared.RespondServiceError(c, err, postNotFoundMsg)
		return
	}
	response.NoContent(c)
}

type validatable interface {
	Validate() error
}

// bindAndValidate 解析 JSON 并一次性返回全部字段错误
func bindAndValidate(c *gin.Context, req validatable) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		handlershared.RespondErrorWithMsg(c, response.CodeBadRequest, "invalid request body", nil)
		return false
	}
	if err := req.Validate(); err != nil {
		if fields, ok := validationFields(err); ok {
			handlershared.RespondValidationError(c, fields)
			return false
		}
		handlershared.RespondErrorWithMsg(c, response.CodeInternal, "validate request failed", err)
		return false
	}
	return true
}

func bindPostRequest(c *gin.Context) (*PostRequest, bool) {
	var req PostRequest
	if !bindAndValidate(c, &req) {
		return nil, false
	}
	return &req, true
}

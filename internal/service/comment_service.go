package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blog-next/internal/authz"
	"github.com/blog-next/internal/logger"
	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/repository"
)

// CommentNode 评论树节点
type CommentNode struct {
	ID              uint          `json:"id"`
	PostID          uint          `json:"postId"`
	ParentCommentID *uint         `json:"parentCommentId"`
	Content         string        `json:"content"`
	Author          AuthorSummary `json:"author"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	Replies         []CommentNode `json:"replies"`
}

// CreateCommentInput 发表评论输入
type CreateCommentInput struct {
	Content         string
	ParentCommentID *uint
}

// CommentService 评论业务服务
type CommentService struct {
	repo       repository.CommentRepository
	postRepo   repository.PostRepository
	authorizer OwnerAuthorizer
}

// NewCommentService 创建评论服务
func NewCommentService(repo repository.CommentRepository, postRepo repository.PostRepository, authorizer OwnerAuthorizer) *CommentService {
	return &CommentService{
		repo:       repo,
		postRepo:   postRepo,
		authorizer: resolveAuthorizer(authorizer),
	}
}

// ListTree 返回文章评论树；父评论已删除的回复提升为根节点
func (s *CommentService) ListTree(ctx context.Context, postID uint) ([]CommentNode, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.repo.ListByPost(ctx, repository.CommentListFilter{PostID: postID})
	if err != nil {
		return nil, fmt.Errorf("list comments of post %d: %w", postID, err)
	}
	return buildCommentTree(comments), nil
}

// Create 发表评论，父评论必须属于同一篇文章
func (s *CommentService) Create(ctx context.Context, postID uint, input CreateCommentInput, userID uint) (*CommentNode, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	if input.ParentCommentID != nil {
		parent, err := s.repo.GetByID(ctx, *input.ParentCommentID)
		if err != nil {
			return nil, fmt.Errorf("get parent comment %d: %w", *input.ParentCommentID, err)
		}
		if parent == nil || parent.PostID != postID {
			return nil, ErrParentCommentInvalid
		}
	}

	comment := &models.Comment{
		PostID:          postID,
		UserID:          userID,
		ParentCommentID: input.ParentCommentID,
		Content:         input.Content,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	created, err := s.repo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, fmt.Errorf("reload comment %d: %w", comment.ID, err)
	}
	if created == nil {
		return nil, ErrNotFound
	}
	logger.Infow("comment_created", "comment_id", comment.ID, "post_id", postID, "user_id", userID)
	node := toCommentNode(created)
	return &node, nil
}

// Delete 软删除评论，仅评论者本人可操作，回复不级联
func (s *CommentService) Delete(ctx context.Context, commentID uint, requesterID uint) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("get comment %d: %w", commentID, err)
	}
	if comment == nil {
		return ErrNotFound
	}
	allowed, err := s.authorizer.CanModify(requesterID, comment.UserID, authz.ObjectComment, authz.ActionDelete)
	if err != nil {
		return fmt.Errorf("authorize comment delete: %w", err)
	}
	if !allowed {
		return ErrForbidden
	}
	if _, err := s.repo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	logger.Infow("comment_deleted", "comment_id", commentID, "user_id", requesterID)
	return nil
}

func (s *CommentService) ensurePost(ctx context.Context, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("get post %d: %w", postID, err)
	}
	if post == nil {
		return ErrNotFound
	}
	return nil
}

func toCommentNode(comment *models.Comment) CommentNode {
	return CommentNode{
		ID:              comment.ID,
		PostID:          comment.PostID,
		ParentCommentID: comment.ParentCommentID,
		Content:         comment.Content,
		Author:          toAuthorSummary(comment.Author),
		CreatedAt:       comment.CreatedAt,
		UpdatedAt:       comment.UpdatedAt,
		Replies:         []CommentNode{},
	}
}

// buildCommentTree 按输入顺序组装评论树
func buildCommentTree(comments []models.Comment) []CommentNode {
	children := make(map[uint][]int, len(comments))
	present := make(map[uint]struct{}, len(comments))
	for i := range comments {
		present[comments[i].ID] = struct{}{}
	}
	roots := make([]int, 0, len(comments))
	for i := range comments {
		parentID := comments[i].ParentCommentID
		if parentID != nil {
			if _, ok := present[*parentID]; ok && *parentID != comments[i].ID {
				children[*parentID] = append(children[*parentID], i)
				continue
			}
		}
		roots = append(roots, i)
	}

	// 父评论总是先于回复创建，引用不会成环
	var build func(idx int) CommentNode
	build = func(idx int) CommentNode {
		node := toCommentNode(&comments[idx])
		for _, child := range children[comments[idx].ID] {
			node.Replies = append(node.Replies, build(child))
		}
		return node
	}

	tree := make([]CommentNode, 0, len(roots))
	for _, idx := range roots {
		tree = append(tree, build(idx))
	}
	return tree
}

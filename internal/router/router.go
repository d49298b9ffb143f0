package router

import (
	"fmt"

	"github.com/blog-next/internal/cache"
	"github.com/blog-next/internal/config"
	"github.com/blog-next/internal/constants"
	publichandlers "github.com/blog-next/internal/http/handlers/public"
	"github.com/blog-next/internal/http/response"
	"github.com/blog-next/internal/logger"
	"github.com/blog-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.Z()
	r := gin.New()

	h := publichandlers.New(c)
	writeRule := RateLimitRule{
		Prefix:        cache.BuildKey("rate:write"),
		WindowSeconds: cfg.Security.WriteRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.WriteRateLimit.MaxRequests,
	}

	// 中间件
	r.Use(RecoveryMiddleware())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, fmt.Sprintf("route %s %s not found", ctx.Request.Method, ctx.Request.URL.Path))
	})

	apiV1 := r.Group(constants.APIPrefix)
	{
		apiV1.GET("/db-status", h.GetDBStatus)

		// 匿名读接口
		apiV1.GET("/posts", h.GetPosts)
		apiV1.GET("/posts/:id", h.GetPostByID)
		apiV1.GET("/posts/slug/:slug", h.GetPostBySlug)
		apiV1.GET("/posts/:id/comments", h.GetPostComments)
		apiV1.GET("/categories", h.GetCategories)
		apiV1.GET("/tags", h.GetTags)

		// 登录用户接口，写操作额外限流
		authed := apiV1.Group("")
		authed.Use(UserJWTAuthMiddleware(c.UserTokenService))
		authed.GET("/me/bookmarks", h.GetMyBookmarks)

		writes := authed.Group("")
		writes.Use(RateLimitMiddleware(cache.Client(), writeRule, KeyByUserOrIP))
		{
			writes.POST("/posts", h.CreatePost)
			writes.PUT("/posts/:id", h.UpdatePost)
			writes.DELETE("/posts/:id", h.DeletePost)

			writes.POST("/posts/:id/comments", h.CreatePostComment)
			writes.DELETE("/comments/:id", h.DeleteComment)

			writes.PUT("/posts/:id/bookmark", h.AddBookmark)
			writes.DELETE("/posts/:id/bookmark", h.RemoveBookmark)
		}
	}

	return r
}

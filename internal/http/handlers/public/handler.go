package public

import "github.com/blog-next/internal/provider"

// Handler 博客公开接口处理器入口
// 说明：读接口匿名可用，写接口由路由层挂载用户鉴权中间件。
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func (h *Handler) defaultPageSize() int {
	if h.Config == nil || h.Config.Post.DefaultPageSize <= 0 {
		return 10
	}
	return h.Config.Post.DefaultPageSize
}

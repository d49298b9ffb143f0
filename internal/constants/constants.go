package constants

// 路由常量
const (
	APIPrefix     = "/api/v1"
	PostsLocation = APIPrefix + "/posts/%d"
)

// 请求上下文 key
const (
	ContextKeyRequestID = "request_id"
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
)

// HeaderRequestID 请求 ID 头
const HeaderRequestID = "X-Request-ID"

// 默认种子账号的环境变量
const (
	EnvDefaultAdminEmail    = "BLOG_DEFAULT_ADMIN_EMAIL"
	EnvDefaultAdminUsername = "BLOG_DEFAULT_ADMIN_USERNAME"
	EnvDefaultAdminPassword = "BLOG_DEFAULT_ADMIN_PASSWORD"
)

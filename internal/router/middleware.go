package router

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/blog-next/internal/config"
	"github.com/blog-next/internal/constants"
	handlershared "github.com/blog-next/internal/http/handlers/shared"
	"github.com/blog-next/internal/http/response"
	"github.com/blog-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDKey       = constants.ContextKeyRequestID
	requestIDHeader    = constants.HeaderRequestID
	maxRequestIDLength = 128
)

var (
	defaultCORSMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	defaultCORSHeaders = []string{"Content-Type", "Authorization", "Cache-Control", "X-Requested-With", requestIDHeader}
	corsExposedHeaders = "Location, " + requestIDHeader
)

type corsPolicy struct {
	anyOrigin   bool
	origins     map[string]struct{}
	credentials bool
	methods     string
	headers     string
	maxAge      string
}

func newCORSPolicy(cfg config.CORSConfig) corsPolicy {
	policy := corsPolicy{
		origins:     make(map[string]struct{}, len(cfg.AllowedOrigins)),
		credentials: cfg.AllowCredentials,
		methods:     strings.Join(orDefault(cfg.AllowedMethods, defaultCORSMethods), ", "),
		headers:     strings.Join(orDefault(cfg.AllowedHeaders, defaultCORSHeaders), ", "),
	}
	if cfg.MaxAge > 0 {
		policy.maxAge = strconv.Itoa(cfg.MaxAge)
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		policy.anyOrigin = true
	}
	for _, origin := range origins {
		if origin == "*" {
			policy.anyOrigin = true
			continue
		}
		policy.origins[strings.ToLower(strings.TrimSpace(origin))] = struct{}{}
	}
	return policy
}

// allowOrigin 通配且需要凭证时回显 Origin，浏览器不接受 "*" 加凭证
func (p corsPolicy) allowOrigin(origin string) string {
	if p.anyOrigin {
		if p.credentials && origin != "" {
			return origin
		}
		return "*"
	}
	if origin == "" {
		return ""
	}
	if _, ok := p.origins[strings.ToLower(origin)]; ok {
		return origin
	}
	return ""
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}

// CORSMiddleware 跨域中间件，预检请求直接返回 204
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	policy := newCORSPolicy(cfg)
	return func(c *gin.Context) {
		header := c.Writer.Header()
		if allowed := policy.allowOrigin(c.GetHeader("Origin")); allowed != "" {
			header.Set("Access-Control-Allow-Origin", allowed)
			if allowed != "*" {
				header.Add("Vary", "Origin")
			}
		}
		if policy.credentials {
			header.Set("Access-Control-Allow-Credentials", "true")
		}
		header.Set("Access-Control-Allow-Methods", policy.methods)
		header.Set("Access-Control-Allow-Headers", policy.headers)
		header.Set("Access-Control-Expose-Headers", corsExposedHeaders)
		if policy.maxAge != "" {
			header.Set("Access-Control-Max-Age", policy.maxAge)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if userID, ok := c.Get(handlershared.UserIDContextKey); ok {
			log = log.With("user_id", userID)
		}
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

// RecoveryMiddleware 捕获 panic 并返回统一错误结构
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		handlershared.RequestLog(c).Errorw("request_panic_recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		response.Error(c, response.CodeInternal, "internal server error")
		c.Abort()
	})
}

func getRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// UserJWTAuthMiddleware 用户 JWT 鉴权中间件，成功后写入 user_id
func UserJWTAuthMiddleware(tokens *service.UserTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			response.Unauthorized(c, "token service unavailable")
			c.Abort()
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "authorization header missing")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Unauthorized(c, "authorization header must be Bearer token")
			c.Abort()
			return
		}

		user, err := tokens.ResolveActor(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil || user == nil {
			if err != nil && !errors.Is(err, service.ErrInvalidToken) {
				handlershared.RequestLog(c).Errorw("user_token_resolve_failed", "error", err)
			}
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(handlershared.UserIDContextKey, user.ID)
		c.Set(constants.ContextKeyUsername, user.Username)
		c.Next()
	}
}

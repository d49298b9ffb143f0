package router

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	handlershared "github.com/blog-next/internal/http/handlers/shared"
	"github.com/blog-next/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitKeyFunc 计算限流维度
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 固定窗口规则
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
}

func (r RateLimitRule) enabled() bool {
	return r.WindowSeconds > 0 && r.MaxRequests > 0
}

func (r RateLimitRule) key(subject string) string {
	if r.Prefix == "" {
		return subject
	}
	return r.Prefix + ":" + subject
}

// 返回 {当前计数, 剩余秒数}
var windowScript = redis.NewScript(`
local hits = redis.call("INCR", KEYS[1])
if hits == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return {hits, redis.call("TTL", KEYS[1])}
`)

type windowHit struct {
	count int64
	ttl   time.Duration
}

func hitWindow(ctx context.Context, client *redis.Client, key string, window int) (windowHit, error) {
	values, err := windowScript.Run(ctx, client, []string{key}, window).Int64Slice()
	if err != nil {
		return windowHit{}, err
	}
	if len(values) < 2 {
		return windowHit{}, fmt.Errorf("unexpected rate limit reply: %v", values)
	}
	return windowHit{count: values[0], ttl: time.Duration(values[1]) * time.Second}, nil
}

// retryAfter 剩余窗口秒数，TTL 缺失时退回整个窗口
func retryAfter(hit windowHit, window int) int {
	seconds := int(hit.ttl / time.Second)
	if seconds < 1 {
		seconds = window
	}
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}

// RateLimitMiddleware 写接口限流，Redis 未启用时放行
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	if keyFunc == nil {
		keyFunc = KeyByIP
	}
	return func(c *gin.Context) {
		if client == nil || !rule.enabled() {
			c.Next()
			return
		}

		subject := strings.TrimSpace(keyFunc(c))
		if subject == "" {
			subject = c.ClientIP()
		}
		hit, err := hitWindow(c.Request.Context(), client, rule.key(subject), rule.WindowSeconds)
		if err != nil {
			handlershared.RespondErrorWithMsg(c, response.CodeInternal, "rate limit unavailable", err)
			c.Abort()
			return
		}
		if hit.count <= int64(rule.MaxRequests) {
			c.Next()
			return
		}

		wait := retryAfter(hit, rule.WindowSeconds)
		handlershared.RequestLog(c).Infow("write_rate_limited", "subject", subject, "retry_after", wait)
		c.Header("Retry-After", strconv.Itoa(wait))
		response.Error(c, response.CodeTooManyRequests, fmt.Sprintf("too many requests, retry in %d seconds", wait))
		c.Abort()
	}
}

// KeyByIP 按客户端 IP
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByUserOrIP 登录用户按 ID，匿名按 IP
func KeyByUserOrIP(c *gin.Context) string {
	if userID := c.GetUint(handlershared.UserIDContextKey); userID > 0 {
		return "user:" + strconv.FormatUint(uint64(userID), 10)
	}
	return c.ClientIP()
}

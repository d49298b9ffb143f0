package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/blog-next/internal/config"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "blog"
	pingTimeout   = 3 * time.Second
)

// 全局 Redis 状态，client 为 nil 时视为未启用
var state = struct {
	sync.RWMutex
	client *redis.Client
	prefix string
}{prefix: defaultPrefix}

// InitRedis 按配置建立客户端并探活，探活失败时保持禁用
func InitRedis(cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		UseClient(nil, "")
		return nil
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + strconv.Itoa(port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		UseClient(nil, cfg.Prefix)
		return fmt.Errorf("ping redis %s: %w", client.Options().Addr, err)
	}
	UseClient(client, cfg.Prefix)
	return nil
}

// UseClient 替换当前客户端与 key 前缀
func UseClient(client *redis.Client, prefix string) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}
	state.Lock()
	state.client = client
	state.prefix = prefix
	state.Unlock()
}

// Client 当前客户端，未启用时为 nil
func Client() *redis.Client {
	state.RLock()
	defer state.RUnlock()
	return state.client
}

// Enabled Redis 是否可用
func Enabled() bool {
	return Client() != nil
}

// Close 关闭客户端并回到禁用状态
func Close() error {
	state.Lock()
	client := state.client
	state.client = nil
	state.Unlock()
	if client == nil {
		return nil
	}
	return client.Close()
}

// BuildKey 拼接前缀，如 blog:public:tags
func BuildKey(key string) string {
	state.RLock()
	prefix := state.prefix
	state.RUnlock()
	key = strings.TrimSpace(key)
	if key == "" {
		return prefix
	}
	return prefix + ":" + key
}

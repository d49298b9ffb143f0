package app

import (
	"errors"
	"fmt"

	"github.com/blog-next/internal/cache"
	"github.com/blog-next/internal/config"
	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/provider"
	"github.com/blog-next/internal/router"
)

// InitDatabase 打开全局数据库并迁移表结构
func InitDatabase(cfg config.DatabaseConfig) error {
	err := models.InitDB(cfg.Driver, cfg.DSN, models.DBOptions{
		LogSQL: cfg.LogSQL,
		Pool: models.DBPoolConfig{
			MaxOpenConns:           cfg.Pool.MaxOpenConns,
			MaxIdleConns:           cfg.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: cfg.Pool.ConnMaxLifetimeSeconds,
			ConnMaxIdleTimeSeconds: cfg.Pool.ConnMaxIdleTimeSeconds,
		},
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	if err := models.AutoMigrate(); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// BuildRunner 组装 HTTP 服务与后台收尾服务
func BuildRunner(cfg *config.Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)
	engine := router.SetupRouter(cfg, container)

	// HTTP 服务先停止接收请求，再等待浏览量累加完成
	return NewRunner(
		NewHTTPService(cfg.Server, engine),
		NewDrainService("post_view_count", container.PostService.WaitBackground),
	), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", opts.Config.Server.Addr(), "mode", opts.Config.Server.Mode)
	runErr := RunWithOptions(runner, opts)
	if err := cache.Close(); err != nil {
		opts.Logger.Warnw("redis_close_failed", "error", err)
	}
	return runErr
}

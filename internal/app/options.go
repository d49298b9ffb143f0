package app

import (
	"os"
	"time"

	"github.com/blog-next/internal/config"
	"github.com/blog-next/internal/logger"

	"go.uber.org/zap"
)

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
}

// normalizeOptions 未指定停机超时时取服务器配置
func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		if opts.Config != nil {
			opts.ShutdownTimeout = opts.Config.Server.ShutdownTimeout()
		} else {
			opts.ShutdownTimeout = 10 * time.Second
		}
	}
	return opts
}

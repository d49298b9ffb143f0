package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/blog-next/internal/config"
	"github.com/blog-next/internal/logger"
)

// HTTPService gin 引擎的 HTTP 服务封装
type HTTPService struct {
	server *http.Server
}

// NewHTTPService 按服务器配置创建 HTTP 服务
func NewHTTPService(cfg config.ServerConfig, handler http.Handler) *HTTPService {
	return &HTTPService{
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadTimeout(),
			ReadTimeout:       cfg.ReadTimeout(),
			WriteTimeout:      cfg.WriteTimeout(),
			ErrorLog:          logger.StdLogger(),
		},
	}
}

// Name 服务名称
func (s *HTTPService) Name() string {
	return "http"
}

// Start 监听端口，正常关闭时返回 nil
func (s *HTTPService) Start(context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("http server not initialized")
	}
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop 停止接收新连接并等待进行中的请求
func (s *HTTPService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

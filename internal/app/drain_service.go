package app

import "context"

// DrainService 在停机时等待后台任务完成
type DrainService struct {
	name string
	wait func()
}

// NewDrainService 创建后台任务收尾服务
func NewDrainService(name string, wait func()) *DrainService {
	return &DrainService{name: name, wait: wait}
}

// Name 服务名称
func (s *DrainService) Name() string {
	if s == nil || s.name == "" {
		return "drain"
	}
	return "drain:" + s.name
}

// Start 阻塞直到收到停止信号
func (s *DrainService) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// Stop 等待后台任务完成或超时
func (s *DrainService) Stop(ctx context.Context) error {
	if s == nil || s.wait == nil {
		return nil
	}
	done := make(chan struct{})
	go func() {
		s.wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

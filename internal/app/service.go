package app

import (
	"context"
	"errors"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

// Service 可启停的后台服务
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 按注册顺序启动服务，停止时同样按注册顺序收尾
type Runner struct {
	services []Service
}

// NewRunner 创建服务运行器，忽略 nil 服务
func NewRunner(services ...Service) *Runner {
	kept := make([]Service, 0, len(services))
	for _, svc := range services {
		if svc != nil {
			kept = append(kept, svc)
		}
	}
	return &Runner{services: kept}
}

// RunWithOptions 运行服务并在收到系统信号时停机
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 启动全部服务，任一服务退出或 ctx 结束后停止全部服务
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	exited := make(chan error, len(r.services))
	for _, svc := range r.services {
		go r.start(ctx, svc, log, exited)
	}

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case runErr = <-exited:
	}
	cancel()

	r.stopAll(stopTimeout, log)
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

func (r *Runner) start(ctx context.Context, svc Service, log *zap.SugaredLogger, exited chan<- error) {
	log.Infow("service_start", "service", svc.Name())
	err := svc.Start(ctx)
	log.Infow("service_exit", "service", svc.Name(), "error", err)
	exited <- err
}

func (r *Runner) stopAll(timeout time.Duration, log *zap.SugaredLogger) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), timeout)
	defer stopCancel()
	for _, svc := range r.services {
		began := time.Now()
		if err := svc.Stop(stopCtx); err != nil {
			log.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
			continue
		}
		log.Infow("service_stopped", "service", svc.Name(), "elapsed_ms", time.Since(began).Milliseconds())
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/blog-next/internal/app"
	"github.com/blog-next/internal/config"
	"github.com/blog-next/internal/constants"
	"github.com/blog-next/internal/logger"
	"github.com/blog-next/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	release := cfg.Server.Mode == gin.ReleaseMode

	if isWeakSecret(cfg.UserJWT.SecretKey) {
		if release {
			fatal("user_jwt_secret_weak", errors.New("user_jwt.secret must be a strong random value in release mode"))
		}
		logger.Warnw("user_jwt_secret_weak", "hint", "set user_jwt.secret before deploying")
	}

	if err := app.InitDatabase(cfg.Database); err != nil {
		fatal("database_init_failed", err)
	}
	if cfg.Database.SeedOnStart {
		seedOnStart(release)
	}

	if release {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		fatal("server_run_failed", err)
	}
}

// seedOnStart 写入默认作者、分类与标签，release 模式下必须显式提供密码
func seedOnStart(release bool) {
	password := os.Getenv(constants.EnvDefaultAdminPassword)
	if release && password == "" {
		logger.Warnw("seed_skipped", "reason", constants.EnvDefaultAdminPassword+" not set")
		return
	}
	result, err := models.SeedDefaults(models.DB, models.SeedOptions{
		AdminEmail:    os.Getenv(constants.EnvDefaultAdminEmail),
		AdminUsername: os.Getenv(constants.EnvDefaultAdminUsername),
		AdminPassword: password,
	})
	if err != nil {
		logger.Warnw("seed_failed", "error", err)
		return
	}
	logger.Infow("seed_finished", "skipped", result.Skipped)
}

func fatal(event string, err error) {
	logger.Errorw(event, "error", err)
	logger.Sync()
	os.Exit(1)
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "╔══════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiCyan + "║          " + ansiBold + "Blog-Next API 启动中" + ansiReset + ansiCyan + "            ║" + ansiReset)
	fmt.Println(ansiCyan + "╚══════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiDim + "routes mounted under " + constants.APIPrefix + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}

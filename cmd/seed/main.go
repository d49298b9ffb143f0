package main

import (
	"fmt"
	"os"

	"github.com/blog-next/internal/app"
	"github.com/blog-next/internal/config"
	"github.com/blog-next/internal/constants"
	"github.com/blog-next/internal/logger"
	"github.com/blog-next/internal/models"
	"github.com/blog-next/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// 连接数据库并迁移
	if err := app.InitDatabase(cfg.Database); err != nil {
		stdLog.Fatalf("%v", err)
	}

	result, err := models.SeedDefaults(models.DB, models.SeedOptions{
		AdminEmail:    os.Getenv(constants.EnvDefaultAdminEmail),
		AdminUsername: os.Getenv(constants.EnvDefaultAdminUsername),
		AdminPassword: os.Getenv(constants.EnvDefaultAdminPassword),
	})
	if err != nil {
		stdLog.Fatalf("Failed to seed database: %v", err)
	}
	if result.Skipped {
		fmt.Println("Users already exist, seed skipped.")
	} else {
		fmt.Println("Seed data created: admin user, 2 categories, 3 tags.")
	}
	if result.Admin == nil {
		return
	}

	// 输出开发用令牌，便于直接调用写接口
	tokens := service.NewUserTokenService(cfg.UserJWT, nil)
	token, expiresAt, err := tokens.GenerateUserJWT(result.Admin, 0)
	if err != nil {
		stdLog.Fatalf("Failed to sign dev token: %v", err)
	}
	fmt.Printf("Admin: %s (id=%d)\n", result.Admin.Username, result.Admin.ID)
	fmt.Printf("Dev token (expires %s):\n%s\n", expiresAt.Format("2006-01-02 15:04:05"), token)
}

package models

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite" // 纯 Go SQLite 驱动（基于 modernc.org/sqlite）
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// DBPoolConfig 数据库连接池配置
type DBPoolConfig struct {
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeSeconds int
	ConnMaxIdleTimeSeconds int
}

// DBOptions 数据库打开选项
type DBOptions struct {
	LogSQL bool
	Pool   DBPoolConfig
}

// InitDB 初始化全局数据库连接
func InitDB(driver, dsn string, options DBOptions) error {
	db, err := OpenDB(driver, dsn, options)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// OpenDB 打开数据库连接，不修改全局实例
func OpenDB(driver, dsn string, options DBOptions) (*gorm.DB, error) {
	dialector, err := resolveDialector(driver, dsn)
	if err != nil {
		return nil, err
	}
	logLevel := logger.Warn
	if options.LogSQL {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// 驱动层唯一约束冲突统一翻译为 gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	applyDBPool(sqlDB, options.Pool)
	return db, nil
}

func resolveDialector(driver, dsn string) (gorm.Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite":
		// glebarez/sqlite 是基于 modernc.org/sqlite 的纯 Go 驱动
		if err := ensureSQLiteDir(dsn); err != nil {
			return nil, err
		}
		return sqlite.Open(dsn), nil
	case "postgres", "postgresql":
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// ensureSQLiteDir 为文件型 sqlite 创建父目录，内存库与 URI 形式跳过
func ensureSQLiteDir(dsn string) error {
	path := strings.TrimSpace(dsn)
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	if idx := strings.Index(path, "?"); idx >= 0 {
		path = path[:idx]
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sqlite dir failed: %w", err)
	}
	return nil
}

func applyDBPool(sqlDB *sql.DB, pool DBPoolConfig) {
	if sqlDB == nil {
		return
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetimeSeconds > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetimeSeconds) * time.Second)
	}
	if pool.ConnMaxIdleTimeSeconds > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(pool.ConnMaxIdleTimeSeconds) * time.Second)
	}
}

// AutoMigrate 自动迁移全局数据库
func AutoMigrate() error {
	return Migrate(DB)
}

// Migrate 迁移所有博客表
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	// post_tags 为自定义连接表，需在迁移前注册
	if err := db.SetupJoinTable(&Post{}, "Tags", &PostTag{}); err != nil {
		return fmt.Errorf("setup post_tags join table: %w", err)
	}
	return db.AutoMigrate(
		&User{},
		&Category{},
		&Tag{},
		&Post{},
		&PostTag{},
		&Comment{},
		&PostRevision{},
		&MediaFile{},
		&UserSession{},
		&Bookmark{},
	)
}

// Ping 检查数据库连通性
func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:models_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := OpenDB("sqlite", dsn, DBOptions{Pool: DBPoolConfig{MaxOpenConns: 1}})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestMigrateSharedMemoryWithDefaultPool(t *testing.T) {
	dsn := fmt.Sprintf("file:models_%s?mode=memory&cache=shared", t.Name())
	db, err := OpenDB("sqlite", dsn, DBOptions{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, Migrate(db))
	for _, table := range []string{"users", "posts", "post_tags", "comments", "bookmarks"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	user := &User{Email: "pool@blog.test", Username: "pool", PasswordHash: "hash", Role: UserRoleUser}
	require.NoError(t, db.Create(user).Error)
	var count int64
	require.NoError(t, db.Model(&User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplyDBPoolKeepsDefaultIdleConns(t *testing.T) {
	db := openTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	applyDBPool(sqlDB, DBPoolConfig{})
	require.NoError(t, sqlDB.Ping())
	assert.Equal(t, 1, sqlDB.Stats().Idle)
}

func TestParsePostStatus(t *testing.T) {
	for _, raw := range []string{"Draft", "Published", "Archived", "Scheduled"} {
		status, ok := ParsePostStatus(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, PostStatus(raw), status)
	}
	for _, raw := range []string{"", "draft", "PUBLISHED", "Deleted"} {
		_, ok := ParsePostStatus(raw)
		assert.False(t, ok, raw)
	}
}

func TestEnsureSQLiteDirCreatesParent(t *testing.T) {
	base := t.TempDir()
	dsn := filepath.Join(base, "nested", "blog.db") + "?_pragma=foreign_keys(1)"

	require.NoError(t, ensureSQLiteDir(dsn))
	info, err := os.Stat(filepath.Join(base, "nested"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, ensureSQLiteDir(":memory:"))
	require.NoError(t, ensureSQLiteDir("file:x?mode=memory"))
	require.NoError(t, ensureSQLiteDir(""))
}

func TestOpenDBRejectsUnknownDriver(t *testing.T) {
	_, err := OpenDB("oracle", "dsn", DBOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	first, err := SeedDefaults(db, SeedOptions{AdminPassword: "s3cret-pass"})
	require.NoError(t, err)
	require.False(t, first.Skipped)
	require.NotNil(t, first.Admin)
	assert.Equal(t, "admin", first.Admin.Username)
	assert.Equal(t, "admin@blog.com", first.Admin.Email)
	assert.Equal(t, UserRoleAdmin, first.Admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(first.Admin.PasswordHash), []byte("s3cret-pass")))

	var categories []Category
	require.NoError(t, db.Order("display_order ASC").Find(&categories).Error)
	require.Len(t, categories, 2)
	assert.Equal(t, "tech", categories[0].Slug)

	var tagCount int64
	require.NoError(t, db.Model(&Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 3, tagCount)

	second, err := SeedDefaults(db, SeedOptions{AdminUsername: "other"})
	require.NoError(t, err)
	assert.True(t, second.Skipped)
	require.NotNil(t, second.Admin)
	assert.Equal(t, first.Admin.ID, second.Admin.ID)

	var userCount int64
	require.NoError(t, db.Model(&User{}).Count(&userCount).Error)
	assert.EqualValues(t, 1, userCount)
}

func TestPingReportsClosedConnection(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Ping(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	assert.Error(t, Ping(db))
	assert.Error(t, Ping(nil))
}

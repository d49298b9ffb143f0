package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicateKey 判断是否为唯一约束冲突
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 未开启 TranslateError 的连接回退到驱动错误文本
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate key")
}

// findOne 取第一条记录，未找到返回 nil, nil
func findOne[T any](query *gorm.DB) (*T, error) {
	var row T
	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

package service

import (
	"context"
	"fmt"
	"strings"
)

const wordsPerMinute = 200

// 生成 slug 时直接删除的标点
var slugStripper = strings.NewReplacer("!", "", "?", "", ".", "", ",", "")

// GenerateSlug 由标题生成 slug：转小写、空格替换为连字符、去掉 ! ? . ,
// 不做音译，非 ASCII 字符原样保留
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	return slugStripper.Replace(slug)
}

// CalculateReadingTime 按每分钟 200 词估算阅读时长，最少 1 分钟
func CalculateReadingTime(content string) int {
	minutes := len(strings.Fields(content)) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// nextFreeSlug 依次尝试 base、base-1、base-2 … 直到存活文章中不存在
func (s *PostService) nextFreeSlug(ctx context.Context, base string, excludeID uint) (string, error) {
	candidate := base
	for suffix := 1; ; suffix++ {
		exists, err := s.repo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}

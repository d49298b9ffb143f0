package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// containsExprByDialect 构建大小写敏感的子串匹配表达式，占位符为子串本身。
func containsExprByDialect(dialect, column string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return fmt.Sprintf("strpos(%s, ?) > 0", column)
	default:
		// sqlite 的 LIKE 对 ASCII 不区分大小写，改用 instr
		return fmt.Sprintf("instr(%s, ?) > 0", column)
	}
}

// buildContainsCondition 构建多列 OR 子串条件，并返回参数数量。
func buildContainsCondition(db *gorm.DB, columns []string) (string, int) {
	return buildContainsConditionByDialect(dbDialectName(db), columns)
}

func buildContainsConditionByDialect(dialect string, columns []string) (string, int) {
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		trimmed := strings.TrimSpace(column)
		if trimmed == "" {
			continue
		}
		parts = append(parts, containsExprByDialect(dialect, trimmed))
	}
	if len(parts) == 0 {
		return "", 0
	}
	return "(" + strings.Join(parts, " OR ") + ")", len(parts)
}

// repeatArgs 生成重复的参数列表。
func repeatArgs(value interface{}, count int) []interface{} {
	args := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		args = append(args, value)
	}
	return args
}

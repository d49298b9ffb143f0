package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogDirName    = "logs"
	defaultLogFilename   = "blog.log"
	defaultLogMaxSizeMB  = 100
	defaultLogMaxBackups = 7
	defaultLogMaxAgeDays = 30
)

// Options 日志输出配置
type Options struct {
	Level      string
	Dir        string
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

var (
	mu      sync.RWMutex
	current *zap.Logger
	console = sync.OnceValue(func() *zap.Logger {
		return build(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(zap.InfoLevel))
	})
)

// Init 初始化全局日志并替换 zap 全局实例
func Init(mode string, options Options) *zap.Logger {
	l := New(mode, options)
	mu.Lock()
	current = l
	mu.Unlock()
	zap.ReplaceGlobals(l)
	return l
}

// New debug 模式输出彩色控制台，其余模式写 JSON 滚动文件
func New(mode string, options Options) *zap.Logger {
	debug := strings.EqualFold(strings.TrimSpace(mode), "debug")
	level := resolveLevel(options.Level, debug)
	if debug {
		return build(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.Lock(os.Stdout), level)
	}

	jsonEncoder := zapcore.NewJSONEncoder(encoderConfig())
	sink, err := rollingFile(options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: file sink unavailable, using stdout: %v\n", err)
		return build(jsonEncoder, zapcore.Lock(os.Stdout), level)
	}
	return build(jsonEncoder, sink, level)
}

// Z 当前全局日志，未初始化时返回控制台日志
func Z() *zap.Logger {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l == nil {
		return console()
	}
	return l
}

// S 当前全局 SugaredLogger
func S() *zap.SugaredLogger {
	return Z().Sugar()
}

// SW 附带固定字段的 SugaredLogger
func SW(kv ...interface{}) *zap.SugaredLogger {
	if len(kv) == 0 {
		return S()
	}
	return S().With(kv...)
}

// StdLogger 给 net/http 等只接受标准库 log 的组件使用
func StdLogger() *log.Logger {
	return zap.NewStdLog(Z())
}

// Sync 退出前刷新缓冲
func Sync() {
	_ = Z().Sync()
}

func Infow(message string, kv ...interface{}) {
	S().Infow(message, kv...)
}

func Warnw(message string, kv ...interface{}) {
	S().Warnw(message, kv...)
}

func Errorw(message string, kv ...interface{}) {
	S().Errorw(message, kv...)
}

// resolveLevel 显式级别优先，非法值按模式回退
func resolveLevel(raw string, debug bool) zap.AtomicLevel {
	if trimmed := strings.ToLower(strings.TrimSpace(raw)); trimmed != "" {
		if lvl, err := zapcore.ParseLevel(trimmed); err == nil {
			return zap.NewAtomicLevelAt(lvl)
		}
	}
	if debug {
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zap.NewAtomicLevelAt(zap.InfoLevel)
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.MillisDurationEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	return cfg
}

func build(encoder zapcore.Encoder, sink zapcore.WriteSyncer, level zap.AtomicLevel) *zap.Logger {
	return zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller(), zap.AddCallerSkip(1))
}

func rollingFile(options Options) (zapcore.WriteSyncer, error) {
	path, err := resolveLogFilePath(options)
	if err != nil {
		return nil, err
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    positiveOr(options.MaxSizeMB, defaultLogMaxSizeMB),
		MaxBackups: positiveOr(options.MaxBackups, defaultLogMaxBackups),
		MaxAge:     positiveOr(options.MaxAgeDays, defaultLogMaxAgeDays),
		Compress:   options.Compress,
	}), nil
}

// resolveLogFilePath 未配置目录时落在工作目录 logs/ 下，并提前验证可写
func resolveLogFilePath(options Options) (string, error) {
	dir := strings.TrimSpace(options.Dir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve workdir: %w", err)
		}
		dir = filepath.Join(wd, defaultLogDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}

	name := strings.TrimSpace(options.Filename)
	if name == "" {
		name = defaultLogFilename
	}
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close log file: %w", err)
	}
	return path, nil
}

func positiveOr(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

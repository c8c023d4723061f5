// Package logger настраивает структурированное логирование сервиса на базе zap
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logFileEnvKey  = "LOG_FILE"
	logLevelEnvKey = "LOG_LEVEL"
)

var (
	atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	base        *zap.Logger
	sugar       *zap.SugaredLogger
)

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level = atomicLevel
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if logFile := os.Getenv(logFileEnvKey); logFile != "" {
		cfg.OutputPaths = []string{logFile}
		cfg.ErrorOutputPaths = []string{logFile}
	} else {
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}
	base = logger
	sugar = base.Sugar()

	if level := os.Getenv(logLevelEnvKey); level != "" {
		_ = SetLevel(level)
	}
}

// SetLevel устанавливает уровень логирования по имени: debug, info, warn, error
func SetLevel(level string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return fmt.Errorf("unknown log level %q: %w", level, err)
	}
	atomicLevel.SetLevel(l)
	return nil
}

// Level возвращает текущий уровень логирования
func Level() zapcore.Level {
	return atomicLevel.Level()
}

// L возвращает базовый логгер для структурированных полей
func L() *zap.Logger {
	return base
}

// With возвращает логгер с дополнительными полями
func With(fields ...zap.Field) *zap.Logger {
	return base.With(fields...)
}

// Sync сбрасывает буферы логгера
func Sync() {
	_ = base.Sync()
}

func Debugf(format string, args ...any) {
	sugar.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	sugar.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	sugar.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	sugar.Errorf(format, args...)
}

func Fatalf(format string, args ...any) {
	sugar.Fatalf(format, args...)
}

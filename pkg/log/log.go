// Package log — тонкая обёртка над zap для всего сервиса.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar = zap.Must(zap.NewProduction()).Sugar()

// Init настраивает глобальный логгер по уровню и формату из конфигурации.
func Init(level, format string) {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.SetLevel(zap.InfoLevel)
	}

	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stdout"}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	sugar = logger.Sugar()
}

func Infof(template string, args ...any) {
	sugar.Infof(template, args...)
}

func Warnf(template string, args ...any) {
	sugar.Warnf(template, args...)
}

func Errorf(template string, args ...any) {
	sugar.Errorf(template, args...)
}

func Fatalf(template string, args ...any) {
	sugar.Fatalf(template, args...)
}

// Sync сбрасывает буферизованные записи; вызывается перед выходом из процесса.
func Sync() {
	_ = sugar.Sync()
}

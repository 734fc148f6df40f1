package utils

import (
	"log"
	"os"

	"catering/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger sets up the logging configuration and replaces zap's globals.
func InitializeLogger(cfg config.Config) {
	var zcfg zap.Config

	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	if cfg.LogFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(rotator),
				zcfg.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zcfg.EncoderConfig),
				zapcore.AddSync(os.Stdout),
				zcfg.Level,
			),
		)
		Logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		Logger, err = zcfg.Build()
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	}

	zap.ReplaceGlobals(Logger)
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger(config.AppConfig)
	}
	return Logger
}

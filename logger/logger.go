package logger

import (
	"os"

	"go.uber.org/zap"
)

func NewProductionLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok && lvl != "" {
		level, err := zap.ParseAtomicLevel(lvl)
		if err != nil {
			return nil, err
		}
		config.Level = level
	}
	return config.Build()
}

func Suggar(logger *zap.Logger) *zap.SugaredLogger {
	return logger.Sugar()
}

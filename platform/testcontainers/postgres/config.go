package postgres

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/you-humble/paybridge/platform/logger"
	tc "github.com/you-humble/paybridge/platform/testcontainers"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	NetworkName   string
	ContainerName string
	ImageName     string
	Database      string
	Username      string
	Password      string
	Logger        Logger

	Host string
	Port string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ContainerName: tc.PostgresContainerName,
		ImageName:     "postgres:17-alpine",
		Database:      "paybridge",
		Username:      "paybridge",
		Password:      "paybridge",
		Logger:        logger.NoopLogger{},
	}

	if image := os.Getenv(tc.PostgresImageNameKey); image != "" {
		cfg.ImageName = image
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

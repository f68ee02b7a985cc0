package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/you-humble/paybridge/internal/app"
	"github.com/you-humble/paybridge/platform/logger"
)

func main() {
	ctx, quit := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer quit()

	a, err := app.New(ctx)
	if err != nil {
		logger.Error(ctx,
			"❌ Failed to create an application",
			logger.ErrorF(err),
		)
		quit()
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "❌ Paybridge server error", logger.ErrorF(err))
		quit()
		os.Exit(1)
	}
}

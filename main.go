package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/DarkSyed/sugari-sub000/internal/cli"
	"github.com/DarkSyed/sugari-sub000/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not found, using environment as-is")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/preston-bernstein/cfb-display-service/internal/config"
	"github.com/preston-bernstein/cfb-display-service/internal/logging"
	"github.com/preston-bernstein/cfb-display-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "cfb-display-service",
		Version: appVersion,
	})
	if err := config.LoadDotEnv(); err != nil {
		logging.Warn(logger, "failed to load .env", "err", err)
	}
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

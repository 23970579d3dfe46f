package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MMansij/New-Int/config"
	"github.com/MMansij/New-Int/pkg/otel"
	"github.com/MMansij/New-Int/server"
)

func main() {
	configFlag := flag.String("config", "", "config file (defaults to environment)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configFlag); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	shutdown, err := otel.Setup(ctx, "intelliparse")

	if err != nil {
		slog.Error("failed to set up telemetry", "error", err)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			slog.Error("failed to flush telemetry", "error", err)
		}
	}()

	cfg, err := config.Parse(path)

	if err != nil {
		return err
	}

	s, err := server.New(cfg)

	if err != nil {
		return err
	}

	slog.Info("server listening", "address", cfg.Address, "mock", cfg.Mock)

	if err := s.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dharmasatrya/bookingsdk/internal/config"
	"github.com/dharmasatrya/bookingsdk/internal/logging"
	"github.com/dharmasatrya/bookingsdk/internal/mockplatform"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logging.Component("mockplatform")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(cfg.Logging())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg.Mock); err != nil {
		log = logging.Component("mockplatform")
		log.Fatal().Err(err).Msg("mock platform failed")
	}
}

// run serves the mock platform until ctx is done, then shuts it down.
func run(ctx context.Context, cfg config.MockConfig) error {
	log := logging.Component("mockplatform")

	var latency time.Duration
	if cfg.Latency != "" {
		var err error
		if latency, err = time.ParseDuration(cfg.Latency); err != nil {
			return fmt.Errorf("invalid mock latency %q: %w", cfg.Latency, err)
		}
	}

	srv := mockplatform.New(mockplatform.Config{Token: cfg.Token, Latency: latency})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("starting mock booking platform")
		errCh <- srv.Start(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("mock platform stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("mock booking platform stopped")
	return nil
}

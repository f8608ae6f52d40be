package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cenkalti/backoff/v4"
	"github.com/ogzhnclk/northwind-api/internal/api"
	"github.com/ogzhnclk/northwind-api/internal/pkg/config"
	"github.com/ogzhnclk/northwind-api/internal/pkg/logger"
	"github.com/ogzhnclk/northwind-api/internal/pkg/store"
	"github.com/ogzhnclk/northwind-api/internal/pkg/store/xpgx"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx := context.Background()
	defer logger.Sync()

	if err := config.Init(); err != nil {
		logger.Fatal(ctx, "init config: ", err)
	}

	pool, err := xpgx.NewPool(ctx, config.PostgresDSN(), config.PostgresMaxConns())
	if err != nil {
		logger.Fatal(ctx, "connect postgres: ", err)
	}
	defer pool.Close()

	// the database may still be coming up; retry the first ping
	pingBackoff := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 10), ctx)
	if err := backoff.Retry(func() error {
		return pool.Ping(ctx)
	}, pingBackoff); err != nil {
		logger.Fatal(ctx, "ping postgres: ", err)
	}

	svc, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, "init api: ", err)
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Infof(ctx, "listening on %s", config.HTTPAddr())
		if err := svc.Serve(config.HTTPAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-stop:
		case <-egCtx.Done():
			return egCtx.Err()
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout())
		defer cancel()
		return svc.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		logger.Fatal(ctx, err)
	}
}

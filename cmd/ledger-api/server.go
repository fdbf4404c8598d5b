package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// serve runs the HTTP server and the background workers until ctx is cancelled or one
// of them fails. A failed start (for example an address already in use) is returned.
func serve(ctx context.Context, e *echo.Echo, address string, shutdownTimeout time.Duration, logger *slog.Logger, workers ...func(context.Context)) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, worker := range workers {
		worker := worker
		g.Go(func() error {
			worker(gctx)
			return nil
		})
	}

	g.Go(func() error {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down ledger API")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

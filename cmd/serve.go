package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

var serveSeed bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			ctx, stop := shutdownContext(ctx)
			defer stop()
			return serve(ctx, a)
		})
	},
}

func init() {
	serveCmd.Flags().BoolVar(&serveSeed, "seed-empty", true, "Seed empty tables before serving")
}

// shutdownContext is cancelled on SIGINT or SIGTERM and keeps the values of
// parent, including its logger.
func shutdownContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func serve(ctx context.Context, a *app) error {
	logger := a.logger
	if serveSeed {
		results, err := a.svc.Seed(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			if r.Inserted > 0 {
				logger.Info("seeded empty table", "entity", r.Kind, "rows", r.Inserted)
			}
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	api.Register(e, &api.Deps{
		Handler: api.NewHandler(a.svc),
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:              a.config.HTTPAddr,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", "timeout", a.config.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}

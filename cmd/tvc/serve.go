package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpgo/tvc-calculator/internal/api"
	"github.com/spf13/cobra"
)

func serveCmd(root *rootOptions) *cobra.Command {
	var port int
	var origins []string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API and HTML dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine := root.newEngine(cmd.ErrOrStderr())
			router := api.NewRouter(api.NewHandler(engine), origins)

			server := &http.Server{
				Addr:         fmt.Sprintf(":%d", port),
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				slog.Info("server starting", "addr", server.Addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			slog.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			slog.Info("server stopped")
			return nil
		},
	}

	c.Flags().IntVarP(&port, "port", "p", 8080, "HTTP server port")
	c.Flags().StringSliceVar(&origins, "cors-origin", []string{"http://localhost:5173", "http://localhost:8080"}, "allowed CORS origins")
	return c
}

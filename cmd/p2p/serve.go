package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/xoaryaa/p2p/internal/httpapi"
	"github.com/xoaryaa/p2p/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Exposes validation, plan rendering, the template catalog and Prometheus metrics over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		addr, _ := cmd.Flags().GetString("addr")

		registry := prometheus.NewRegistry()
		// The collector registers the engine instruments so /metrics
		// exposes them even before any pipeline runs through this process.
		_ = observability.NewMetrics(registry)

		srv := &http.Server{
			Addr:    addr,
			Handler: httpapi.NewHandler(logger, registry),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("could not stop server: %w", err)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", envOr("P2P_ADDR", ":8080"), "Listen address")
}

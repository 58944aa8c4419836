package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/HendryAvila/ijin/internal/httpapi"
	"github.com/HendryAvila/ijin/internal/quiz"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newHTTPCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the quiz over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.HTTP.Addr
			}

			svc, err := a.service(quiz.WithMetrics(quiz.DefaultMetrics()))
			if err != nil {
				return err
			}
			srv := httpapi.New(svc,
				httpapi.WithLogger(a.logger),
				httpapi.WithMetrics(httpapi.DefaultMetrics(), prometheus.DefaultGatherer),
				httpapi.WithDebug(a.cfg.HTTP.Debug),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from IJIN_HTTP_ADDR or :8080)")
	return cmd
}

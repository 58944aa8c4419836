package main

import (
	"fmt"

	mcpserver "github.com/HendryAvila/ijin/internal/server"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			s, err := mcpserver.New(svc)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}

			a.logger.Info("mcp server starting",
				"version", mcpserver.Version,
				"session_questions", svc.TotalQuestions(),
				"bank_size", svc.Bank().Len(),
				"figures", svc.Catalog().Len(),
			)
			// ServeStdio handles SIGINT and SIGTERM itself.
			return server.ServeStdio(s)
		},
	}
}

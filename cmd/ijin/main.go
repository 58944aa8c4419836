// ijin: historical figure values diagnosis.
//
// Picks adaptive 5-point questions, scores the answers on five traits and
// matches the result against a catalog of historical figures. The same
// quiz is served over MCP (stdio) and HTTP.
//
// Usage:
//
//	ijin serve                      # MCP server on stdio
//	ijin http --addr :8080          # HTTP API
//	ijin report transcript.txt      # report for a transcript (or stdin)
//	ijin simulate --answers 3,4,5   # play a full session
//	ijin catalog                    # list the reference figures
//	ijin version
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/HendryAvila/ijin/internal/config"
	"github.com/HendryAvila/ijin/internal/quiz"
	mcpserver "github.com/HendryAvila/ijin/internal/server"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the settings every subcommand shares.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "ijin",
		Short: "Historical figure values diagnosis",
		Long: `ijin asks adaptive 5-point questions, scores the answers on five traits
(実行力, 人間性, 表現力, 魅力, 外見力) and shows which historical figures share
your values.

Settings come from .env, IJIN_* environment variables and an optional
config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (yaml, json or toml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format (text, json)")

	cmd.AddCommand(
		newServeCmd(a),
		newHTTPCmd(a),
		newReportCmd(a),
		newSimulateCmd(a),
		newCatalogCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup loads the configuration and installs the process logger. Logs go
// to stderr; stdout belongs to MCP stdio and command output.
func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = newLogger(logOut, cfg.Log)
	slog.SetDefault(a.logger)
	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	level, _ := config.ParseLevel(lc.Level)
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// service builds the quiz service from the loaded configuration.
func (a *app) service(opts ...quiz.Option) (*quiz.Service, error) {
	base := []quiz.Option{
		quiz.WithCacheSize(a.cfg.Cache.Size),
		quiz.WithTotalQuestions(a.cfg.Quiz.TotalQuestions),
		quiz.WithLogger(a.logger),
	}
	svc, err := quiz.New(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating quiz service: %w", err)
	}
	return svc, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ijin v%s\n", mcpserver.Version)
		},
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/HendryAvila/ijin/internal/quiz"
	"github.com/spf13/cobra"
)

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report [transcript-file]",
		Short: "Build the final report for a transcript",
		Long:  "Reads a session transcript from the file argument, or from stdin when none is given, and prints the report as JSON.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening transcript: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			text, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("reading transcript: %w", err)
			}

			svc, err := a.service()
			if err != nil {
				return err
			}
			env, err := svc.FinalReport(cmd.Context(), quiz.FinalReportRequest{Transcript: string(text)})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), env)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

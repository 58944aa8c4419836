package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		answers        string
		showTranscript bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a full session with fixed answers and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAnswerList(answers)
			if err != nil {
				return err
			}

			svc, err := a.service()
			if err != nil {
				return err
			}
			sim, err := svc.Simulate(cmd.Context(), values)
			if err != nil {
				return err
			}

			if showTranscript {
				fmt.Fprintln(cmd.OutOrStdout(), sim.Transcript)
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return writeJSON(cmd.OutOrStdout(), sim.Envelope)
		},
	}

	cmd.Flags().StringVar(&answers, "answers", "3", "Comma-separated answers on the 1-5 scale, cycled over the session")
	cmd.Flags().BoolVar(&showTranscript, "transcript", false, "Print the generated transcript before the report")
	return cmd
}

// parseAnswerList reads "3,4,5" into values.
func parseAnswerList(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("answer %q is not a number", part)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("--answers must list at least one value")
	}
	return out, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"mindmate_backend/internal/assessment"

	"github.com/spf13/cobra"
)

func newQuestionsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the assessment questions and their answer values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuestions(cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return cmd
}

func runQuestions(w io.Writer, format string) error {
	qs := assessment.DefaultQuestions()

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(qs)
	case "text":
		for i, q := range qs {
			fmt.Fprintf(w, "%d. %s\n", i+1, q.Prompt)
			for _, o := range q.Options {
				fmt.Fprintf(w, "   [%d] %s\n", o.Value, o.Label)
			}
		}
		return nil
	default:
		return exitError(2, "unknown format %q (want text or json)", format)
	}
}

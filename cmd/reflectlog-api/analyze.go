package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/reflectlog/backend/internal/compute"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [time-patterns|co-occurrence|trends|statistics]",
	Short: "Run one analytics computation over a JSON data set",
	Long: `Read an encoded reflection list (or number array, for statistics)
from stdin or --input and print the encoded result to stdout.

The computation is best-effort: undecodable or empty input produces the
operation's empty default result and exit code 0.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"time-patterns", "co-occurrence", "trends", "statistics"},
	RunE:      runAnalyze,
}

var inputPath string

func init() {
	analyzeCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file (defaults to stdin)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var result string
	switch args[0] {
	case "time-patterns":
		result = compute.CalculateTimePatterns(string(data))
	case "co-occurrence":
		result = compute.CalculateCoOccurrence(string(data))
	case "trends":
		result = compute.CalculateTrends(string(data))
	case "statistics":
		result = compute.CalculateStatistics(string(data))
	default:
		return fmt.Errorf("unknown operation %q", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

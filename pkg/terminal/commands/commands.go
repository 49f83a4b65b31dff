package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/terminal/export"
)

func addCommonFlags(cmd *cobra.Command, input, format *string) {
	cmd.Flags().StringVar(input, "input", "", "Path to the JSON input file")
	cmd.Flags().StringVar(format, "format", string(export.FormatTable), "Output format: table or json")
	_ = cmd.MarkFlagRequired("input")
}

func readInput(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}
	return nil
}

func newReporter(format string) (*export.Reporter, error) {
	switch export.Format(format) {
	case export.FormatTable, export.FormatJSON:
		return export.NewReporter(os.Stdout, export.Format(format)), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

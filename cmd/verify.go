package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"element-attributes/core/compile"
	"element-attributes/core/config"
	"element-attributes/core/filter"
	"element-attributes/core/sink"
	"element-attributes/feature/integrity"

	"github.com/spf13/cobra"
)

var verifyJSON bool

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [path]",
	Short: "Check a compiled table",
	Long:  `Decodes a compiled table (json or module) and checks its invariants. Outputs metrics by default or the full report with --json flag. Exits non-zero on any violation.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := config.LoadConfig(".")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			path = cfg.Output.Path
		}

		table, err := sink.NewFileSink(path, "").Read(cmd.Context())
		if err != nil {
			return err
		}

		report := integrity.NewTableReport(table, filter.Default)
		if err := printReport(cmd.OutOrStdout(), path, report, verifyJSON); err != nil {
			return err
		}
		if !report.Valid() {
			return fmt.Errorf("%w: %d violations", compile.ErrInvalidTable, len(report.Violations))
		}
		return nil
	},
}

func printReport(w io.Writer, path string, report *integrity.TableReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintln(w, "\n--- Table Report ---")
	fmt.Fprintf(w, "File:           %s\n", path)
	fmt.Fprintf(w, "Elements:       %d\n", report.Elements)
	fmt.Fprintf(w, "Global:         %d\n", report.Global)
	fmt.Fprintf(w, "Pairs:          %d\n", report.Pairs)
	fmt.Fprintf(w, "Empty elements: %d\n", len(report.EmptyElements))
	fmt.Fprintln(w, "--------------------")

	if report.Valid() {
		fmt.Fprintln(w, "Status:         OK")
		return nil
	}
	fmt.Fprintf(w, "Status:         %d violations\n", len(report.Violations))
	for _, v := range report.Violations {
		fmt.Fprintf(w, " - %s\n", v)
	}
	return nil
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "Print the full report as JSON")
	RootCmd.AddCommand(verifyCmd)
}

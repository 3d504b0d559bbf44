package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"element-attributes/core/compile"
	"element-attributes/core/config"
	"element-attributes/core/fetch"
	"element-attributes/core/filter"
	"element-attributes/core/logger"
	"element-attributes/core/reconcile"
	"element-attributes/feature/svg"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var reconcileJSON bool

// reconcileCmd represents the reconcile command
var reconcileCmd = &cobra.Command{
	Use:   "reconcile [element]",
	Short: "Show which specifications define each element",
	Long:  `Fetches the three SVG specification documents and reports, per element, the sources defining it. With an element argument, also lists the sources of each of its attributes. Outputs metrics by default or detailed JSON with --json flag.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		sources := svg.Sources(cfg.Sources, fetch.NewClient(cfg.Fetch), logg)
		logg.Info("Fetching sources", zap.Int("sources", len(sources)))

		_, contribs, err := compile.BuildWithContributions(cmd.Context(), sources, filter.Default)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(args) == 1 {
			result, ok := reconcile.ReconcileOne(contribs, filter.Default, args[0])
			if !ok {
				return fmt.Errorf("%s: not defined by any source", args[0])
			}
			if reconcileJSON {
				return writeJSON(w, result)
			}
			printResult(w, result)
			return nil
		}

		report := reconcile.ReconcileAll(contribs, filter.Default)
		if reconcileJSON {
			return writeJSON(w, report)
		}
		printSummary(w, report)
		return nil
	},
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSummary(w io.Writer, report *reconcile.Report) {
	fmt.Fprintln(w, "\n--- Reconcile Summary ---")
	fmt.Fprintf(w, "Elements:       %d\n", report.Summary.TotalElements)
	fmt.Fprintf(w, "In all sources: %d\n", report.Summary.Shared)
	for _, name := range report.Sources {
		fmt.Fprintf(w, "%-15s %d (%d unique)\n", name+":", report.Summary.PerSource[name], report.Summary.Unique[name])
	}
	fmt.Fprintln(w, "-------------------------")
}

func printResult(w io.Writer, result *reconcile.ReconcileResult) {
	fmt.Fprintf(w, "Element:  %s\n", result.Element)
	fmt.Fprintf(w, "Sources:  %s\n", strings.Join(result.Sources, " "))
	if len(result.Missing) > 0 {
		fmt.Fprintf(w, "Missing:  %s\n", strings.Join(result.Missing, " "))
	}

	names := make([]string, 0, len(result.Attributes))
	for a := range result.Attributes {
		names = append(names, a)
	}
	sort.Strings(names)
	for _, a := range names {
		fmt.Fprintf(w, "  %-24s %s\n", a, strings.Join(result.Attributes[a], " "))
	}
}

func init() {
	reconcileCmd.Flags().BoolVar(&reconcileJSON, "json", false, "Print the report as JSON")
	RootCmd.AddCommand(reconcileCmd)
}

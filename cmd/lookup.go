package cmd

import (
	"fmt"
	"io"
	"strings"

	"element-attributes/core/config"
	"element-attributes/feature/lookup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var lookupBackend string

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <element>",
	Short: "Print the attributes allowed on an element",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		backend := cfg.Server.Backend
		if lookupBackend != "" {
			backend = lookupBackend
		}

		reader, _, err := openReader(cmd.Context(), cfg, backend)
		if err != nil {
			return err
		}

		report, err := lookup.NewService(reader, 0, zap.NewNop()).Lookup(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		printElement(cmd.OutOrStdout(), report)
		return nil
	},
}

func printElement(w io.Writer, report *lookup.ElementReport) {
	fmt.Fprintf(w, "Element:  %s\n", report.Element)
	fmt.Fprintf(w, "Global:   %s\n", strings.Join(report.Global, " "))
	fmt.Fprintf(w, "Specific: %s\n", strings.Join(report.Specific, " "))
}

func init() {
	lookupCmd.Flags().StringVar(&lookupBackend, "backend", "", "Where to read the table: file, storage or database (overrides SERVER_BACKEND)")
	RootCmd.AddCommand(lookupCmd)
}

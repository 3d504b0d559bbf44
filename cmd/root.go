package cmd

import (
	"fmt"
	"os"

	"element-attributes/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "element-attributes",
	Short: "SVG element attribute table compiler",
	Long: `element-attributes compiles, from the SVG 1.1, SVG Tiny 1.2 and SVG 2 specifications,
a table of the attributes allowed on each SVG element plus the attributes allowed on every element.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config for ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"element-attributes/core/artifact"
	"element-attributes/core/compile"
	"element-attributes/core/config"
	"element-attributes/core/database"
	"element-attributes/core/fetch"
	"element-attributes/core/filter"
	"element-attributes/core/logger"
	"element-attributes/core/sink"
	"element-attributes/core/storage"
	"element-attributes/feature/svg"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildOut    string
	buildFormat string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the element attribute table",
	Long: `Fetches the three SVG specification documents in parallel, extracts their attribute
indexes, merges them and writes the table. Nothing is written if any step fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if buildOut != "" {
			cfg.Output.Path = buildOut
		}
		if buildFormat != "" {
			cfg.Output.Format = buildFormat
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		return runBuild(cmd.Context(), cfg, logg)
	},
}

func runBuild(ctx context.Context, cfg *config.Config, logg *zap.Logger) error {
	startTime := time.Now()
	runID := uuid.NewString()
	logg = logger.WithRunID(logg, runID)

	format, err := artifact.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	// Open every sink before fetching so a bad configuration fails fast
	file := sink.NewFileSink(cfg.Output.Path, format)
	var remote []sink.Sink
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		remote = append(remote, sink.NewStorageSink(client, cfg.Storage, format))
	}
	if cfg.Database.Enabled {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		dbSink := sink.NewDatabaseSink(db)
		if err := dbSink.Migrate(ctx); err != nil {
			return err
		}
		remote = append(remote, dbSink)
	}

	client := fetch.NewClient(cfg.Fetch)
	sources := svg.Sources(cfg.Sources, client, logg)

	logg.Info("Compiling table", zap.Int("sources", len(sources)))
	table, contribs, err := compile.BuildWithContributions(ctx, sources, filter.Default)
	if err != nil {
		return err
	}

	for _, c := range contribs {
		logg.Info("Source merged",
			zap.String("source", c.Source),
			zap.Int("elements", len(c.Map)),
			zap.Int("globals", len(c.Globals)),
		)
	}

	if violations := table.Validate(filter.Default); len(violations) > 0 {
		for _, v := range violations {
			logg.Error("Invalid table", zap.String("violation", v.String()))
		}
		return fmt.Errorf("%w: %d violations", compile.ErrInvalidTable, len(violations))
	}

	written, err := writeOutputs(ctx, file, remote, table, runID)
	if err != nil {
		return err
	}

	for _, s := range written {
		logg.Info("Table written", zap.String("sink", s.Name()))
	}
	logg.Info("Build complete",
		zap.Int("elements", len(table.Elements())),
		zap.Int("global", len(table[compile.GlobalKey])),
		zap.Duration("duration", time.Since(startTime)),
	)
	return nil
}

// writeOutputs writes the remote sinks first and the local file last, so a failed
// upload or transaction leaves the previous file in place.
func writeOutputs(ctx context.Context, file sink.Sink, remote []sink.Sink, t compile.Table, runID string) ([]sink.Sink, error) {
	sinks := append(append([]sink.Sink{}, remote...), file)
	if err := sink.WriteAll(ctx, sinks, t, runID); err != nil {
		return nil, err
	}
	return sinks, nil
}

func init() {
	buildCmd.Flags().StringVar(&buildOut, "out", "", "Output path (overrides OUTPUT_PATH)")
	buildCmd.Flags().StringVar(&buildFormat, "format", "", "Output format: json or module (overrides OUTPUT_FORMAT)")
	RootCmd.AddCommand(buildCmd)
}

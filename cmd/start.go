package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"element-attributes/core/config"
	"element-attributes/core/filter"
	"element-attributes/core/loader"
	"element-attributes/core/logger"
	"element-attributes/core/middleware/auth"
	"element-attributes/core/middleware/rayid"

	"element-attributes/feature/integrity"
	"element-attributes/feature/lookup"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "element-attributes/docs/swagger"
)

// @title Element Attributes API
// @version 1.0
// @description Lookup API for the compiled SVG element attribute table.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the lookup server",
	Long:  `Starts the HTTP server that serves the compiled table from the configured backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidBackend() {
			logg.Fatal("Invalid server backend", zap.String("backend", cfg.Server.Backend))
		}

		// 3. Open the table backend
		reader, db, err := openReader(cmd.Context(), cfg, cfg.Server.Backend)
		if err != nil {
			logg.Fatal("Failed to open table backend", zap.Error(err))
		}
		logg = logg.With(zap.String("backend", cfg.Server.Backend))

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 4. Register Features
		mgr := loader.NewManager(logg)
		ttl := time.Duration(cfg.Server.CacheSeconds) * time.Second
		mgr.Register(lookup.NewFeature(reader, ttl, logg))
		mgr.Register(integrity.NewFeature(reader, filter.Default, db, logg))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gamedata-manager/core/config"
	"gamedata-manager/core/database"
	"gamedata-manager/core/loader"
	"gamedata-manager/core/logger"
	"gamedata-manager/core/middleware/auth"
	"gamedata-manager/core/middleware/rayid"
	"gamedata-manager/core/server"
	"gamedata-manager/core/storage"
	"gamedata-manager/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "gamedata-manager/docs/swagger"
)

// @title GameData Manager API
// @version 1.0
// @description API for validated game data lookups.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the gamedata manager server",
	Long:  `Starts the HTTP server, loads the catalog, and serves the lookup API.`,
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

		// 3. Pick the document source
		source, err := newSource(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to create document source", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()

		catalogFeature := catalog.NewFeature(source, logg)
		mgr.Register(catalogFeature)

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Logging middleware (Zap + RayID)
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

		// Swagger documentation (public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (protect the API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Initial catalog load. A failure here is not fatal: the
		// server stays up in the error state and an explicit reload can
		// retry once the data is fixed.
		go func() {
			if err := catalogFeature.Service().Load(context.Background()); err != nil {
				logg.Warn("Initial catalog load failed", zap.Error(err))
			}
		}()

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// newSource builds the configured document source: object storage by
// default, or the game database when server.source is "database".
func newSource(cfg *config.Config, logg *zap.Logger) (catalog.Source, error) {
	if !cfg.Server.IsValidSource() {
		return nil, fmt.Errorf("invalid document source %q (expected %s or %s)",
			cfg.Server.Source, server.SourceStorage, server.SourceDatabase)
	}

	switch cfg.Server.Source {
	case server.SourceDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		if missing, err := database.VerifyTable(db, catalog.Document{}.TableName(), catalog.DocumentColumns); err != nil {
			logg.Warn("Could not verify documents table", zap.Error(err))
		} else if len(missing) > 0 {
			logg.Warn("Documents table is missing columns", zap.Strings("missing", missing))
		}
		logg.Info("Reading game data from database", zap.String("table", catalog.Document{}.TableName()))
		return catalog.NewDatabaseSource(db), nil
	default:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		logg.Info("Reading game data from storage", zap.String("bucket", cfg.Storage.Bucket))
		return catalog.NewStorageSource(client, cfg.Storage.Bucket), nil
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}

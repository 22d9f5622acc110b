package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gamedata-manager/core/config"
	"gamedata-manager/core/logger"
	"gamedata-manager/core/server"
	"gamedata-manager/core/storage"
	"gamedata-manager/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var jsonFlag bool
var minCapacityFlag int
var buildingFlag string

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Offline game data checks and lookups",
	Long:  `Loads the five game data collections and runs validation or lookup queries without starting the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// catalogValidateCmd represents the catalog validate command
var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate cross-referential integrity of the game data",
	Long:  `Fetches all five collections and prints the complete violation report. Exits non-zero when the data is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, logg, err := newCatalogService()
		if err != nil {
			return err
		}

		report, err := svc.ValidateOnly(ctx)
		if err != nil {
			return fmt.Errorf("catalog load failed: %w", err)
		}

		if jsonFlag {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			fmt.Println(report.Summary())
		}

		if !report.Valid {
			return fmt.Errorf("validation failed with %d violation(s)", len(report.Violations))
		}

		logg.Info("Catalog is valid")
		return nil
	},
}

// catalogRailsCmd represents the catalog rails command
var catalogRailsCmd = &cobra.Command{
	Use:   "rails",
	Short: "List rails at or above a capacity threshold",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, _, err := newCatalogService()
		if err != nil {
			return err
		}
		if err := svc.Load(ctx); err != nil {
			return err
		}

		rails, err := svc.Lookup().RailsByMinCapacity(minCapacityFlag)
		if err != nil {
			return err
		}

		if jsonFlag {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rails)
		}

		for _, rail := range rails {
			fmt.Printf("%-24s capacity=%d power=%.1f\n", rail.ID, rail.Capacity, rail.Power)
		}
		return nil
	},
}

// catalogRecipesCmd represents the catalog recipes command
var catalogRecipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "List the recipes run by a building",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if buildingFlag == "" {
			return fmt.Errorf("--building is required")
		}

		svc, _, err := newCatalogService()
		if err != nil {
			return err
		}
		if err := svc.Load(ctx); err != nil {
			return err
		}

		recipes, err := svc.Lookup().RecipesByBuilding(buildingFlag)
		if err != nil {
			return err
		}

		if jsonFlag {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(recipes)
		}

		for _, recipe := range recipes {
			fmt.Printf("%-24s -> %s x%.1f (%.1fs)\n", recipe.ID, recipe.Output.Item, recipe.Output.Amount, recipe.Duration)
		}
		return nil
	},
}

// newCatalogService builds a catalog service from the configured source,
// plus the logger for commands that want structured output.
func newCatalogService() (*catalog.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if cfg.Server.Source == server.SourceDatabase {
		source, err := newSource(cfg, logg)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewService(source, logg), logg, nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// Cheap preflight so a misconfigured bucket reads as "documents
	// missing" instead of five parallel fetch failures.
	if missing, err := catalog.CheckDocuments(context.Background(), client, cfg.Storage.Bucket); err != nil {
		logg.Warn("Document preflight failed", zap.Error(err))
	} else if len(missing) > 0 {
		logg.Warn("Documents missing from bucket", zap.Strings("missing", missing))
	}

	return catalog.NewService(catalog.NewStorageSource(client, cfg.Storage.Bucket), logg), logg, nil
}

func init() {
	catalogValidateCmd.Flags().BoolVar(&jsonFlag, "json", false, "Output the full report as JSON")
	catalogRailsCmd.Flags().BoolVar(&jsonFlag, "json", false, "Output as JSON")
	catalogRailsCmd.Flags().IntVar(&minCapacityFlag, "min-capacity", 0, "Capacity threshold")
	catalogRecipesCmd.Flags().BoolVar(&jsonFlag, "json", false, "Output as JSON")
	catalogRecipesCmd.Flags().StringVar(&buildingFlag, "building", "", "Building ID")

	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogRailsCmd)
	catalogCmd.AddCommand(catalogRecipesCmd)
	RootCmd.AddCommand(catalogCmd)
}

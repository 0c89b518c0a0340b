package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/titanic-api/internal/config"
	"github.com/aanand-mishra/titanic-api/internal/dataset"
	"github.com/aanand-mishra/titanic-api/internal/logger"
	"github.com/aanand-mishra/titanic-api/internal/storage/sqlite"
)

func newImportCmd(configPath *string) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a manifest CSV into storage, replacing rows with the same id",
		RunE: func(c *cobra.Command, _ []string) error {
			if csvPath == "" {
				return errors.New("--csv is required")
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log := logger.New(cfg.Env, os.Stderr)

			store, err := sqlite.New(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			passengers, err := dataset.LoadFile(c.Context(), csvPath)
			if err != nil {
				return err
			}

			n, err := store.ImportPassengers(c.Context(), passengers)
			if err != nil {
				return err
			}

			log.Info("import finished",
				slog.String("csv", csvPath),
				slog.String("storage", cfg.StoragePath),
				slog.Int64("passengers", n))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "path to the manifest CSV")
	return cmd
}

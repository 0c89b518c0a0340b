// Package cli wires configuration, storage, and the query handlers into
// the titanic-api commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "titanic-api",
		Short:        "Query API over the Titanic passenger manifest",
		SilenceUsage: true,
		// Bare invocation serves, matching how the container runs it.
		RunE: func(c *cobra.Command, _ []string) error {
			return runServe(c.Context(), configPath)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the configuration YAML file (or CONFIG_PATH)")

	cmd.AddCommand(newServeCmd(&configPath), newImportCmd(&configPath))
	return cmd
}

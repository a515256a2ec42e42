package cmd

import (
	"topology-manager/feature/topology"

	"github.com/spf13/cobra"
)

// migrateCmd creates or updates the topology tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the topology database schema",
	Long:  `Creates the topology tables and seeds the sentinel vendor prefix. Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if err := rt.openDB(); err != nil {
			return err
		}
		if err := topology.Migrate(cmd.Context(), rt.db); err != nil {
			return err
		}

		rt.logger.Info("Schema is up to date")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}

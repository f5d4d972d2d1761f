package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stitchworks/machine-log-backend/cmd/migrate"
	"github.com/stitchworks/machine-log-backend/config"
	"github.com/stitchworks/machine-log-backend/server"
)

var rootCmd = &cobra.Command{
	Use:   "machine-log-backend",
	Short: "Sewing machine log and KPI report service",
}

func GetRootCmd(config *config.Config) *cobra.Command {
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DB.User,
		config.DB.Password,
		config.DB.Host,
		config.DB.Port,
		config.DB.DBName,
		config.DB.SSLMode)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			server.RunServer(config)
		},
	})

	rootCmd.AddCommand(migrate.GetMigrateCmd(dbURL))

	return rootCmd
}

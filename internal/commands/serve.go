package commands

import (
	"github.com/spf13/cobra"

	"github.com/adanyl0v/go-projects/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		Long:  "Run the API server configured from the environment and an optional .env file.",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.InitDefaultLogger()
		},
		Run: func(cmd *cobra.Command, args []string) {
			app.MustReadEnv()
			app.MustInitApplicationLogger()

			closeStore := app.MustConnectStore()
			defer closeStore()

			app.MustConnectRedis()
			defer app.DisconnectRedis()

			app.MustListenAndServeHTTP()
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.InitDefaultLogger()
		},
		Run: func(cmd *cobra.Command, args []string) {
			app.MustReadEnv()
			app.MustInitApplicationLogger()

			app.MustConnectPostgres()
			defer app.DisconnectPostgres()

			app.MustMigratePostgres()
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/forcedeck/internal/app"
)

// newServeCmd creates the serve command.
func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  `Start the dashboard API server. It stops on SIGINT or SIGTERM after draining in-flight requests.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), *configPath, Version)
		},
	}
}

// Package cli implements the CLI adapter for forcedeck.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/forcedeck/internal/app"
	"github.com/bnema/forcedeck/internal/domain"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// credentialFlags are shared by every command that talks to an org.
type credentialFlags struct {
	InstanceURL string
	AccessToken string
}

func (f *credentialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.InstanceURL, "instance-url", "", "Org instance URL (default: salesforce.instance_url)")
	cmd.Flags().StringVar(&f.AccessToken, "access-token", "", "OAuth access token (default: salesforce.access_token)")
}

// resolve prefers flags over configured values.
func (f *credentialFlags) resolve(k *app.Kernel) domain.Credentials {
	creds := domain.Credentials{InstanceURL: f.InstanceURL, AccessToken: f.AccessToken}
	if creds.InstanceURL == "" {
		creds.InstanceURL = k.DefaultInstanceURL()
	}
	if creds.AccessToken == "" {
		creds.AccessToken = k.DefaultAccessToken()
	}
	return creds
}

// NewRootCmd creates the root command for the forcedeck CLI.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "forcedeck",
		Short: "forcedeck - Salesforce org dashboard API and Apex deployer",
		Long: `forcedeck serves the JSON API behind the org dashboard and deploys
Apex class bodies through the Tooling API container workflow.

Credentials are passed per request by the dashboard. CLI commands take
them from flags or from the salesforce section of the config file.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(newServeCmd(&configPath))
	rootCmd.AddCommand(newDeployClassCmd(&configPath))
	rootCmd.AddCommand(newGetClassCmd(&configPath))
	rootCmd.AddCommand(newClassesCmd(&configPath))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("forcedeck %s\n", Version)
			cmd.Printf("Commit: %s\n", Commit)
			cmd.Printf("Build Date: %s\n", BuildDate)
		},
	}
}

// withKernel opens an in-process kernel for the duration of fn.
func withKernel(configPath string, fn func(k *app.Kernel) error) error {
	k, err := app.NewKernel(configPath, Version)
	if err != nil {
		return err
	}
	defer func() { _ = k.Close() }()
	return fn(k)
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	BuildDate = date
}

package main

import (
	"github.com/go-kit/log"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
}

// NewRootCommand creates the root command of the iotpersistence CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "iotpersistence",
		Short: "Multi-tenant key-value persistence for IoT devices",
		Long: `iotpersistence stores string values under keys on behalf of authenticated users.
Every user sees only its own keys; administrators manage the user directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to the YAML configuration file (default $"+envConfigPath+")")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewInitDBCommand(opts))
	cmd.AddCommand(NewUserCommand(opts))

	return cmd
}

// loadRuntime loads the configuration and builds the logger writing to the command's stderr.
func loadRuntime(opts *RootOptions, cmd *cobra.Command) (*Config, log.Logger, error) {
	config, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	logLevel := config.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}
	return config, newLogger(cmd.ErrOrStderr(), logLevel), nil
}

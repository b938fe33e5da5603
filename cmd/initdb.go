package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"iotpersistence/service"

	"github.com/spf13/cobra"
)

// NewInitDBCommand creates the init-db command.
func NewInitDBCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the schema and the admin account",
		Long: `init-db creates the database schema and the "` + service.AdminName + `" account.
The admin password is read from the first line of standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitDB(rootOpts, cmd)
		},
	}
}

func runInitDB(opts *RootOptions, cmd *cobra.Command) error {
	secret, err := readSecret(cmd.InOrStdin())
	if err != nil {
		return err
	}

	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.directory.Bootstrap(cmd.Context(), secret); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Initialized the database.")
	return nil
}

// readSecret returns the first line of r without its line ending.
func readSecret(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return "", errors.New("read password: no input on stdin")
	}
	return strings.TrimRight(scanner.Text(), "\r"), nil
}

// Package cmd - config commands
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nutricalc/internal/config"
	"nutricalc/internal/errors"
	"nutricalc/internal/logging"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	configCmd.AddCommand(newConfigInitCmd(opts))
	return configCmd
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Long: `Write the configuration currently in effect (defaults, file, .env and
NUTRICALC_* overrides, --format and --verbose) to the path given with --config,
or $HOME/.nutricalc.yaml. An existing file is kept unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath()
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Config("config file already exists, use --force to overwrite", nil).
					WithContext("path", path)
			}

			if err := config.Get().Save(path); err != nil {
				return err
			}
			logging.Info("config written", zap.String("path", path))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

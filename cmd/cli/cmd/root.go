// Package cmd provides the CLI commands for nutricalc.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nutricalc/core/output"
	"nutricalc/internal/config"
	"nutricalc/internal/errors"
	"nutricalc/internal/logging"
)

// Version is the tool version
const Version = "0.1.0"

type rootOptions struct {
	cfgFile  string
	verbose  bool
	format   string
	formulas bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "nutricalc",
		Short: "Unit conversion and calorie estimates for nutrition tracking",
		Long: `nutricalc converts food and body measurements between units and
estimates daily calorie needs (BMR, TDEE, weight-loss and weight-gain targets),
optionally adjusted for older adults and chronic conditions.

Examples:
  nutricalc convert 2 kg lb
  nutricalc convert 1 cups "fl oz" --strict
  nutricalc calories --weight 70 --height 170 --age 65 --activity "lightly active"
  nutricalc calories --weight 154 --weight-unit lb --height 5.6 --height-unit ft --age 78 --senior --condition Diabetes`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.nutricalc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "output format (cli, json)")
	rootCmd.PersistentFlags().BoolVar(&opts.formulas, "formulas", false, "show how each value was calculated")

	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newUnitsCmd(opts))
	rootCmd.AddCommand(newCaloriesCmd(opts))
	rootCmd.AddCommand(newPolicyCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return NewRootCmd().Execute()
}

func (o *rootOptions) configPath() string {
	if o.cfgFile != "" {
		return o.cfgFile
	}
	return config.DefaultPath()
}

func (o *rootOptions) initConfig() error {
	path := o.configPath()

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if o.format != "" {
		cfg.Output.Format = o.format
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return errors.Config("failed to initialize logging", err)
	}
	logging.Debug("configuration loaded", zap.String("path", path), zap.String("format", cfg.Output.Format))
	return nil
}

func (o *rootOptions) render(cmd *cobra.Command, report *output.Report) error {
	formatter, err := output.NewRegistry(o.formulas).Get(config.Get().Output.Format)
	if err != nil {
		return err
	}
	if err := formatter.Render(cmd.OutOrStdout(), report); err != nil {
		logging.Error("failed to render report", zap.String("report", report.ID), zap.Error(err))
		return errors.Internal("failed to render report", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nutricalc v%s\n", Version)
		},
	}
}

/*
Package commands implements the CLI command structure for jsdocgen. It
provides the root command and the generate, plan, and version subcommands,
merging environment configuration with explicit flags.
*/
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sonemaro/jsdocgen/internal/config"
	"github.com/sonemaro/jsdocgen/internal/version"
	"github.com/sonemaro/jsdocgen/pkg/logger"
)

// Options holds state shared by all commands
type Options struct {
	// Cfg is the environment configuration, loaded in the root pre-run
	Cfg config.Config

	// Log is the application logger, created in the root pre-run
	Log logger.Logger

	// Global flags
	Verbosity   int
	NoProgress  bool
	NoColor     bool
	ShowVersion bool
}

// NewRootCommand creates the root command for the application
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "jsdocgen [command] [flags]",
		Short: "Run the jsdoc generator from a validated configuration",
		Long: `jsdocgen v` + version.Version + `
========================================

A tool that gathers source roots, output, and generator settings into a
validated run configuration, stages the jsdoc installation into scratch
space, and invokes it as a subprocess.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.ShowVersion {
				fmt.Println(version.Version)
				os.Exit(0)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Explicit global flags win over environment values.
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = opts.Verbosity
			}
			if cmd.Flags().Changed("no-progress") {
				cfg.NoProgress = opts.NoProgress
			}
			if cmd.Flags().Changed("no-color") {
				cfg.NoColor = opts.NoColor
			}

			opts.Cfg = cfg
			opts.Log = logger.NewLogger(logger.Config{
				Verbosity: cfg.Verbose,
				Output:    os.Stderr,
			})

			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.Verbosity, "verbose", "v",
		"verbose output (can be used multiple times)")
	rootCmd.PersistentFlags().BoolVar(&opts.NoProgress, "no-progress", false,
		"disable progress reporting")
	rootCmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false,
		"disable colored output")
	rootCmd.PersistentFlags().BoolVar(&opts.ShowVersion, "version", false,
		"print version information")

	rootCmd.AddCommand(newGenerateCommand(opts))
	rootCmd.AddCommand(newPlanCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

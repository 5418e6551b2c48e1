package commands

import (
	"github.com/spf13/cobra"

	"github.com/sonemaro/jsdocgen/cmd/jsdocgen/app"
	"github.com/sonemaro/jsdocgen/pkg/logger"
)

// newGenerateCommand creates the generate command
func newGenerateCommand(opts *Options) *cobra.Command {
	flags := &taskFlags{}

	cmd := &cobra.Command{
		Use:   "generate [flags]",
		Short: "Stage the generator and produce documentation",
		Long: `Validate the run configuration, mirror the jsdoc installation into
scratch space, and invoke it against the configured source roots.

Examples:
  # Document a single source tree
  jsdocgen generate -d ./src -o ./docs --tool-dir ./jsdoc --scratch-dir ./work

  # Recurse into subdirectories and include private symbols
  jsdocgen generate -d ./src -o ./docs --tool-dir ./jsdoc --scratch-dir ./work -r -p

  # Tolerate generator failures on a legacy codebase
  jsdocgen generate -d ./src -o ./docs --tool-dir ./jsdoc --scratch-dir ./work --lenient`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.merge(cmd, &opts.Cfg)
			if err := opts.Cfg.Validate(); err != nil {
				return err
			}

			tc, err := buildContext(&opts.Cfg, opts.Log)
			if err != nil {
				return err
			}

			opts.Log.WithFields(logger.Fields{
				"config": opts.Cfg.String(),
			}).Debug("Starting generation")

			application := app.New(&opts.Cfg, opts.Log)
			defer application.Shutdown()

			return application.Generate(cmd.Context(), tc)
		},
	}

	flags.register(cmd)

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/sonemaro/jsdocgen/cmd/jsdocgen/app"
	"github.com/sonemaro/jsdocgen/pkg/output"
)

// newPlanCommand creates the plan command
func newPlanCommand(opts *Options) *cobra.Command {
	flags := &taskFlags{}
	var (
		format     string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "plan [flags]",
		Short: "Show what a generation run would execute, without running it",
		Long: `Validate the run configuration and render the resulting generator
invocation. Nothing is staged and no subprocess is started.

Examples:
  # Inspect the command line a run would use
  jsdocgen plan -d ./src -o ./docs --tool-dir ./jsdoc --scratch-dir ./work

  # Render the plan as JSON for tooling
  jsdocgen plan -d ./src -o ./docs --tool-dir ./jsdoc --scratch-dir ./work -f json

  # Save the plan to a file
  jsdocgen plan -d ./src -o ./docs --tool-dir ./jsdoc --scratch-dir ./work -f yaml --output-file plan.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.merge(cmd, &opts.Cfg)
			if cmd.Flags().Changed("format") {
				opts.Cfg.PlanFormat = format
			}
			if err := opts.Cfg.Validate(); err != nil {
				return err
			}

			tc, err := buildContext(&opts.Cfg, opts.Log)
			if err != nil {
				return err
			}

			application := app.New(&opts.Cfg, opts.Log)
			defer application.Shutdown()

			return application.Plan(tc, output.Format(opts.Cfg.PlanFormat), outputFile)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "text",
		"plan format (text, json, yaml)")
	cmd.Flags().StringVar(&outputFile, "output-file", "",
		"write the plan to a file instead of stdout")

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/sonemaro/jsdocgen/internal/config"
	"github.com/sonemaro/jsdocgen/pkg/logger"
	"github.com/sonemaro/jsdocgen/pkg/task"
)

// taskFlags holds the per-command flag values that feed the run
// configuration builder. Unset flags fall back to environment values.
type taskFlags struct {
	sources        []string
	directories    []string
	outputDir      string
	toolDir        string
	scratchDir     string
	configFile     string
	templateDir    string
	tutorialsDir   string
	debug          bool
	recursive      bool
	includePrivate bool
	lenient        bool
	workers        int
	rateLimit      int
}

// register adds the shared generator flags to a command
func (f *taskFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringSliceVarP(&f.sources, "source", "s", nil,
		"source file to document (can be repeated)")
	flags.StringSliceVarP(&f.directories, "directory", "d", nil,
		"source root directory to document (can be repeated)")
	flags.StringVarP(&f.outputDir, "output-dir", "o", "",
		"directory the generator writes documentation into (must exist)")
	flags.StringVar(&f.toolDir, "tool-dir", "",
		"directory containing the jsdoc installation")
	flags.StringVar(&f.scratchDir, "scratch-dir", "",
		"working directory for staging and generator execution")
	flags.StringVar(&f.configFile, "config-file", "",
		"jsdoc configuration file passed to the generator")
	flags.StringVar(&f.templateDir, "template-dir", "",
		"custom template directory")
	flags.StringVar(&f.tutorialsDir, "tutorials-dir", "",
		"tutorials directory (ignored unless it exists)")
	flags.BoolVar(&f.debug, "debug", false,
		"run the generator in debug mode")
	flags.BoolVarP(&f.recursive, "recursive", "r", false,
		"recurse into subdirectories of the source roots")
	flags.BoolVarP(&f.includePrivate, "include-private", "p", false,
		"include symbols marked @private")
	flags.BoolVar(&f.lenient, "lenient", false,
		"tolerate generator failures instead of failing the run")
	flags.IntVarP(&f.workers, "workers", "w", 0,
		"number of staging workers (0 = number of CPUs)")
	flags.IntVar(&f.rateLimit, "rate-limit", 0,
		"maximum staged files per second (0 = unlimited)")
}

// merge folds the flag values into the environment configuration,
// explicit flags winning over environment values.
func (f *taskFlags) merge(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("source") {
		cfg.Sources = f.sources
	}
	if flags.Changed("directory") {
		cfg.Directories = f.directories
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if flags.Changed("tool-dir") {
		cfg.ToolDir = f.toolDir
	}
	if flags.Changed("scratch-dir") {
		cfg.ScratchDir = f.scratchDir
	}
	if flags.Changed("config-file") {
		cfg.ConfigFile = f.configFile
	}
	if flags.Changed("template-dir") {
		cfg.TemplateDir = f.templateDir
	}
	if flags.Changed("tutorials-dir") {
		cfg.TutorialsDir = f.tutorialsDir
	}
	if flags.Changed("debug") {
		cfg.Debug = f.debug
	}
	if flags.Changed("recursive") {
		cfg.Recursive = f.recursive
	}
	if flags.Changed("include-private") {
		cfg.IncludePrivate = f.includePrivate
	}
	if flags.Changed("lenient") {
		cfg.Lenient = f.lenient
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit = f.rateLimit
	}
}

// buildContext validates the merged configuration into an immutable
// run context. A tutorials directory that was requested but rejected
// by the builder produces a warning rather than an error.
func buildContext(cfg *config.Config, log logger.Logger) (*task.Context, error) {
	tc, err := task.NewBuilder().
		WithSourceFiles(cfg.Sources...).
		WithDirectoryRoots(cfg.Directories...).
		WithOutputDirectory(cfg.OutputDir).
		WithToolDirectory(cfg.ToolDir).
		WithScratchDirectory(cfg.ScratchDir).
		WithConfigFile(cfg.ConfigFile).
		WithTemplateDirectory(cfg.TemplateDir).
		WithTutorialsDirectory(cfg.TutorialsDir).
		WithDebug(cfg.Debug).
		WithRecursive(cfg.Recursive).
		WithIncludePrivate(cfg.IncludePrivate).
		WithLeniency(cfg.Lenient).
		WithLogger(log).
		Build()
	if err != nil {
		return nil, err
	}

	if cfg.TutorialsDir != "" && tc.TutorialsDir() == "" {
		log.WithFields(logger.Fields{
			"path": cfg.TutorialsDir,
		}).Warn("Tutorials directory is not a directory, ignoring")
	}

	return tc, nil
}

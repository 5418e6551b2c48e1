package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application. Values come
// from JSDOCGEN_* environment variables; explicit command-line flags override
// them at the command layer.
type Config struct {
	// Sources is the list of explicit source files
	Sources []string

	// Directories is the list of source directory roots
	Directories []string

	// OutputDir is the directory generated documentation is written to
	OutputDir string

	// ToolDir is the jsdoc installation directory
	ToolDir string

	// ScratchDir is the scratch directory for intermediate files
	ScratchDir string

	// ConfigFile is the path to the jsdoc configuration file
	ConfigFile string

	// TemplateDir is the documentation template directory
	TemplateDir string

	// TutorialsDir is the tutorials directory
	TutorialsDir string

	// Node is the node executable used to run the generator
	Node string

	// Debug runs the generator in debug mode
	Debug bool

	// Recursive makes the generator descend into source directories
	Recursive bool

	// IncludePrivate documents private symbols
	IncludePrivate bool

	// Lenient tolerates generator errors instead of aborting
	Lenient bool

	// Workers is the number of concurrent workers for staging copies
	Workers int

	// RateLimit is the maximum number of file operations per second (0 for unlimited)
	RateLimit int

	// PlanFormat is the format used by the plan command (text, json, or yaml)
	PlanFormat string

	// NoProgress disables progress reporting
	NoProgress bool

	// NoColor disables colored output
	NoColor bool

	// Verbose sets the verbosity level
	Verbose int
}

// validPlanFormats contains the list of supported plan formats
var validPlanFormats = map[string]bool{
	"text": true,
	"json": true,
	"yaml": true,
}

// Load reads configuration from environment variables and validates it
func Load() (Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("node", DefaultNode)
	v.SetDefault("plan_format", "text")
	v.SetDefault("rate_limit", 0)
	v.SetDefault("no_progress", false)
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", 0)

	// Configure environment variables
	v.SetEnvPrefix("JSDOCGEN")
	v.AutomaticEnv()

	// Map environment variables to config fields
	v.BindEnv("sources")
	v.BindEnv("directories")
	v.BindEnv("output_dir")
	v.BindEnv("tool_dir")
	v.BindEnv("scratch_dir")
	v.BindEnv("config_file")
	v.BindEnv("template_dir")
	v.BindEnv("tutorials_dir")
	v.BindEnv("node")
	v.BindEnv("debug")
	v.BindEnv("recursive")
	v.BindEnv("include_private")
	v.BindEnv("lenient")
	v.BindEnv("workers")
	v.BindEnv("rate_limit")
	v.BindEnv("plan_format")
	v.BindEnv("no_progress")
	v.BindEnv("no_color")
	v.BindEnv("verbose")

	// Process verbosity level from string of 'v's
	if verboseStr := v.GetString("verbose"); strings.Count(verboseStr, "v") > 0 {
		v.Set("verbose", strings.Count(verboseStr, "v"))
	}

	cfg := Config{
		Sources:        splitList(v.GetString("sources")),
		Directories:    splitList(v.GetString("directories")),
		OutputDir:      v.GetString("output_dir"),
		ToolDir:        v.GetString("tool_dir"),
		ScratchDir:     v.GetString("scratch_dir"),
		ConfigFile:     v.GetString("config_file"),
		TemplateDir:    v.GetString("template_dir"),
		TutorialsDir:   v.GetString("tutorials_dir"),
		Node:           v.GetString("node"),
		Debug:          v.GetBool("debug"),
		Recursive:      v.GetBool("recursive"),
		IncludePrivate: v.GetBool("include_private"),
		Lenient:        v.GetBool("lenient"),
		Workers:        v.GetInt("workers"),
		RateLimit:      v.GetInt("rate_limit"),
		PlanFormat:     v.GetString("plan_format"),
		NoProgress:     v.GetBool("no_progress"),
		NoColor:        v.GetBool("no_color"),
		Verbose:        v.GetInt("verbose"),
	}

	// Handle special case for workers=0
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers count must be positive")
	}
	maxWorkers := runtime.NumCPU() * MaxWorkerMultiplier
	if c.Workers > maxWorkers {
		return fmt.Errorf("workers count cannot exceed system CPU count * %d", MaxWorkerMultiplier)
	}

	if !validPlanFormats[c.PlanFormat] {
		return fmt.Errorf("invalid plan format: must be one of [text json yaml]")
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative")
	}

	if c.Node == "" {
		return fmt.Errorf("node executable must not be empty")
	}

	return nil
}

// splitList splits a comma-separated environment value into trimmed entries
func splitList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Sources: %v, Directories: %v, OutputDir: %s, ToolDir: %s, "+
			"ScratchDir: %s, Node: %s, Debug: %v, Recursive: %v, "+
			"IncludePrivate: %v, Lenient: %v, Workers: %d, RateLimit: %d, "+
			"PlanFormat: %s, Verbose: %d}",
		c.Sources, c.Directories, c.OutputDir, c.ToolDir,
		c.ScratchDir, c.Node, c.Debug, c.Recursive,
		c.IncludePrivate, c.Lenient, c.Workers, c.RateLimit,
		c.PlanFormat, c.Verbose,
	)
}

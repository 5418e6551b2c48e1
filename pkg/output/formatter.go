/*
Package output renders the resolved invocation plan of a run context in text,
JSON, or YAML form. The plan subcommand uses it to show what a run would
execute without running anything.

Basic usage:

	formatter := output.NewFormatter(output.Config{
		Format:     output.FormatText,
		WithColors: true,
	}, log)

	result, err := formatter.Format(taskContext)
*/
package output

import (
	"errors"
	"fmt"
	"time"

	"github.com/sonemaro/jsdocgen/pkg/logger"
	"github.com/sonemaro/jsdocgen/pkg/runner"
	"github.com/sonemaro/jsdocgen/pkg/task"
)

// Format represents the output format type
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Config holds formatter configuration
type Config struct {
	Format     Format
	WithColors bool

	// NodePath is the node executable shown as the command head.
	// Defaults to "node".
	NodePath string
}

// Formatter defines the interface for invocation plan formatting
type Formatter interface {
	Format(*task.Context) (string, error)
}

// plan is the serializable view of a run context
type plan struct {
	Command        []string  `json:"command" yaml:"command"`
	SourceRoots    []string  `json:"sourceRoots" yaml:"sourceRoots"`
	OutputDir      string    `json:"outputDir" yaml:"outputDir"`
	ToolDir        string    `json:"toolDir" yaml:"toolDir"`
	ScratchDir     string    `json:"scratchDir" yaml:"scratchDir"`
	ConfigFile     string    `json:"configFile,omitempty" yaml:"configFile,omitempty"`
	TemplateDir    string    `json:"templateDir,omitempty" yaml:"templateDir,omitempty"`
	TutorialsDir   string    `json:"tutorialsDir,omitempty" yaml:"tutorialsDir,omitempty"`
	Debug          bool      `json:"debug" yaml:"debug"`
	Recursive      bool      `json:"recursive" yaml:"recursive"`
	IncludePrivate bool      `json:"includePrivate" yaml:"includePrivate"`
	Lenient        bool      `json:"lenient" yaml:"lenient"`
	Generated      time.Time `json:"generated" yaml:"generated"`
}

// formatter implements the Formatter interface
type formatter struct {
	config Config
	log    logger.Logger
}

// NewFormatter creates a new formatter instance
func NewFormatter(config Config, log logger.Logger) Formatter {
	if config.NodePath == "" {
		config.NodePath = "node"
	}

	return &formatter{
		config: config,
		log:    log,
	}
}

// Format renders the invocation plan for tc in the configured format
func (f *formatter) Format(tc *task.Context) (string, error) {
	if tc == nil {
		msg := "nil context provided for formatting"
		f.log.Error(msg)
		return "", errors.New(msg)
	}

	f.log.WithFields(logger.Fields{
		"format":     f.config.Format,
		"withColors": f.config.WithColors,
	}).Debug("Starting format operation")

	switch f.config.Format {
	case FormatText:
		return f.formatText(tc)
	case FormatJSON:
		return f.formatJSON(tc)
	case FormatYAML:
		return f.formatYAML(tc)
	default:
		msg := fmt.Sprintf("unsupported format: %s", f.config.Format)
		f.log.Error(msg)
		return "", errors.New(msg)
	}
}

// buildPlan converts a run context into its serializable view
func (f *formatter) buildPlan(tc *task.Context) *plan {
	command := append([]string{f.config.NodePath}, runner.BuildArgs(tc, "")...)

	return &plan{
		Command:        command,
		SourceRoots:    tc.SourceRoots(),
		OutputDir:      tc.OutputDir(),
		ToolDir:        tc.ToolDir(),
		ScratchDir:     tc.ScratchDir(),
		ConfigFile:     tc.ConfigFile(),
		TemplateDir:    tc.TemplateDir(),
		TutorialsDir:   tc.TutorialsDir(),
		Debug:          tc.Debug(),
		Recursive:      tc.Recursive(),
		IncludePrivate: tc.IncludePrivate(),
		Lenient:        tc.Lenient(),
		Generated:      time.Now(),
	}
}

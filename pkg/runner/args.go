package runner

import (
	"path/filepath"

	"github.com/sonemaro/jsdocgen/pkg/task"
)

// entryScript is the generator's entry point under its installation root.
const entryScript = "jsdoc.js"

// jsdoc command line flags. See https://jsdoc.app/about-commandline.html
const (
	flagConfig      = "-c"
	flagDestination = "-d"
	flagTemplate    = "-t"
	flagTutorials   = "-u"
	flagPrivate     = "-p"
	flagRecursive   = "-r"
	flagDebug       = "--debug"
	flagLenient     = "--lenient"
)

// BuildArgs computes the node argv for a run context. toolRoot is the
// generator root to execute from, normally the staged copy under scratch;
// when empty the context's tool directory is used directly. The result is
// deterministic: flags come in a fixed order, source roots keep their
// builder order.
func BuildArgs(tc *task.Context, toolRoot string) []string {
	if toolRoot == "" {
		toolRoot = tc.ToolDir()
	}

	args := []string{filepath.Join(toolRoot, entryScript)}

	if tc.ConfigFile() != "" {
		args = append(args, flagConfig, tc.ConfigFile())
	}

	args = append(args, flagDestination, tc.OutputDir())

	if tc.TemplateDir() != "" {
		args = append(args, flagTemplate, tc.TemplateDir())
	}

	if tc.TutorialsDir() != "" {
		args = append(args, flagTutorials, tc.TutorialsDir())
	}

	if tc.IncludePrivate() {
		args = append(args, flagPrivate)
	}

	if tc.Recursive() {
		args = append(args, flagRecursive)
	}

	if tc.Debug() {
		args = append(args, flagDebug)
	}

	if tc.Lenient() {
		args = append(args, flagLenient)
	}

	return append(args, tc.SourceRoots()...)
}

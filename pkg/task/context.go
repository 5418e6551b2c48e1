package task

import "github.com/sonemaro/jsdocgen/pkg/logger"

// Context is an immutable description of a single jsdoc generation run.
// It is produced by a Builder and handed to the components that stage and
// execute the run; once built, no field changes. A Context is safe to share
// read-only across goroutines.
type Context struct {
	sourceRoots    []string
	outputDir      string
	toolDir        string
	tutorialsDir   string
	templateDir    string
	configFile     string
	scratchDir     string
	debug          bool
	recursive      bool
	includePrivate bool
	lenient        bool
	log            logger.Logger
}

// SourceRoots returns the deduplicated source roots in first-seen order.
// The returned slice is a copy.
func (c *Context) SourceRoots() []string {
	roots := make([]string, len(c.sourceRoots))
	copy(roots, c.sourceRoots)
	return roots
}

// OutputDir returns the directory jsdoc output is written to. It existed at
// the time the context was built.
func (c *Context) OutputDir() string {
	return c.outputDir
}

// ToolDir returns the jsdoc installation directory. It may not exist.
func (c *Context) ToolDir() string {
	return c.toolDir
}

// TutorialsDir returns the tutorials directory, or "" when none was accepted.
func (c *Context) TutorialsDir() string {
	return c.tutorialsDir
}

// TemplateDir returns the template directory, or "" when unset.
func (c *Context) TemplateDir() string {
	return c.templateDir
}

// ConfigFile returns the path to the jsdoc configuration file, or "" when
// unset.
func (c *Context) ConfigFile() string {
	return c.configFile
}

// ScratchDir returns the scratch directory for intermediate files.
func (c *Context) ScratchDir() string {
	return c.scratchDir
}

// Debug reports whether jsdoc should run in debug mode.
func (c *Context) Debug() bool {
	return c.debug
}

// Recursive reports whether jsdoc should descend into source directories.
func (c *Context) Recursive() bool {
	return c.recursive
}

// IncludePrivate reports whether private symbols should be documented.
func (c *Context) IncludePrivate() bool {
	return c.includePrivate
}

// Lenient reports whether the generator should tolerate errors and continue
// (true) or abort on the first error (false).
func (c *Context) Lenient() bool {
	return c.lenient
}

// Log returns the logging sink supplied to the builder. It may be nil; the
// context only carries it through to the run components.
func (c *Context) Log() logger.Logger {
	return c.log
}

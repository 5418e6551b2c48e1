package task

import (
	"github.com/spf13/afero"

	"github.com/sonemaro/jsdocgen/pkg/logger"
)

// Builder accumulates the settings for a generation run and validates them
// when Build is called. Setters never fail and return the builder for
// chaining. A Builder is a short-lived, single-owner object; it is not safe
// for concurrent mutation.
type Builder struct {
	fs afero.Fs

	sourceFiles    []string
	directoryRoots []string
	seenFiles      map[string]struct{}
	seenRoots      map[string]struct{}

	outputDirectory    string
	toolDirectory      string
	configFile         string
	scratchDirectory   string
	tutorialsDirectory string
	templateDirectory  string

	debug          bool
	recursive      bool
	includePrivate bool
	lenient        bool

	log logger.Logger
}

// NewBuilder returns an empty Builder backed by the OS filesystem.
func NewBuilder() *Builder {
	return NewBuilderFs(afero.NewOsFs())
}

// NewBuilderFs returns an empty Builder that performs its existence checks
// against fs. Tests pass an in-memory filesystem.
func NewBuilderFs(fs afero.Fs) *Builder {
	return &Builder{
		fs:        fs,
		seenFiles: make(map[string]struct{}),
		seenRoots: make(map[string]struct{}),
	}
}

// NewBuilderFrom returns a copy of other so that settings can be reused
// across runs. Every accumulated value is copied except the logger, which
// must be set on the copy explicitly. The copy's source sets are independent
// of the original's.
func NewBuilderFrom(other *Builder) *Builder {
	b := NewBuilderFs(other.fs)

	b.sourceFiles = append(b.sourceFiles, other.sourceFiles...)
	for p := range other.seenFiles {
		b.seenFiles[p] = struct{}{}
	}
	b.directoryRoots = append(b.directoryRoots, other.directoryRoots...)
	for p := range other.seenRoots {
		b.seenRoots[p] = struct{}{}
	}

	b.outputDirectory = other.outputDirectory
	b.toolDirectory = other.toolDirectory
	b.configFile = other.configFile
	b.scratchDirectory = other.scratchDirectory
	b.tutorialsDirectory = other.tutorialsDirectory
	b.templateDirectory = other.templateDirectory

	b.debug = other.debug
	b.recursive = other.recursive
	b.includePrivate = other.includePrivate
	b.lenient = other.lenient

	return b
}

// WithSourceFiles adds each non-empty path to the set of explicit source
// files. Duplicates and empty paths are ignored.
func (b *Builder) WithSourceFiles(paths ...string) *Builder {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, ok := b.seenFiles[p]; ok {
			continue
		}
		b.seenFiles[p] = struct{}{}
		b.sourceFiles = append(b.sourceFiles, p)
	}

	return b
}

// WithDirectoryRoots adds each non-empty path to the set of directory roots.
// Directory roots are merged with the source files at Build time into one
// deduplicated set, preserving first-seen order.
func (b *Builder) WithDirectoryRoots(paths ...string) *Builder {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, ok := b.seenRoots[p]; ok {
			continue
		}
		b.seenRoots[p] = struct{}{}
		b.directoryRoots = append(b.directoryRoots, p)
	}

	return b
}

// WithOutputDirectory sets the directory jsdoc output is written to.
// Existence is checked at Build time, not here.
func (b *Builder) WithOutputDirectory(path string) *Builder {
	b.outputDirectory = path

	return b
}

// WithToolDirectory sets the jsdoc installation directory.
func (b *Builder) WithToolDirectory(path string) *Builder {
	b.toolDirectory = path

	return b
}

// WithConfigFile sets the path to the jsdoc configuration file.
func (b *Builder) WithConfigFile(path string) *Builder {
	b.configFile = path

	return b
}

// WithScratchDirectory sets the scratch directory for intermediate files.
func (b *Builder) WithScratchDirectory(path string) *Builder {
	b.scratchDirectory = path

	return b
}

// WithTemplateDirectory sets the template directory. No existence check is
// performed.
func (b *Builder) WithTemplateDirectory(path string) *Builder {
	b.templateDirectory = path

	return b
}

// WithTutorialsDirectory accepts path only if it currently exists and is a
// directory; otherwise the field stays unset. Callers are deliberately not
// required to check existence first, and an invalid path is swallowed rather
// than rejected. This is the one place a bad input does not surface as an
// error.
func (b *Builder) WithTutorialsDirectory(path string) *Builder {
	if path == "" {
		return b
	}

	info, err := b.fs.Stat(path)
	if err == nil && info.IsDir() {
		b.tutorialsDirectory = path
	}

	return b
}

// WithLogger sets the logging sink carried by the built context.
func (b *Builder) WithLogger(log logger.Logger) *Builder {
	b.log = log

	return b
}

// WithDebug sets whether jsdoc runs in debug mode.
func (b *Builder) WithDebug(debug bool) *Builder {
	b.debug = debug

	return b
}

// WithRecursive sets whether jsdoc descends into source directories.
func (b *Builder) WithRecursive(recursive bool) *Builder {
	b.recursive = recursive

	return b
}

// WithIncludePrivate sets whether private symbols are documented.
func (b *Builder) WithIncludePrivate(includePrivate bool) *Builder {
	b.includePrivate = includePrivate

	return b
}

// WithLeniency sets whether the generator tolerates errors (true) or aborts
// on the first one (false).
func (b *Builder) WithLeniency(lenient bool) *Builder {
	b.lenient = lenient

	return b
}

// Build validates the accumulated settings and freezes them into a Context.
// It fails with an InvalidArgumentError when no source files or directory
// roots were supplied, and with an InvalidStateError when the output
// directory is unset or does not exist, or when the tool or scratch
// directory is unset. There is no partial construction: on error the caller
// must fix the configuration and build again. The only side effects are
// read-only stat calls.
func (b *Builder) Build() (*Context, error) {
	if len(b.sourceFiles) == 0 && len(b.directoryRoots) == 0 {
		return nil, &InvalidArgumentError{
			Reason: "source files and/or directory roots are required",
		}
	}

	// Union of explicit files and directory roots, first-seen order.
	seen := make(map[string]struct{}, len(b.sourceFiles)+len(b.directoryRoots))
	sourceRoots := make([]string, 0, len(b.sourceFiles)+len(b.directoryRoots))
	for _, p := range b.sourceFiles {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		sourceRoots = append(sourceRoots, p)
	}
	for _, p := range b.directoryRoots {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		sourceRoots = append(sourceRoots, p)
	}

	if b.outputDirectory == "" {
		return nil, &InvalidStateError{
			Field:  "output directory",
			Reason: "must be set",
		}
	}
	if exists, err := afero.Exists(b.fs, b.outputDirectory); err != nil || !exists {
		return nil, &InvalidStateError{
			Field:  "output directory",
			Reason: "must exist",
		}
	}

	if b.toolDirectory == "" {
		return nil, &InvalidStateError{
			Field:  "tool directory",
			Reason: "must be set",
		}
	}

	if b.scratchDirectory == "" {
		return nil, &InvalidStateError{
			Field:  "scratch directory",
			Reason: "must be set",
		}
	}

	return &Context{
		sourceRoots:    sourceRoots,
		outputDir:      b.outputDirectory,
		toolDir:        b.toolDirectory,
		tutorialsDir:   b.tutorialsDirectory,
		templateDir:    b.templateDirectory,
		configFile:     b.configFile,
		scratchDir:     b.scratchDirectory,
		debug:          b.debug,
		recursive:      b.recursive,
		includePrivate: b.includePrivate,
		lenient:        b.lenient,
		log:            b.log,
	}, nil
}

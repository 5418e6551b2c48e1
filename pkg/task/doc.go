/*
Package task defines the run context for a jsdoc generation run: an immutable
Context value describing one invocation, and the Builder that accumulates and
validates its settings.

Basic Usage:

	ctx, err := task.NewBuilder().
	    WithDirectoryRoots("src/main/js").
	    WithOutputDirectory("target/jsdoc").
	    WithToolDirectory("/opt/jsdoc").
	    WithScratchDirectory(os.TempDir()).
	    WithRecursive(true).
	    WithLogger(log).
	    Build()
	if err != nil {
	    // *task.InvalidArgumentError: no sources at all
	    // *task.InvalidStateError:    missing/invalid required directory
	}

Source Roots:

Explicit source files and directory roots are accumulated separately and
merged at Build time into one deduplicated set that preserves first-seen
order. At least one of the two must be non-empty.

Validation:

Build checks that the output directory exists, and that the tool and scratch
directories are set. All failures are immediate and synchronous; there is no
partially built Context. Setters never fail. The single exception to the
fail-fast rule is WithTutorialsDirectory, which silently keeps the field
unset when the path is missing or not a directory.

Builder Reuse:

NewBuilderFrom copies a builder so that common settings can be shared across
several runs. The logger is not copied; each run sets its own.

Filesystem:

Existence checks go through an afero.Fs supplied at construction. Production
code uses NewBuilder (OS filesystem); tests use NewBuilderFs with a memory
filesystem.

Concurrency:

A Builder is a single-owner object populated and finalized within one
invocation flow. A built Context is immutable and safe to share read-only.
*/
package task

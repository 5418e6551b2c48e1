package stage

import "time"

// Result contains statistics about a completed staging operation
type Result struct {
	// ToolRoot is the staged generator root inside the scratch directory
	ToolRoot string

	// Files is the number of files copied
	Files int

	// Bytes is the total number of bytes copied
	Bytes int64

	// Duration is how long staging took
	Duration time.Duration
}

// Config contains stager configuration options
type Config struct {
	// Workers is the number of concurrent copy workers
	Workers int

	// RateLimit caps file operations per second (0 for unlimited)
	RateLimit int

	// OnFile, when set, is called with each file path as its copy completes.
	// Used by the progress display.
	OnFile func(path string)
}

// copyResult is the per-file payload carried through the worker pool
type copyResult struct {
	path  string
	bytes int64
}

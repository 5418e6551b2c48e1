/*
Package logger provides the structured logging facade used across jsdocgen.
It wraps uber-go/zap to expose a small interface with verbosity levels and
structured fields.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 0,  // Default level (INFO)
	})

	log.Info("Generation started")
	log.Debug("Resolved tool directory") // Only shown with verbosity >= 1
	log.Trace("Staging file")            // Only shown with verbosity >= 2

Verbosity Levels:

	0: Info, Warn, Error (default)
	1: Debug + Level 0
	2: Trace + Level 1

Structured Logging:

	log.WithFields(logger.Fields{
	    "component": "stage",
	    "path":      "/some/path",
	    "files":     42,
	}).Info("Staging completed")

Output Example (JSON):

	{
	    "level": "info",
	    "ts": "2026-01-20T15:04:05.000Z",
	    "message": "Staging completed",
	    "component": "stage",
	    "path": "/some/path",
	    "files": 42
	}

The Logger interface doubles as the opaque logging sink handed to a task
context. The run context stores it untouched and passes it through to the
components that execute the run; building and validating a context never
produces log output on its own.

Thread Safety:

The logger is safe for concurrent use by multiple goroutines. All logging
methods can be called concurrently.
*/
package logger

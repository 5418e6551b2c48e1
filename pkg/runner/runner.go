/*
Package runner executes the jsdoc generator as a subprocess for a validated
run context. It owns argv construction, process lifecycle, and the lenient
exit-code policy; it does not interpret generator output.

Basic usage:

	r := runner.New(runner.Config{}, log)
	if err := r.Run(ctx, taskContext, stagedRoot); err != nil {
	    // *runner.RunError carries the generator's exit code
	}
*/
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/sonemaro/jsdocgen/pkg/logger"
	"github.com/sonemaro/jsdocgen/pkg/task"
)

// RunError reports a generator run that exited with a nonzero status while
// leniency was off.
type RunError struct {
	ExitCode int
	Err      error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("generator exited with code %d: %v", e.ExitCode, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// Config holds runner configuration
type Config struct {
	// NodePath is the node executable used to run the generator.
	// Defaults to "node" resolved from PATH.
	NodePath string
}

// Runner executes a generation run described by a task context.
type Runner interface {
	// Run builds the generator argv for tc and executes it, working from the
	// context's scratch directory. toolRoot is the generator root to execute
	// from (normally the staged copy); empty means the context's tool
	// directory. When tc is lenient a nonzero exit is logged and tolerated;
	// otherwise it is returned as a *RunError.
	Run(ctx context.Context, tc *task.Context, toolRoot string) error
}

type runner struct {
	config Config
	log    logger.Logger
}

// New creates a new runner instance
func New(config Config, log logger.Logger) Runner {
	if config.NodePath == "" {
		config.NodePath = "node"
	}

	return &runner{
		config: config,
		log:    log,
	}
}

func (r *runner) Run(ctx context.Context, tc *task.Context, toolRoot string) error {
	args := BuildArgs(tc, toolRoot)

	r.log.WithFields(logger.Fields{
		"node": r.config.NodePath,
		"args": args,
		"cwd":  tc.ScratchDir(),
	}).Debug("Invoking generator")

	cmd := exec.CommandContext(ctx, r.config.NodePath, args...)
	cmd.Dir = tc.ScratchDir()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err == nil {
		r.log.WithFields(logger.Fields{
			"duration": elapsed,
		}).Info("Generation completed")
		return nil
	}

	if ctx.Err() != nil {
		return fmt.Errorf("generator interrupted: %w", ctx.Err())
	}

	exitCode := -1
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}

	if tc.Lenient() {
		r.log.WithFields(logger.Fields{
			"exitCode": exitCode,
			"duration": elapsed,
		}).Warn("Generator reported errors, continuing (lenient mode)")
		return nil
	}

	r.log.WithFields(logger.Fields{
		"exitCode": exitCode,
		"duration": elapsed,
	}).Error("Generation failed")

	return &RunError{ExitCode: exitCode, Err: err}
}

/*
Package app provides the application container and orchestration for
jsdocgen. It owns component lifecycle, coordinates the staging and generation
phases, and handles graceful shutdown.

The container wires together:
- Logger for structured logging
- Stager for copying the generator into scratch space
- Runner for the generator subprocess
- Progress visualization
- Invocation plan formatting

Usage:

	application := app.New(cfg, log)
	defer application.Shutdown()
	if err := application.Generate(ctx, taskContext); err != nil {
	    // ...
	}
*/
package app

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/afero"

	"github.com/sonemaro/jsdocgen/internal/config"
	"github.com/sonemaro/jsdocgen/pkg/logger"
	"github.com/sonemaro/jsdocgen/pkg/output"
	"github.com/sonemaro/jsdocgen/pkg/progress"
	"github.com/sonemaro/jsdocgen/pkg/runner"
	"github.com/sonemaro/jsdocgen/pkg/stage"
	"github.com/sonemaro/jsdocgen/pkg/task"
)

// runTimeout bounds a single generation run.
const runTimeout = 1 * time.Hour

// App represents the main application container
type App struct {
	config *config.Config
	log    logger.Logger

	stager   stage.Stager
	runner   runner.Runner
	progress progress.Progress

	stagedFiles atomic.Int64

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	mu     sync.RWMutex
}

// New creates a new application instance. When log is nil a logger is
// created from the configuration's verbosity.
func New(cfg *config.Config, log logger.Logger) *App {
	ctx, cancel := context.WithCancel(context.Background())

	if log == nil {
		log = logger.NewLogger(logger.Config{
			Verbosity: cfg.Verbose,
		})
	}

	app := &App{
		config: cfg,
		log:    log,
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}

	app.initComponents()
	app.setupSignalHandling()

	app.log.WithFields(logger.Fields{
		"workers": cfg.Workers,
		"verbose": cfg.Verbose,
	}).Info("Application initialized")

	return app
}

// Generate stages the generator into scratch space and runs it for the
// given task context.
func (a *App) Generate(ctx context.Context, tc *task.Context) error {
	defer func() {
		if r := recover(); r != nil {
			a.log.WithFields(logger.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic")
		}
	}()

	a.log.WithFields(logger.Fields{
		"sourceRoots": tc.SourceRoots(),
		"outputDir":   tc.OutputDir(),
		"toolDir":     tc.ToolDir(),
		"scratchDir":  tc.ScratchDir(),
	}).Info("Starting generation run")

	runCtx, cancel := context.WithTimeout(joinContexts(ctx, a.ctx), runTimeout)
	defer cancel()

	a.stagedFiles.Store(0)
	a.progress.Start("Staging generator...")

	staged, err := a.stager.Stage(runCtx, tc)
	if err != nil {
		a.progress.Error(fmt.Sprintf("Staging failed: %v", err))
		return fmt.Errorf("staging failed: %w", err)
	}

	a.progress.Complete(fmt.Sprintf("Staged %d files (%d bytes) in %s",
		staged.Files, staged.Bytes, staged.Duration.Round(time.Millisecond)))

	if err := a.runner.Run(runCtx, tc, staged.ToolRoot); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	a.log.WithFields(logger.Fields{
		"outputDir": tc.OutputDir(),
	}).Info("Generation run completed")

	return nil
}

// Plan renders the invocation plan for tc in the given format, writing it to
// outputPath or stdout when the path is empty. Nothing is staged or
// executed.
func (a *App) Plan(tc *task.Context, format output.Format, outputPath string) error {
	a.log.WithFields(logger.Fields{
		"format": format,
		"file":   outputPath,
	}).Debug("Rendering invocation plan")

	formatter := output.NewFormatter(output.Config{
		Format:     format,
		WithColors: !a.config.NoColor && outputPath == "",
		NodePath:   a.config.Node,
	}, a.log)

	rendered, err := formatter.Format(tc)
	if err != nil {
		return fmt.Errorf("plan formatting failed: %w", err)
	}

	return a.writeOutput(rendered, outputPath)
}

// Shutdown performs a graceful shutdown of the application
func (a *App) Shutdown() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	select {
	case <-a.done:
		return nil
	default:
	}

	a.log.Debug("Initiating shutdown")

	a.cancel()
	a.progress.Stop()

	close(a.done)
	a.log.Debug("Shutdown complete")
	return nil
}

// initComponents initializes all application components
func (a *App) initComponents() {
	a.log.Debug("Initializing application components")

	a.progress = progress.New(progress.Config{
		Style:       progressStyle(a.config),
		NoColor:     a.config.NoColor,
		RefreshRate: 100 * time.Millisecond,
	}, a.log)

	fs := afero.NewOsFs()

	a.stager = stage.NewStager(stage.Config{
		Workers:   a.config.Workers,
		RateLimit: a.config.RateLimit,
		OnFile: func(path string) {
			a.progress.Update(progress.Status{
				CurrentItem:    path,
				ItemsProcessed: a.stagedFiles.Add(1),
			})
		},
	}, fs, a.log)

	a.runner = runner.New(runner.Config{
		NodePath: a.config.Node,
	}, a.log)

	a.log.Debug("Components initialized successfully")
}

// writeOutput writes the rendered plan to the specified destination
func (a *App) writeOutput(content string, outputPath string) error {
	if outputPath == "" {
		_, err := fmt.Fprintln(os.Stdout, content)
		return err
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
			"path":  outputPath,
		}).Error("Failed to write plan file")
		return fmt.Errorf("failed to write plan file: %w", err)
	}

	a.log.WithFields(logger.Fields{
		"path": outputPath,
	}).Info("Plan written successfully")
	return nil
}

// progressStyle picks the progress style for the current configuration.
func progressStyle(cfg *config.Config) progress.Style {
	if cfg.NoProgress {
		return progress.StyleSimple
	}
	return progress.StyleSpinner
}

// joinContexts returns a context cancelled when either parent is. The app
// context covers signal-driven shutdown, the call context covers cobra's
// lifetime.
func joinContexts(a, b context.Context) context.Context {
	if a == nil || a == context.Background() {
		return b
	}

	ctx, cancel := context.WithCancel(a)
	go func() {
		select {
		case <-b.Done():
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx
}

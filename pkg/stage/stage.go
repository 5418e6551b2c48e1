/*
Package stage prepares the scratch directory for a generation run. It mirrors
the jsdoc installation into <scratch>/jsdoc so the generator runs from a
private copy, copying files concurrently through the worker pool.

Basic usage:

	stager := stage.NewStager(stage.Config{Workers: 4}, fs, log)
	result, err := stager.Stage(ctx, taskContext)
*/
package stage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/sonemaro/jsdocgen/pkg/logger"
	"github.com/sonemaro/jsdocgen/pkg/task"
	"github.com/sonemaro/jsdocgen/pkg/worker"
)

// toolSubdir is the directory created under scratch for the staged generator.
const toolSubdir = "jsdoc"

// Stager copies the generator installation into scratch space before a run.
type Stager interface {
	// Stage mirrors the tool directory of tc into its scratch directory and
	// returns copy statistics. Nothing outside the scratch directory is
	// written.
	Stage(ctx context.Context, tc *task.Context) (Result, error)
}

type stager struct {
	config Config
	fs     afero.Fs
	log    logger.Logger
}

// NewStager creates a new stager instance
func NewStager(config Config, fs afero.Fs, log logger.Logger) Stager {
	if config.Workers <= 0 {
		config.Workers = 1
	}

	return &stager{
		config: config,
		fs:     fs,
		log:    log,
	}
}

func (s *stager) Stage(ctx context.Context, tc *task.Context) (Result, error) {
	start := time.Now()
	dest := filepath.Join(tc.ScratchDir(), toolSubdir)

	s.log.WithFields(logger.Fields{
		"toolDir": tc.ToolDir(),
		"dest":    dest,
		"workers": s.config.Workers,
	}).Debug("Staging generator into scratch space")

	if _, err := s.fs.Stat(tc.ToolDir()); err != nil {
		return Result{}, &ToolDirError{Path: tc.ToolDir(), Err: err}
	}

	if err := s.fs.MkdirAll(dest, 0755); err != nil {
		return Result{}, &CopyError{Path: dest, Err: err}
	}

	pool, err := worker.NewPool(worker.Config{
		Workers:   s.config.Workers,
		RateLimit: s.config.RateLimit,
	})
	if err != nil {
		return Result{}, err
	}

	if err := pool.Start(ctx); err != nil {
		return Result{}, err
	}
	defer pool.Stop()

	taskID := 0
	walkErr := afero.Walk(s.fs, tc.ToolDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return &ToolDirError{Path: path, Err: err}
		}

		rel, err := filepath.Rel(tc.ToolDir(), path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if info.IsDir() {
			if err := s.fs.MkdirAll(target, 0755); err != nil {
				return &CopyError{Path: target, Err: err}
			}
			return nil
		}

		src, dst := path, target
		taskID++
		return pool.Submit(worker.Task{
			ID: taskID,
			Execute: func(ctx context.Context) (worker.Result, error) {
				n, err := s.copyFile(src, dst)
				if err != nil {
					return worker.Result{}, &CopyError{Path: src, Err: err}
				}
				if s.config.OnFile != nil {
					s.config.OnFile(src)
				}
				return worker.Result{Data: copyResult{path: dst, bytes: n}}, nil
			},
		})
	})
	if walkErr != nil {
		return Result{}, walkErr
	}

	results, err := pool.Wait()
	if err != nil {
		return Result{}, err
	}

	result := Result{
		ToolRoot: dest,
		Duration: time.Since(start),
	}
	for _, r := range results {
		cr := r.Data.(copyResult)
		result.Files++
		result.Bytes += cr.bytes
	}

	s.log.WithFields(logger.Fields{
		"files":    result.Files,
		"bytes":    result.Bytes,
		"duration": result.Duration,
	}).Debug("Staging completed")

	return result, nil
}

// copyFile copies a single file, creating parent directories as needed.
func (s *stager) copyFile(src, dst string) (int64, error) {
	if err := s.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return 0, err
	}

	in, err := s.fs.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := s.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode(src))
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// fileMode keeps the generator's entry scripts executable in the staged copy.
func fileMode(path string) os.FileMode {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sh", ".cmd", "":
		return 0755
	default:
		return 0644
	}
}

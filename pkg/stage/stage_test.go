package stage

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonemaro/jsdocgen/pkg/logger"
	"github.com/sonemaro/jsdocgen/pkg/task"
)

// mockLogger implements logger.Logger interface for testing
type mockLogger struct {
	logs []string
}

func (m *mockLogger) Info(msg string)                               { m.logs = append(m.logs, "INFO: "+msg) }
func (m *mockLogger) Debug(msg string)                              { m.logs = append(m.logs, "DEBUG: "+msg) }
func (m *mockLogger) Error(msg string)                              { m.logs = append(m.logs, "ERROR: "+msg) }
func (m *mockLogger) Warn(msg string)                               { m.logs = append(m.logs, "WARN: "+msg) }
func (m *mockLogger) Trace(msg string)                              { m.logs = append(m.logs, "TRACE: "+msg) }
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

func setupStageFS(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()

	// Tool installation
	files := map[string]string{
		"/opt/jsdoc/jsdoc.js":                     "#!/usr/bin/env node",
		"/opt/jsdoc/lib/jsdoc/doclet.js":          "// doclet",
		"/opt/jsdoc/templates/default/publish.js": "// publish",
		"/opt/jsdoc/conf.json.EXAMPLE":            "{}",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}

	// Project directories
	require.NoError(t, fs.MkdirAll("/project/out", 0755))
	require.NoError(t, fs.MkdirAll("/tmp/scratch", 0755))
	require.NoError(t, afero.WriteFile(fs, "/project/src/a.js", []byte("// a"), 0644))

	return fs
}

func buildContext(t *testing.T, fs afero.Fs, toolDir string) *task.Context {
	t.Helper()

	ctx, err := task.NewBuilderFs(fs).
		WithDirectoryRoots("/project/src").
		WithOutputDirectory("/project/out").
		WithToolDirectory(toolDir).
		WithScratchDirectory("/tmp/scratch").
		Build()
	require.NoError(t, err)
	return ctx
}

func TestStage(t *testing.T) {
	fs := setupStageFS(t)
	log := &mockLogger{}
	tc := buildContext(t, fs, "/opt/jsdoc")

	stager := NewStager(Config{Workers: 4}, fs, log)
	result, err := stager.Stage(context.Background(), tc)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/tmp/scratch", "jsdoc"), result.ToolRoot)
	assert.Equal(t, 4, result.Files)
	assert.Greater(t, result.Bytes, int64(0))

	// The mirrored tree matches the installation.
	for _, rel := range []string{
		"jsdoc.js",
		"lib/jsdoc/doclet.js",
		"templates/default/publish.js",
		"conf.json.EXAMPLE",
	} {
		src, err := afero.ReadFile(fs, filepath.Join("/opt/jsdoc", rel))
		require.NoError(t, err)
		dst, err := afero.ReadFile(fs, filepath.Join(result.ToolRoot, rel))
		require.NoError(t, err, "missing staged file %s", rel)
		assert.Equal(t, src, dst)
	}
}

func TestStageLargeTree(t *testing.T) {
	// A realistic generator installation has hundreds of files; staging must
	// mirror all of them with a small worker count.
	fs := setupStageFS(t)
	log := &mockLogger{}

	const fileCount = 100
	for i := 0; i < fileCount; i++ {
		path := fmt.Sprintf("/opt/bigjsdoc/lib/mod%03d.js", i)
		require.NoError(t, afero.WriteFile(fs, path, []byte("// mod"), 0644))
	}

	tc := buildContext(t, fs, "/opt/bigjsdoc")
	stager := NewStager(Config{Workers: 2}, fs, log)

	result, err := stager.Stage(context.Background(), tc)
	require.NoError(t, err)
	assert.Equal(t, fileCount, result.Files)

	for _, rel := range []string{"lib/mod000.js", "lib/mod050.js", "lib/mod099.js"} {
		exists, err := afero.Exists(fs, filepath.Join(result.ToolRoot, rel))
		require.NoError(t, err)
		assert.True(t, exists, "missing staged file %s", rel)
	}
}

func TestStageMissingToolDir(t *testing.T) {
	fs := setupStageFS(t)
	log := &mockLogger{}
	tc := buildContext(t, fs, "/opt/nowhere")

	stager := NewStager(Config{Workers: 2}, fs, log)
	_, err := stager.Stage(context.Background(), tc)
	require.Error(t, err)

	var toolErr *ToolDirError
	assert.ErrorAs(t, err, &toolErr)
}

func TestStageOnFileCallback(t *testing.T) {
	fs := setupStageFS(t)
	log := &mockLogger{}
	tc := buildContext(t, fs, "/opt/jsdoc")

	var mu sync.Mutex
	var seen []string
	stager := NewStager(Config{
		Workers: 2,
		OnFile: func(path string) {
			mu.Lock()
			seen = append(seen, path)
			mu.Unlock()
		},
	}, fs, log)

	_, err := stager.Stage(context.Background(), tc)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, seen, 4)
}

func TestStageWritesOnlyUnderScratch(t *testing.T) {
	fs := setupStageFS(t)
	log := &mockLogger{}
	tc := buildContext(t, fs, "/opt/jsdoc")

	stager := NewStager(Config{Workers: 2}, fs, log)
	_, err := stager.Stage(context.Background(), tc)
	require.NoError(t, err)

	// The output directory stays untouched.
	entries, err := afero.ReadDir(fs, "/project/out")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

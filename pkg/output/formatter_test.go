package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

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

func createTestContext(t *testing.T) *task.Context {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/project/out", 0755))

	tc, err := task.NewBuilderFs(fs).
		WithSourceFiles("/project/src/a.js").
		WithDirectoryRoots("/project/lib").
		WithOutputDirectory("/project/out").
		WithToolDirectory("/opt/jsdoc").
		WithScratchDirectory("/tmp/scratch").
		WithConfigFile("/project/conf.json").
		WithRecursive(true).
		Build()
	require.NoError(t, err)
	return tc
}

func TestFormatterText(t *testing.T) {
	tc := createTestContext(t)
	log := &mockLogger{}

	formatter := NewFormatter(Config{Format: FormatText}, log)
	result, err := formatter.Format(tc)
	require.NoError(t, err)

	assert.Contains(t, result, "node /opt/jsdoc/jsdoc.js")
	assert.Contains(t, result, "- /project/src/a.js")
	assert.Contains(t, result, "- /project/lib")
	assert.Contains(t, result, "/project/conf.json")
	assert.Contains(t, result, "recursive=true")
	assert.NotContains(t, result, "Tutorials dir")
}

func TestFormatterJSON(t *testing.T) {
	tc := createTestContext(t)
	log := &mockLogger{}

	formatter := NewFormatter(Config{Format: FormatJSON}, log)
	result, err := formatter.Format(tc)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(result), &decoded))

	assert.Equal(t, "/project/out", decoded["outputDir"])
	assert.Equal(t, true, decoded["recursive"])
	assert.Equal(t, false, decoded["lenient"])

	command, ok := decoded["command"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, "node", command[0])

	// Unset optional fields are omitted entirely.
	_, present := decoded["tutorialsDir"]
	assert.False(t, present)
}

func TestFormatterYAML(t *testing.T) {
	tc := createTestContext(t)
	log := &mockLogger{}

	formatter := NewFormatter(Config{Format: FormatYAML}, log)
	result, err := formatter.Format(tc)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(result), &decoded))

	assert.Equal(t, "/project/out", decoded["outputDir"])
	assert.Equal(t, true, decoded["recursive"])
}

func TestFormatterCustomNodePath(t *testing.T) {
	tc := createTestContext(t)
	log := &mockLogger{}

	formatter := NewFormatter(Config{
		Format:   FormatText,
		NodePath: "/usr/local/bin/node",
	}, log)
	result, err := formatter.Format(tc)
	require.NoError(t, err)

	assert.True(t, strings.Contains(result, "/usr/local/bin/node /opt/jsdoc/jsdoc.js"))
}

func TestFormatterErrors(t *testing.T) {
	log := &mockLogger{}

	formatter := NewFormatter(Config{Format: FormatText}, log)
	_, err := formatter.Format(nil)
	assert.Error(t, err)

	formatter = NewFormatter(Config{Format: Format("xml")}, log)
	_, err = formatter.Format(createTestContext(t))
	assert.Error(t, err)
}

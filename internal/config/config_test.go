package config

import (
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	// Helper function to clean environment variables after each test
	cleanup := func() {
		envVars := []string{
			"JSDOCGEN_SOURCES",
			"JSDOCGEN_DIRECTORIES",
			"JSDOCGEN_OUTPUT_DIR",
			"JSDOCGEN_TOOL_DIR",
			"JSDOCGEN_SCRATCH_DIR",
			"JSDOCGEN_CONFIG_FILE",
			"JSDOCGEN_TEMPLATE_DIR",
			"JSDOCGEN_TUTORIALS_DIR",
			"JSDOCGEN_NODE",
			"JSDOCGEN_DEBUG",
			"JSDOCGEN_RECURSIVE",
			"JSDOCGEN_INCLUDE_PRIVATE",
			"JSDOCGEN_LENIENT",
			"JSDOCGEN_WORKERS",
			"JSDOCGEN_RATE_LIMIT",
			"JSDOCGEN_PLAN_FORMAT",
			"JSDOCGEN_NO_PROGRESS",
			"JSDOCGEN_NO_COLOR",
			"JSDOCGEN_VERBOSE",
		}
		for _, env := range envVars {
			os.Unsetenv(env)
		}
	}

	tests := []struct {
		name     string
		envVars  map[string]string
		expected Config
		wantErr  bool
		errMsg   string
	}{
		{
			name: "default configuration",
			expected: Config{
				Workers:    runtime.NumCPU(),
				Node:       "node",
				PlanFormat: "text",
				RateLimit:  0,
				Verbose:    0,
			},
		},
		{
			name: "configuration from environment variables",
			envVars: map[string]string{
				"JSDOCGEN_SOURCES":         "src/a.js, src/b.js",
				"JSDOCGEN_DIRECTORIES":     "src/lib,src/vendor",
				"JSDOCGEN_OUTPUT_DIR":      "target/jsdoc",
				"JSDOCGEN_TOOL_DIR":        "/opt/jsdoc",
				"JSDOCGEN_SCRATCH_DIR":     "/tmp/jsdocgen",
				"JSDOCGEN_CONFIG_FILE":     "conf.json",
				"JSDOCGEN_TEMPLATE_DIR":    "templates/minami",
				"JSDOCGEN_TUTORIALS_DIR":   "docs/tutorials",
				"JSDOCGEN_NODE":            "/usr/local/bin/node",
				"JSDOCGEN_DEBUG":           "true",
				"JSDOCGEN_RECURSIVE":       "true",
				"JSDOCGEN_INCLUDE_PRIVATE": "true",
				"JSDOCGEN_LENIENT":         "true",
				"JSDOCGEN_WORKERS":         "4",
				"JSDOCGEN_RATE_LIMIT":      "100",
				"JSDOCGEN_PLAN_FORMAT":     "json",
				"JSDOCGEN_NO_PROGRESS":     "true",
				"JSDOCGEN_NO_COLOR":        "true",
				"JSDOCGEN_VERBOSE":         "vv",
			},
			expected: Config{
				Sources:        []string{"src/a.js", "src/b.js"},
				Directories:    []string{"src/lib", "src/vendor"},
				OutputDir:      "target/jsdoc",
				ToolDir:        "/opt/jsdoc",
				ScratchDir:     "/tmp/jsdocgen",
				ConfigFile:     "conf.json",
				TemplateDir:    "templates/minami",
				TutorialsDir:   "docs/tutorials",
				Node:           "/usr/local/bin/node",
				Debug:          true,
				Recursive:      true,
				IncludePrivate: true,
				Lenient:        true,
				Workers:        4,
				RateLimit:      100,
				PlanFormat:     "json",
				NoProgress:     true,
				NoColor:        true,
				Verbose:        2,
			},
		},
		{
			name: "invalid workers count - negative",
			envVars: map[string]string{
				"JSDOCGEN_WORKERS": "-1",
			},
			wantErr: true,
			errMsg:  "workers count must be positive",
		},
		{
			name: "workers zero defaults to CPU count",
			envVars: map[string]string{
				"JSDOCGEN_WORKERS": "0",
			},
			expected: Config{
				Workers:    runtime.NumCPU(),
				Node:       "node",
				PlanFormat: "text",
			},
		},
		{
			name: "invalid plan format",
			envVars: map[string]string{
				"JSDOCGEN_PLAN_FORMAT": "xml",
			},
			wantErr: true,
			errMsg:  "invalid plan format: must be one of [text json yaml]",
		},
		{
			name: "invalid rate limit",
			envVars: map[string]string{
				"JSDOCGEN_RATE_LIMIT": "-5",
			},
			wantErr: true,
			errMsg:  "rate limit must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup()
			defer cleanup()

			for k, v := range tt.envVars {
				require.NoError(t, os.Setenv(k, v))
			}

			cfg, err := Load()

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), tt.errMsg),
					"error %q should contain %q", err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := Config{
		Directories: []string{"src"},
		OutputDir:   "target/jsdoc",
		Node:        "node",
		Workers:     2,
		PlanFormat:  "text",
	}

	s := cfg.String()
	assert.Contains(t, s, "OutputDir: target/jsdoc")
	assert.Contains(t, s, "Workers: 2")
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, splitList("a,b"))
	assert.Equal(t, []string{"a", "b"}, splitList(" a , b "))
}

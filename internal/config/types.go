package config

// PlanFormat represents the supported invocation plan formats
type PlanFormat string

const (
	// PlanFormatText represents the human-readable plan format
	PlanFormatText PlanFormat = "text"

	// PlanFormatJSON represents the JSON plan format
	PlanFormatJSON PlanFormat = "json"

	// PlanFormatYAML represents the YAML plan format
	PlanFormatYAML PlanFormat = "yaml"
)

// Constants for configuration limits and defaults
const (
	// MaxWorkerMultiplier is the maximum multiple of CPU cores for worker count
	MaxWorkerMultiplier = 4

	// DefaultNode is the node executable resolved from PATH
	DefaultNode = "node"
)

// Package config provides environment configuration for the jsdocgen
// application. It reads JSDOCGEN_* variables through viper and validates all
// parameters before the command layer merges them with flags.
//
// # Configuration Loading
//
// To load the configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
// The following environment variables are supported:
//
//	JSDOCGEN_SOURCES          Comma-separated explicit source files
//	JSDOCGEN_DIRECTORIES      Comma-separated source directory roots
//	JSDOCGEN_OUTPUT_DIR       Output directory (must exist at build time)
//	JSDOCGEN_TOOL_DIR         jsdoc installation directory
//	JSDOCGEN_SCRATCH_DIR      Scratch directory for intermediate files
//	JSDOCGEN_CONFIG_FILE      jsdoc configuration file
//	JSDOCGEN_TEMPLATE_DIR     Documentation template directory
//	JSDOCGEN_TUTORIALS_DIR    Tutorials directory
//	JSDOCGEN_NODE             Node executable (default: node)
//	JSDOCGEN_DEBUG            Run the generator in debug mode (true/false)
//	JSDOCGEN_RECURSIVE        Descend into source directories (true/false)
//	JSDOCGEN_INCLUDE_PRIVATE  Document private symbols (true/false)
//	JSDOCGEN_LENIENT          Tolerate generator errors (true/false)
//	JSDOCGEN_WORKERS          Number of staging copy workers (default: CPU cores)
//	JSDOCGEN_RATE_LIMIT       File operations per second (0 for unlimited)
//	JSDOCGEN_PLAN_FORMAT      Plan command format: text|json|yaml
//	JSDOCGEN_NO_PROGRESS      Disable progress reporting (true/false)
//	JSDOCGEN_NO_COLOR         Disable colored output (true/false)
//	JSDOCGEN_VERBOSE          Verbosity level (number of 'v's)
//
// # Configuration Validation
//
// The package validates all values:
//   - Workers must be positive and not exceed CPU cores * 4
//   - PlanFormat must be one of: text, json, yaml
//   - RateLimit must be non-negative
//   - Node must not be empty
//
// Path semantics (existence of the output directory, leniency of the
// tutorials directory) are not checked here; that is the task builder's
// responsibility.
//
// # Thread Safety
//
// The configuration is immutable after loading and safe for concurrent
// access. Loading is designed to happen once at startup.
package config

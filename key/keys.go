// Package key lists every configuration key.
package key

// DefinedFieldsCount is the number of registered keys.
const DefinedFieldsCount = 13

// Color service
const (
	APIURL       = "api.url"
	APITimeout   = "api.timeout"
	APIUserAgent = "api.user_agent"
)

// Scheme generation defaults
const (
	SchemeMode  = "scheme.mode"
	SchemeCount = "scheme.count"
)

// Output
const (
	OutputFormat      = "output.format"
	OutputVerbose     = "output.verbose"
	OutputSwatchWidth = "output.swatch_width"
)

const (
	IconsVariant = "icons.variant"
)

// Logs
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI
const (
	CliColored = "cli.colored"
)

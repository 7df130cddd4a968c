// Package constant holds the application name and version.
package constant

const (
	// Colorful names the binary, the config file and the environment prefix.
	Colorful = "colorful"

	// Version of the application.
	Version = "0.3.0"

	// UserAgent identifies requests made to the color service.
	UserAgent = Colorful + "/" + Version
)

// DotEnv is the optional file of environment overrides read at startup.
const DotEnv = ".env"

// Build metadata, set with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

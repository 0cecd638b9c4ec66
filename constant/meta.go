// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// Freetint is the canonical application identifier used for filesystem paths and CLI branding.
	Freetint = "freetint"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the HTTP User-Agent string sent to the remote tint service.
	UserAgent = "freetint/" + Version + " (+https://github.com/freetint-cli/freetint)"
)

// Build metadata, overridden at release time via -ldflags.
var (
	Revision = "dev"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)

// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 16

// Palette Addressing - these keys govern which document entries the tool owns and how merges behave.
const (
	PalettePrefix = "palette.prefix"
	PaletteMerge  = "palette.merge"
)

// Scale Generation - these keys provide the factory defaults for tonal scale requests.
const (
	ScaleAnchor       = "scale.anchor"
	ScaleLightnessMin = "scale.lightness_min"
	ScaleLightnessMax = "scale.lightness_max"
)

// Document Handling - these keys configure how the packaged archive is read and rewritten.
const (
	DocumentEntry  = "document.entry"
	DocumentBackup = "document.backup"
)

// Remote Tint Service - these keys manage the legacy network scale retrieval path.
const (
	RemoteEnabled  = "remote.enabled"
	RemoteURL      = "remote.url"
	RemoteCacheTTL = "remote.cache_ttl"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

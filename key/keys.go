// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Download Target - these keys control where the tool writes its files.
const (
	DownloadDir = "download.dir"
)

// External Tool - these keys govern discovery, installation and release tracking of yt-dlp.
const (
	YtdlpPath        = "ytdlp.path"
	YtdlpAutoInstall = "ytdlp.auto_install"
	YtdlpUpdateCheck = "ytdlp.update_check"
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

// CLI Execution Environment - these settings govern terminal presentation.
const (
	CliColored = "cli.colored"
	CliBanner  = "cli.banner"
)

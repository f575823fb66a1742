// Package where resolves the per-user directories the application reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/ytgrab/ytgrab/constant"
	"github.com/ytgrab/ytgrab/filesystem"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "YTGRAB_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honoring EnvConfigPath first and
// the platform user config directory otherwise.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the cache directory used for release metadata.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Binaries resolves the directory where a downloaded yt-dlp is kept.
func Binaries() string {
	return ensureDir(filepath.Join(Config(), "binaries"))
}

// Package ytdlp finds a usable yt-dlp executable and, when there is none,
// installs the official release build into the managed binaries directory.
package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/ytgrab/ytgrab/constant"
	"github.com/ytgrab/ytgrab/filesystem"
	"github.com/ytgrab/ytgrab/key"
	"github.com/ytgrab/ytgrab/log"
	"github.com/ytgrab/ytgrab/where"
)

// ErrNotFound means neither the configuration, PATH nor the managed directory has yt-dlp.
var ErrNotFound = errors.New("yt-dlp not found")

// Origin says where a Location came from.
type Origin int

const (
	// Configured is an explicit ytdlp.path setting.
	Configured Origin = iota + 1
	// SystemPath is an executable found on PATH.
	SystemPath
	// Managed is a binary previously installed by this application.
	Managed
)

func (o Origin) String() string {
	switch o {
	case Configured:
		return "config"
	case SystemPath:
		return "PATH"
	case Managed:
		return "managed"
	default:
		return "unknown"
	}
}

// Location is a resolved yt-dlp executable.
type Location struct {
	Path   string
	Origin Origin
}

var (
	lookPath = exec.LookPath
	probe    = func(ctx context.Context, path string) error {
		_, err := Version(ctx, path)
		return err
	}
)

// Locate resolves the executable to run, in order: configured path, a working
// yt-dlp on PATH, the managed binary for goos.
func Locate(ctx context.Context, goos string) (Location, error) {
	if configured := viper.GetString(key.YtdlpPath); configured != "" {
		return Location{Path: configured, Origin: Configured}, nil
	}

	if path, err := lookPath(constant.Tool); err == nil {
		if err := probe(ctx, path); err == nil {
			return Location{Path: constant.Tool, Origin: SystemPath}, nil
		}
		log.Warnf("%s on PATH does not run: %v", path, err)
	}

	managed := ManagedPath(goos)
	exists, err := filesystem.API().Exists(managed)
	if err != nil {
		return Location{}, fmt.Errorf("stat %s: %w", managed, err)
	}
	if exists {
		return Location{Path: managed, Origin: Managed}, nil
	}

	return Location{}, ErrNotFound
}

// Version returns the output of `path --version`.
func Version(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", path, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// BinaryName is the executable file name on goos.
func BinaryName(goos string) string {
	if goos == constant.Windows {
		return constant.Tool + ".exe"
	}
	return constant.Tool
}

// ManagedPath is where Install places the binary for goos.
func ManagedPath(goos string) string {
	return filepath.Join(where.Binaries(), BinaryName(goos))
}

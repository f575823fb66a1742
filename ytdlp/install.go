package ytdlp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/ytgrab/ytgrab/constant"
	"github.com/ytgrab/ytgrab/filesystem"
	"github.com/ytgrab/ytgrab/log"
	"github.com/ytgrab/ytgrab/util"
)

// ReleaseBase is the prefix of the latest release assets.
var ReleaseBase = "https://github.com/yt-dlp/yt-dlp/releases/latest/download/"

// AssetURL returns the download URL of the standalone build for goos.
func AssetURL(goos string) string {
	switch goos {
	case constant.Windows:
		return ReleaseBase + "yt-dlp.exe"
	case constant.Darwin:
		return ReleaseBase + "yt-dlp_macos"
	default:
		return ReleaseBase + "yt-dlp"
	}
}

// Install downloads url into dest and marks it executable unless goos is Windows.
// The file is written under a temporary name and renamed once complete.
func Install(ctx context.Context, client *http.Client, url, dest, goos string) (int64, error) {
	fs := filesystem.API()

	if err := fs.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return 0, fmt.Errorf("create binaries directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	log.Infof("downloading %s", url)
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("download yt-dlp: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("download yt-dlp: status code %d", resp.StatusCode)
	}

	part := dest + ".part"
	f, err := fs.Create(part)
	if err != nil {
		return 0, fmt.Errorf("save yt-dlp: %w", err)
	}

	n, err := io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = fs.Remove(part)
		return 0, fmt.Errorf("save yt-dlp: %w", err)
	}

	if goos != constant.Windows {
		if err := fs.Chmod(part, 0o755); err != nil {
			return 0, fmt.Errorf("chmod yt-dlp: %w", err)
		}
	}

	if err := fs.Rename(part, dest); err != nil {
		return 0, fmt.Errorf("save yt-dlp: %w", err)
	}

	log.Infof("saved %d bytes to %s", n, dest)
	return n, nil
}

package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/ytgrab/ytgrab/filesystem"
	"github.com/ytgrab/ytgrab/log"
	"github.com/ytgrab/ytgrab/util"
	"github.com/ytgrab/ytgrab/where"
)

// ReleasesAPI is the GitHub endpoint describing the newest yt-dlp release.
var ReleasesAPI = "https://api.github.com/repos/yt-dlp/yt-dlp/releases/latest"

// CacheLifetime bounds how long a looked-up release tag is trusted.
const CacheLifetime = 48 * time.Hour

// Latest returns the newest yt-dlp release tag, served from the cache while it is fresh.
func Latest(ctx context.Context, client *http.Client) (string, error) {
	cache := gache.New[string](&gache.Options{
		Path:       filepath.Join(where.Cache(), "ytdlp-release.json"),
		Lifetime:   CacheLifetime,
		FileSystem: &filesystem.GacheFs{},
	})

	cached, expired, err := cache.Get()
	if err != nil {
		log.Warnf("release cache: %v", err)
	} else if !expired && cached != "" {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesAPI, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("query releases: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("query releases: unexpected status %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decode release: %w", err)
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	if err := cache.Set(latest); err != nil {
		log.Warnf("release cache: %v", err)
	}
	return latest, nil
}

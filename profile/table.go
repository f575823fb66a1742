package profile

import (
	"github.com/samber/mo"
	"github.com/ytgrab/ytgrab/constant"
	"github.com/ytgrab/ytgrab/platform"
)

// GenericAdvisory is printed before downloading from a site without a dedicated profile.
const GenericAdvisory = "Maximum quality may not be available for this site."

// yt-dlp flags.
const (
	FlagFormat           = "-f"
	FlagMergeFormat      = "--merge-output-format"
	FlagEmbedThumbnail   = "--embed-thumbnail"
	FlagAddMetadata      = "--add-metadata"
	FlagOutput           = "--output"
	FlagCookiesBrowser   = "--cookies-from-browser"
	FlagForceIPv4        = "-4"
	FlagGeoBypassCountry = "--geo-bypass-country"
	FlagNoPlaylist       = "--no-playlist"
	FlagUserAgent        = "--user-agent"
	FlagWriteSub         = "--write-sub"
	FlagSubLang          = "--sub-lang"
	FlagSubFormat        = "--sub-format"
	FlagConvertSubs      = "--convert-subs"
	FlagIgnoreErrors     = "--ignore-errors"
)

const (
	mergeFormat   = "mp4"
	cookieBrowser = "firefox"
	geoCountry    = "JP"
)

var table = map[platform.Kind]Profile{
	platform.Twitch: {
		Kind: platform.Twitch,
		Options: []Option{
			pair(FlagFormat, "1080p60+bestaudio"),
			pair(FlagMergeFormat, mergeFormat),
			flag(FlagEmbedThumbnail),
			flag(FlagAddMetadata),
			output(),
		},
		Advisory: mo.None[string](),
	},
	platform.YouTube: {
		Kind: platform.YouTube,
		Options: []Option{
			pair(FlagCookiesBrowser, cookieBrowser),
			flag(FlagForceIPv4),
			pair(FlagFormat, "bestvideo+bestaudio"),
			pair(FlagMergeFormat, mergeFormat),
			flag(FlagEmbedThumbnail),
			flag(FlagAddMetadata),
			pair(FlagGeoBypassCountry, geoCountry),
			output(),
		},
		Advisory: mo.None[string](),
	},
	platform.Twitter: {
		Kind: platform.Twitter,
		Options: []Option{
			pair(FlagMergeFormat, mergeFormat),
			flag(FlagEmbedThumbnail),
			flag(FlagAddMetadata),
			output(),
		},
		Advisory: mo.None[string](),
	},
	platform.Generic: {
		Kind: platform.Generic,
		Options: []Option{
			pair(FlagMergeFormat, mergeFormat),
			output(),
			flag(FlagEmbedThumbnail),
			flag(FlagAddMetadata),
			pair(FlagGeoBypassCountry, geoCountry),
			pair(FlagFormat, "bestvideo+bestaudio/best"),
			flag(FlagNoPlaylist),
			pair(FlagCookiesBrowser, cookieBrowser),
			pair(FlagUserAgent, constant.UserAgent),
			flag(FlagWriteSub),
			pair(FlagSubLang, "all"),
			pair(FlagSubFormat, "best"),
			pair(FlagConvertSubs, "srt"),
			flag(FlagIgnoreErrors),
		},
		Advisory: mo.Some(GenericAdvisory),
	},
}

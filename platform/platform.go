// Package platform classifies a URL into one of the sites the downloader has a dedicated profile for.
//
// Classification is a plain substring search over a fixed, ordered list of
// markers. The first kind whose marker occurs anywhere in the URL wins, so a
// URL mentioning several sites resolves to the one listed first.
package platform

import (
	"strings"

	"github.com/samber/lo"
)

// Kind is the classification of a URL.
type Kind int

const (
	// Generic is the fallback for URLs matching no known marker.
	Generic Kind = iota
	// Twitch is the live streaming platform.
	Twitch
	// YouTube is the video sharing platform.
	YouTube
	// Twitter is the microblogging platform, also served from x.com.
	Twitter
)

type detector struct {
	kind    Kind
	markers []string
}

// detectors is checked in order.
var detectors = []detector{
	{Twitch, []string{"twitch.tv"}},
	{YouTube, []string{"youtube.com", "youtu.be"}},
	{Twitter, []string{"twitter.com", "x.com"}},
}

// Detect returns the kind of the first detector with a marker contained in url.
func Detect(url string) Kind {
	d, ok := lo.Find(detectors, func(d detector) bool {
		return lo.ContainsBy(d.markers, func(marker string) bool {
			return strings.Contains(url, marker)
		})
	})
	if !ok {
		return Generic
	}
	return d.kind
}

// Kinds returns every kind in detection order, Generic last.
func Kinds() []Kind {
	return append(lo.Map(detectors, func(d detector, _ int) Kind { return d.kind }), Generic)
}

// Markers returns a copy of the substrings that select k. Generic has none.
func (k Kind) Markers() []string {
	d, ok := lo.Find(detectors, func(d detector) bool { return d.kind == k })
	if !ok {
		return nil
	}
	return append([]string(nil), d.markers...)
}

func (k Kind) String() string {
	switch k {
	case Twitch:
		return "Twitch"
	case YouTube:
		return "YouTube"
	case Twitter:
		return "Twitter"
	default:
		return "Generic"
	}
}

// Package profile holds the fixed yt-dlp option sets used for each platform kind
// and turns them into a complete command line.
package profile

import (
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/ytgrab/ytgrab/platform"
)

// FilenameTemplate is resolved by yt-dlp into the name of the downloaded file.
const FilenameTemplate = "%(title)s.%(ext)s"

// Option is a single yt-dlp flag with an optional value.
type Option struct {
	Flag  string
	Value mo.Option[string]

	// dirRelative marks the output option whose value is joined onto the download directory.
	dirRelative bool
}

// Args renders o as it appears on the command line.
func (o Option) Args(dir string) []string {
	if o.dirRelative {
		return []string{o.Flag, OutputPath(dir)}
	}
	if v, ok := o.Value.Get(); ok {
		return []string{o.Flag, v}
	}
	return []string{o.Flag}
}

// Profile is the option set chosen for one platform kind.
type Profile struct {
	Kind     platform.Kind
	Options  []Option
	Advisory mo.Option[string]
}

// Command returns the argument vector: tool first, options in table order, url last.
func (p Profile) Command(tool, dir, url string) []string {
	argv := []string{tool}
	for _, o := range p.Options {
		argv = append(argv, o.Args(dir)...)
	}
	return append(argv, url)
}

// OutputPath joins dir and FilenameTemplate with a single slash, dropping any
// trailing separators from dir. The template itself is never rewritten.
func OutputPath(dir string) string {
	if dir == "" {
		dir = "."
	}
	return strings.TrimRight(dir, "/"+string(os.PathSeparator)) + "/" + FilenameTemplate
}

// For returns a copy of the profile for kind; unknown kinds get the Generic profile.
func For(kind platform.Kind) Profile {
	p, ok := table[kind]
	if !ok {
		p = table[platform.Generic]
	}
	p.Options = append([]Option(nil), p.Options...)
	return p
}

// All returns a copy of every profile in detection order.
func All() []Profile {
	return lo.Map(platform.Kinds(), func(k platform.Kind, _ int) Profile { return For(k) })
}

func flag(name string) Option {
	return Option{Flag: name, Value: mo.None[string]()}
}

func pair(name, value string) Option {
	return Option{Flag: name, Value: mo.Some(value)}
}

func output() Option {
	return Option{Flag: FlagOutput, Value: mo.Some(FilenameTemplate), dirRelative: true}
}

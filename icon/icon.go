// Package icon renders status symbols in the variant chosen by the user.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares.
package icon

import (
	"github.com/spf13/viper"
	"github.com/ytgrab/ytgrab/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported variant identifier.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a status symbol.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Progress
	Download
	Link
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "✓", kaomoji: "(^_^)", squares: "🟩"},
	Fail:     {emoji: "❌", nerd: "", plain: "✖", kaomoji: "(T_T)", squares: "🟥"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", kaomoji: "(o_O)", squares: "🟨"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", kaomoji: "(-_-)", squares: "🟦"},
	Download: {emoji: "📥", nerd: "", plain: "↓", kaomoji: "(>_<)", squares: "🟪"},
	Link:     {emoji: "🔗", nerd: "", plain: "→", kaomoji: "(._.)", squares: "⬜"},
}

// Get retrieves the representation of d for the configured variant.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered symbol for i.
func Get(i Icon) string {
	return icons[i].Get()
}

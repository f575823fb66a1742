package version

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/ytgrab/ytgrab/color"
	"github.com/ytgrab/ytgrab/icon"
	"github.com/ytgrab/ytgrab/style"
	"github.com/ytgrab/ytgrab/util"
)

// Notify prints an upgrade hint to w when a yt-dlp release newer than installed exists.
// Lookup failures are silent. It reports whether a hint was printed.
func Notify(ctx context.Context, w io.Writer, client *http.Client, installed string) bool {
	erase := util.PrintErasable(w, fmt.Sprintf("%s Checking for a newer yt-dlp...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx, client)
	erase()
	if err != nil {
		return false
	}

	if comp, err := Compare(latest, installed); err != nil || comp <= 0 {
		return false
	}

	fmt.Fprintf(w, `
%s New yt-dlp release is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(you have %s)", installed)),
		style.Faint("https://github.com/yt-dlp/yt-dlp/releases/tag/"+latest),
	)
	return true
}

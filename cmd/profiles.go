// Package cmd implements the command-line interface.
package cmd

import (
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytgrab/ytgrab/color"
	"github.com/ytgrab/ytgrab/constant"
	"github.com/ytgrab/ytgrab/icon"
	"github.com/ytgrab/ytgrab/key"
	"github.com/ytgrab/ytgrab/platform"
	"github.com/ytgrab/ytgrab/profile"
	"github.com/ytgrab/ytgrab/style"
)

func init() {
	rootCmd.AddCommand(profilesCmd)
}

// profilesCmd shows which yt-dlp options are used for which sites.
var profilesCmd = &cobra.Command{
	Use:     "profiles [url]",
	Short:   "Show the yt-dlp options used for each site, or for a single URL",
	Args:    cobra.MaximumNArgs(1),
	Example: "  ytgrab profiles\n  ytgrab profiles https://youtu.be/abc",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		url := "<url>"
		profiles := profile.All()

		if len(args) == 1 {
			url = args[0]
			profiles = []profile.Profile{profile.For(platform.Detect(url))}
		}

		for i, p := range profiles {
			markers := "anything else"
			if m := p.Kind.Markers(); len(m) > 0 {
				markers = strings.Join(m, ", ")
			}

			fmt.Fprintf(out, "%s %s\n", style.Title(p.Kind.String()), style.Faint(markers))
			if advisory, ok := p.Advisory.Get(); ok {
				fmt.Fprintf(out, "%s %s\n", icon.Get(icon.Warn), style.Fg(color.Yellow)(advisory))
			}
			fmt.Fprintln(out, shellquote.Join(p.Command(constant.Tool, viper.GetString(key.DownloadDir), url)...))

			if i < len(profiles)-1 {
				fmt.Fprintln(out)
			}
		}
	},
}

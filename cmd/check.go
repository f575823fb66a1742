// Package cmd implements the command-line interface.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytgrab/ytgrab/icon"
	"github.com/ytgrab/ytgrab/key"
	"github.com/ytgrab/ytgrab/log"
	"github.com/ytgrab/ytgrab/network"
	"github.com/ytgrab/ytgrab/style"
	"github.com/ytgrab/ytgrab/version"
	"github.com/ytgrab/ytgrab/ytdlp"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolP("update", "u", false, "Also check GitHub for a newer yt-dlp release")
}

// checkCmd verifies, and if allowed installs, the external download tool.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Locate yt-dlp, installing it if needed, and print its version",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		loc, err := ensureTool(ctx, out)
		handleErr(err)

		installed, err := ytdlp.Version(ctx, loc.Path)
		handleErr(err)

		fmt.Fprintf(out, "%s %s %s\n", style.Bold("yt-dlp "+installed), style.Faint(loc.Path), style.Faint("("+loc.Origin.String()+")"))

		if lo.Must(cmd.Flags().GetBool("update")) {
			if !version.Notify(ctx, out, network.Client, installed) {
				fmt.Fprintf(out, "%s no newer release found\n", icon.Get(icon.Success))
			}
		}
	},
}

// ensureTool resolves yt-dlp and downloads the release build when it is missing
// and ytdlp.auto_install allows it.
func ensureTool(ctx context.Context, out io.Writer) (ytdlp.Location, error) {
	loc, err := ytdlp.Locate(ctx, runtime.GOOS)
	switch {
	case err == nil:
		fmt.Fprintf(out, "%s %s\n", style.Fg(style.Success)(icon.Get(icon.Success)), style.Faint("Using yt-dlp from "+loc.Origin.String()))
		return loc, nil
	case !errors.Is(err, ytdlp.ErrNotFound):
		return loc, err
	case !viper.GetBool(key.YtdlpAutoInstall):
		printMissingDependencyError(out)
		return loc, err
	}

	url := ytdlp.AssetURL(runtime.GOOS)
	dest := ytdlp.ManagedPath(runtime.GOOS)
	fmt.Fprintf(out, "%s yt-dlp was not found, downloading %s\n", icon.Get(icon.Download), style.Faint(url))

	n, err := ytdlp.Install(ctx, network.Client, url, dest, runtime.GOOS)
	if err != nil {
		return ytdlp.Location{}, err
	}

	log.Infof("installed yt-dlp to %s", dest)
	fmt.Fprintf(out, "%s saved yt-dlp to %s %s\n", style.Fg(style.Success)(icon.Get(icon.Success)), dest, style.Faint("("+humanize.Bytes(uint64(n))+")"))
	return ytdlp.Location{Path: dest, Origin: ytdlp.Managed}, nil
}

func printMissingDependencyError(out io.Writer) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install yt-dlp"
	case "linux":
		installCmd = "pipx install yt-dlp"
	case "windows":
		installCmd = "winget install yt-dlp"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Failure).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.Failure).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render("yt-dlp was not found in your PATH and automatic installation is disabled.")

	suggestion := fmt.Sprintf("\n\nEnable it with:\n  %s", style.New().Foreground(style.Accent).Bold(true).Render("ytgrab config set "+key.YtdlpAutoInstall+" true"))
	if installCmd != "" {
		suggestion += fmt.Sprintf("\nor install it yourself:\n  %s", style.New().Foreground(style.Accent).Bold(true).Render(installCmd))
	}

	fmt.Fprintln(out, box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}

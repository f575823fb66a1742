// Package cmd implements the command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytgrab/ytgrab/color"
	"github.com/ytgrab/ytgrab/constant"
	"github.com/ytgrab/ytgrab/dispatch"
	"github.com/ytgrab/ytgrab/icon"
	"github.com/ytgrab/ytgrab/key"
	"github.com/ytgrab/ytgrab/log"
	"github.com/ytgrab/ytgrab/network"
	"github.com/ytgrab/ytgrab/open"
	"github.com/ytgrab/ytgrab/prompt"
	"github.com/ytgrab/ytgrab/style"
	"github.com/ytgrab/ytgrab/util"
	"github.com/ytgrab/ytgrab/version"
	"github.com/ytgrab/ytgrab/ytdlp"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("ytdlp", "", "Path to the yt-dlp executable to use")
	lo.Must0(viper.BindPFlag(key.YtdlpPath, rootCmd.PersistentFlags().Lookup("ytdlp")))

	rootCmd.Flags().StringP("dir", "d", "", "Directory the downloaded files are written to")
	lo.Must0(viper.BindPFlag(key.DownloadDir, rootCmd.Flags().Lookup("dir")))

	rootCmd.Flags().BoolP("dry-run", "n", false, "Print the yt-dlp command instead of running it")
	rootCmd.Flags().BoolP("reveal", "r", false, "Open the download directory after a successful download")
}

// rootCmd prompts for a URL and downloads it.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [url]",
	Short: "Download a video with yt-dlp using options tuned for the site it comes from",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Download a video with yt-dlp using options tuned for the site it comes from"),
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	Example: "  ytgrab\n" +
		"  ytgrab https://www.youtube.com/watch?v=dQw4w9WgXcQ\n" +
		"  echo https://x.com/user/status/1 | ytgrab --dry-run",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		var (
			ctx    = cmd.Context()
			out    = cmd.OutOrStdout()
			dryRun = lo.Must(cmd.Flags().GetBool("dry-run"))
			reveal = lo.Must(cmd.Flags().GetBool("reveal"))
			dir    = viper.GetString(key.DownloadDir)
		)

		if viper.GetBool(key.CliBanner) {
			fmt.Fprintln(out, style.Fg(color.HiPurple)(constant.AsciiArtLogo))
		}

		tool := constant.Tool
		if dryRun {
			if loc, err := ytdlp.Locate(ctx, runtime.GOOS); err == nil {
				tool = loc.Path
			}
		} else {
			loc, err := ensureTool(ctx, out)
			handleErr(err)
			tool = loc.Path

			if viper.GetBool(key.YtdlpUpdateCheck) {
				if installed, err := ytdlp.Version(ctx, tool); err == nil {
					version.Notify(ctx, out, network.Client, installed)
				}
			}
		}

		d := &dispatch.Dispatcher{
			Source:  urlSource(args, cmd.InOrStdin(), out),
			Invoker: dispatch.NewExecInvoker(),
			Tool:    tool,
			Dir:     dir,
			Out:     out,
			DryRun:  dryRun,
		}

		result, err := d.Run(ctx)
		if errors.Is(err, terminal.InterruptErr) {
			return
		}
		handleErr(err)

		if reveal && !dryRun && result.Succeeded() {
			if err := open.Start(dir); err != nil {
				log.Warnf("reveal %s: %v", dir, err)
				fmt.Fprintf(out, "%s could not open %s: %v\n", icon.Get(icon.Warn), dir, err)
			}
		}
	},
}

// urlSource picks how the URL is obtained: argument, interactive prompt, or a line of piped input.
func urlSource(args []string, in io.Reader, out io.Writer) dispatch.URLSource {
	if len(args) > 0 {
		return prompt.Static(args[0])
	}
	if f, ok := in.(*os.File); ok && util.IsTerminal(f) {
		return prompt.Survey{Message: prompt.Message}
	}
	return prompt.Line{In: in, Out: out, Message: prompt.Message}
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	handleErr(rootCmd.Execute())
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ytgrab/ytgrab/config"
	"github.com/ytgrab/ytgrab/filesystem"
	"github.com/ytgrab/ytgrab/key"
	"github.com/ytgrab/ytgrab/prompt"
	"github.com/ytgrab/ytgrab/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func run(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func execute(args ...string) string {
	out, err := run(args...)
	So(err, ShouldBeNil)
	return out
}

func TestProfilesCmd(t *testing.T) {
	Convey("profiles", t, func() {
		Convey("Without a URL it should list every profile", func() {
			out := execute("profiles")
			for _, name := range []string{"Twitch", "YouTube", "Twitter", "Generic"} {
				So(out, ShouldContainSubstring, name)
			}
			So(out, ShouldContainSubstring, "--convert-subs srt")
		})

		Convey("With a URL it should show only the matching profile", func() {
			out := execute("profiles", "https://youtu.be/abc")
			So(out, ShouldContainSubstring, "YouTube")
			So(out, ShouldNotContainSubstring, "Generic")
			So(out, ShouldContainSubstring, "--geo-bypass-country JP")
			So(out, ShouldContainSubstring, "https://youtu.be/abc")
		})
	})
}

func TestRootDryRun(t *testing.T) {
	Convey("Given --dry-run and a URL argument", t, func() {
		out := execute("--dry-run", "https://www.twitch.tv/videos/7")

		Convey("The Twitch command should be printed", func() {
			So(out, ShouldContainSubstring, "Twitch")
			So(out, ShouldContainSubstring, "-f 1080p60+bestaudio --merge-output-format mp4 --embed-thumbnail --add-metadata --output")
			So(out, ShouldNotContainSubstring, "Download completed.")
		})
	})

	Convey("Given --dry-run and piped input", t, func() {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetIn(strings.NewReader("https://example.org/v/1\n"))
		rootCmd.SetArgs([]string{"--dry-run"})
		So(rootCmd.Execute(), ShouldBeNil)

		Convey("The prompt and advisory should be printed", func() {
			So(out.String(), ShouldContainSubstring, prompt.Message)
			So(out.String(), ShouldContainSubstring, "Maximum quality may not be available")
			So(out.String(), ShouldContainSubstring, "--ignore-errors")
		})
	})
}

func TestURLSource(t *testing.T) {
	Convey("urlSource", t, func() {
		Convey("Should prefer an argument", func() {
			So(urlSource([]string{"u"}, strings.NewReader(""), nil), ShouldEqual, prompt.Static("u"))
		})

		Convey("Should read a line from non-terminal input", func() {
			_, ok := urlSource(nil, strings.NewReader("u\n"), nil).(prompt.Line)
			So(ok, ShouldBeTrue)
		})
	})
}

func TestEnvVars(t *testing.T) {
	Convey("envVars", t, func() {
		vars := envVars()
		So(vars, ShouldContain, where.EnvConfigPath)
		So(vars, ShouldContain, "YTGRAB_DOWNLOAD_DIR")
		So(vars, ShouldContain, "YTGRAB_YTDLP_AUTO_INSTALL")
	})
}

func TestConfigCmd(t *testing.T) {
	t.Setenv(where.EnvConfigPath, "/ytgrab-config")
	filesystem.SetMemMapFs()
	if err := config.Setup(); err != nil {
		t.Fatal(err)
	}

	Convey("config", t, func() {
		Reset(func() {
			viper.Set(key.IconsVariant, "plain")
			viper.Set(key.LogsLevel, "info")
		})

		Convey("set should persist a value that get then reads back", func() {
			out := execute("config", "set", key.IconsVariant, "emoji")
			So(out, ShouldContainSubstring, key.IconsVariant)

			So(execute("config", "get", key.IconsVariant), ShouldEqual, "emoji\n")

			data, err := filesystem.API().ReadFile(config.File())
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "emoji")
		})

		Convey("set should convert bool keys", func() {
			execute("config", "set", key.YtdlpUpdateCheck, "true")
			So(viper.GetBool(key.YtdlpUpdateCheck), ShouldBeTrue)
			execute("config", "set", key.YtdlpUpdateCheck, "false")
			So(viper.GetBool(key.YtdlpUpdateCheck), ShouldBeFalse)
		})

		Convey("set should reject values the key does not accept", func() {
			_, err := run("config", "set", key.IconsVariant, "sparkles")
			So(err, ShouldNotBeNil)
			So(viper.GetString(key.IconsVariant), ShouldEqual, "plain")

			_, err = run("config", "set", key.LogsWrite, "sometimes")
			So(err, ShouldNotBeNil)
		})

		Convey("set should suggest the closest key for a typo", func() {
			_, err := run("config", "set", "logs.levle", "info")
			So(errors.Is(err, config.ErrUnknownKey), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, key.LogsLevel)
		})

		Convey("reset should restore the default", func() {
			execute("config", "set", key.LogsLevel, "debug")
			So(execute("config", "get", key.LogsLevel), ShouldEqual, "debug\n")

			out := execute("config", "reset", "--key", key.LogsLevel)
			So(out, ShouldContainSubstring, "reset")
			So(execute("config", "get", key.LogsLevel), ShouldEqual, "info\n")
		})

		Convey("info should describe the requested key", func() {
			out := execute("config", "info", "--key", key.DownloadDir, "--json")
			So(out, ShouldContainSubstring, `"key":"download.dir"`)
			So(out, ShouldContainSubstring, `"type":"string"`)
		})
	})
}

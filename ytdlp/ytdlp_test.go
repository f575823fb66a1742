package ytdlp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ytgrab/ytgrab/constant"
	"github.com/ytgrab/ytgrab/filesystem"
	"github.com/ytgrab/ytgrab/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func stubPath(found bool, probeErr error) func() {
	origLook, origProbe := lookPath, probe
	lookPath = func(file string) (string, error) {
		if found {
			return "/usr/bin/" + file, nil
		}
		return "", errors.New("not found")
	}
	probe = func(context.Context, string) error { return probeErr }
	return func() { lookPath, probe = origLook, origProbe }
}

func TestLocate(t *testing.T) {
	ctx := context.Background()

	Convey("Locate", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.YtdlpPath, "")

		Convey("Should prefer the configured path", func() {
			defer stubPath(true, nil)()
			viper.Set(key.YtdlpPath, "/opt/yt-dlp")
			defer viper.Set(key.YtdlpPath, "")

			loc, err := Locate(ctx, constant.Linux)
			So(err, ShouldBeNil)
			So(loc, ShouldResemble, Location{Path: "/opt/yt-dlp", Origin: Configured})
		})

		Convey("Should use a working yt-dlp on PATH", func() {
			defer stubPath(true, nil)()

			loc, err := Locate(ctx, constant.Linux)
			So(err, ShouldBeNil)
			So(loc, ShouldResemble, Location{Path: "yt-dlp", Origin: SystemPath})
		})

		Convey("Should skip a broken yt-dlp on PATH", func() {
			defer stubPath(true, errors.New("exit status 1"))()

			_, err := Locate(ctx, constant.Linux)
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Should fall back to the managed binary", func() {
			defer stubPath(false, nil)()
			So(filesystem.API().WriteFile(ManagedPath(constant.Windows), []byte("MZ"), 0o755), ShouldBeNil)

			loc, err := Locate(ctx, constant.Windows)
			So(err, ShouldBeNil)
			So(loc.Origin, ShouldEqual, Managed)
			So(filepath.Base(loc.Path), ShouldEqual, "yt-dlp.exe")
		})

		Convey("Should report ErrNotFound otherwise", func() {
			defer stubPath(false, nil)()

			_, err := Locate(ctx, constant.Linux)
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestAssetURL(t *testing.T) {
	Convey("AssetURL", t, func() {
		So(AssetURL(constant.Windows), ShouldEndWith, "/yt-dlp.exe")
		So(AssetURL(constant.Darwin), ShouldEndWith, "/yt-dlp_macos")
		So(AssetURL(constant.Linux), ShouldEndWith, "/yt-dlp")
		So(AssetURL(constant.Linux), ShouldStartWith, "https://github.com/yt-dlp/yt-dlp/releases/latest/download/")
	})

	Convey("BinaryName", t, func() {
		So(BinaryName(constant.Windows), ShouldEqual, "yt-dlp.exe")
		So(BinaryName(constant.Darwin), ShouldEqual, "yt-dlp")
	})
}

func TestInstall(t *testing.T) {
	ctx := context.Background()
	payload := []byte("#!/usr/bin/env python3\nprint('yt-dlp')\n")

	Convey("Given a release server", t, func() {
		filesystem.SetMemMapFs()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/yt-dlp" {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write(payload)
		}))
		defer srv.Close()

		dest := "/home/user/.config/ytgrab/binaries/yt-dlp"

		Convey("Install should write an executable file", func() {
			n, err := Install(ctx, srv.Client(), srv.URL+"/yt-dlp", dest, constant.Linux)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, int64(len(payload)))
			So(lo.Must(filesystem.API().ReadFile(dest)), ShouldResemble, payload)

			info := lo.Must(filesystem.API().Stat(dest))
			So(info.Mode().Perm(), ShouldEqual, os.FileMode(0o755))
			So(lo.Must(filesystem.API().Exists(dest+".part")), ShouldBeFalse)
		})

		Convey("Install should fail on a missing asset", func() {
			_, err := Install(ctx, srv.Client(), srv.URL+"/nope", dest, constant.Linux)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "404")
			So(lo.Must(filesystem.API().Exists(dest)), ShouldBeFalse)
		})
	})
}

func TestOrigin(t *testing.T) {
	Convey("Origin", t, func() {
		So(SystemPath.String(), ShouldEqual, "PATH")
		So(Managed.String(), ShouldEqual, "managed")
		So(Origin(0).String(), ShouldEqual, "unknown")
	})
}

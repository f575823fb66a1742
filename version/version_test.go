package version

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytgrab/ytgrab/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		cmp := func(a, b string) int {
			c, err := Compare(a, b)
			So(err, ShouldBeNil)
			return c
		}

		So(cmp("2024.08.06", "2024.07.30"), ShouldEqual, 1)
		So(cmp("2023.12.30", "2024.01.01"), ShouldEqual, -1)
		So(cmp("v1.2.3", "1.2.3"), ShouldEqual, 0)
		So(cmp("2024.08.06.1", "2024.08.06"), ShouldEqual, 0)

		_, err := Compare("nightly", "2024.08.06")
		So(err, ShouldNotBeNil)
	})
}

func releaseServer(tag string, hits *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `"}`))
	}))
}

func TestLatest(t *testing.T) {
	ctx := context.Background()

	Convey("Given a releases endpoint", t, func() {
		filesystem.SetMemMapFs()
		hits := 0
		srv := releaseServer("2025.01.15", &hits)
		defer srv.Close()
		ReleasesAPI = srv.URL

		Convey("Latest should return the tag and cache it", func() {
			v, err := Latest(ctx, srv.Client())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "2025.01.15")

			v, err = Latest(ctx, srv.Client())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "2025.01.15")
			So(hits, ShouldEqual, 1)
		})

		Convey("Notify should print a hint for an older install", func() {
			var out bytes.Buffer
			So(Notify(ctx, &out, srv.Client(), "2024.08.06"), ShouldBeTrue)
			So(out.String(), ShouldContainSubstring, "2025.01.15")
		})

		Convey("Notify should stay quiet for a current install", func() {
			var out bytes.Buffer
			So(Notify(ctx, &out, srv.Client(), "2025.01.15"), ShouldBeFalse)
			So(out.String(), ShouldNotContainSubstring, "New yt-dlp release")
		})
	})

	Convey("Given a failing endpoint", t, func() {
		filesystem.SetMemMapFs()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusForbidden)
		}))
		defer srv.Close()
		ReleasesAPI = srv.URL

		Convey("Latest should report the status", func() {
			_, err := Latest(ctx, srv.Client())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "403")
		})
	})
}

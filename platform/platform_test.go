package platform

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDetect(t *testing.T) {
	Convey("Detect", t, func() {
		Convey("Should recognize the streaming platform", func() {
			So(Detect("https://www.twitch.tv/videos/123"), ShouldEqual, Twitch)
		})

		Convey("Should recognize both video sharing domains", func() {
			So(Detect("https://www.youtube.com/watch?v=abc"), ShouldEqual, YouTube)
			So(Detect("https://youtu.be/abc"), ShouldEqual, YouTube)
		})

		Convey("Should recognize both microblog domains", func() {
			So(Detect("https://twitter.com/user/status/1"), ShouldEqual, Twitter)
			So(Detect("https://x.com/user/status/1"), ShouldEqual, Twitter)
		})

		Convey("Should fall back to Generic", func() {
			So(Detect("https://vimeo.com/123"), ShouldEqual, Generic)
			So(Detect(""), ShouldEqual, Generic)
			So(Detect("not a url at all"), ShouldEqual, Generic)
		})

		Convey("Should let the first listed kind win", func() {
			So(Detect("https://twitch.tv/clip?from=x.com"), ShouldEqual, Twitch)
			So(Detect("https://x.com/share?u=https://youtu.be/abc"), ShouldEqual, YouTube)
		})

		Convey("Should match markers anywhere, without parsing", func() {
			So(Detect("https://netflix.com/title/1"), ShouldEqual, Twitter)
		})
	})
}

func TestKinds(t *testing.T) {
	Convey("Kinds", t, func() {
		So(Kinds(), ShouldResemble, []Kind{Twitch, YouTube, Twitter, Generic})
	})

	Convey("Markers", t, func() {
		So(YouTube.Markers(), ShouldResemble, []string{"youtube.com", "youtu.be"})
		So(Generic.Markers(), ShouldBeNil)

		m := Twitch.Markers()
		m[0] = "changed"
		So(Twitch.Markers()[0], ShouldEqual, "twitch.tv")
	})

	Convey("String", t, func() {
		So(Twitch.String(), ShouldEqual, "Twitch")
		So(Generic.String(), ShouldEqual, "Generic")
	})
}

package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLine(t *testing.T) {
	Convey("Line", t, func() {
		var out bytes.Buffer

		Convey("Should print the prompt and read one line", func() {
			l := Line{In: strings.NewReader("https://youtu.be/abc\nignored\n"), Out: &out}
			url, err := l.ReadURL()
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://youtu.be/abc\n")
			So(out.String(), ShouldEqual, Message+" ")
		})

		Convey("Should leave everything after the first line unread", func() {
			in := strings.NewReader("https://youtu.be/abc\nanswer for the tool\n")
			_, err := Line{In: in}.ReadURL()
			So(err, ShouldBeNil)

			rest, _ := io.ReadAll(in)
			So(string(rest), ShouldEqual, "answer for the tool\n")
		})

		Convey("Should accept input without a trailing newline", func() {
			url, err := Line{In: strings.NewReader("https://x.com/a")}.ReadURL()
			So(err, ShouldBeNil)
			So(url, ShouldEqual, "https://x.com/a")
		})

		Convey("Should return an empty string at EOF", func() {
			url, err := Line{In: strings.NewReader("")}.ReadURL()
			So(err, ShouldBeNil)
			So(url, ShouldBeEmpty)
		})

		Convey("Should surface read errors", func() {
			boom := errors.New("boom")
			_, err := Line{In: iotest.ErrReader(boom)}.ReadURL()
			So(errors.Is(err, boom), ShouldBeTrue)
		})

		Convey("Should use a custom message", func() {
			_, _ = Line{In: strings.NewReader("u\n"), Out: &out, Message: "URL?"}.ReadURL()
			So(out.String(), ShouldEqual, "URL? ")
		})
	})
}

func TestStatic(t *testing.T) {
	Convey("Static", t, func() {
		url, err := Static("https://www.twitch.tv/x").ReadURL()
		So(err, ShouldBeNil)
		So(url, ShouldEqual, "https://www.twitch.tv/x")
	})
}

func TestMessage(t *testing.T) {
	Convey("message", t, func() {
		So(message(""), ShouldEqual, Message)
		So(message("URL?"), ShouldEqual, "URL?")
	})
}

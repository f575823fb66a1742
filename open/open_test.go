package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytgrab/ytgrab/constant"
)

func TestCommand(t *testing.T) {
	Convey("Command", t, func() {
		Convey("Should use xdg-open on linux", func() {
			cmd, ok := Command(constant.Linux, "/downloads")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", "/downloads"})
		})

		Convey("Should use open on darwin", func() {
			cmd, ok := Command(constant.Darwin, "/downloads")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", "/downloads"})
		})

		Convey("Should reject unknown platforms", func() {
			_, ok := Command("plan9", "/downloads")
			So(ok, ShouldBeFalse)
		})
	})
}

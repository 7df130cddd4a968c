package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Command", t, func() {
		Convey("uses xdg-open on linux", func() {
			cmd, err := Command("linux", "https://example.com")
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", "https://example.com"})
		})

		Convey("uses open on darwin", func() {
			cmd, err := Command("darwin", "https://example.com")
			So(err, ShouldBeNil)
			So(cmd.Args[0], ShouldEqual, "open")
		})

		Convey("fails on unknown systems", func() {
			_, err := Command("plan9", "https://example.com")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		Convey("keeps absolute links", func() {
			u, err := Resolve("http://www.thecolorapi.com", "https://www.thecolorapi.com/id?format=svg&hex=FF0000")
			So(err, ShouldBeNil)
			So(u, ShouldEqual, "https://www.thecolorapi.com/id?format=svg&hex=FF0000")
		})

		Convey("joins relative links with the service host", func() {
			u, err := Resolve("http://www.thecolorapi.com/", "/scheme?format=svg&hex=FF0000&mode=monochrome&count=4")
			So(err, ShouldBeNil)
			So(u, ShouldEqual, "http://www.thecolorapi.com/scheme?format=svg&hex=FF0000&mode=monochrome&count=4")
		})

		Convey("rejects an empty link", func() {
			_, err := Resolve("http://www.thecolorapi.com", "")
			So(err, ShouldNotBeNil)
		})
	})
}

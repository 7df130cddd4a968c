package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAPI(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteFile(t *testing.T) {
	Convey("Given an in-memory backend", t, func() {
		SetMemMapFs()

		Convey("WriteFile creates missing directories", func() {
			path := filepath.Join("out", "palettes", "red.json")
			So(WriteFile(path, []byte("{}")), ShouldBeNil)
			So(lo.Must(API().IsDir(filepath.Join("out", "palettes"))), ShouldBeTrue)
			So(string(lo.Must(API().ReadFile(path))), ShouldEqual, "{}")
		})

		Convey("WriteFile replaces existing content", func() {
			So(WriteFile("red.txt", []byte("first")), ShouldBeNil)
			So(WriteFile("red.txt", []byte("second")), ShouldBeNil)
			So(string(lo.Must(API().ReadFile("red.txt"))), ShouldEqual, "second")
		})
	})
}

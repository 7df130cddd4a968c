package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/colorful-cli/colorful/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config() exists", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs() is inside Config()", func() {
			path := Logs()
			So(filepath.Dir(path), ShouldEqual, Config())
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("ConfigFile() is named after the application", func() {
			So(filepath.Base(ConfigFile()), ShouldEqual, "colorful.toml")
		})

		Convey("Config() can be overridden", func() {
			custom := filepath.Join(os.TempDir(), "colorful-where-test")
			lo.Must0(os.Setenv(EnvConfigPath, custom))
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, custom)
			So(lo.Must(filesystem.API().IsDir(custom)), ShouldBeTrue)
		})
	})
}

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/colorful-cli/colorful/filesystem"
	"github.com/colorful-cli/colorful/key"
	"github.com/colorful-cli/colorful/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestLog(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("nothing is enabled and no file is created", func() {
			So(Enabled(), ShouldBeFalse)
			So(lo.Must(filesystem.API().ReadDir(where.Logs())), ShouldBeEmpty)
		})

		Convey("entries go nowhere", func() {
			So(WithFields(logrus.Fields{"a": 1}).Logger.Level, ShouldEqual, logrus.PanicLevel)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, false)
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup creates today's log file", func() {
			So(Setup(), ShouldBeNil)
			So(lo.Must(filesystem.API().ReadDir(where.Logs())), ShouldHaveLength, 1)
		})

		Convey("debug lines are written at debug level", func() {
			var buf bytes.Buffer
			So(SetOutput(&buf), ShouldBeNil)

			Debugf("requesting %s", "/id?hex=FF0000")
			So(buf.String(), ShouldContainSubstring, "requesting /id?hex=FF0000")
		})

		Convey("json output carries fields", func() {
			viper.Set(key.LogsJson, true)
			defer viper.Set(key.LogsJson, false)

			var buf bytes.Buffer
			So(SetOutput(&buf), ShouldBeNil)
			WithFields(logrus.Fields{"request": "abc"}).Info("GET")

			var line map[string]any
			So(json.Unmarshal(buf.Bytes(), &line), ShouldBeNil)
			So(line["request"], ShouldEqual, "abc")
			So(line["msg"], ShouldEqual, "GET")
		})

		Convey("an unknown level falls back to info", func() {
			viper.Set(key.LogsLevel, "chatty")
			defer viper.Set(key.LogsLevel, "debug")

			var buf bytes.Buffer
			So(SetOutput(&buf), ShouldNotBeNil)
			Debug("hidden")
			Info("shown")
			So(buf.String(), ShouldNotContainSubstring, "hidden")
			So(buf.String(), ShouldContainSubstring, "shown")
		})
	})
}

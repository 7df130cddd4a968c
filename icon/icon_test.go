package icon

import (
	"testing"

	"github.com/colorful-cli/colorful/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		all := []Icon{Success, Fail, Link}

		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for _, i := range all {
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})

		Convey("Success and Fail differ", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Success), ShouldNotEqual, Get(Fail))
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "kaomoji")
			So(Get(Success), ShouldBeEmpty)
		})

		Convey("It returns empty for an unknown icon", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Icon(99)), ShouldBeEmpty)
		})
	})
}

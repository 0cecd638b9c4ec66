package version

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Should order versions by precedence", func() {
			So(lo.Must(Compare("1.0.0", "0.9.9")), ShouldEqual, 1)
			So(lo.Must(Compare("0.2.0", "0.10.0")), ShouldEqual, -1)
			So(lo.Must(Compare("0.1.0", "0.1.1")), ShouldEqual, -1)
			So(lo.Must(Compare("2.3.4", "2.3.4")), ShouldEqual, 0)
		})

		Convey("Should tolerate tag prefixes on either side", func() {
			So(lo.Must(Compare("v1.2.3", "1.2.3")), ShouldEqual, 0)
			So(lo.Must(Compare("1.2.4", "v1.2.3")), ShouldEqual, 1)
		})

		Convey("Should fail on shapes that are not versions", func() {
			_, err := Compare("1.2", "1.2.3")
			So(err, ShouldNotBeNil)

			_, err = Compare("1.2.3", "latest")
			So(err, ShouldNotBeNil)
		})
	})
}

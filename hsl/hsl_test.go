package hsl

import (
	"fmt"
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should decode a saturated color", func() {
			c, err := Parse("#00fbb0")
			So(err, ShouldBeNil)
			So(c.H, ShouldEqual, 162)
			So(c.S, ShouldEqual, 100)
			So(c.L, ShouldAlmostEqual, 49.2156862745, 1e-9)
		})

		Convey("Should decode primaries exactly", func() {
			red, err := Parse("#ff0000")
			So(err, ShouldBeNil)
			So(red, ShouldResemble, HSL{H: 0, S: 100, L: 50})

			blue, err := Parse("#0000ff")
			So(err, ShouldBeNil)
			So(blue, ShouldResemble, HSL{H: 240, S: 100, L: 50})
		})

		Convey("Should treat achromatic colors as zero hue and saturation", func() {
			gray, err := Parse("#808080")
			So(err, ShouldBeNil)
			So(gray.H, ShouldEqual, 0)
			So(gray.S, ShouldEqual, 0)
			So(gray.L, ShouldAlmostEqual, 50.1960784314, 1e-9)

			black, err := Parse("#000000")
			So(err, ShouldBeNil)
			So(black, ShouldResemble, HSL{})

			white, err := Parse("#ffffff")
			So(err, ShouldBeNil)
			So(white, ShouldResemble, HSL{H: 0, S: 0, L: 100})
		})

		Convey("Should accept uppercase digits", func() {
			c, err := Parse("#00FBB0")
			So(err, ShouldBeNil)
			So(c.H, ShouldEqual, 162)
		})

		Convey("Should reject structural violations", func() {
			for _, bad := range []string{"", "00fbb0", "#00fbb", "#00fbb00", "#fff"} {
				_, err := Parse(bad)
				So(err, ShouldWrap, ErrInvalidFormat)
			}
		})

		Convey("Should reject non-hexadecimal digits", func() {
			_, err := Parse("#00fbbg")
			So(err, ShouldWrap, ErrInvalidValue)
		})
	})
}

func TestHex(t *testing.T) {
	Convey("Hex", t, func() {
		Convey("Should render six lowercase digits without a hash", func() {
			So(HSL{H: 0, S: 100, L: 50}.Hex(), ShouldEqual, "ff0000")
			So(HSL{H: 240, S: 100, L: 50}.Hex(), ShouldEqual, "0000ff")
			So(HSL{H: 162, S: 100, L: 49.2156862745}.Hex(), ShouldEqual, "00fbb0")
		})

		Convey("Should handle the lightness extremes", func() {
			So(HSL{H: 210, S: 80, L: 0}.Hex(), ShouldEqual, "000000")
			So(HSL{H: 210, S: 80, L: 100}.Hex(), ShouldEqual, "ffffff")
		})

		Convey("Should wrap hue modulo a full turn", func() {
			base := HSL{H: 162, S: 100, L: 49}
			So(HSL{H: 162 + 360, S: 100, L: 49}.Hex(), ShouldEqual, base.Hex())
			So(HSL{H: 162 - 360, S: 100, L: 49}.Hex(), ShouldEqual, base.Hex())
		})

		Convey("Should clamp saturation and lightness instead of failing", func() {
			So(HSL{H: 0, S: 150, L: -10}.Hex(), ShouldEqual, "000000")
			So(HSL{H: 0, S: 150, L: 50}.Hex(), ShouldEqual, HSL{H: 0, S: 100, L: 50}.Hex())
		})
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Round trip", t, func() {
		samples := []string{
			"#00fbb0", "#ff0000", "#00ff00", "#0000ff", "#123456",
			"#fedcba", "#7f11e0", "#c0ffee", "#808080", "#010203",
		}

		Convey("Each 8-bit channel survives within a quantization step", func() {
			for _, seed := range samples {
				Convey(seed, func() {
					c, err := Parse(seed)
					So(err, ShouldBeNil)

					got := c.Hex()
					So(got, ShouldHaveLength, 6)
					for i := 0; i < 3; i++ {
						want := mustChannel(seed[1+i*2 : 3+i*2])
						have := mustChannel(got[i*2 : 2+i*2])
						So(have, ShouldBeBetweenOrEqual, want-1, want+1)
					}
				})
			}
		})
	})
}

// mustChannel decodes a two-digit hex channel for tolerance comparison.
func mustChannel(s string) int {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		panic(fmt.Sprintf("bad channel %q: %v", s, err))
	}
	return int(v)
}

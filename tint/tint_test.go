package tint

import (
	"math"
	"testing"

	"github.com/freetint-cli/freetint/hsl"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		Convey("Should accept a factory request", func() {
			So(NewRequest("brand", "#00fbb0").Validate(), ShouldBeNil)
		})

		Convey("Should reject an unparseable seed", func() {
			So(NewRequest("brand", "00fbb0").Validate(), ShouldWrap, hsl.ErrInvalidFormat)
			So(NewRequest("brand", "#00fbbg").Validate(), ShouldWrap, hsl.ErrInvalidValue)
		})

		Convey("Should reject anchors outside the canonical stops", func() {
			for _, anchor := range []Stop{0, 50, 950, 1000, 450} {
				r := NewRequest("brand", "#00fbb0")
				r.Anchor = anchor
				So(r.Validate(), ShouldWrap, ErrInvalidAnchor)
			}
		})

		Convey("Should reject disordered or escaping bounds", func() {
			r := NewRequest("brand", "#00fbb0")
			r.LightnessMin, r.LightnessMax = 60, 40
			So(r.Validate(), ShouldWrap, ErrInvalidBounds)

			r = NewRequest("brand", "#00fbb0")
			r.LightnessMin = -1
			So(r.Validate(), ShouldWrap, ErrInvalidBounds)

			r = NewRequest("brand", "#00fbb0")
			r.LightnessMax = 101
			So(r.Validate(), ShouldWrap, ErrInvalidBounds)
		})
	})
}

func TestGenerate(t *testing.T) {
	Convey("Generate", t, func() {
		Convey("With a factory request", func() {
			tints := lo.Must(Generate(NewRequest("brand", "#00fbb0")))

			Convey("Emits all nine stops ascending", func() {
				So(tints, ShouldHaveLength, 9)
				for i, tint := range tints {
					So(tint.Group, ShouldEqual, "brand")
					So(tint.Stop, ShouldEqual, Stops[i])
				}
			})

			Convey("Reproduces the seed at the anchor", func() {
				So(tints[4].Stop, ShouldEqual, Stop(500))
				So(tints[4].Hex, ShouldEqual, "00fbb0")
			})

			Convey("Hits the redistributed lightness targets", func() {
				targets := []float64{90, 80, 70, 59, 49, 39, 30, 20, 10}
				for i, tint := range tints {
					c := lo.Must(hsl.Parse("#" + tint.Hex))
					So(math.Round(c.L), ShouldEqual, targets[i])
				}
			})

			Convey("Steps a fifth of each lightness span per stop", func() {
				So(tints[0].Hex, ShouldEqual, "ccfff0")
				So(tints[8].Hex, ShouldEqual, "003324")
			})

			Convey("Keeps lightness non-increasing toward the dark end", func() {
				prev := 101.0
				for _, tint := range tints {
					c := lo.Must(hsl.Parse("#" + tint.Hex))
					So(c.L, ShouldBeLessThanOrEqualTo, prev)
					prev = c.L
				}
			})

			Convey("Is deterministic", func() {
				again := lo.Must(Generate(NewRequest("brand", "#00fbb0")))
				So(again, ShouldResemble, tints)
			})
		})

		Convey("With coinciding bounds and seed lightness", func() {
			r := NewRequest("flat", "#ff0000")
			r.LightnessMin, r.LightnessMax = 50, 50
			tints := lo.Must(Generate(r))

			Convey("Yields a valid flat scale", func() {
				So(tints, ShouldHaveLength, 9)
				for _, tint := range tints {
					So(tint.Hex, ShouldEqual, "ff0000")
				}
			})
		})

		Convey("With a relocated anchor", func() {
			r := NewRequest("dark", "#123456")
			r.Anchor = 900
			tints := lo.Must(Generate(r))

			Convey("Reproduces the seed at the new anchor", func() {
				So(tints[8].Stop, ShouldEqual, Stop(900))
				So(tints[8].Hex, ShouldEqual, "123456")
			})

			Convey("Still emits the whole grid", func() {
				So(tints, ShouldHaveLength, 9)
			})

			Convey("Interpolates by grid distance toward the far bound", func() {
				c := lo.Must(hsl.Parse("#" + tints[0].Hex))
				So(math.Round(c.L), ShouldEqual, 91)
			})
		})

		Convey("With an invalid request", func() {
			_, err := Generate(NewRequest("bad", "nope"))
			So(err, ShouldNotBeNil)
		})
	})
}

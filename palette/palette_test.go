package palette

import (
	"testing"

	"github.com/freetint-cli/freetint/tint"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQualify(t *testing.T) {
	Convey("Qualify", t, func() {
		So(Qualify("theme", "blue", 500), ShouldEqual, "theme / blue / blue.500")
		So(Qualify("theme", "brand", 100), ShouldEqual, "theme / brand / brand.100")
	})
}

func TestMember(t *testing.T) {
	Convey("Member", t, func() {
		Convey("Should extract the group of a canonical name", func() {
			group, ok := Member("theme", "theme / blue / blue.500")
			So(ok, ShouldBeTrue)
			So(group, ShouldEqual, "blue")
		})

		Convey("Should keep sibling groups sharing a name prefix apart", func() {
			group, ok := Member("theme", "theme / darker / darker.100")
			So(ok, ShouldBeTrue)
			So(group, ShouldEqual, "darker")
		})

		Convey("Should tolerate sloppy separators after the prefix", func() {
			group, ok := Member("theme", "theme / blue/ blue.500")
			So(ok, ShouldBeTrue)
			So(group, ShouldEqual, "blue")
		})

		Convey("Should reject names outside the partition", func() {
			for _, name := range []string{
				"other / x",
				"theme/ blue / blue.500",
				"themes / blue / blue.500",
				"theme /",
				"theme",
			} {
				_, ok := Member("theme", name)
				So(ok, ShouldBeFalse)
			}
		})
	})
}

func TestSplitName(t *testing.T) {
	Convey("SplitName", t, func() {
		Convey("Should parse the trailing stop suffix", func() {
			group, stop, ok := SplitName("theme / blue / blue.500")
			So(ok, ShouldBeTrue)
			So(group, ShouldEqual, "blue")
			So(stop, ShouldEqual, tint.Stop(500))
		})

		Convey("Should work on a bare suffix", func() {
			group, stop, ok := SplitName("blue.900")
			So(ok, ShouldBeTrue)
			So(group, ShouldEqual, "blue")
			So(stop, ShouldEqual, tint.Stop(900))
		})

		Convey("Should keep dots inside the group name", func() {
			group, stop, ok := SplitName("theme / ui.accent / ui.accent.500")
			So(ok, ShouldBeTrue)
			So(group, ShouldEqual, "ui.accent")
			So(stop, ShouldEqual, tint.Stop(500))
		})

		Convey("Should refuse names without the suffix convention", func() {
			for _, name := range []string{"theme / blue", "blue", "blue.", ".500", ""} {
				_, _, ok := SplitName(name)
				So(ok, ShouldBeFalse)
			}
		})
	})
}

func TestGroupAt(t *testing.T) {
	Convey("Group.At", t, func() {
		p := New("theme")
		p.Add("blue", &Entry{ID: NewID(), Version: 3, Name: "theme / blue / blue.500", Hex: "00fbb0"})
		p.Add("blue", &Entry{ID: NewID(), Version: 1, Name: "theme / blue / note", Hex: "ffffff"})

		g := p.Group("blue").MustGet()

		Convey("Should find the entry carrying the stop suffix", func() {
			e, ok := g.At(500).Get()
			So(ok, ShouldBeTrue)
			So(e.Hex, ShouldEqual, "00fbb0")
		})

		Convey("Should miss stops nothing carries", func() {
			So(g.At(900).IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestPaletteAccounting(t *testing.T) {
	Convey("Palette", t, func() {
		p := New("theme")

		Convey("Starts empty and untouched", func() {
			So(p.Groups(), ShouldBeEmpty)
			So(p.Touched(), ShouldBeEmpty)
		})

		Convey("Preserves group insertion order", func() {
			p.Add("blue", &Entry{Name: "theme / blue / blue.500"})
			p.Add("red", &Entry{Name: "theme / red / red.500"})
			p.Add("blue", &Entry{Name: "theme / blue / blue.900"})

			So(p.GroupNames(), ShouldResemble, []string{"blue", "red"})
			So(p.Group("blue").MustGet().Entries, ShouldHaveLength, 2)
		})

		Convey("Tracks touched groups through merges only", func() {
			p.Add("blue", &Entry{Name: "theme / blue / blue.500"})
			p.Merge("red", []tint.Tint{{Group: "red", Stop: 500, Hex: "ff0000"}}, StrategyUpdate)

			So(p.IsTouched("red"), ShouldBeTrue)
			So(p.IsTouched("blue"), ShouldBeFalse)
			So(p.Touched(), ShouldResemble, []string{"red"})
		})
	})
}

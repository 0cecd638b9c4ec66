package palette

import (
	"testing"

	"github.com/freetint-cli/freetint/tint"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseStrategy(t *testing.T) {
	Convey("ParseStrategy", t, func() {
		Convey("Should accept the supported strategies", func() {
			So(lo.Must(ParseStrategy("update")), ShouldEqual, StrategyUpdate)
			So(lo.Must(ParseStrategy("replace")), ShouldEqual, StrategyReplace)
		})

		Convey("Should reject anything else", func() {
			for _, bad := range []string{"", "Update", "merge", "overwrite"} {
				_, err := ParseStrategy(bad)
				So(err, ShouldWrap, ErrUnknownStrategy)
			}
		})
	})
}

func TestMerge(t *testing.T) {
	Convey("Merge", t, func() {
		p := New("theme")

		Convey("Into an empty palette", func() {
			delta := p.Merge("brand", []tint.Tint{
				{Group: "brand", Stop: 100, Hex: "aaffe5"},
				{Group: "brand", Stop: 500, Hex: "00fbb0"},
				{Group: "brand", Stop: 900, Hex: "00291d"},
			}, StrategyUpdate)

			Convey("Creates every stop fresh", func() {
				So(delta, ShouldResemble, Delta{Created: 3})

				g := p.Group("brand").MustGet()
				So(g.Entries, ShouldHaveLength, 3)
				So(g.Entries[0].Name, ShouldEqual, "theme / brand / brand.100")
				So(g.Entries[2].Name, ShouldEqual, "theme / brand / brand.900")
				for _, e := range g.Entries {
					So(e.Version, ShouldEqual, 1)
					So(e.ID, ShouldNotResemble, ID{})
				}
			})

			Convey("Marks the group touched", func() {
				So(p.IsTouched("brand"), ShouldBeTrue)
			})
		})

		Convey("Under the update strategy", func() {
			kept := &Entry{ID: NewID(), Version: 4, Name: "theme / brand / brand.500", Hex: "001122"}
			note := &Entry{ID: NewID(), Version: 2, Name: "theme / brand / keepsake", Hex: "333333"}
			p.Add("brand", kept)
			p.Add("brand", note)

			delta := p.Merge("brand", []tint.Tint{
				{Group: "brand", Stop: 100, Hex: "aaffe5"},
				{Group: "brand", Stop: 500, Hex: "00fbb0"},
			}, StrategyUpdate)

			Convey("Preserves identity and bumps version on matches", func() {
				So(delta, ShouldResemble, Delta{Created: 1, Updated: 1})
				So(kept.Version, ShouldEqual, 5)
				So(kept.Hex, ShouldEqual, "00fbb0")
			})

			Convey("Sorts stops ascending and sinks unmatched names to the tail", func() {
				g := p.Group("brand").MustGet()
				So(g.Entries, ShouldHaveLength, 3)
				So(g.Entries[0].Name, ShouldEqual, "theme / brand / brand.100")
				So(g.Entries[1], ShouldEqual, kept)
				So(g.Entries[2], ShouldEqual, note)
			})

			Convey("Bumps version even when the hex is unchanged", func() {
				before := kept.Version
				p.Merge("brand", []tint.Tint{{Group: "brand", Stop: 500, Hex: kept.Hex}}, StrategyUpdate)
				So(kept.Version, ShouldEqual, before+1)
			})
		})

		Convey("Renamed entries converge back onto the convention", func() {
			sloppy := &Entry{ID: NewID(), Version: 1, Name: "theme / brand/ brand.500", Hex: "001122"}
			nested := &Entry{ID: NewID(), Version: 7, Name: "theme / brand / legacy / brand.900", Hex: "002233"}
			p.Add("brand", sloppy)
			p.Add("brand", nested)

			p.Merge("brand", []tint.Tint{
				{Group: "brand", Stop: 500, Hex: "00fbb0"},
				{Group: "brand", Stop: 900, Hex: "00291d"},
			}, StrategyUpdate)

			So(sloppy.Name, ShouldEqual, "theme / brand / brand.500")
			So(sloppy.Version, ShouldEqual, 2)
			So(nested.Name, ShouldEqual, "theme / brand / brand.900")
			So(nested.Version, ShouldEqual, 8)
		})

		Convey("Under the replace strategy", func() {
			old := &Entry{ID: NewID(), Version: 9, Name: "theme / brand / brand.500", Hex: "001122"}
			p.Add("brand", old)

			delta := p.Merge("brand", []tint.Tint{{Group: "brand", Stop: 500, Hex: "00fbb0"}}, StrategyReplace)

			Convey("Every stop gets fresh identity", func() {
				So(delta, ShouldResemble, Delta{Created: 1})

				g := p.Group("brand").MustGet()
				So(g.Entries, ShouldHaveLength, 1)
				So(g.Entries[0].ID, ShouldNotResemble, old.ID)
				So(g.Entries[0].Version, ShouldEqual, 1)
			})
		})
	})
}

func TestLink(t *testing.T) {
	Convey("Link", t, func() {
		p := New("theme")
		p.Add("brand", &Entry{ID: NewID(), Version: 1, Name: "theme / brand / brand.500", Hex: "00fbb0"})

		Convey("Copies the referenced hex into a fresh entry", func() {
			e, err := p.Link("accent", "brand", 500)
			So(err, ShouldBeNil)
			So(e.Hex, ShouldEqual, "00fbb0")
			So(e.Version, ShouldEqual, 1)
			So(e.Name, ShouldEqual, "theme / accent / accent.500")
			So(p.IsTouched("accent"), ShouldBeTrue)
			So(p.IsTouched("brand"), ShouldBeFalse)
		})

		Convey("Updates the linked entry in place on relink", func() {
			first := lo.Must(p.Link("accent", "brand", 500))
			second := lo.Must(p.Link("accent", "brand", 500))
			So(second.ID, ShouldResemble, first.ID)
			So(second.Version, ShouldEqual, 2)
		})

		Convey("Fails hard when the group is absent", func() {
			_, err := p.Link("accent", "brend", 500)
			So(err, ShouldWrap, ErrReferenceNotFound)
		})

		Convey("Fails hard when the stop is absent", func() {
			_, err := p.Link("accent", "brand", 900)
			So(err, ShouldWrap, ErrReferenceNotFound)
		})
	})
}

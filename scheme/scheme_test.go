package scheme

import (
	"testing"

	"github.com/freetint-cli/freetint/filesystem"
	"github.com/freetint-cli/freetint/tint"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func init() {
	filesystem.SetMemMapFs()
}

const asTOML = `
[[colors]]
name = "brand"
value = "#00fbb0"

[[colors]]
name = "dark"
value = "#1d2023"
stop = 900
min = 4

[[colors]]
name = "accent"
value = "brand"
`

const asJSON = `{
  "colors": [
    {"name": "brand", "value": "#00fbb0"},
    {"name": "dark", "value": "#1d2023", "stop": 900, "min": 4},
    {"name": "accent", "value": "brand"}
  ]
}`

func write(path, content string) string {
	lo.Must0(afero.WriteFile(filesystem.API(), path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		Convey("Should decode TOML and JSON forms identically", func() {
			fromTOML := lo.Must(Load(write("scheme.toml", asTOML)))
			fromJSON := lo.Must(Load(write("scheme.json", asJSON)))

			So(fromTOML, ShouldResemble, fromJSON)
			So(fromTOML.Colors, ShouldHaveLength, 3)
		})

		Convey("Should read optional fields only when present", func() {
			s := lo.Must(Load(write("scheme.toml", asTOML)))

			brand := s.Colors[0]
			So(brand.Stop, ShouldBeNil)
			So(brand.Min, ShouldBeNil)
			So(brand.Max, ShouldBeNil)

			dark := s.Colors[1]
			So(*dark.Stop, ShouldEqual, 900)
			So(*dark.Min, ShouldEqual, 4)
			So(dark.Max, ShouldBeNil)
		})

		Convey("Should fail on a missing file", func() {
			_, err := Load("nowhere.toml")
			So(err, ShouldNotBeNil)
		})

		Convey("Should fail on an unsupported extension", func() {
			_, err := Load(write("scheme.ini2", asTOML))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestColor(t *testing.T) {
	Convey("Color", t, func() {
		s := lo.Must(Load(write("scheme.toml", asTOML)))

		Convey("IsLink distinguishes seeds from references", func() {
			So(s.Colors[0].IsLink(), ShouldBeFalse)
			So(s.Colors[2].IsLink(), ShouldBeTrue)
		})

		Convey("Request inherits defaults for omitted fields", func() {
			r := s.Colors[0].Request(500, 0, 100)
			So(r, ShouldResemble, tint.Request{
				Name:         "brand",
				Value:        "#00fbb0",
				Anchor:       500,
				LightnessMin: 0,
				LightnessMax: 100,
			})
		})

		Convey("Request prefers explicit fields over defaults", func() {
			r := s.Colors[1].Request(500, 0, 100)
			So(r.Anchor, ShouldEqual, tint.Stop(900))
			So(r.LightnessMin, ShouldEqual, 4)
			So(r.LightnessMax, ShouldEqual, 100)
		})
	})
}

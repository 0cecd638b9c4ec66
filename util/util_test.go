package util

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "group", "groups"), ShouldEqual, "1 group")
		So(Quantify(2, "group", "groups"), ShouldEqual, "2 groups")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<group>.+)\.(?P<stop>\d+)`)
		groups := ReGroups(re, "blue.500")
		So(groups["group"], ShouldEqual, "blue")
		So(groups["stop"], ShouldEqual, "500")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max(0.0, 49.2), ShouldEqual, 49.2)
	})
}

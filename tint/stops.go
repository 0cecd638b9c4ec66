// Package tint generates tonal scales from seed colors by redistributing
// lightness across a fixed grid of stops.
package tint

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// Stop identifies a position on the tonal scale, e.g. 500.
type Stop int

// Stops is the canonical grid of the nine positions every generated scale
// carries, lightest to darkest.
var Stops = []Stop{100, 200, 300, 400, 500, 600, 700, 800, 900}

// distribution is the extended grid lightness redistribution runs over.
// The auxiliary 0/50/950/1000 rows pin the interpolation to the lightness
// bounds and are discarded from the emitted scale.
var distribution = []Stop{0, 50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950, 1000}

// Valid reports whether s is one of the canonical scale stops.
// The auxiliary distribution rows are not valid anchors.
func (s Stop) Valid() bool {
	return slices.Contains(Stops, s)
}

func (s Stop) String() string {
	return strconv.Itoa(int(s))
}

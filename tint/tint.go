// Package tint generates tonal scales from seed colors by redistributing
// lightness across a fixed grid of stops.
package tint

import (
	"errors"
	"fmt"
	"math"

	"github.com/freetint-cli/freetint/hsl"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Factory request parameters, matching the configuration defaults.
const (
	DefaultAnchor       Stop = 500
	DefaultLightnessMin      = 0
	DefaultLightnessMax      = 100
)

// Request validation failure modes.
var (
	// ErrInvalidAnchor indicates the anchor is not one of the canonical stops.
	ErrInvalidAnchor = errors.New("anchor is not a scale stop")

	// ErrInvalidBounds indicates the lightness bounds escape 0..100 or are out of order.
	ErrInvalidBounds = errors.New("invalid lightness bounds")
)

// Tint is a single generated scale color. Hex is stored bare, the way
// documents keep color values.
type Tint struct {
	Group string `json:"group"`
	Stop  Stop   `json:"stop"`
	Hex   string `json:"hex"`
}

// Request describes one tonal scale to generate.
type Request struct {
	// Name of the group the scale belongs to, e.g. "brand".
	Name string

	// Value is the seed color as "#RRGGBB".
	Value string

	// Anchor is the stop that reproduces the seed color exactly.
	Anchor Stop

	// LightnessMin and LightnessMax bound the generated lightness range in percent.
	LightnessMin int
	LightnessMax int
}

// NewRequest returns a request for the given seed with factory parameters.
func NewRequest(name, value string) Request {
	return Request{
		Name:         name,
		Value:        value,
		Anchor:       DefaultAnchor,
		LightnessMin: DefaultLightnessMin,
		LightnessMax: DefaultLightnessMax,
	}
}

// Validate checks the request invariants: a parseable seed color, a canonical
// anchor stop and ordered lightness bounds within 0..100.
func (r Request) Validate() error {
	if _, err := hsl.Parse(r.Value); err != nil {
		return fmt.Errorf("seed color for %q: %w", r.Name, err)
	}

	if !r.Anchor.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidAnchor, r.Anchor)
	}

	if r.LightnessMin < 0 || r.LightnessMax > 100 || r.LightnessMin > r.LightnessMax {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidBounds, r.LightnessMin, r.LightnessMax)
	}

	return nil
}

// Generate derives the nine-stop tonal scale for the request. The scale keeps
// the seed's hue and saturation throughout; only lightness is redistributed.
// The anchor stop carries the seed's exact channels, so the seed color
// round-trips through the scale unchanged. Generation is deterministic.
func Generate(r Request) ([]Tint, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	seed := lo.Must(hsl.Parse(r.Value))
	tweaks := redistribute(seed.L, float64(r.LightnessMin), float64(r.LightnessMax), r.Anchor)

	tints := make([]Tint, 0, len(Stops))
	for i, stop := range distribution {
		if !stop.Valid() {
			continue
		}

		c := hsl.HSL{H: seed.H, S: seed.S, L: tweaks[i]}
		if stop == r.Anchor {
			c = seed
		}

		tints = append(tints, Tint{Group: r.Name, Stop: stop, Hex: c.Hex()})
	}

	return tints, nil
}

// redistribute computes the target lightness for every position of the
// extended grid. The grid boundaries take the configured bounds, the anchor
// keeps the seed lightness untouched, and every position in between moves a
// fixed lightness step per hundred grid units away from the anchor. Each
// side's step divides its span by one less than its index distance, which is
// exactly the hundred-unit count to the boundary, so walking the whole side
// reaches the bound precisely. Tweaks are rounded to whole percents.
func redistribute(l, min, max float64, anchor Stop) []float64 {
	anchorIdx := slices.Index(distribution, anchor)
	last := len(distribution) - 1

	tweaks := make([]float64, len(distribution))
	tweaks[0] = max
	tweaks[last] = min
	tweaks[anchorIdx] = l

	darkStep := (l - min) / float64(last-anchorIdx-1)
	for i := anchorIdx + 1; i < last; i++ {
		tweaks[i] = math.Round(l - darkStep*float64(distribution[i]-anchor)/100)
	}

	lightStep := (max - l) / float64(anchorIdx-1)
	for i := 1; i < anchorIdx; i++ {
		tweaks[i] = math.Round(l + lightStep*float64(anchor-distribution[i])/100)
	}

	return tweaks
}

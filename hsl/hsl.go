// Package hsl converts between the hex triplets stored in documents and the
// cylindrical HSL representation the scale generator reasons in.
package hsl

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/freetint-cli/freetint/util"
)

// Parse failure modes.
var (
	// ErrInvalidFormat indicates the value is not a "#" followed by six hex digits.
	ErrInvalidFormat = errors.New("invalid hex color format")

	// ErrInvalidValue indicates the six digits contain a non-hexadecimal character.
	ErrInvalidValue = errors.New("invalid hex color value")
)

// HSL is a color in hue-saturation-lightness space.
// Hue is in degrees [0, 360), saturation and lightness are percentages [0, 100].
type HSL struct {
	H float64
	S float64
	L float64
}

// Parse converts a "#RRGGBB" string into its HSL representation.
// The leading "#" and exactly six digits are required; shorthand and alpha
// forms are not accepted.
func Parse(s string) (HSL, error) {
	if len(s) != 7 || s[0] != '#' {
		return HSL{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return HSL{}, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}

	r := float64(v>>16&0xff) / 255
	g := float64(v>>8&0xff) / 255
	b := float64(v&0xff) / 255

	max := util.Max(r, g, b)
	min := util.Min(r, g, b)
	l := (max + min) / 2

	var h, sat float64
	if max != min {
		d := max - min
		sat = d / (1 - math.Abs(2*l-1))
		switch max {
		case r:
			h = math.Mod((g-b)/d, 6)
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h = math.Round(h * 60)
		if h < 0 {
			h += 360
		}
	}

	return HSL{H: h, S: sat * 100, L: l * 100}, nil
}

// Hex renders the color as six lowercase hex digits, the bare form documents
// store color values in. The conversion is total: hue is wrapped into
// [0, 360) and saturation and lightness are clamped into [0, 100] first.
func (c HSL) Hex() string {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := util.Min(util.Max(c.S, 0), 100) / 100
	l := util.Min(util.Max(c.L, 0), 100) / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return fmt.Sprintf("%02x%02x%02x", channel(r+m), channel(g+m), channel(b+m))
}

// channel quantizes a [0, 1] intensity to its 8-bit value.
func channel(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

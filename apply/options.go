// Package apply runs the one-shot update pipeline: generate or link every
// requested color, reconcile the results into the document's palette and
// commit the document once at the end.
package apply

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/freetint-cli/freetint/key"
	"github.com/freetint-cli/freetint/palette"
	"github.com/freetint-cli/freetint/scheme"
	"github.com/freetint-cli/freetint/tint"
	"github.com/freetint-cli/freetint/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Options parameterizes one document update.
type Options struct {
	// Path of the document to rewrite.
	Path string

	// Colors to generate scales for or to link, in request order.
	Colors []scheme.Color

	// Replace forces the replace merge strategy for this invocation,
	// overriding the configured one.
	Replace bool

	// DryRun runs the full pipeline against the in-memory document but
	// leaves the file untouched.
	DryRun bool
}

// step is one validated color request with its configuration fallbacks
// already resolved.
type step struct {
	color   scheme.Color
	anchor  tint.Stop
	request tint.Request
}

// steps validates the whole batch up front, so a bad request never opens the
// document. Names must be unique within the batch; seeds must survive request
// validation; links need a target and a canonical anchor stop.
func (o *Options) steps() ([]step, error) {
	if len(o.Colors) == 0 {
		return nil, errors.New("no colors requested")
	}

	var (
		anchor = tint.Stop(viper.GetInt(key.ScaleAnchor))
		min    = viper.GetInt(key.ScaleLightnessMin)
		max    = viper.GetInt(key.ScaleLightnessMax)
	)

	steps := make([]step, 0, len(o.Colors))
	seen := make(map[string]struct{}, len(o.Colors))
	for _, c := range o.Colors {
		if c.Name == "" {
			return nil, errors.New("color request without a name")
		}

		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("duplicate color request %q", c.Name)
		}
		seen[c.Name] = struct{}{}

		s := step{color: c, anchor: anchor}
		if c.Stop != nil {
			s.anchor = tint.Stop(*c.Stop)
		}

		if c.IsLink() {
			if c.Value == "" {
				return nil, fmt.Errorf("link %q without a target group", c.Name)
			}
			if !s.anchor.Valid() {
				return nil, fmt.Errorf("link %q: %w: %s", c.Name, tint.ErrInvalidAnchor, s.anchor)
			}

			steps = append(steps, s)
			continue
		}

		s.request = c.Request(anchor, min, max)
		if err := s.request.Validate(); err != nil {
			return nil, err
		}

		steps = append(steps, s)
	}

	return steps, nil
}

// strategy resolves the merge strategy for this invocation.
func (o *Options) strategy() (palette.Strategy, error) {
	if o.Replace {
		return palette.StrategyReplace, nil
	}

	return palette.ParseStrategy(viper.GetString(key.PaletteMerge))
}

// colorFlagPattern matches the name:value[:stop] shorthand accepted on the
// command line. Values cannot contain colons; scheme files carry exotic names.
var colorFlagPattern = regexp.MustCompile(`^(?P<name>[^:]+):(?P<value>[^:]+)(?::(?P<stop>\d+))?$`)

// ParseColor parses the name:value[:stop] shorthand of the color flag. The
// value is either a seed or a link target, exactly as in scheme files, and a
// bare RRGGBB seed may omit the leading "#". The optional stop overrides the
// configured anchor.
func ParseColor(raw string) (scheme.Color, error) {
	groups := util.ReGroups(colorFlagPattern, raw)
	if len(groups) == 0 {
		return scheme.Color{}, fmt.Errorf("malformed color %q, expected name:value[:stop]", raw)
	}

	c := scheme.Color{Name: groups["name"], Value: NormalizeSeed(groups["value"])}
	if stop := groups["stop"]; stop != "" {
		n, err := strconv.Atoi(stop)
		if err != nil {
			return scheme.Color{}, fmt.Errorf("malformed color %q, stop %s overflows", raw, stop)
		}

		c.Stop = lo.ToPtr(n)
	}

	return c, nil
}

// NormalizeSeed promotes a bare RRGGBB hex triplet to its canonical "#" form.
// Anything else passes through untouched, link targets in particular. A group
// named like a hex triplet therefore cannot be linked from the command line,
// only through a scheme file.
func NormalizeSeed(value string) string {
	if len(value) != 6 {
		return value
	}

	if _, err := strconv.ParseUint(value, 16, 32); err != nil {
		return value
	}

	return "#" + value
}

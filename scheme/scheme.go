// Package scheme loads color-scheme files: the batch form of base-color
// requests. TOML, JSON and YAML are accepted, selected by file extension.
package scheme

import (
	"fmt"
	"strings"

	"github.com/freetint-cli/freetint/filesystem"
	"github.com/freetint-cli/freetint/tint"
	"github.com/spf13/viper"
)

// Color is one base-color request of a scheme file. Value carries either a
// "#RRGGBB" seed or the bare name of another group to link. Stop, Min and
// Max are optional; omitted fields inherit the configured defaults.
type Color struct {
	Name  string `mapstructure:"name" json:"name" jsonschema:"required,description=Group the scale is generated for"`
	Value string `mapstructure:"value" json:"value" jsonschema:"required,description=Seed color as #RRGGBB or the name of another group to link"`
	Stop  *int   `mapstructure:"stop" json:"stop,omitempty" jsonschema:"description=Anchor stop reproducing the seed exactly,enum=100,enum=200,enum=300,enum=400,enum=500,enum=600,enum=700,enum=800,enum=900"`
	Min   *int   `mapstructure:"min" json:"min,omitempty" jsonschema:"description=Lightness floor of the scale,minimum=0,maximum=100"`
	Max   *int   `mapstructure:"max" json:"max,omitempty" jsonschema:"description=Lightness ceiling of the scale,minimum=0,maximum=100"`
}

// IsLink reports whether the color references another group instead of
// carrying a hex seed.
func (c *Color) IsLink() bool {
	return !strings.HasPrefix(c.Value, "#")
}

// Request converts the color into a generation request, falling back to the
// given defaults for every omitted field.
func (c *Color) Request(anchor tint.Stop, min, max int) tint.Request {
	r := tint.Request{
		Name:         c.Name,
		Value:        c.Value,
		Anchor:       anchor,
		LightnessMin: min,
		LightnessMax: max,
	}

	if c.Stop != nil {
		r.Anchor = tint.Stop(*c.Stop)
	}
	if c.Min != nil {
		r.LightnessMin = *c.Min
	}
	if c.Max != nil {
		r.LightnessMax = *c.Max
	}

	return r
}

// Scheme is a parsed color-scheme file.
type Scheme struct {
	Colors []Color `mapstructure:"colors" json:"colors" jsonschema:"required,description=Base colors to generate scales for"`
}

// Load reads and decodes a scheme file through its own viper instance, so
// the application configuration is never disturbed.
func Load(path string) (*Scheme, error) {
	v := viper.New()
	v.SetFs(filesystem.API())
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scheme: %w", err)
	}

	var s Scheme
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parse scheme: %w", err)
	}

	return &s, nil
}

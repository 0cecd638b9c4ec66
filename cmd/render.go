package cmd

import (
	"fmt"
	"strings"

	"github.com/freetint-cli/freetint/apply"
	"github.com/freetint-cli/freetint/color"
	"github.com/freetint-cli/freetint/icon"
	"github.com/freetint-cli/freetint/style"
	"github.com/freetint-cli/freetint/tint"
	"github.com/freetint-cli/freetint/util"
)

// swatchBlock is the glyph a single tint renders as inside a scale strip.
const swatchBlock = "▇"

// swatch renders the colored strip of a scale, padded to the canonical stop
// count so linked single-tint groups line up with generated ones.
func swatch(tints []tint.Tint) string {
	var b strings.Builder
	for _, t := range tints {
		b.WriteString(style.Fg(color.Hex(t.Hex))(swatchBlock))
	}

	for i := len(tints); i < len(tint.Stops); i++ {
		b.WriteString(" ")
	}

	return b.String()
}

// printSummary reports the per-group outcome of an apply run.
func printSummary(result *apply.Result) {
	for _, g := range result.Groups {
		var outcome []string
		if g.Created > 0 {
			outcome = append(outcome, fmt.Sprintf("%s created", util.Quantify(g.Created, "entry", "entries")))
		}
		if g.Updated > 0 {
			outcome = append(outcome, fmt.Sprintf("%s updated", util.Quantify(g.Updated, "entry", "entries")))
		}

		fmt.Printf("%s %s", swatch(g.Tints), style.Bold(g.Name))
		if g.Link != "" {
			fmt.Printf(" %s %s", icon.Get(icon.Link), g.Link)
		}
		fmt.Printf("  %s\n", style.Faint(strings.Join(outcome, ", ")))
	}

	if result.Written {
		fmt.Printf("%s wrote %s\n", icon.Get(icon.Success), style.Bold(result.Document))
	} else {
		fmt.Printf("%s dry run, %s left untouched\n", icon.Get(icon.Mark), style.Bold(result.Document))
	}
}

// printScale renders one row per stop with a color band, marking the row that
// reproduces the seed exactly.
func printScale(tints []tint.Tint, seed string) {
	seed = strings.ToLower(strings.TrimPrefix(seed, "#"))

	width := 12
	if w, _, err := util.TerminalSize(); err == nil {
		width = util.Max(4, util.Min(2*width, w-16))
	}
	band := strings.Repeat(swatchBlock, width)

	for _, t := range tints {
		mark := " "
		if strings.ToLower(t.Hex) == seed {
			mark = icon.Get(icon.Mark)
		}

		fmt.Printf("%s %s %s %s\n",
			style.Bold(fmt.Sprintf("%4s", t.Stop.String())),
			style.Fg(color.Hex(t.Hex))(band),
			style.Faint("#"+t.Hex),
			mark,
		)
	}
}

package palette

import (
	"errors"
	"fmt"

	"github.com/freetint-cli/freetint/tint"
)

// Reconciliation failure modes.
var (
	// ErrReferenceNotFound indicates a link points at a group or stop the palette does not contain.
	ErrReferenceNotFound = errors.New("referenced group not found")

	// ErrUnknownStrategy indicates a merge strategy outside the supported set.
	ErrUnknownStrategy = errors.New("unknown merge strategy")
)

// Strategy selects how a generated scale folds into an existing group.
type Strategy string

const (
	// StrategyUpdate keeps entry identity per stop and bumps versions.
	StrategyUpdate Strategy = "update"

	// StrategyReplace clears the group first; every stop gets fresh identity.
	StrategyReplace Strategy = "replace"
)

// ParseStrategy validates a configuration value into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch v := Strategy(s); v {
	case StrategyUpdate, StrategyReplace:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Delta summarizes the entry-level outcome of a merge.
type Delta struct {
	Created int
	Updated int
}

// Merge folds a generated scale into the named group and marks it touched.
//
// Under StrategyUpdate incoming stops are matched to existing entries by the
// trailing "<group>.<stop>" suffix: a match keeps its id, has its version
// bumped by exactly one (even when the hex did not change) and takes the new
// hex and qualified name, so renamed entries converge back onto the
// convention. Misses append fresh entries with version 1. Existing entries no
// stop claims are retained untouched. Under StrategyReplace the group's
// entries are discarded first, so every stop gets fresh identity.
func (p *Palette) Merge(group string, tints []tint.Tint, strategy Strategy) Delta {
	g := p.ensure(group)
	p.touch(group)

	if strategy == StrategyReplace {
		g.Entries = nil
	}

	// Index retained entries by their stop suffix. First claim wins.
	byStop := make(map[tint.Stop]*Entry)
	for _, e := range g.Entries {
		name, stop, ok := SplitName(e.Name)
		if !ok || name != group {
			continue
		}
		if _, claimed := byStop[stop]; !claimed {
			byStop[stop] = e
		}
	}

	var delta Delta
	for _, t := range tints {
		qualified := Qualify(p.Prefix, group, t.Stop)

		if e, ok := byStop[t.Stop]; ok {
			e.Version++
			e.Name = qualified
			e.Hex = t.Hex
			delta.Updated++
			continue
		}

		g.Entries = append(g.Entries, &Entry{
			ID:      NewID(),
			Version: 1,
			Name:    qualified,
			Hex:     t.Hex,
		})
		delta.Created++
	}

	g.sort()
	return delta
}

// Link copies the hex of the target group's entry at the given stop into a
// single entry under name, following the same identity rules as an update
// merge. A missing target group or stop entry is a hard failure: the
// reference is never silently skipped.
func (p *Palette) Link(name, target string, stop tint.Stop) (*Entry, error) {
	g, ok := p.index[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrReferenceNotFound, target)
	}

	source, ok := g.At(stop).Get()
	if !ok {
		return nil, fmt.Errorf("%w: %q has no stop %s", ErrReferenceNotFound, target, stop)
	}

	p.Merge(name, []tint.Tint{{Group: name, Stop: stop, Hex: source.Hex}}, StrategyUpdate)
	return p.index[name].At(stop).MustGet(), nil
}

// Package palette models the managed slice of a document's color variables
// and reconciles generated tonal scales into it.
//
// Entries follow the qualified naming convention
// "<prefix> / <group> / <group>.<stop>"; the prefix partitions the document's
// variables into the ones this tool owns and everything else.
package palette

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/freetint-cli/freetint/tint"
	"github.com/freetint-cli/freetint/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Separator joins the segments of a qualified entry name.
const Separator = " / "

// stopSuffix captures the "<group>.<stop>" trailing segment of a qualified name.
var stopSuffix = regexp.MustCompile(`^(?P<group>.+)\.(?P<stop>\d+)$`)

// Entry is a single color variable owned by the palette. ID never changes
// once minted; Version starts at 1 and only grows.
type Entry struct {
	ID      ID
	Version int
	Name    string
	Hex     string
}

// Group collects the entries of one named scale in ascending stop order.
type Group struct {
	Name    string
	Entries []*Entry
}

// At returns the entry whose trailing segment reads "<group>.<stop>", if any.
func (g *Group) At(stop tint.Stop) mo.Option[*Entry] {
	for _, e := range g.Entries {
		if name, s, ok := SplitName(e.Name); ok && name == g.Name && s == stop {
			return mo.Some(e)
		}
	}
	return mo.None[*Entry]()
}

// sort orders entries ascending by their stop suffix. Entries without a
// parseable suffix sink to the tail; relative order among equals is kept.
func (g *Group) sort() {
	rank := func(e *Entry) int {
		if _, stop, ok := SplitName(e.Name); ok {
			return int(stop)
		}
		return math.MaxInt
	}
	slices.SortStableFunc(g.Entries, func(a, b *Entry) int {
		return rank(a) - rank(b)
	})
}

// Palette holds the insertion-ordered groups filed under one name prefix and
// tracks which of them the current invocation rewrote.
type Palette struct {
	Prefix string

	groups  []*Group
	index   map[string]*Group
	touched map[string]struct{}
}

// New returns an empty palette for the given name prefix.
func New(prefix string) *Palette {
	return &Palette{
		Prefix:  prefix,
		index:   make(map[string]*Group),
		touched: make(map[string]struct{}),
	}
}

// Add files an existing entry under the given group, preserving load order.
// The document adapter uses it while scanning color variables.
func (p *Palette) Add(group string, e *Entry) {
	g := p.ensure(group)
	g.Entries = append(g.Entries, e)
}

// Group returns the named group when the palette contains it.
func (p *Palette) Group(name string) mo.Option[*Group] {
	if g, ok := p.index[name]; ok {
		return mo.Some(g)
	}
	return mo.None[*Group]()
}

// Groups returns all groups in insertion order.
func (p *Palette) Groups() []*Group {
	return p.groups
}

// GroupNames returns the group names in insertion order.
func (p *Palette) GroupNames() []string {
	return lo.Map(p.groups, func(g *Group, _ int) string {
		return g.Name
	})
}

// Touched returns the names of groups this invocation rewrote, in insertion order.
func (p *Palette) Touched() []string {
	return lo.Filter(p.GroupNames(), func(name string, _ int) bool {
		return p.IsTouched(name)
	})
}

// IsTouched reports whether the named group was rewritten by this invocation.
func (p *Palette) IsTouched(group string) bool {
	_, ok := p.touched[group]
	return ok
}

// ensure returns the named group, creating and indexing it on first use.
func (p *Palette) ensure(name string) *Group {
	if g, ok := p.index[name]; ok {
		return g
	}

	g := &Group{Name: name}
	p.groups = append(p.groups, g)
	p.index[name] = g
	return g
}

// touch marks a group as rewritten by this invocation.
func (p *Palette) touch(name string) {
	p.touched[name] = struct{}{}
}

// Qualify composes the canonical entry name for a group stop under a prefix.
func Qualify(prefix, group string, stop tint.Stop) string {
	return prefix + Separator + group + Separator + group + "." + stop.String()
}

// Member reports whether a qualified name belongs to the prefix's partition
// and extracts its group segment.
func Member(prefix, name string) (group string, ok bool) {
	lead := prefix + Separator
	if !strings.HasPrefix(name, lead) {
		return "", false
	}

	rest := name[len(lead):]
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}

	group = strings.TrimSpace(rest)
	return group, group != ""
}

// SplitName parses the trailing segment of a qualified name into its group
// and stop. ok is false when the name does not follow the convention.
func SplitName(name string) (group string, stop tint.Stop, ok bool) {
	last := name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		last = name[i+1:]
	}

	m := util.ReGroups(stopSuffix, strings.TrimSpace(last))
	if len(m) == 0 {
		return "", 0, false
	}

	n, err := strconv.Atoi(m["stop"])
	if err != nil {
		return "", 0, false
	}

	return m["group"], tint.Stop(n), true
}

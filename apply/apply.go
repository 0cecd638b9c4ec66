package apply

import (
	"errors"
	"fmt"
	"sort"

	"github.com/freetint-cli/freetint/key"
	"github.com/freetint-cli/freetint/log"
	"github.com/freetint-cli/freetint/lunacy"
	"github.com/freetint-cli/freetint/palette"
	"github.com/freetint-cli/freetint/tint"
	"github.com/freetint-cli/freetint/tintsdev"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/viper"
)

// Result summarizes a completed run.
type Result struct {
	Document string  `json:"document"`
	Groups   []Group `json:"groups"`
	Written  bool    `json:"written"`
}

// Group is the per-request slice of the result.
type Group struct {
	Name    string      `json:"name"`
	Link    string      `json:"link,omitempty"`
	Created int         `json:"created"`
	Updated int         `json:"updated"`
	Tints   []tint.Tint `json:"tints"`
}

// Run executes the pipeline: validate the batch, open the document, load the
// prefix-scoped palette, reconcile every request in order, splice the palette
// back and write the document once. Any failure aborts before the write, so
// the file is either fully updated or byte-identical to its pre-run state.
func Run(options *Options) (*Result, error) {
	steps, err := options.steps()
	if err != nil {
		return nil, err
	}

	strategy, err := options.strategy()
	if err != nil {
		return nil, err
	}

	doc, err := lunacy.Open(options.Path)
	if err != nil {
		return nil, err
	}

	prefix := viper.GetString(key.PalettePrefix)
	p, err := doc.Palette(prefix)
	if err != nil {
		return nil, err
	}

	log.Debugf("%s: %d color variables, %d under %q", doc.Path(), doc.Variables(), len(p.Groups()), prefix)

	result := &Result{Document: doc.Path()}
	for _, s := range steps {
		group, err := reconcile(p, s, strategy)
		if err != nil {
			return nil, err
		}

		result.Groups = append(result.Groups, *group)
	}

	if err = doc.Apply(p); err != nil {
		return nil, err
	}

	if options.DryRun {
		log.Info("dry run, document left untouched")
		return result, nil
	}

	if err = doc.Write(); err != nil {
		return nil, err
	}

	result.Written = true
	return result, nil
}

// reconcile executes a single request against the palette.
func reconcile(p *palette.Palette, s step, strategy palette.Strategy) (*Group, error) {
	if s.color.IsLink() {
		entry, err := p.Link(s.color.Name, s.color.Value, s.anchor)
		if err != nil {
			return nil, suggest(err, s.color.Value, p)
		}

		group := &Group{
			Name:  s.color.Name,
			Link:  s.color.Value,
			Tints: []tint.Tint{{Group: s.color.Name, Stop: s.anchor, Hex: entry.Hex}},
		}
		if entry.Version == 1 {
			group.Created = 1
		} else {
			group.Updated = 1
		}

		return group, nil
	}

	tints, err := generate(s)
	if err != nil {
		return nil, err
	}

	delta := p.Merge(s.color.Name, tints, strategy)
	return &Group{
		Name:    s.color.Name,
		Created: delta.Created,
		Updated: delta.Updated,
		Tints:   tints,
	}, nil
}

// generate produces the scale locally or through the remote tint service.
// The service runs its own distribution, so anchor and bound tweaks only
// shape local generation.
func generate(s step) ([]tint.Tint, error) {
	if viper.GetBool(key.RemoteEnabled) {
		return tintsdev.Scale(s.color.Name, s.color.Value)
	}

	return tint.Generate(s.request)
}

// suggest annotates a dangling reference with the closest group name the
// palette actually holds. References to a present group (failing on a
// missing stop) are left alone.
func suggest(err error, target string, p *palette.Palette) error {
	if !errors.Is(err, palette.ErrReferenceNotFound) || p.Group(target).IsPresent() {
		return err
	}

	ranks := fuzzy.RankFindNormalizedFold(target, p.GroupNames())
	if len(ranks) == 0 {
		return err
	}

	sort.Sort(ranks)
	return fmt.Errorf("%w, did you mean %q?", err, ranks[0].Target)
}

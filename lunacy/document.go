// Package lunacy adapts Lunacy .free documents: it loads the prefix-scoped
// slice of a document's color variables into a palette and splices the
// reconciled palette back without disturbing any other byte of the document.
package lunacy

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/freetint-cli/freetint/palette"
	"github.com/samber/lo"
)

// SupportedVersion is the last document format generation the adapter is
// known to read and rewrite safely.
const SupportedVersion = 51

// Adapter boundary failure modes.
var (
	// ErrMalformedDocument indicates the archive or its JSON entry does not have the expected shape.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrUnsupportedVersion indicates a document format generation newer than the adapter understands.
	ErrUnsupportedVersion = errors.New("unsupported document version")
)

// variables is the key of the flat ordered color variable list.
const variables = "colorVariables"

// rawVariable is one colorVariables element exactly as it appears in the
// document, plus the name used to classify it. Elements outside the active
// prefix are carried as raw bytes only and never re-marshaled.
type rawVariable struct {
	raw  []byte
	name string
}

// Document is a loaded .free document held fully in memory. Nothing touches
// the file between Open and Write, so a failed run leaves the original
// byte-identical.
type Document struct {
	path    string
	entry   string
	archive *archive
	data    []byte
	vars    []rawVariable
}

// Open reads the archive at path and locates its JSON model entry.
func Open(path string) (*Document, error) {
	ar, err := openArchive(path)
	if err != nil {
		return nil, err
	}

	d := &Document{
		path:    path,
		entry:   entryName(),
		archive: ar,
	}

	d.data, err = ar.read(d.entry)
	if err != nil {
		return nil, err
	}

	if version, err := jsonparser.GetInt(d.data, "version"); err == nil && version > SupportedVersion {
		return nil, fmt.Errorf("%w: %d is newer than %d", ErrUnsupportedVersion, version, SupportedVersion)
	}

	if err := d.scan(); err != nil {
		return nil, err
	}

	return d, nil
}

// Path returns the location of the document on disk.
func (d *Document) Path() string {
	return d.path
}

// Variables returns how many color variables the document currently holds.
func (d *Document) Variables() int {
	return len(d.vars)
}

// scan indexes the ordered colorVariables elements as raw slices. A document
// without the list at all is treated as empty; Apply creates it.
func (d *Document) scan() error {
	d.vars = nil

	var broken error
	_, err := jsonparser.ArrayEach(d.data, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if broken != nil {
			return
		}

		if dataType != jsonparser.Object {
			broken = fmt.Errorf("%w: color variable is %s, not an object", ErrMalformedDocument, dataType)
			return
		}

		// A nameless element can't belong to any prefix; carry it as-is.
		name, _ := jsonparser.GetString(value, "name")
		d.vars = append(d.vars, rawVariable{raw: value, name: name})
	}, variables)

	if broken != nil {
		return broken
	}
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, variables, err)
	}

	return nil
}

// Palette collects the document's color variables filed under the given name
// prefix. Variables outside the prefix are never parsed beyond their name.
func (d *Document) Palette(prefix string) (*palette.Palette, error) {
	p := palette.New(prefix)

	for _, v := range d.vars {
		group, ok := palette.Member(prefix, v.name)
		if !ok {
			continue
		}

		e, err := parseVariable(v.raw)
		if err != nil {
			return nil, err
		}

		p.Add(group, e)
	}

	return p, nil
}

// Apply rebuilds the colorVariables list from the reconciled palette: every
// variable of a touched group is removed from its old position and the
// group's current entries are appended at the tail, ascending by stop.
// Variables of untouched groups and outside the prefix keep their original
// raw bytes and relative order.
func (d *Document) Apply(p *palette.Palette) error {
	kept := make([][]byte, 0, len(d.vars))
	for _, v := range d.vars {
		if group, ok := palette.Member(p.Prefix, v.name); ok && p.IsTouched(group) {
			continue
		}
		kept = append(kept, v.raw)
	}

	for _, name := range p.Touched() {
		for _, e := range p.Group(name).MustGet().Entries {
			kept = append(kept, marshalVariable(e))
		}
	}

	list := make([]byte, 0, len(d.data))
	list = append(list, '[')
	for i, raw := range kept {
		if i > 0 {
			list = append(list, ',')
		}
		list = append(list, raw...)
	}
	list = append(list, ']')

	data, err := jsonparser.Set(d.data, list, variables)
	if err != nil {
		return fmt.Errorf("splice %s: %w", variables, err)
	}

	d.data = data
	return d.scan()
}

// Write repacks the archive with the current model entry and atomically
// replaces the document on disk.
func (d *Document) Write() error {
	return d.archive.write(d.path, d.entry, d.data)
}

// parseVariable decodes a palette-member element into an entry. Every field
// of the record shape is required.
func parseVariable(raw []byte) (*palette.Entry, error) {
	id, err := jsonparser.GetString(raw, "id")
	if err != nil {
		return nil, fmt.Errorf("%w: color variable without id: %v", ErrMalformedDocument, err)
	}

	version, err := jsonparser.GetInt(raw, "version")
	if err != nil {
		return nil, fmt.Errorf("%w: color variable %q without version: %v", ErrMalformedDocument, id, err)
	}

	name, err := jsonparser.GetString(raw, "name")
	if err != nil {
		return nil, fmt.Errorf("%w: color variable %q without name: %v", ErrMalformedDocument, id, err)
	}

	value, err := jsonparser.GetString(raw, "value")
	if err != nil {
		return nil, fmt.Errorf("%w: color variable %q without value: %v", ErrMalformedDocument, id, err)
	}

	token, err := palette.ParseID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return &palette.Entry{
		ID:      token,
		Version: int(version),
		Name:    name,
		Hex:     value,
	}, nil
}

// marshalVariable encodes an entry the way Lunacy stores color variables:
// a flat record with the id in its URL-safe form and the bare hex value.
func marshalVariable(e *palette.Entry) []byte {
	return lo.Must(json.Marshal(struct {
		ID      string `json:"id"`
		Version int    `json:"version"`
		Name    string `json:"name"`
		Value   string `json:"value"`
	}{
		ID:      e.ID.String(),
		Version: e.Version,
		Name:    e.Name,
		Value:   e.Hex,
	}))
}

// Package catalog is the registry of showcased products: their copy for the
// detail panel, the optional external preview page and the builder of
// their 3D shape group.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/iburimskiy/product-showcase/internal/scene"
)

var ErrUnknownProduct = errors.New("unknown product")

// Spec is one label/value line of the detail panel.
type Spec struct {
	Label string
	Value string
}

type Entry struct {
	ID          string
	Title       string
	Description string
	Specs       []Spec

	// PreviewURL, when set, replaces the 3D view with the external page.
	PreviewURL string

	Build func() *scene.Group
}

func (e *Entry) HasPreview() bool { return e.PreviewURL != "" }

// Catalog keeps entries in display order. Entries are immutable once added.
type Catalog struct {
	entries []*Entry
	byID    map[string]*Entry
	aliases map[string]string
}

func New(entries ...*Entry) (*Catalog, error) {
	c := &Catalog{
		byID:    make(map[string]*Entry, len(entries)),
		aliases: map[string]string{},
	}
	for _, e := range entries {
		if e.ID == "" || e.Build == nil {
			return nil, fmt.Errorf("catalog entry %q: missing id or builder", e.ID)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate id", e.ID)
		}
		cp := *e
		cp.Specs = slices.Clone(e.Specs)
		c.entries = append(c.entries, &cp)
		c.byID[e.ID] = &cp
	}
	return c, nil
}

// Alias makes name resolve to id, as product cards use their own names.
func (c *Catalog) Alias(name, id string) error {
	if _, ok := c.byID[id]; !ok {
		return fmt.Errorf("alias %q: %w %q", name, ErrUnknownProduct, id)
	}
	c.aliases[name] = id
	return nil
}

// Resolve maps an id or alias to the entry id.
func (c *Catalog) Resolve(name string) (string, error) {
	if _, ok := c.byID[name]; ok {
		return name, nil
	}
	if id, ok := c.aliases[name]; ok {
		return id, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownProduct, name)
}

func (c *Catalog) Get(id string) (*Entry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

func (c *Catalog) Entries() []*Entry { return c.entries }

func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.ID
	}
	return ids
}

// WithPreview returns a copy of the catalog where id uses url as external
// preview. An empty url removes the preview.
func (c *Catalog) WithPreview(id, url string) (*Catalog, error) {
	if _, ok := c.byID[id]; !ok {
		return nil, fmt.Errorf("preview override: %w %q", ErrUnknownProduct, id)
	}
	entries := make([]*Entry, len(c.entries))
	for i, e := range c.entries {
		cp := *e
		if e.ID == id {
			cp.PreviewURL = url
		}
		entries[i] = &cp
	}
	out, err := New(entries...)
	if err != nil {
		return nil, err
	}
	for k, v := range c.aliases {
		out.aliases[k] = v
	}
	return out, nil
}

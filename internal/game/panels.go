package game

import (
	"slices"

	"github.com/iburimskiy/product-showcase/internal/catalog"
	"github.com/iburimskiy/product-showcase/internal/page"
)

const blankPage = "about:blank"

// surface is the gallery area the viewer renders into. rect is in page
// coordinates.
type surface struct {
	rect    page.Rect
	visible bool
}

func (s *surface) SetVisible(v bool) { s.visible = v }

func (s *surface) Size() (int, int) { return int(s.rect.W), int(s.rect.H) }

// empty reports whether the surface has no area to render into.
func (s *surface) empty() bool {
	w, h := s.Size()
	return w <= 0 || h <= 0
}

// previewPanel stands in for the embedded page of products with an external
// preview. It takes the surface's place while shown.
type previewPanel struct {
	url     string
	visible bool
}

func (p *previewPanel) Show(url string) {
	p.url = url
	p.visible = true
}

func (p *previewPanel) Hide() {
	p.url = blankPage
	p.visible = false
}

type detailPanel struct {
	title       string
	description string
	specs       []catalog.Spec
}

func (d *detailPanel) SetDetails(title, description string, specs []catalog.Spec) {
	d.title = title
	d.description = description
	d.specs = slices.Clone(specs)
}

package game

import (
	"math"

	"github.com/iburimskiy/product-showcase/internal/config"
	"github.com/iburimskiy/product-showcase/internal/page"
)

// Section ids double as navigation anchors.
const (
	secHero     = "inicio"
	secProducts = "productos"
	secGallery  = "gallery-3d"
	secPackages = "paquetes"
	secContact  = "contacto"
)

const (
	pad       = 60.0
	gap       = 20.0
	cardH     = 320.0
	packageH  = 260.0
	contactH  = 90.0
	surfaceH  = 480.0
	heroModel = 400.0
)

// sections lays out the page for a viewport of height vh. The hero fills
// the first screen.
func sections(vh float64) []page.Section {
	return []page.Section{
		{ID: secHero, Title: "Inicio", Height: math.Max(640, vh)},
		{ID: secProducts, Title: "Productos", Height: 720},
		{ID: secGallery, Title: "Galeria 3D", Height: 860},
		{ID: secPackages, Title: "Paquetes", Height: 720},
		{ID: secContact, Title: "Contacto", Height: 620},
	}
}

// geometry holds every interactive rectangle in page coordinates.
type geometry struct {
	width float64

	headers map[string]page.Rect

	heroTitle page.Rect
	heroCTA   page.Rect
	heroModel page.Rect

	cards       []page.Rect
	cardButtons []page.Rect

	surface  page.Rect
	controls []page.Rect
	details  page.Rect

	packages       []page.Rect
	packageButtons []page.Rect
	stats          []page.Rect

	contacts []page.Rect
	formBox  page.Rect
	submit   page.Rect
}

// row spreads n boxes of at most maxW across the content width, centered.
func row(width float64, n int, maxW, y, h float64) []page.Rect {
	if n <= 0 {
		return nil
	}
	w := math.Min(maxW, (width-2*pad-float64(n-1)*gap)/float64(n))
	total := float64(n)*w + float64(n-1)*gap
	x := (width - total) / 2
	out := make([]page.Rect, n)
	for i := range out {
		out[i] = page.Rect{X: x + float64(i)*(w+gap), Y: y, W: w, H: h}
	}
	return out
}

func bottomButton(card page.Rect) page.Rect {
	return page.Rect{X: card.X + 16, Y: card.Y + card.H - 56, W: card.W - 32, H: 40}
}

func buildGeometry(width float64, l *page.Layout, products, packages, stats, contacts int) geometry {
	top := func(id string) float64 {
		s, _ := l.Section(id)
		return s.Top
	}
	g := geometry{width: width, headers: map[string]page.Rect{}}
	for _, id := range []string{secProducts, secGallery, secPackages, secContact} {
		g.headers[id] = page.Rect{X: pad, Y: top(id) + 50, W: width - 2*pad, H: 80}
	}

	hero, _ := l.Section(secHero)
	g.heroTitle = page.Rect{X: pad, Y: hero.Top + hero.Height*0.28, W: width/2 - pad, H: 140}
	g.heroCTA = page.Rect{X: pad, Y: hero.Top + hero.Height*0.62, W: 220, H: 48}
	g.heroModel = page.Rect{
		X: width - pad - heroModel,
		Y: hero.Top + (hero.Height-heroModel)/2,
		W: heroModel, H: heroModel,
	}

	g.cards = row(width, products, 240, top(secProducts)+180, cardH)
	for _, c := range g.cards {
		g.cardButtons = append(g.cardButtons, bottomButton(c))
	}

	g.surface = page.Rect{X: pad, Y: top(secGallery) + 150, W: math.Round((width - 2*pad) * 0.6), H: surfaceH}
	if products > 0 {
		bw := math.Min(config.ButtonWidth, (g.surface.W-float64(products-1)*config.ButtonGap)/float64(products))
		for i := 0; i < products; i++ {
			g.controls = append(g.controls, page.Rect{
				X: g.surface.X + float64(i)*(bw+config.ButtonGap),
				Y: g.surface.Y + g.surface.H + 24,
				W: bw, H: config.ButtonHeight,
			})
		}
	}
	dx := g.surface.X + g.surface.W + 40
	g.details = page.Rect{X: dx, Y: g.surface.Y, W: width - pad - dx, H: g.surface.H}

	g.packages = row(width, packages, 320, top(secPackages)+160, packageH)
	for _, p := range g.packages {
		g.packageButtons = append(g.packageButtons, bottomButton(p))
	}
	g.stats = row(width, stats, 1e9, top(secPackages)+480, 120)

	for i := 0; i < contacts; i++ {
		g.contacts = append(g.contacts, page.Rect{X: pad, Y: top(secContact) + 160 + float64(i)*(contactH+gap), W: 360, H: contactH})
	}
	fx := math.Max(pad+360+gap*2, width/2+40)
	g.formBox = page.Rect{X: fx, Y: top(secContact) + 160, W: width - pad - fx, H: 300}
	g.submit = page.Rect{X: g.formBox.X + 24, Y: g.formBox.Y + g.formBox.H - 72, W: g.formBox.W - 48, H: 48}
	return g
}

// toScreen shifts a page rectangle by the scroll offset.
func toScreen(l *page.Layout, r page.Rect) page.Rect {
	r.Y = l.ToScreen(r.Y)
	return r
}

// onScreen reports whether r (screen coordinates) intersects the viewport.
func onScreen(r page.Rect, vh float64) bool {
	return r.Y+r.H > 0 && r.Y < vh
}

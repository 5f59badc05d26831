package game

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/product-showcase/internal/config"
	"github.com/iburimskiy/product-showcase/internal/form"
	"github.com/iburimskiy/product-showcase/internal/page"
	"github.com/iburimskiy/product-showcase/internal/reveal"
	"github.com/iburimskiy/product-showcase/internal/scene"
	"github.com/iburimskiy/product-showcase/internal/viewer"
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	if !g.ready {
		g.drawLoader(screen)
		return
	}
	g.links = g.field.Draw(screen, g.links)
	g.drawShapes(screen)

	vh := float64(g.h)
	painters := map[string]func(*ebiten.Image){
		secHero:     g.drawHero,
		secProducts: g.drawProducts,
		secGallery:  g.drawGallery,
		secPackages: g.drawPackages,
		secContact:  g.drawContact,
	}
	for _, s := range g.layout.Sections() {
		r := toScreen(g.layout, page.Rect{Y: s.Top, H: s.Height})
		if fn := painters[s.ID]; fn != nil && onScreen(r, vh) {
			fn(screen)
		}
	}

	g.drawNav(screen)
	g.marks = g.trail.Draw(screen, g.now, g.marks)
	g.drawStatus(screen)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	const band = 4
	t := g.elapsed
	for y := 0; y < g.h; y += band {
		ratio := float64(y) / float64(g.h)
		c := blend(colBackground, colDeep, ratio*0.7+0.3*math.Sin(t*0.3+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.w), band, c, false)
	}
}

func (g *Game) drawLoader(screen *ebiten.Image) {
	p := g.loader.Progress(g.now)
	cx, cy := float64(g.w)/2, float64(g.h)/2

	const segments = 24
	spin := p * 6 * math.Pi
	for j := 0; j < segments; j++ {
		a0 := float64(j)*2*math.Pi/segments + spin
		a1 := a0 + math.Pi/segments
		c := hue(float64(j)*15+spin*60, 0.8, 1)
		vector.StrokeLine(screen,
			float32(cx+math.Cos(a0)*40), float32(cy-40+math.Sin(a0)*40),
			float32(cx+math.Cos(a1)*40), float32(cy-40+math.Sin(a1)*40),
			3, withAlpha(c, float64(j+1)/segments), true)
	}

	bar := page.Rect{X: cx - 150, Y: cy + 30, W: 300, H: 4}
	vector.DrawFilledRect(screen, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), colBorder, false)
	vector.DrawFilledRect(screen, float32(bar.X), float32(bar.Y), float32(bar.W*p), float32(bar.H), blend(colPink, colCyan, p), false)
	drawCentered(screen, "CARGANDO", g.fonts.label, page.Rect{X: bar.X, Y: bar.Y + 12, W: bar.W, H: 24}, colMuted, 1)
}

// drawShapes paints the floating outlines of the hero that drift with the
// scroll at different speeds.
func (g *Game) drawShapes(screen *ebiten.Image) {
	y := g.layout.ScrollY()
	shapes := []struct {
		x, y, size float64
		clr        color.RGBA
		square     bool
	}{
		{0.08, 0.2, 60, colPink, false},
		{0.45, 0.12, 40, colCyan, true},
		{0.88, 0.7, 80, colPurple, false},
		{0.6, 0.85, 30, colGreen, true},
	}
	for i, s := range shapes {
		x := s.x * float64(g.w)
		sy := s.y*float64(g.h) - y + page.Parallax(y, i)
		if sy+s.size < 0 || sy-s.size > float64(g.h) {
			continue
		}
		wobble := math.Sin(g.elapsed+float64(i)) * 10
		c := withAlpha(s.clr, 0.25)
		if s.square {
			vector.StrokeRect(screen, float32(x-s.size/2), float32(sy-s.size/2+wobble), float32(s.size), float32(s.size), 1.5, c, true)
			continue
		}
		vector.StrokeCircle(screen, float32(x), float32(sy+wobble), float32(s.size/2), 1.5, c, true)
	}
}

// drawImage draws img with its top-left at (x, y), scaled about its center.
func drawImage(dst, img *ebiten.Image, x, y, scale, alpha float64) {
	if alpha <= 0 {
		return
	}
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+w/2, y+h/2)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func (g *Game) render(img *ebiten.Image, s *scene.Scene, cam *scene.Camera) {
	img.Clear()
	b := img.Bounds()
	g.renderer.Render(img, s, cam, scene.Viewport{W: float64(b.Dx()), H: float64(b.Dy())})
}

var heroChar = reveal.Entrance{FromY: 24, Duration: 400 * time.Millisecond, Ease: reveal.Power2Out}

func (g *Game) drawHero(screen *ebiten.Image) {
	title := toScreen(g.layout, g.geo.heroTitle)
	delays := reveal.Stagger(len(heroLine1)+len(heroLine2), 50*time.Millisecond)
	since := time.Duration(-1)
	if !g.titleAt.IsZero() {
		since = g.now.Sub(g.titleAt)
	}
	last := heroChar
	last.Delay = delays[len(delays)-1]
	settled := since >= 0 && last.Done(since)
	i := 0
	for line, s := range []string{heroLine1, heroLine2} {
		x := title.X
		y := title.Y + float64(line)*68
		clr := colText
		if line == 1 {
			clr = colPink
		}
		if settled {
			drawText(screen, s, g.fonts.hero, x, y, clr, 1)
			continue
		}
		for _, r := range s {
			ch := string(r)
			e := heroChar
			e.Delay = delays[i]
			st := e.At(since)
			drawText(screen, ch, g.fonts.hero, x+st.DX, y+st.DY, clr, st.Opacity)
			x += text.Advance(ch, g.fonts.hero)
			i++
		}
	}
	sub := heroChar.At(since - delays[len(delays)-1])
	for j, l := range wrap(heroSub, g.fonts.body, title.W) {
		drawText(screen, l, g.fonts.body, title.X, title.Y+150+float64(j)*22+sub.DY, colMuted, sub.Opacity)
	}
	g.cta.draw(screen, g.fonts.label, sub.Opacity)

	model := toScreen(g.layout, g.geo.heroModel)
	g.render(g.heroImg, g.hero.Scene(), g.hero.Camera())
	drawImage(screen, g.heroImg, model.X, model.Y, 1, 1)
}

func (g *Game) drawHeader(screen *ebiten.Image, id string) {
	s, _ := g.layout.Section(id)
	st := g.observer.State("header-"+id, g.now)
	r := toScreen(g.layout, g.geo.headers[id])
	r.Y += st.DY
	tw := text.Advance(s.Title, g.fonts.title)
	drawText(screen, s.Title, g.fonts.title, r.X+(r.W-tw)/2, r.Y, colText, st.Opacity)
	vector.StrokeLine(screen, float32(r.X+r.W/2-40), float32(r.Y+50), float32(r.X+r.W/2+40), float32(r.Y+50), 2, withAlpha(colPink, st.Opacity), false)
	if sub, ok := subtitles[id]; ok {
		drawCentered(screen, sub, g.fonts.body, page.Rect{X: r.X, Y: r.Y + 58, W: r.W, H: 24}, colMuted, st.Opacity)
	}
}

func (g *Game) drawProducts(screen *ebiten.Image) {
	g.drawHeader(screen, secProducts)
	for i, c := range g.cards {
		st := g.observer.State(cardID(i), g.now)
		if st.Opacity <= 0 {
			continue
		}
		r := toScreen(g.layout, g.geo.cards[i])
		dy := st.DY - c.lift
		r.Y += dy
		if c.lift > 0 {
			shadow := r
			shadow.X -= c.tiltY * 1.5
			shadow.Y += c.tiltX*1.5 + c.lift
			vector.DrawFilledRect(screen, float32(shadow.X), float32(shadow.Y), float32(shadow.W), float32(shadow.H), withAlpha(colPurple, 0.15*st.Opacity), false)
		}
		drawCard(screen, r, colPink, st.Opacity)

		g.render(c.img, c.scene, g.cardCam)
		drawImage(screen, c.img, r.X+(r.W-cardImgW)/2, r.Y+12, 1, st.Opacity)

		y := r.Y + cardImgH + 24
		for _, l := range wrap(c.entry.Title, g.fonts.label, r.W-32) {
			drawText(screen, l, g.fonts.label, r.X+16, y, colText, st.Opacity)
			y += 20
		}
		if len(c.entry.Specs) > 0 {
			sp := c.entry.Specs[0]
			drawText(screen, sp.Label+": "+sp.Value, g.fonts.small, r.X+16, y+6, colMuted, st.Opacity)
		}
		c.view.draw(screen, g.fonts.label, st.Opacity)
	}
}

func (g *Game) drawGallery(screen *ebiten.Image) {
	g.drawHeader(screen, secGallery)
	st := g.observer.State("viewer", g.now)
	surf := toScreen(g.layout, g.surface.rect)

	if g.viewer == nil {
		drawCard(screen, surf, colCyan, st.Opacity)
		drawCentered(screen, "Visor 3D no disponible", g.fonts.body, surf, colMuted, st.Opacity)
		return
	}

	vector.DrawFilledRect(screen, float32(surf.X), float32(surf.Y), float32(surf.W), float32(surf.H), withAlpha(colPanel, 0.6*st.Opacity), false)
	switch {
	case g.viewer.Mode() == viewer.ModeRender && g.surface.visible && g.viewImg != nil:
		g.render(g.viewImg, g.viewer.Scene(), g.viewer.Camera())
		drawImage(screen, g.viewImg, surf.X, surf.Y, st.Scale, st.Opacity)
	case g.frame.visible:
		g.drawPreview(screen, surf, st)
	}
	vector.StrokeRect(screen, float32(surf.X), float32(surf.Y), float32(surf.W), float32(surf.H), 1.5, withAlpha(colCyan, 0.6*st.Opacity), false)
	drawText(screen, g.panel.title, g.fonts.label, surf.X+16, surf.Y+14, colCyan, st.Opacity)
	if g.viewer.Mode() == viewer.ModeRender {
		x, y := g.viewer.Angles()
		readout := fmt.Sprintf("X: %d°  Y: %d°", x, y)
		w := text.Advance(readout, g.fonts.small)
		drawText(screen, readout, g.fonts.small, surf.X+surf.W-w-16, surf.Y+surf.H-28, colMuted, st.Opacity)
	}

	for _, b := range g.controls {
		b.draw(screen, g.fonts.small, st.Opacity)
	}
	g.drawDetails(screen, toScreen(g.layout, g.geo.details), st.Opacity)
}

func (g *Game) drawPreview(screen *ebiten.Image, r page.Rect, st reveal.State) {
	inner := page.Rect{X: r.X + 40, Y: r.Y + 60, W: r.W - 80, H: r.H - 120}
	vector.DrawFilledRect(screen, float32(inner.X), float32(inner.Y), float32(inner.W), 32, withAlpha(colBorder, st.Opacity), false)
	for i, c := range []color.RGBA{colPink, colGreen, colCyan} {
		vector.DrawFilledCircle(screen, float32(inner.X+16+float64(i)*16), float32(inner.Y+16), 5, withAlpha(c, st.Opacity), true)
	}
	drawText(screen, g.frame.url, g.fonts.small, inner.X+72, inner.Y+8, colText, st.Opacity)
	body := page.Rect{X: inner.X, Y: inner.Y + 32, W: inner.W, H: inner.H - 32}
	vector.StrokeRect(screen, float32(body.X), float32(body.Y), float32(body.W), float32(body.H), 1, withAlpha(colBorder, st.Opacity), false)
	drawCentered(screen, "Vista previa en vivo", g.fonts.title, body, colText, st.Opacity)
	drawCentered(screen, "Disponible en el sitio del producto", g.fonts.small,
		page.Rect{X: body.X, Y: body.Y + body.H/2 + 24, W: body.W, H: 24}, colMuted, st.Opacity)
}

func (g *Game) drawDetails(screen *ebiten.Image, r page.Rect, alpha float64) {
	if r.W < 120 {
		return
	}
	drawCard(screen, r, colPurple, alpha)
	x, y := r.X+24, r.Y+24
	for _, l := range wrap(g.panel.title, g.fonts.label, r.W-48) {
		drawText(screen, l, g.fonts.label, x, y, colText, alpha)
		y += 22
	}
	y += 8
	for _, l := range wrap(g.panel.description, g.fonts.body, r.W-48) {
		drawText(screen, l, g.fonts.body, x, y, colMuted, alpha)
		y += 22
	}
	y += 16
	for _, s := range g.panel.specs {
		drawText(screen, s.Label, g.fonts.small, x, y, colMuted, alpha)
		w := text.Advance(s.Value, g.fonts.small)
		drawText(screen, s.Value, g.fonts.small, r.X+r.W-24-w, y, colCyan, alpha)
		y += 20
		vector.StrokeLine(screen, float32(x), float32(y), float32(r.X+r.W-24), float32(y), 1, withAlpha(colBorder, alpha), false)
		y += 8
	}
}

func (g *Game) drawPackages(screen *ebiten.Image) {
	g.drawHeader(screen, secPackages)
	for i, p := range g.packages {
		st := g.observer.State(packageID(i), g.now)
		if st.Opacity <= 0 {
			continue
		}
		r := toScreen(g.layout, g.geo.packages[i])
		dy := st.DY - p.lift
		r.Y += dy
		accent := colCyan
		if i == 1 {
			accent = colPink
		}
		drawCard(screen, r, accent, st.Opacity)
		drawText(screen, p.info.Title, g.fonts.label, r.X+24, r.Y+20, colText, st.Opacity)
		drawText(screen, p.info.Price, g.fonts.title, r.X+24, r.Y+44, accent, st.Opacity)
		for j, f := range p.info.Features {
			drawText(screen, "+ "+f, g.fonts.small, r.X+24, r.Y+104+float64(j)*22, colMuted, st.Opacity)
		}
		p.view.draw(screen, g.fonts.label, st.Opacity)
	}

	alpha := 0.0
	if g.observer.Fired("stats") {
		alpha = 1
	}
	for i, c := range g.counters {
		r := toScreen(g.layout, g.geo.stats[i])
		clr := blend(colPink, colCyan, float64(i)/3)
		if !c.Done() {
			clr = blend(clr, colText, 0.4)
		}
		drawCentered(screen, c.Text(), g.fonts.stat, page.Rect{X: r.X, Y: r.Y, W: r.W, H: 70}, clr, alpha)
		drawCentered(screen, stats[i].Label, g.fonts.small, page.Rect{X: r.X, Y: r.Y + 70, W: r.W, H: 30}, colMuted, alpha)
	}
}

func (g *Game) drawContact(screen *ebiten.Image) {
	g.drawHeader(screen, secContact)
	for i, c := range contacts {
		st := g.observer.State(contactID(i), g.now)
		r := toScreen(g.layout, g.geo.contacts[i])
		r.X += st.DX
		drawCard(screen, r, colCyan, st.Opacity)
		drawText(screen, c.Label, g.fonts.small, r.X+24, r.Y+20, colMuted, st.Opacity)
		drawText(screen, c.Value, g.fonts.label, r.X+24, r.Y+44, colText, st.Opacity)
	}

	box := toScreen(g.layout, g.geo.formBox)
	drawCard(screen, box, colPink, 1)
	drawText(screen, "Escribenos", g.fonts.label, box.X+24, box.Y+24, colText, 1)
	msg := "Haz clic en el boton para llenar el formulario."
	if g.form.State() == form.Submitted {
		e := g.form.Entry()
		msg = fmt.Sprintf("Gracias, %s. Te contactaremos pronto sobre %s.", e.Name, orDefault(e.Product, "tu pedido"))
	}
	for j, l := range wrap(msg, g.fonts.body, box.W-48) {
		drawText(screen, l, g.fonts.body, box.X+24, box.Y+60+float64(j)*22, colMuted, 1)
	}

	b := g.submit
	b.label = g.form.Label()
	if g.form.State() == form.Submitted {
		r := b.rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), blend(colGreen, colCyan, 0.5), false)
		drawCentered(screen, b.label, g.fonts.label, r, colBackground, 1)
		left := clamp01(float64(g.form.Remaining(g.now)) / float64(form.RevertDelay))
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y+r.H-3), float32(r.W*left), 3, colBackground, false)
		return
	}
	b.draw(screen, g.fonts.label, 1)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func (g *Game) drawNav(screen *ebiten.Image) {
	alpha := 0.4
	if g.layout.Scrolled() {
		alpha = 0.92
	}
	vector.DrawFilledRect(screen, 0, 0, float32(g.w), config.NavHeight, withAlpha(colBackground, alpha), false)
	if g.layout.Scrolled() {
		vector.StrokeLine(screen, 0, config.NavHeight, float32(g.w), config.NavHeight, 1, withAlpha(colPink, 0.4), false)
	}
	drawText(screen, "INVITADOS", g.fonts.label, pad, 18, colPink, 1)
	drawText(screen, "STUDIO", g.fonts.label, pad+text.Advance("INVITADOS ", g.fonts.label), 18, colText, 1)

	if g.compactNav() {
		g.menu.active = g.layout.MenuOpen()
		g.menu.draw(screen, g.fonts.small, 1)
	}
	if !g.navVisible() {
		return
	}
	for _, b := range g.navLinks {
		if g.compactNav() {
			b.draw(screen, g.fonts.small, 1)
			continue
		}
		clr := colMuted
		if b.active || b.hovered {
			clr = colText
		}
		drawCentered(screen, b.label, g.fonts.label, b.rect, clr, 1)
		if b.active {
			r := b.rect
			vector.StrokeLine(screen, float32(r.X+8), float32(r.Y+r.H), float32(r.X+r.W-8), float32(r.Y+r.H), 2, colPink, false)
		}
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := "M: musica | 1-5: productos | Rueda: desplazar | Esc/Q: salir"
	if name, paused := g.player.Soundtrack(); name != "" {
		state := "Sonando"
		if paused {
			state = "En pausa"
		}
		status = fmt.Sprintf("%s %s - Espacio: pausa | %s", state, filepath.Base(name), status)
		g.drawSpectrum(screen)
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.h-20)
}

// drawSpectrum is a compact band meter of the soundtrack in the corner.
func (g *Game) drawSpectrum(screen *ebiten.Image) {
	bands := g.player.Bands()
	if len(bands) == 0 {
		return
	}
	const (
		barW = 3.0
		maxH = 24.0
	)
	x0 := float64(g.w) - 12 - float64(len(bands))*barW
	y0 := float64(g.h) - 8
	for i, b := range bands {
		h := math.Max(1, b*maxH)
		c := hue(float64(i)/float64(len(bands))*300, 0.8, 0.9)
		vector.DrawFilledRect(screen, float32(x0+float64(i)*barW), float32(y0-h), barW-1, float32(h), withAlpha(c, 0.4+0.6*b), false)
	}
}

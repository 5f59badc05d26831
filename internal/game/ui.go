package game

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/product-showcase/internal/page"
	"github.com/iburimskiy/product-showcase/internal/reveal"
)

type fonts struct {
	small text.Face
	body  text.Face
	label text.Face
	title text.Face
	hero  text.Face
	stat  text.Face
}

func newFonts() (*fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	face := func(src *text.GoTextFaceSource, size float64) text.Face {
		return &text.GoTextFace{Source: src, Size: size}
	}
	return &fonts{
		small: face(regular, 13),
		body:  face(regular, 16),
		label: face(bold, 15),
		title: face(bold, 36),
		hero:  face(bold, 56),
		stat:  face(bold, 40),
	}, nil
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	text.Draw(dst, s, face, op)
}

// drawCentered draws s centered in r.
func drawCentered(dst *ebiten.Image, s string, face text.Face, r page.Rect, clr color.Color, alpha float64) {
	w, h := text.Measure(s, face, 0)
	drawText(dst, s, face, r.X+(r.W-w)/2, r.Y+(r.H-h)/2, clr, alpha)
}

// wrap breaks s into lines no wider than width.
func wrap(s string, face text.Face, width float64) []string {
	var (
		lines []string
		line  string
	)
	for _, word := range strings.Fields(s) {
		next := word
		if line != "" {
			next = line + " " + word
		}
		if line != "" && text.Advance(next, face) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line = next
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// button is a clickable rectangle in screen coordinates. Its rect is
// re-placed every frame because the page scrolls under it.
type button struct {
	label  string
	target string
	rect   page.Rect

	hovered bool
	pressed bool
	active  bool
	hidden  bool
}

// update runs the hover and press cycle for one frame and reports a click,
// i.e. a press and a release both inside the button.
func (b *button) update(mx, my float64, down, up bool) bool {
	if b.hidden {
		b.hovered, b.pressed = false, false
		return false
	}
	b.hovered = b.rect.Contains(mx, my)
	if b.hovered && down {
		b.pressed = true
	}
	clicked := false
	if up {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

// follow places b at base moved with its card's entrance and hover lift. The
// button stays hidden until the card has been revealed.
func (b *button) follow(base page.Rect, st reveal.State, lift float64) {
	base.Y += st.DY - lift
	b.rect = base
	b.hidden = st.Opacity <= 0
}

func (b *button) draw(dst *ebiten.Image, face text.Face, alpha float64) {
	bg := colPanel
	switch {
	case b.pressed:
		bg = blend(colPanel, colPurple, 0.6)
	case b.active:
		bg = blend(colPink, colPurple, 0.5)
	case b.hovered:
		bg = blend(colPanel, colPurple, 0.35)
	}
	border := colBorder
	if b.hovered || b.active {
		border = colCyan
	}
	r := b.rect
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), withAlpha(bg, alpha), false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1.5, withAlpha(border, alpha), false)
	drawCentered(dst, b.label, face, r, colText, alpha)
}

// drawCard fills a rounded-looking panel: a body plus a top accent line.
func drawCard(dst *ebiten.Image, r page.Rect, accent color.RGBA, alpha float64) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), withAlpha(colPanel, 0.85*alpha), false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, withAlpha(colBorder, alpha), false)
	vector.StrokeLine(dst, float32(r.X), float32(r.Y), float32(r.X+r.W), float32(r.Y), 2, withAlpha(accent, alpha), false)
}

package particles

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

var linkRGBA = func() color.RGBA {
	c, _ := colorful.Hex(LinkColor)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}()

func withAlpha(c color.RGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a * 255)}
}

// Draw renders particles with their glow halo, then the connector lines.
// links is reused between frames to avoid reallocating.
func (f *Field) Draw(screen *ebiten.Image, links []Link) []Link {
	glow := 0.1 + 0.2*f.boost
	for i := range f.pool {
		p := &f.pool[i]
		a := p.Opacity * p.Fade()
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), withAlpha(p.Color, a), true)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size*3), withAlpha(p.Color, a*glow), true)
	}

	if f.cfg.NoLinks {
		return links[:0]
	}
	links = f.Links(links)
	for _, l := range links {
		vector.StrokeLine(screen, float32(l.A.X), float32(l.A.Y), float32(l.B.X), float32(l.B.Y), 0.5, withAlpha(linkRGBA, l.Alpha), true)
	}
	return links
}

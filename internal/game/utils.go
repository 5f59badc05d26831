package game

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	colBackground = mustHex("#0a0a12")
	colDeep       = mustHex("#160b26")
	colPink       = mustHex("#ff2d75")
	colPurple     = mustHex("#7b2dff")
	colCyan       = mustHex("#00f0ff")
	colGreen      = mustHex("#00ff88")
	colText       = mustHex("#f0f0ff")
	colMuted      = mustHex("#9090b0")
	colPanel      = mustHex("#141426")
	colBorder     = mustHex("#2a2a48")
)

func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// blend mixes a toward b in Lab space, t in [0, 1].
func blend(a, b color.RGBA, t float64) color.RGBA {
	c := toColorful(a).BlendLab(toColorful(b), clamp01(t)).Clamped()
	r, g, bl := c.RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

// hue returns a fully opaque color on the HSV wheel (hue in degrees).
func hue(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(a) * 255)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

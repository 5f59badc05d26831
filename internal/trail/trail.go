// Package trail draws a chain of markers that follow the pointer, each one
// lagging a fixed delay behind the previous.
package trail

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	baseColor  = color.RGBA{R: 0x00, G: 0xf0, B: 0xff, A: 0xff}
	hoverColor = color.RGBA{R: 0xff, G: 0x2d, B: 0x75, A: 0xff}
)

type sample struct {
	x, y float64
	at   time.Time
}

// Marker is one dot of the trail at a given instant.
type Marker struct {
	X, Y     float64
	Diameter float64
	Alpha    float64
}

type Trail struct {
	n       int
	delay   time.Duration
	samples []sample // oldest first
	hover   bool
	head    sample
	moved   bool
}

func New(markers int, delay time.Duration) *Trail {
	return &Trail{
		n:       markers,
		delay:   delay,
		samples: make([]sample, 0, markers*4),
	}
}

// Move records a pointer sample.
func (t *Trail) Move(x, y float64, now time.Time) {
	t.head = sample{x: x, y: y, at: now}
	t.moved = true
	t.samples = append(t.samples, t.head)
	t.prune(now)
}

// prune drops samples that no marker can reach anymore, always keeping the
// newest one older than the longest delay.
func (t *Trail) prune(now time.Time) {
	horizon := now.Add(-time.Duration(t.n) * t.delay)
	keep := 0
	for i, s := range t.samples {
		if s.at.After(horizon) {
			break
		}
		keep = i
	}
	if keep > 0 {
		t.samples = append(t.samples[:0], t.samples[keep:]...)
	}
}

// SetHover reports whether the pointer is over an interactive control.
func (t *Trail) SetHover(h bool) { t.hover = h }

// Markers places marker i at the newest sample at least i*delay old.
func (t *Trail) Markers(now time.Time, dst []Marker) []Marker {
	dst = dst[:0]
	if !t.moved {
		return dst
	}
	for i := 0; i < t.n; i++ {
		cutoff := now.Add(-time.Duration(i) * t.delay)
		s := t.samples[0]
		for _, c := range t.samples {
			if c.at.After(cutoff) {
				break
			}
			s = c
		}
		dst = append(dst, Marker{
			X:        s.x,
			Y:        s.y,
			Diameter: 12 - float64(i)*1.2,
			Alpha:    0.3 - float64(i)*0.03,
		})
	}
	return dst
}

// Head returns the ring drawn directly under the pointer: its radius and color.
func (t *Trail) Head() (x, y, radius float64, clr color.RGBA) {
	radius = 10
	clr = baseColor
	if t.hover {
		radius *= 2
		clr = hoverColor
	}
	return t.head.x, t.head.y, radius, clr
}

func (t *Trail) Draw(screen *ebiten.Image, now time.Time, buf []Marker) []Marker {
	buf = t.Markers(now, buf)
	for _, m := range buf {
		c := color.NRGBA{R: baseColor.R, G: baseColor.G, B: baseColor.B, A: uint8(m.Alpha * 255)}
		vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), float32(m.Diameter/2), c, true)
	}
	if t.moved {
		x, y, r, c := t.Head()
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1.5, c, true)
	}
	return buf
}

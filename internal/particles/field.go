// Package particles implements the animated background: a fixed pool of
// drifting points that fade out, shy away from the pointer and respawn in
// place, connected by faint lines when close to each other.
package particles

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of colors a particle is drawn from on (re)spawn.
var Palette = []string{"#ff2d75", "#7b2dff", "#00f0ff", "#00ff88"}

// LinkColor is the stroke color of connector lines.
const LinkColor = "#00f0ff"

const linkAlpha = 0.08

type Config struct {
	Count           int
	PointerRadius   float64
	ConnectRadius   float64
	BoundsMargin    float64
	MaxOpacity      float64
	PointerStrength float64
	NoLinks         bool
}

func DefaultConfig() Config {
	return Config{
		Count:           80,
		PointerRadius:   150,
		ConnectRadius:   120,
		BoundsMargin:    50,
		MaxOpacity:      0.8,
		PointerStrength: 0.01,
	}
}

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Opacity float64
	Life    float64 // frames left
	MaxLife float64
	Color   color.RGBA
}

// Fade is the remaining-lifetime ratio used to dim the particle.
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return p.Life / p.MaxLife
}

// Link is a pair of particles closer than the connect radius.
type Link struct {
	A, B  *Particle
	Alpha float64
}

type Field struct {
	cfg     Config
	pool    []Particle
	palette []color.RGBA
	rng     *rand.Rand

	width, height float64

	pointerX, pointerY float64
	hasPointer         bool

	boost float64
}

// New creates a field of exactly cfg.Count particles spread over w×h.
// A nil rng seeds one from the runtime.
func New(cfg Config, w, h int, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f := &Field{
		cfg:     cfg,
		pool:    make([]Particle, cfg.Count),
		palette: parsePalette(Palette),
		rng:     rng,
		width:   float64(w),
		height:  float64(h),
	}
	for i := range f.pool {
		f.respawn(&f.pool[i])
	}
	return f
}

func parsePalette(hexes []string) []color.RGBA {
	out := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		r, g, b := c.RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return out
}

// Particles exposes the pool. The slice length never changes.
func (f *Field) Particles() []Particle { return f.pool }

func (f *Field) Len() int { return len(f.pool) }

// Resize adjusts the bounds particles live in. Safe to call at any time.
func (f *Field) Resize(w, h int) {
	f.width, f.height = float64(w), float64(h)
}

func (f *Field) Size() (float64, float64) { return f.width, f.height }

func (f *Field) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
	f.hasPointer = true
}

// ClearPointer removes pointer influence, e.g. when the cursor leaves the window.
func (f *Field) ClearPointer() { f.hasPointer = false }

// SetBoost brightens the glow pass; level is clamped to [0, 1].
func (f *Field) SetBoost(level float64) {
	f.boost = math.Max(0, math.Min(1, level))
}

// Step advances every particle by one frame.
func (f *Field) Step() {
	for i := range f.pool {
		f.stepOne(&f.pool[i])
	}
}

func (f *Field) stepOne(p *Particle) {
	p.X += p.VX
	p.Y += p.VY
	p.Life--

	if f.hasPointer {
		dx := f.pointerX - p.X
		dy := f.pointerY - p.Y
		if math.Hypot(dx, dy) < f.cfg.PointerRadius {
			p.X -= dx * f.cfg.PointerStrength
			p.Y -= dy * f.cfg.PointerStrength
			p.Opacity = math.Min(p.Opacity+0.02, f.cfg.MaxOpacity)
		}
	}

	m := f.cfg.BoundsMargin
	if p.Life <= 0 || p.X < -m || p.X > f.width+m || p.Y < -m || p.Y > f.height+m {
		f.respawn(p)
	}
}

func (f *Field) respawn(p *Particle) {
	p.X = f.rng.Float64() * f.width
	p.Y = f.rng.Float64() * f.height
	p.Size = f.rng.Float64()*2 + 0.5
	p.VX = (f.rng.Float64() - 0.5) * 0.5
	p.VY = (f.rng.Float64() - 0.5) * 0.5
	p.Opacity = f.rng.Float64()*0.5 + 0.1
	if len(f.palette) > 0 {
		p.Color = f.palette[f.rng.IntN(len(f.palette))]
	}
	p.Life = f.rng.Float64()*300 + 100
	p.MaxLife = p.Life
}

// Links appends every unique pair within the connect radius to dst.
// Opacity falls off linearly with distance.
func (f *Field) Links(dst []Link) []Link {
	dst = dst[:0]
	r := f.cfg.ConnectRadius
	for i := 0; i < len(f.pool); i++ {
		a := &f.pool[i]
		for j := i + 1; j < len(f.pool); j++ {
			b := &f.pool[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d < r {
				dst = append(dst, Link{A: a, B: b, Alpha: (1 - d/r) * linkAlpha})
			}
		}
	}
	return dst
}

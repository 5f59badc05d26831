package viewer

import "math"

// Rotation tracks the drag-driven target angles and the displayed angles
// easing toward them. X is pitch, Y is yaw, both in radians.
type Rotation struct {
	TargetX, TargetY float64
	X, Y             float64

	Sensitivity float64 // radians per pixel dragged
	PitchLimit  float64 // |TargetX| <= PitchLimit
	AutoRotate  float64 // yaw added per frame while not dragging
	Easing      float64 // share of the remaining delta applied per frame

	dragging     bool
	lastX, lastY float64
}

func NewRotation() Rotation {
	return Rotation{
		Sensitivity: 0.01,
		PitchLimit:  1,
		AutoRotate:  0.003,
		Easing:      0.05,
	}
}

func (r *Rotation) Begin(x, y float64) {
	r.dragging = true
	r.lastX, r.lastY = x, y
}

// Move applies pointer motion while dragging; otherwise it is ignored.
func (r *Rotation) Move(x, y float64) {
	if !r.dragging {
		return
	}
	r.TargetY += (x - r.lastX) * r.Sensitivity
	r.TargetX += (y - r.lastY) * r.Sensitivity
	r.TargetX = math.Max(-r.PitchLimit, math.Min(r.PitchLimit, r.TargetX))
	r.lastX, r.lastY = x, y
}

func (r *Rotation) End() { r.dragging = false }

func (r *Rotation) Dragging() bool { return r.dragging }

// Reset zeroes the targets; the displayed angles ease back from where they are.
func (r *Rotation) Reset() {
	r.TargetX, r.TargetY = 0, 0
}

// Step runs one frame: auto-rotate, then a first-order low-pass toward the target.
func (r *Rotation) Step() {
	if !r.dragging {
		r.TargetY += r.AutoRotate
	}
	r.X += (r.TargetX - r.X) * r.Easing
	r.Y += (r.TargetY - r.Y) * r.Easing
}

// Degrees is the readout of the displayed angles, wrapped like the page's
// angle counter (sign kept, modulo 360).
func (r *Rotation) Degrees() (x, y int) {
	deg := func(rad float64) int {
		return int(math.Floor(math.Mod(rad*180/math.Pi, 360) + 0.5))
	}
	return deg(r.X), deg(r.Y)
}

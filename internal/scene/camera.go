package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera looking at Target.
type Camera struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
}

func NewCamera(fov, aspect float64) *Camera {
	return &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   0.1,
		Far:    1000,
		Up:     mgl64.Vec3{0, 1, 0},
	}
}

// SetAspect updates the projection for a new viewport size. Idempotent.
func (c *Camera) SetAspect(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Aspect = float64(w) / float64(h)
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Viewport is the screen rectangle the camera renders into.
type Viewport struct {
	X, Y, W, H float64
}

// Project maps a world point to viewport pixels. ok is false for points
// behind the near plane.
func (c *Camera) Project(p mgl64.Vec3, vp Viewport) (x, y, depth float64, ok bool) {
	return project(c.Projection().Mul4(c.View()), p, vp)
}

func project(viewProj mgl64.Mat4, p mgl64.Vec3, vp Viewport) (x, y, depth float64, ok bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 1e-6 {
		return 0, 0, 0, false
	}
	nx, ny := clip.X()/w, clip.Y()/w
	x = vp.X + (nx+1)/2*vp.W
	y = vp.Y + (1-ny)/2*vp.H
	return x, y, w, true
}

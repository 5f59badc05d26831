// Package scene is a small retained scene graph of primitive meshes
// grouped into named objects, projected and painted with ebiten.
package scene

import (
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

type Kind int

const (
	Box    Kind = iota // Size = width, height, depth
	Plane              // Size = width, height; faces +Z, drawn from both sides
	Sphere             // Size.X() = radius
	Circle             // Size.X() = radius; faces +Z
	Points             // Cloud of Mesh.Cloud positions
)

// Mesh is one primitive of a group. Rotation is Euler XYZ in radians.
type Mesh struct {
	Name     string
	Kind     Kind
	Size     mgl64.Vec3
	Position mgl64.Vec3
	Rotation mgl64.Vec3

	Color    color.RGBA
	Emissive float64 // 0..1 self-lit share of the color
	Opacity  float64 // 0 means opaque

	// EdgeOpacity > 0 strokes the outline of the primitive with EdgeColor.
	EdgeColor   color.RGBA
	EdgeOpacity float64

	Cloud     []mgl64.Vec3
	PointSize float64
}

func (m *Mesh) alpha() float64 {
	if m.Opacity <= 0 {
		return 1
	}
	return m.Opacity
}

// Clone returns a copy that can be moved independently.
func (m *Mesh) Clone() *Mesh {
	c := *m
	c.Cloud = slices.Clone(m.Cloud)
	return &c
}

func (m *Mesh) Local() mgl64.Mat4 {
	return mgl64.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z()).Mul4(euler(m.Rotation))
}

func euler(r mgl64.Vec3) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(r.X()).Mul4(mgl64.HomogRotate3DY(r.Y())).Mul4(mgl64.HomogRotate3DZ(r.Z()))
}

// Group is a named product representation made of meshes.
type Group struct {
	Name     string
	Meshes   []*Mesh
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

func NewGroup(name string, meshes ...*Mesh) *Group {
	return &Group{Name: name, Meshes: meshes}
}

func (g *Group) Add(m ...*Mesh) { g.Meshes = append(g.Meshes, m...) }

// Mesh finds a mesh by name.
func (g *Group) Mesh(name string) *Mesh {
	for _, m := range g.Meshes {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func (g *Group) Model() mgl64.Mat4 {
	return mgl64.Translate3D(g.Position.X(), g.Position.Y(), g.Position.Z()).Mul4(euler(g.Rotation))
}

// Light is either ambient (no position) or a point light.
type Light struct {
	Color     color.RGBA
	Intensity float64
	Position  mgl64.Vec3
	Ambient   bool
}

// Scene holds the attached groups in insertion order plus the lights.
type Scene struct {
	groups []*Group
	lights []Light
}

func New() *Scene { return &Scene{} }

// Add attaches g. Adding an attached group is a no-op.
func (s *Scene) Add(g *Group) {
	if g == nil || s.Contains(g) {
		return
	}
	s.groups = append(s.groups, g)
}

// Remove detaches g and reports whether it was attached.
func (s *Scene) Remove(g *Group) bool {
	i := slices.Index(s.groups, g)
	if i < 0 {
		return false
	}
	s.groups = slices.Delete(s.groups, i, i+1)
	return true
}

func (s *Scene) Contains(g *Group) bool { return g != nil && slices.Contains(s.groups, g) }

func (s *Scene) Groups() []*Group { return s.groups }

func (s *Scene) AddLight(l Light) { s.lights = append(s.lights, l) }

func (s *Scene) Lights() []Light { return s.lights }

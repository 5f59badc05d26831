package scene

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	circleSegments = 24
	sphereRings    = 6
	sphereSlices   = 8
)

type face struct {
	pts      []mgl64.Vec3
	normal   mgl64.Vec3
	twoSided bool
}

type polygon struct {
	xs, ys []float32
	depth  float64
	clr    [4]float32
}

// Renderer paints a Scene through a Camera. It keeps scratch buffers, so
// use one Renderer per render loop.
type Renderer struct {
	white *ebiten.Image

	polys    []polygon
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderer() *Renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Renderer{white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// Render draws all groups of s into vp, painting faces back to front and
// then outlines and point clouds on top.
func (r *Renderer) Render(dst *ebiten.Image, s *Scene, cam *Camera, vp Viewport) {
	viewProj := cam.Projection().Mul4(cam.View())
	r.polys = r.polys[:0]

	for _, g := range s.Groups() {
		gm := g.Model()
		for _, m := range g.Meshes {
			if m.Kind == Points {
				continue
			}
			world := gm.Mul4(m.Local())
			rot := world.Mat3()
			for _, f := range faces(m) {
				p, ok := r.projectFace(viewProj, world, f, vp)
				if !ok {
					continue
				}
				n := rot.Mul3x1(f.normal).Normalize()
				c := world.Mul4x1(centroid(f.pts).Vec4(1)).Vec3()
				p.clr = shade(m, n, c, f.twoSided, s.Lights())
				r.polys = append(r.polys, p)
			}
		}
	}

	sort.SliceStable(r.polys, func(i, j int) bool { return r.polys[i].depth > r.polys[j].depth })
	for i := range r.polys {
		r.fill(dst, &r.polys[i])
	}

	for _, g := range s.Groups() {
		gm := g.Model()
		for _, m := range g.Meshes {
			world := gm.Mul4(m.Local())
			if m.Kind == Points {
				r.drawCloud(dst, viewProj, world, m, vp)
				continue
			}
			if m.EdgeOpacity > 0 {
				r.drawEdges(dst, viewProj, world, m, vp)
			}
		}
	}
}

func (r *Renderer) projectFace(viewProj, world mgl64.Mat4, f face, vp Viewport) (polygon, bool) {
	p := polygon{
		xs: make([]float32, 0, len(f.pts)),
		ys: make([]float32, 0, len(f.pts)),
	}
	for _, pt := range f.pts {
		wp := world.Mul4x1(pt.Vec4(1)).Vec3()
		x, y, d, ok := project(viewProj, wp, vp)
		if !ok {
			return p, false
		}
		p.xs = append(p.xs, float32(x))
		p.ys = append(p.ys, float32(y))
		p.depth += d
	}
	p.depth /= float64(len(f.pts))
	return p, true
}

func (r *Renderer) fill(dst *ebiten.Image, p *polygon) {
	var path vector.Path
	path.MoveTo(p.xs[0], p.ys[0])
	for i := 1; i < len(p.xs); i++ {
		path.LineTo(p.xs[i], p.ys[i])
	}
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = p.clr[0]
		r.vertices[i].ColorG = p.clr[1]
		r.vertices[i].ColorB = p.clr[2]
		r.vertices[i].ColorA = p.clr[3]
	}
	dst.DrawTriangles(r.vertices, r.indices, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) drawEdges(dst *ebiten.Image, viewProj, world mgl64.Mat4, m *Mesh, vp Viewport) {
	clr := color.NRGBA{R: m.EdgeColor.R, G: m.EdgeColor.G, B: m.EdgeColor.B, A: uint8(m.EdgeOpacity * 255)}
	for _, e := range edges(m) {
		x0, y0, _, ok0 := project(viewProj, world.Mul4x1(e[0].Vec4(1)).Vec3(), vp)
		x1, y1, _, ok1 := project(viewProj, world.Mul4x1(e[1].Vec4(1)).Vec3(), vp)
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
	}
}

func (r *Renderer) drawCloud(dst *ebiten.Image, viewProj, world mgl64.Mat4, m *Mesh, vp Viewport) {
	clr := color.NRGBA{R: m.Color.R, G: m.Color.G, B: m.Color.B, A: uint8(m.alpha() * 255)}
	size := m.PointSize
	if size <= 0 {
		size = 1.5
	}
	for _, pt := range m.Cloud {
		x, y, _, ok := project(viewProj, world.Mul4x1(pt.Vec4(1)).Vec3(), vp)
		if !ok || x < vp.X || x > vp.X+vp.W || y < vp.Y || y > vp.Y+vp.H {
			continue
		}
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(size), clr, true)
	}
}

func shade(m *Mesh, n, at mgl64.Vec3, twoSided bool, lights []Light) [4]float32 {
	var lr, lg, lb float64
	for _, l := range lights {
		k := l.Intensity
		if !l.Ambient {
			d := n.Dot(l.Position.Sub(at).Normalize())
			if twoSided {
				d = math.Abs(d)
			}
			if d <= 0 {
				continue
			}
			k *= d
		}
		lr += float64(l.Color.R) / 255 * k
		lg += float64(l.Color.G) / 255 * k
		lb += float64(l.Color.B) / 255 * k
	}
	ch := func(base uint8, light float64) float32 {
		b := float64(base) / 255
		return float32(math.Min(1, b*light+b*m.Emissive))
	}
	return [4]float32{ch(m.Color.R, lr), ch(m.Color.G, lg), ch(m.Color.B, lb), float32(m.alpha())}
}

func centroid(pts []mgl64.Vec3) mgl64.Vec3 {
	var c mgl64.Vec3
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(pts)))
}

func boxCorners(m *Mesh) [8]mgl64.Vec3 {
	hx, hy, hz := m.Size.X()/2, m.Size.Y()/2, m.Size.Z()/2
	return [8]mgl64.Vec3{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}
}

func ring(radius float64, n int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = mgl64.Vec3{radius * math.Cos(a), radius * math.Sin(a), 0}
	}
	return pts
}

func faces(m *Mesh) []face {
	switch m.Kind {
	case Box:
		c := boxCorners(m)
		return []face{
			{pts: []mgl64.Vec3{c[4], c[5], c[6], c[7]}, normal: mgl64.Vec3{0, 0, 1}},
			{pts: []mgl64.Vec3{c[1], c[0], c[3], c[2]}, normal: mgl64.Vec3{0, 0, -1}},
			{pts: []mgl64.Vec3{c[5], c[1], c[2], c[6]}, normal: mgl64.Vec3{1, 0, 0}},
			{pts: []mgl64.Vec3{c[0], c[4], c[7], c[3]}, normal: mgl64.Vec3{-1, 0, 0}},
			{pts: []mgl64.Vec3{c[7], c[6], c[2], c[3]}, normal: mgl64.Vec3{0, 1, 0}},
			{pts: []mgl64.Vec3{c[0], c[1], c[5], c[4]}, normal: mgl64.Vec3{0, -1, 0}},
		}
	case Plane:
		hx, hy := m.Size.X()/2, m.Size.Y()/2
		return []face{{
			pts:      []mgl64.Vec3{{-hx, -hy, 0}, {hx, -hy, 0}, {hx, hy, 0}, {-hx, hy, 0}},
			normal:   mgl64.Vec3{0, 0, 1},
			twoSided: true,
		}}
	case Circle:
		return []face{{pts: ring(m.Size.X(), circleSegments), normal: mgl64.Vec3{0, 0, 1}, twoSided: true}}
	case Sphere:
		return sphereFaces(m.Size.X())
	}
	return nil
}

func sphereFaces(radius float64) []face {
	at := func(ring, slice int) mgl64.Vec3 {
		theta := math.Pi * float64(ring) / sphereRings
		phi := 2 * math.Pi * float64(slice) / sphereSlices
		return mgl64.Vec3{
			radius * math.Sin(theta) * math.Cos(phi),
			radius * math.Cos(theta),
			radius * math.Sin(theta) * math.Sin(phi),
		}
	}
	out := make([]face, 0, sphereRings*sphereSlices)
	for i := 0; i < sphereRings; i++ {
		for j := 0; j < sphereSlices; j++ {
			pts := []mgl64.Vec3{at(i, j), at(i, j+1), at(i+1, j+1), at(i+1, j)}
			out = append(out, face{pts: pts, normal: centroid(pts).Normalize()})
		}
	}
	return out
}

func edges(m *Mesh) [][2]mgl64.Vec3 {
	var loop []mgl64.Vec3
	switch m.Kind {
	case Box:
		c := boxCorners(m)
		return [][2]mgl64.Vec3{
			{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]},
			{c[4], c[5]}, {c[5], c[6]}, {c[6], c[7]}, {c[7], c[4]},
			{c[0], c[4]}, {c[1], c[5]}, {c[2], c[6]}, {c[3], c[7]},
		}
	case Plane:
		loop = faces(m)[0].pts
	case Circle:
		loop = ring(m.Size.X(), circleSegments)
	default:
		return nil
	}
	out := make([][2]mgl64.Vec3, len(loop))
	for i := range loop {
		out[i] = [2]mgl64.Vec3{loop[i], loop[(i+1)%len(loop)]}
	}
	return out
}

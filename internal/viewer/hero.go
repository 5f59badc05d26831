package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/product-showcase/internal/scene"
)

// Hero spins the landing-section album on its own, with no input.
type Hero struct {
	scene  *scene.Scene
	camera *scene.Camera
	group  *scene.Group
	cloud  *scene.Mesh
}

// NewHero attaches g to a fresh lit scene. g may carry a "particles" point
// cloud that counter-rotates.
func NewHero(g *scene.Group, lights func(*scene.Scene)) *Hero {
	s := scene.New()
	s.Add(g)
	if lights != nil {
		lights(s)
	}
	cam := scene.NewCamera(50, 1)
	cam.Eye = mgl64.Vec3{0, 1, 6}
	cam.Target = mgl64.Vec3{0, 1, 0}
	return &Hero{scene: s, camera: cam, group: g, cloud: g.Mesh("particles")}
}

func (h *Hero) Tick(elapsed float64) {
	h.group.Rotation[1] += 0.005
	h.group.Rotation[0] = math.Sin(elapsed) * 0.1
	h.group.Position[1] = math.Sin(elapsed*2) * 0.2
	if h.cloud != nil {
		h.cloud.Rotation[1] -= 0.002
		h.cloud.Rotation[0] += 0.001
	}
}

func (h *Hero) Scene() *scene.Scene { return h.scene }

func (h *Hero) Camera() *scene.Camera { return h.camera }

func (h *Hero) Group() *scene.Group { return h.group }

// Package viewer implements the interactive product viewer: one product
// shape group at a time, rotated by drag or slowly spinning on its own,
// or an external preview page for products that have one.
package viewer

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/product-showcase/internal/catalog"
	"github.com/iburimskiy/product-showcase/internal/scene"
)

// ErrUnavailable is returned by New when the rendering surface, the scene
// or the catalog is missing. Callers are expected to skip the viewer.
var ErrUnavailable = errors.New("viewer unavailable")

// ErrUnknownProduct is returned by Select for ids not in the catalog.
var ErrUnknownProduct = catalog.ErrUnknownProduct

// Surface is the area the scene is rendered into.
type Surface interface {
	SetVisible(bool)
	Size() (w, h int)
}

// PreviewFrame shows an external page in place of the surface.
type PreviewFrame interface {
	Show(url string)
	// Hide hides the frame and points it back at a blank page.
	Hide()
}

// DetailPanel shows the copy of the selected product.
type DetailPanel interface {
	SetDetails(title, description string, specs []catalog.Spec)
}

type Deps struct {
	Surface Surface
	Scene   *scene.Scene
	Catalog *catalog.Catalog

	// Optional. Without a frame every product renders its shape group.
	Frame PreviewFrame
	// Optional.
	Panel DetailPanel

	Logger *slog.Logger
}

type Options struct {
	Default     string
	Sensitivity float64
	PitchLimit  float64
	AutoRotate  float64
	Easing      float64
	BobAmount   float64

	// OnSelect runs after every successful selection.
	OnSelect func(id string, preview bool)
}

func DefaultOptions() Options {
	r := NewRotation()
	return Options{
		Default:     "album",
		Sensitivity: r.Sensitivity,
		PitchLimit:  r.PitchLimit,
		AutoRotate:  r.AutoRotate,
		Easing:      r.Easing,
		BobAmount:   0.1,
	}
}

type Mode int

const (
	ModeRender Mode = iota
	ModePreview
)

func (m Mode) String() string {
	if m == ModePreview {
		return "preview"
	}
	return "render"
}

type Viewer struct {
	deps   Deps
	opts   Options
	log    *slog.Logger
	camera *scene.Camera

	groups   map[string]*scene.Group
	selected string
	current  *scene.Group
	mode     Mode

	rot Rotation
}

func New(deps Deps, opts Options) (*Viewer, error) {
	if deps.Surface == nil || deps.Scene == nil || deps.Catalog == nil {
		return nil, ErrUnavailable
	}
	w, h := deps.Surface.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty surface %dx%d", ErrUnavailable, w, h)
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	cam := scene.NewCamera(50, float64(w)/float64(h))
	cam.Eye = mgl64.Vec3{0, 2, 7}

	v := &Viewer{
		deps:   deps,
		opts:   opts,
		log:    log.With("component", "viewer"),
		camera: cam,
		groups: make(map[string]*scene.Group, len(deps.Catalog.Entries())),
		rot: Rotation{
			Sensitivity: opts.Sensitivity,
			PitchLimit:  opts.PitchLimit,
			AutoRotate:  opts.AutoRotate,
			Easing:      opts.Easing,
		},
	}
	for _, e := range deps.Catalog.Entries() {
		v.groups[e.ID] = e.Build()
	}
	if opts.Default != "" {
		if err := v.Select(opts.Default); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Select switches the viewer to product id: the previous group is detached,
// then either the id's external preview is shown or its group is attached.
// Rotation targets go back to zero.
func (v *Viewer) Select(id string) error {
	e, ok := v.deps.Catalog.Get(id)
	if !ok {
		return fmt.Errorf("select %q: %w", id, ErrUnknownProduct)
	}

	if v.current != nil {
		v.deps.Scene.Remove(v.current)
		v.current = nil
	}

	if e.HasPreview() && v.deps.Frame != nil {
		v.deps.Surface.SetVisible(false)
		v.deps.Frame.Show(e.PreviewURL)
		v.mode = ModePreview
	} else {
		if v.deps.Frame != nil {
			v.deps.Frame.Hide()
		}
		v.deps.Surface.SetVisible(true)
		v.current = v.groups[id]
		v.deps.Scene.Add(v.current)
		v.mode = ModeRender
	}
	v.selected = id
	v.rot.Reset()

	if v.deps.Panel != nil {
		v.deps.Panel.SetDetails(e.Title, e.Description, e.Specs)
	}
	v.log.Debug("product selected", "id", id, "mode", v.mode)
	if v.opts.OnSelect != nil {
		v.opts.OnSelect(id, v.mode == ModePreview)
	}
	return nil
}

func (v *Viewer) Selected() string { return v.selected }

func (v *Viewer) Mode() Mode { return v.mode }

// Current is the attached group, nil in preview mode.
func (v *Viewer) Current() *scene.Group { return v.current }

// Group returns the prebuilt group of id.
func (v *Viewer) Group(id string) *scene.Group { return v.groups[id] }

func (v *Viewer) Scene() *scene.Scene { return v.deps.Scene }

func (v *Viewer) Camera() *scene.Camera { return v.camera }

func (v *Viewer) Rotation() Rotation { return v.rot }

func (v *Viewer) PointerDown(x, y float64) { v.rot.Begin(x, y) }

func (v *Viewer) PointerMove(x, y float64) { v.rot.Move(x, y) }

func (v *Viewer) PointerUp() { v.rot.End() }

// Tick advances one frame. elapsed is the time since start in seconds and
// drives the vertical bob.
func (v *Viewer) Tick(elapsed float64) {
	v.rot.Step()
	if v.current == nil {
		return
	}
	v.current.Rotation = mgl64.Vec3{v.rot.X, v.rot.Y, 0}
	v.current.Position = mgl64.Vec3{0, math.Sin(elapsed) * v.opts.BobAmount, 0}
}

// Angles returns the degree readout of the displayed rotation.
func (v *Viewer) Angles() (x, y int) { return v.rot.Degrees() }

// Resize updates the camera projection for the surface's new size.
func (v *Viewer) Resize(w, h int) { v.camera.SetAspect(w, h) }

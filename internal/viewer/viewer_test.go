package viewer

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/product-showcase/internal/catalog"
	"github.com/iburimskiy/product-showcase/internal/scene"
)

type fakeSurface struct {
	w, h    int
	visible bool
}

func (s *fakeSurface) SetVisible(v bool) { s.visible = v }
func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

type fakeFrame struct {
	src     string
	visible bool
}

func (f *fakeFrame) Show(url string) { f.src, f.visible = url, true }
func (f *fakeFrame) Hide()           { f.src, f.visible = "about:blank", false }

type fakePanel struct {
	title, desc string
	specs       []catalog.Spec
}

func (p *fakePanel) SetDetails(title, desc string, specs []catalog.Spec) {
	p.title, p.desc, p.specs = title, desc, specs
}

type rig struct {
	v       *Viewer
	surface *fakeSurface
	frame   *fakeFrame
	panel   *fakePanel
	scene   *scene.Scene
	cat     *catalog.Catalog
}

func newRig(t *testing.T, opts Options) *rig {
	t.Helper()
	r := &rig{
		surface: &fakeSurface{w: 800, h: 500},
		frame:   &fakeFrame{},
		panel:   &fakePanel{},
		scene:   scene.New(),
		cat:     catalog.Default(),
	}
	v, err := New(Deps{
		Surface: r.surface,
		Frame:   r.frame,
		Panel:   r.panel,
		Scene:   r.scene,
		Catalog: r.cat,
	}, opts)
	require.NoError(t, err)
	r.v = v
	return r
}

func attached(s *scene.Scene, v *Viewer, ids ...string) int {
	n := 0
	for _, id := range ids {
		if s.Contains(v.Group(id)) {
			n++
		}
	}
	return n
}

func TestNewWithoutSurfaceIsUnavailable(t *testing.T) {
	_, err := New(Deps{Scene: scene.New(), Catalog: catalog.Default()}, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = New(Deps{Surface: &fakeSurface{w: 10, h: 10}, Catalog: catalog.Default()}, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = New(Deps{Surface: &fakeSurface{}, Scene: scene.New(), Catalog: catalog.Default()}, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnavailable, "zero-sized container")
}

func TestStartupShowsAlbumPreviewThenUSB(t *testing.T) {
	r := newRig(t, DefaultOptions())

	assert.Equal(t, ModePreview, r.v.Mode())
	assert.False(t, r.scene.Contains(r.v.Group("album")))
	assert.Empty(t, r.scene.Groups())
	assert.False(t, r.surface.visible)
	assert.True(t, r.frame.visible)
	assert.Equal(t, "https://fotolibro.invitados.org/", r.frame.src)
	assert.Equal(t, "Album Fotografico Premium", r.panel.title)

	require.NoError(t, r.v.Select("usb"))
	assert.Equal(t, ModeRender, r.v.Mode())
	assert.True(t, r.scene.Contains(r.v.Group("usb")))
	assert.Same(t, r.v.Group("usb"), r.v.Current())
	assert.False(t, r.frame.visible)
	assert.Equal(t, "about:blank", r.frame.src)
	assert.True(t, r.surface.visible)
	assert.Equal(t, "USB Personalizada", r.panel.title)
	require.Len(t, r.panel.specs, 4)
	assert.Equal(t, catalog.Spec{Label: "Tipo", Value: "USB 3.0"}, r.panel.specs[1])
}

func TestSelectKeepsExactlyOneGroup(t *testing.T) {
	r := newRig(t, DefaultOptions())
	ids := r.cat.IDs()
	rng := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 200; i++ {
		x := ids[rng.IntN(len(ids))]
		y := ids[rng.IntN(len(ids))]
		require.NoError(t, r.v.Select(x))
		require.NoError(t, r.v.Select(y))

		e, _ := r.cat.Get(y)
		if e.HasPreview() {
			assert.Empty(t, r.scene.Groups(), "preview mode attaches nothing")
			assert.True(t, r.frame.visible)
			continue
		}
		assert.Len(t, r.scene.Groups(), 1)
		assert.Equal(t, 1, attached(r.scene, r.v, ids...))
		assert.True(t, r.scene.Contains(r.v.Group(y)))
		assert.False(t, r.frame.visible)
	}
}

func TestSelectUnknownLeavesStateAlone(t *testing.T) {
	r := newRig(t, DefaultOptions())
	require.NoError(t, r.v.Select("prints"))

	err := r.v.Select("poster")
	assert.True(t, errors.Is(err, ErrUnknownProduct))
	assert.Equal(t, "prints", r.v.Selected())
	assert.True(t, r.scene.Contains(r.v.Group("prints")))
}

func TestSelectResetsTargetsAndNotifies(t *testing.T) {
	var got []string
	opts := DefaultOptions()
	opts.OnSelect = func(id string, preview bool) {
		if preview {
			id += "*"
		}
		got = append(got, id)
	}
	r := newRig(t, opts)

	require.NoError(t, r.v.Select("usb"))
	r.v.PointerDown(0, 0)
	r.v.PointerMove(100, 50)
	r.v.PointerUp()
	assert.NotZero(t, r.v.Rotation().TargetY)

	require.NoError(t, r.v.Select("usbbox"))
	assert.Zero(t, r.v.Rotation().TargetX)
	assert.Zero(t, r.v.Rotation().TargetY)
	assert.Equal(t, []string{"album*", "usb", "usbbox"}, got)
}

func TestWithoutFrameEverythingRenders(t *testing.T) {
	s := scene.New()
	v, err := New(Deps{Surface: &fakeSurface{w: 4, h: 3}, Scene: s, Catalog: catalog.Default()}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, ModeRender, v.Mode())
	assert.True(t, s.Contains(v.Group("album")))
}

func TestTickAppliesRotationAndBob(t *testing.T) {
	r := newRig(t, DefaultOptions())
	require.NoError(t, r.v.Select("usb"))

	r.v.Tick(math.Pi / 2)
	g := r.v.Current()
	assert.InDelta(t, 0.1, g.Position.Y(), 1e-9)
	rot := r.v.Rotation()
	assert.InDelta(t, 0.003, rot.TargetY, 1e-12)
	assert.InDelta(t, 0.003*0.05, rot.Y, 1e-12)
	assert.Equal(t, rot.Y, g.Rotation.Y())

	// Preview mode still advances the rotation state without a group.
	require.NoError(t, r.v.Select("album"))
	r.v.Tick(0)
	assert.Nil(t, r.v.Current())
	assert.InDelta(t, 0.003, r.v.Rotation().TargetY, 1e-12)
}

func TestResizeUpdatesAspect(t *testing.T) {
	r := newRig(t, DefaultOptions())
	assert.InDelta(t, 1.6, r.v.Camera().Aspect, 1e-9)
	r.v.Resize(400, 400)
	assert.Equal(t, 1.0, r.v.Camera().Aspect)
}

func TestHeroTick(t *testing.T) {
	h := NewHero(catalog.Hero(rand.New(rand.NewPCG(1, 1))), catalog.Lights)
	require.True(t, h.Scene().Contains(h.Group()))

	for i := 0; i < 10; i++ {
		h.Tick(math.Pi / 4)
	}
	g := h.Group()
	assert.InDelta(t, 0.05, g.Rotation.Y(), 1e-9)
	assert.InDelta(t, math.Sin(math.Pi/4)*0.1, g.Rotation.X(), 1e-9)
	assert.InDelta(t, 0.2, g.Position.Y(), 1e-9)
	assert.InDelta(t, -0.02, g.Mesh("particles").Rotation.Y(), 1e-9)
}

package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/product-showcase/internal/catalog"
	"github.com/iburimskiy/product-showcase/internal/config"
	"github.com/iburimskiy/product-showcase/internal/form"
	"github.com/iburimskiy/product-showcase/internal/page"
	"github.com/iburimskiy/product-showcase/internal/reveal"
	"github.com/iburimskiy/product-showcase/internal/viewer"
)

type fakeDialogs struct {
	answers []string
	err     error
	errAt   int
	asked   []string
	errors  []string
	file    string
}

func (f *fakeDialogs) next(prompt string) (string, error) {
	f.asked = append(f.asked, prompt)
	if f.err != nil && len(f.asked) == f.errAt {
		return "", f.err
	}
	if len(f.answers) == 0 {
		return "", nil
	}
	a := f.answers[0]
	f.answers = f.answers[1:]
	return a, nil
}

func (f *fakeDialogs) Entry(_, prompt string) (string, error) { return f.next(prompt) }

func (f *fakeDialogs) Choose(_, prompt string, _ []string) (string, error) { return f.next(prompt) }

func (f *fakeDialogs) SelectFile(string, string, []string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.file, nil
}

func (f *fakeDialogs) Error(_, msg string) error {
	f.errors = append(f.errors, msg)
	return nil
}

func TestButtonClickNeedsPressAndReleaseInside(t *testing.T) {
	b := &button{rect: page.Rect{X: 10, Y: 10, W: 100, H: 40}}

	assert.False(t, b.update(20, 20, true, false))
	assert.True(t, b.pressed)
	assert.True(t, b.update(30, 30, false, true))
	assert.False(t, b.pressed)

	// Released outside.
	b.update(20, 20, true, false)
	assert.False(t, b.update(500, 500, false, true))
	assert.False(t, b.hovered)

	// Pressed outside, released inside.
	b.update(500, 500, true, false)
	assert.False(t, b.update(20, 20, false, true))
}

func TestHiddenButtonIgnoresClicks(t *testing.T) {
	b := &button{rect: page.Rect{X: 10, Y: 10, W: 100, H: 40}}
	b.update(20, 20, true, false)
	require.True(t, b.pressed)

	b.hidden = true
	assert.False(t, b.update(20, 20, false, true))
	assert.False(t, b.hovered)
	assert.False(t, b.pressed)
}

func TestButtonFollowsItsCard(t *testing.T) {
	base := page.Rect{X: 10, Y: 100, W: 120, H: 36}
	b := &button{}

	b.follow(base, reveal.State{DY: 80, Scale: 1, Opacity: 0}, 0)
	assert.True(t, b.hidden)
	assert.False(t, b.update(20, 190, true, false))

	// Revealed and lifted by hover: clicks land where the button is drawn.
	b.follow(base, reveal.Shown, 8)
	assert.False(t, b.hidden)
	assert.Equal(t, 92.0, b.rect.Y)
	b.update(20, 93, true, false)
	assert.True(t, b.update(20, 93, false, true))
	assert.False(t, b.update(20, 135, false, false))
	assert.False(t, b.hovered)
}

func TestPanelsImplementViewerDeps(t *testing.T) {
	var (
		_ viewer.Surface      = (*surface)(nil)
		_ viewer.PreviewFrame = (*previewPanel)(nil)
		_ viewer.DetailPanel  = (*detailPanel)(nil)
	)

	p := &previewPanel{}
	p.Show("https://example.org/")
	assert.True(t, p.visible)
	assert.Equal(t, "https://example.org/", p.url)
	p.Hide()
	assert.False(t, p.visible)
	assert.Equal(t, blankPage, p.url)

	specs := []catalog.Spec{{Label: "Tipo", Value: "USB 3.0"}}
	d := &detailPanel{}
	d.SetDetails("USB", "desc", specs)
	specs[0].Value = "changed"
	assert.Equal(t, "USB 3.0", d.specs[0].Value)

	s := &surface{rect: page.Rect{W: 640.4, H: 480}}
	w, h := s.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestViewerDrivesPanels(t *testing.T) {
	s := &surface{rect: page.Rect{W: 640, H: 480}}
	frame := &previewPanel{}
	panel := &detailPanel{}
	v, err := viewer.New(viewer.Deps{
		Surface: s,
		Scene:   sceneWithLights(),
		Catalog: catalog.Default(),
		Frame:   frame,
		Panel:   panel,
	}, viewer.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, viewer.ModePreview, v.Mode())
	assert.False(t, s.visible)
	assert.True(t, frame.visible)
	assert.Equal(t, "Album Fotografico Premium", panel.title)

	require.NoError(t, v.Select("usb"))
	assert.True(t, s.visible)
	assert.False(t, frame.visible)
	assert.Equal(t, blankPage, frame.url)
	assert.Equal(t, "USB Personalizada", panel.title)
}

func TestNarrowWindowSkipsViewer(t *testing.T) {
	const w, h = 100.0, 100.0
	l := page.NewLayout(h, sections(h)...)
	geo := buildGeometry(w, l, 5, len(packages), len(stats), len(contacts))
	s := &surface{rect: geo.surface}
	require.True(t, s.empty())

	_, err := viewer.New(viewer.Deps{
		Surface: s,
		Scene:   sceneWithLights(),
		Catalog: catalog.Default(),
		Frame:   &previewPanel{},
	}, viewer.DefaultOptions())
	assert.ErrorIs(t, err, viewer.ErrUnavailable)

	s.rect = buildGeometry(float64(config.MinWindowWidth), l, 5, len(packages), len(stats), len(contacts)).surface
	assert.False(t, s.empty())
}

func TestCollectEntry(t *testing.T) {
	d := &fakeDialogs{answers: []string{" Ana ", "ana@example.org", "USB Personalizada", "Hola"}}
	e, err := collectEntry(d, []string{"USB Personalizada"})
	require.NoError(t, err)
	assert.Equal(t, form.Entry{Name: "Ana", Email: "ana@example.org", Product: "USB Personalizada", Message: "Hola"}, e)
	assert.Equal(t, []string{"Nombre", "Email", "Producto de interes", "Mensaje"}, d.asked)

	// Without products the choice is skipped.
	d = &fakeDialogs{answers: []string{"Ana", "", "Hola"}}
	e, err = collectEntry(d, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hola", e.Message)
	assert.NotContains(t, d.asked, "Producto de interes")
}

func TestCollectEntryStopsOnCancel(t *testing.T) {
	d := &fakeDialogs{answers: []string{"Ana", "a@b.c"}, err: errCanceled, errAt: 2}
	_, err := collectEntry(d, []string{"x"})
	assert.ErrorIs(t, err, errCanceled)
	assert.Len(t, d.asked, 2)
}

func TestPickSoundtrack(t *testing.T) {
	path, err := pickSoundtrack(&fakeDialogs{file: "/music/song.mp3"}, []string{"*.mp3"})
	require.NoError(t, err)
	assert.Equal(t, "/music/song.mp3", path)

	path, err = pickSoundtrack(&fakeDialogs{err: errCanceled}, nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	boom := errors.New("no display")
	_, err = pickSoundtrack(&fakeDialogs{err: boom}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestCatalogFromConfig(t *testing.T) {
	c, err := catalogFromConfig(catalog.Default(), []config.ProductConfig{
		{ID: "photobox", PreviewURL: "-"},
		{ID: "usb", PreviewURL: "https://usb.example.org/"},
		{ID: "prints"},
	})
	require.NoError(t, err)

	box, _ := c.Get("box")
	assert.False(t, box.HasPreview())
	usb, _ := c.Get("usb")
	assert.Equal(t, "https://usb.example.org/", usb.PreviewURL)
	prints, _ := c.Get("prints")
	assert.False(t, prints.HasPreview())
	album, _ := c.Get("album")
	assert.True(t, album.HasPreview())

	_, err = catalogFromConfig(catalog.Default(), []config.ProductConfig{{ID: "mug", PreviewURL: "x"}})
	assert.ErrorIs(t, err, catalog.ErrUnknownProduct)
}

func TestControlLabels(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range catalog.Default().Entries() {
		l := controlLabel(e)
		assert.NotEmpty(t, l)
		assert.False(t, seen[l], "duplicate label %q", l)
		seen[l] = true
	}
	assert.Equal(t, "Taza", controlLabel(&catalog.Entry{ID: "mug", Title: "Taza"}))
}

func TestProductCardsResolve(t *testing.T) {
	c := catalog.Default()
	for _, name := range productCards {
		_, err := c.Resolve(name)
		assert.NoError(t, err, name)
	}
	id, err := c.Resolve("package")
	require.NoError(t, err)
	assert.Equal(t, "album", id)
}

func TestGeometry(t *testing.T) {
	const w, h = 1280.0, 800.0
	l := page.NewLayout(h, sections(h)...)
	geo := buildGeometry(w, l, 5, len(packages), len(stats), len(contacts))

	require.Len(t, geo.cards, 5)
	require.Len(t, geo.cardButtons, 5)
	for i := 1; i < len(geo.cards); i++ {
		assert.Greater(t, geo.cards[i].X, geo.cards[i-1].X+geo.cards[i-1].W, "cards overlap")
	}
	first, last := geo.cards[0], geo.cards[4]
	assert.InDelta(t, first.X, w-(last.X+last.W), 1e-9, "row is centered")

	gallery, _ := l.Section(secGallery)
	assert.GreaterOrEqual(t, geo.surface.Y, gallery.Top)
	assert.LessOrEqual(t, geo.surface.Y+geo.surface.H, gallery.Top+gallery.Height)
	require.Len(t, geo.controls, 5)
	for _, c := range geo.controls {
		assert.LessOrEqual(t, c.X+c.W, geo.surface.X+geo.surface.W+1e-9)
		assert.LessOrEqual(t, c.W, float64(config.ButtonWidth))
	}
	assert.Greater(t, geo.details.X, geo.surface.X+geo.surface.W)
	assert.Len(t, geo.stats, len(stats))
	assert.Len(t, geo.contacts, len(contacts))
	assert.True(t, geo.formBox.Contains(geo.submit.X, geo.submit.Y))

	for _, id := range []string{secProducts, secGallery, secPackages, secContact} {
		_, ok := geo.headers[id]
		assert.True(t, ok, id)
	}
}

func TestSectionsFillFirstScreen(t *testing.T) {
	s := sections(900)
	require.NotEmpty(t, s)
	assert.Equal(t, secHero, s[0].ID)
	assert.Equal(t, 900.0, s[0].Height)
	assert.Equal(t, 640.0, sections(300)[0].Height)
}

func TestOnScreen(t *testing.T) {
	assert.True(t, onScreen(page.Rect{Y: -10, H: 20}, 800))
	assert.False(t, onScreen(page.Rect{Y: -30, H: 20}, 800))
	assert.False(t, onScreen(page.Rect{Y: 800, H: 20}, 800))

	l := page.NewLayout(800, sections(800)...)
	l.ScrollBy(100)
	assert.Equal(t, 50.0, toScreen(l, page.Rect{Y: 150}).Y)
}

func TestColors(t *testing.T) {
	assert.Equal(t, uint8(0xff), colPink.R)
	assert.Equal(t, uint8(0x2d), colPink.G)
	assert.Equal(t, uint8(127), withAlpha(colCyan, 0.5).A)
	assert.Equal(t, uint8(0), withAlpha(colCyan, -1).A)
	r := hue(360, 1, 1)
	assert.Equal(t, hue(0, 1, 1), r)
	assert.Equal(t, uint8(255), r.R)
}

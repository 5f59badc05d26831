package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/product-showcase/internal/scene"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"album", "box", "usb", "usbbox", "prints"}, c.IDs())

	for _, e := range c.Entries() {
		assert.NotEmpty(t, e.Title, e.ID)
		assert.NotEmpty(t, e.Description, e.ID)
		assert.Len(t, e.Specs, 4, e.ID)
		g := e.Build()
		require.NotNil(t, g, e.ID)
		assert.Equal(t, e.ID, g.Name)
		assert.NotEmpty(t, g.Meshes, e.ID)
	}

	album, ok := c.Get("album")
	require.True(t, ok)
	assert.True(t, album.HasPreview())
	usb, _ := c.Get("usb")
	assert.False(t, usb.HasPreview())
	assert.Equal(t, "USB Personalizada", usb.Title)
}

func TestBuildReturnsFreshGroups(t *testing.T) {
	a, b := Album(), Album()
	assert.NotSame(t, a, b)
	assert.Len(t, a.Meshes, 10)

	p1, p2 := Prints(), Prints()
	assert.Equal(t, p1.Meshes[0].Rotation, p2.Meshes[0].Rotation)

	box := PhotoBox()
	assert.NotSame(t, box.Mesh("ribbon"), box.Mesh("ribbon-cross"))
	assert.Equal(t, box.Mesh("ribbon").Size, box.Mesh("ribbon-cross").Size)
}

func TestResolveAliases(t *testing.T) {
	c := Default()
	for name, want := range map[string]string{
		"album":    "album",
		"photobox": "box",
		"package":  "album",
		"usb":      "usb",
	} {
		got, err := c.Resolve(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := c.Resolve("poster")
	assert.ErrorIs(t, err, ErrUnknownProduct)
	assert.ErrorIs(t, c.Alias("x", "nope"), ErrUnknownProduct)
}

func TestNewRejectsBadEntries(t *testing.T) {
	_, err := New(&Entry{ID: "a"})
	assert.Error(t, err)

	build := func() *scene.Group { return scene.NewGroup("a") }
	_, err = New(&Entry{ID: "a", Build: build}, &Entry{ID: "a", Build: build})
	assert.Error(t, err)
}

func TestWithPreview(t *testing.T) {
	c := Default()
	out, err := c.WithPreview("usb", "https://example.org/usb")
	require.NoError(t, err)

	e, _ := out.Get("usb")
	assert.Equal(t, "https://example.org/usb", e.PreviewURL)
	orig, _ := c.Get("usb")
	assert.Empty(t, orig.PreviewURL, "original catalog is untouched")

	out, err = out.WithPreview("album", "")
	require.NoError(t, err)
	e, _ = out.Get("album")
	assert.False(t, e.HasPreview())
	id, err := out.Resolve("package")
	require.NoError(t, err)
	assert.Equal(t, "album", id)

	_, err = c.WithPreview("poster", "x")
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestHero(t *testing.T) {
	g := Hero(rand.New(rand.NewPCG(1, 1)))
	cloud := g.Mesh("particles")
	require.NotNil(t, cloud)
	assert.Equal(t, scene.Points, cloud.Kind)
	assert.Len(t, cloud.Cloud, 50)
	for _, p := range cloud.Cloud {
		assert.LessOrEqual(t, p.Len(), 4*1.7321)
	}

	s := scene.New()
	Lights(s)
	assert.Len(t, s.Lights(), 4)
}

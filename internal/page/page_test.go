package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout() *Layout {
	return NewLayout(800,
		Section{ID: "hero", Height: 800},
		Section{ID: "products", Height: 900},
		Section{ID: "gallery-3d", Height: 700},
		Section{ID: "contact", Height: 600},
	)
}

func TestLayoutStacksSections(t *testing.T) {
	l := testLayout()
	tops := []float64{0, 800, 1700, 2400}
	for i, s := range l.Sections() {
		assert.Equal(t, tops[i], s.Top, s.ID)
	}
	assert.Equal(t, 3000.0, l.ContentHeight())
	assert.Equal(t, 2200.0, l.MaxScroll())
	assert.Equal(t, "hero", l.Active())
}

func TestScrollClampsAndHighlights(t *testing.T) {
	l := testLayout()
	l.ScrollBy(-100)
	assert.Zero(t, l.ScrollY())
	assert.False(t, l.Scrolled())

	l.ScrollBy(51)
	assert.True(t, l.Scrolled())

	l.ScrollBy(600 - 51)
	assert.Equal(t, "products", l.Active())
	assert.Equal(t, 200.0, l.ToScreen(800))

	l.ScrollBy(1e6)
	assert.Equal(t, 2200.0, l.ScrollY())
	assert.Equal(t, "contact", l.Active())

	l.Resize(2000)
	assert.Equal(t, 1000.0, l.ScrollY())
}

func TestSmoothScrollTo(t *testing.T) {
	l := testLayout()
	require.NoError(t, l.ScrollTo("gallery-3d"))
	assert.True(t, l.Scrolling())

	prev := l.ScrollY()
	for i := 0; i < 200 && l.Scrolling(); i++ {
		l.Step()
		assert.GreaterOrEqual(t, l.ScrollY(), prev)
		prev = l.ScrollY()
	}
	assert.False(t, l.Scrolling())
	assert.Equal(t, 1700.0, l.ScrollY())
	assert.Equal(t, "gallery-3d", l.Active())

	assert.ErrorIs(t, l.ScrollTo("faq"), ErrNoSection)

	require.NoError(t, l.ScrollTo("hero"))
	l.ScrollBy(10)
	assert.False(t, l.Scrolling(), "manual scroll cancels the animation")
}

func TestMenuToggle(t *testing.T) {
	l := testLayout()
	l.ToggleMenu()
	assert.True(t, l.MenuOpen())
	require.NoError(t, l.ScrollTo("contact"))
	assert.False(t, l.MenuOpen(), "following a link closes the menu")
}

func TestTilt(t *testing.T) {
	card := Rect{X: 100, Y: 100, W: 200, H: 100}
	rx, ry, lift, ok := Tilt(card, 300, 100)
	require.True(t, ok)
	assert.InDelta(t, 4, rx, 1e-9)
	assert.InDelta(t, 4, ry, 1e-9)
	assert.Equal(t, 8.0, lift)

	rx, ry, _, _ = Tilt(card, 200, 150)
	assert.Zero(t, rx)
	assert.Zero(t, ry)

	_, _, _, ok = Tilt(card, 0, 0)
	assert.False(t, ok)
}

func TestCardSpin(t *testing.T) {
	card := Rect{W: 100, H: 100}
	ry, rx, ok := CardSpin(card, 100, 0)
	require.True(t, ok)
	assert.Equal(t, 40.0, ry)
	assert.Equal(t, 20.0, rx)
}

func TestParallax(t *testing.T) {
	assert.InDelta(t, 50, Parallax(1000, 0), 1e-9)
	assert.InDelta(t, 90, Parallax(1000, 2), 1e-9)
}

func TestLoader(t *testing.T) {
	t0 := time.Unix(0, 0)
	l := NewLoader(t0, 2500*time.Millisecond)
	assert.False(t, l.Done(t0.Add(2499*time.Millisecond)))
	assert.True(t, l.Done(t0.Add(2500*time.Millisecond)))
	assert.InDelta(t, 0.5, l.Progress(t0.Add(1250*time.Millisecond)), 1e-9)
	assert.Equal(t, 1.0, l.Progress(t0.Add(time.Hour)))
	assert.Equal(t, 1.0, NewLoader(t0, 0).Progress(t0))
}

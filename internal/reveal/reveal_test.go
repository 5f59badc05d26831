package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Unix(1000, 0)

func TestStartRule(t *testing.T) {
	card := Target{ID: "card", Top: 1000, Height: 300}
	r := Start(0.85)
	assert.False(t, r.Fires(card, 0, 800))
	assert.False(t, r.Fires(card, 319, 800))
	assert.True(t, r.Fires(card, 320, 800))
	assert.True(t, r.Fires(card, 5000, 800), "scrolled past still fires")
}

func TestThresholdRule(t *testing.T) {
	stat := Target{ID: "stat", Top: 1000, Height: 100}
	r := Threshold(0.5)
	assert.False(t, r.Fires(stat, 0, 800))
	assert.False(t, r.Fires(stat, 249, 800))
	assert.True(t, r.Fires(stat, 250, 800))
	assert.True(t, r.Fires(stat, 950, 800))
	assert.False(t, r.Fires(stat, 1060, 800))
	assert.False(t, r.Fires(Target{Height: 0}, 0, 800))
}

func TestObserverFiresOnce(t *testing.T) {
	o := NewObserver(nil)
	o.Observe(Target{ID: "a", Top: 900, Height: 100}, Start(0.8), Entrance{})
	o.Observe(Target{ID: "b", Top: 2000, Height: 100}, Start(0.8), Entrance{})
	require.Equal(t, 2, o.Pending())

	assert.Empty(t, o.Update(0, 800, t0))
	assert.Equal(t, []string{"a"}, o.Update(300, 800, t0))
	assert.Equal(t, 1, o.Pending())
	assert.True(t, o.Fired("a"))

	// Scrolling back up and down again never re-fires.
	assert.Empty(t, o.Update(0, 800, t0))
	assert.Empty(t, o.Update(300, 800, t0))

	assert.Equal(t, []string{"b"}, o.Update(2000, 800, t0))
	assert.Zero(t, o.Pending())
	assert.Empty(t, o.Update(2000, 800, t0))

	o.Observe(Target{ID: "a", Top: 10, Height: 100}, Start(0.8), Entrance{})
	assert.Zero(t, o.Pending(), "fired targets are not re-armed")
}

func TestObserverState(t *testing.T) {
	o := NewObserver(nil)
	e := Entrance{FromY: 80, Duration: 800 * time.Millisecond, Delay: 100 * time.Millisecond, Ease: Linear}
	o.Observe(Target{ID: "card", Top: 100, Height: 100}, Start(0.85), e)

	s := o.State("card", t0)
	assert.Equal(t, 80.0, s.DY)
	assert.Zero(t, s.Opacity)

	o.Update(0, 800, t0)
	assert.Zero(t, o.State("card", t0.Add(50*time.Millisecond)).Opacity, "still in delay")
	mid := o.State("card", t0.Add(500*time.Millisecond))
	assert.InDelta(t, 0.5, mid.Opacity, 1e-9)
	assert.InDelta(t, 40, mid.DY, 1e-9)
	assert.Equal(t, Shown, o.State("card", t0.Add(time.Second)))

	assert.Equal(t, Shown, o.State("unknown", t0))
}

func TestEntranceScaleAndEase(t *testing.T) {
	e := Entrance{FromScale: 0.9, Duration: time.Second, Ease: Power3Out}
	assert.InDelta(t, 0.9, e.At(0).Scale, 1e-9)
	half := e.At(500 * time.Millisecond)
	assert.InDelta(t, 1-0.0625, half.Opacity, 1e-9)
	assert.Greater(t, half.Scale, 0.99)
	assert.False(t, e.Done(999*time.Millisecond))
	assert.True(t, e.Done(time.Second))

	assert.InDelta(t, 0.875, Power2Out(0.5), 1e-9)
	assert.Equal(t, Shown, Entrance{}.At(0))
}

func TestStagger(t *testing.T) {
	assert.Equal(t, []time.Duration{0, 50 * time.Millisecond, 100 * time.Millisecond}, Stagger(3, 50*time.Millisecond))
	assert.Empty(t, Stagger(0, time.Second))
}

func TestCounter(t *testing.T) {
	c := NewCounter(500)
	assert.Equal(t, "0", c.Text())
	c.Tick(t0.Add(time.Hour))
	assert.Equal(t, "0", c.Text(), "not started")

	c.Start(t0)
	c.Start(t0.Add(time.Second))
	c.Tick(t0.Add(30 * time.Millisecond))
	assert.Equal(t, "8", c.Text())
	c.Tick(t0.Add(300 * time.Millisecond))
	assert.Equal(t, "83", c.Text())
	assert.False(t, c.Done())

	c.Tick(t0.Add(60 * 30 * time.Millisecond))
	assert.True(t, c.Done())
	assert.Equal(t, "500+", c.Text())

	pct := NewCounter(100)
	pct.Start(t0)
	pct.Tick(t0.Add(time.Minute))
	assert.Equal(t, "100%", pct.Text())
}

package trail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkersFollowWithStaggeredDelay(t *testing.T) {
	tr := New(8, 40*time.Millisecond)
	t0 := time.Unix(0, 0)

	assert.Empty(t, tr.Markers(t0, nil), "no markers before the first move")

	for i := 0; i <= 10; i++ {
		tr.Move(float64(i*10), 0, t0.Add(time.Duration(i)*40*time.Millisecond))
	}
	now := t0.Add(400 * time.Millisecond)
	ms := tr.Markers(now, nil)
	require.Len(t, ms, 8)
	for i, m := range ms {
		assert.Equal(t, float64(100-i*10), m.X, "marker %d", i)
		assert.InDelta(t, 12-float64(i)*1.2, m.Diameter, 1e-9)
		assert.InDelta(t, 0.3-float64(i)*0.03, m.Alpha, 1e-9)
	}
}

func TestMarkersCatchUp(t *testing.T) {
	tr := New(3, 40*time.Millisecond)
	t0 := time.Unix(0, 0)
	tr.Move(0, 0, t0)
	tr.Move(50, 50, t0.Add(100*time.Millisecond))

	ms := tr.Markers(t0.Add(100*time.Millisecond), nil)
	assert.Equal(t, 50.0, ms[0].X)
	assert.Equal(t, 0.0, ms[1].X)
	assert.Equal(t, 0.0, ms[2].X)

	ms = tr.Markers(t0.Add(200*time.Millisecond), ms)
	for _, m := range ms {
		assert.Equal(t, 50.0, m.X)
	}
}

func TestHistoryIsBounded(t *testing.T) {
	tr := New(4, 10*time.Millisecond)
	t0 := time.Unix(0, 0)
	for i := 0; i < 1000; i++ {
		tr.Move(float64(i), 0, t0.Add(time.Duration(i)*time.Millisecond))
	}
	assert.LessOrEqual(t, len(tr.samples), 42)

	ms := tr.Markers(t0.Add(999*time.Millisecond), nil)
	assert.Equal(t, 999.0, ms[0].X)
	assert.Equal(t, 969.0, ms[3].X)
}

func TestHoverScalesHead(t *testing.T) {
	tr := New(8, 40*time.Millisecond)
	tr.Move(5, 6, time.Unix(0, 0))

	x, y, r, c := tr.Head()
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 6.0, y)
	assert.Equal(t, baseColor, c)

	tr.SetHover(true)
	_, _, r2, c2 := tr.Head()
	assert.Equal(t, 2*r, r2)
	assert.Equal(t, hoverColor, c2)
}

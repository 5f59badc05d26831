package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Unix(0, 0)

func entry() Entry {
	return Entry{Name: "Ana", Email: "ana@example.org", Product: "album", Message: "Hola"}
}

func TestSubmitThenRevert(t *testing.T) {
	var got []Entry
	f := New()
	f.OnSubmit = func(e Entry) { got = append(got, e) }
	assert.Equal(t, Idle, f.State())

	require.NoError(t, f.Submit(entry(), t0))
	assert.Equal(t, Submitted, f.State())
	assert.Equal(t, "Enviado!", f.Label())
	assert.Equal(t, entry(), f.Entry())
	assert.Len(t, got, 1)
	assert.Equal(t, RevertDelay, f.Remaining(t0))

	assert.False(t, f.Tick(t0.Add(2999*time.Millisecond)))
	assert.Equal(t, Submitted, f.State())

	assert.True(t, f.Tick(t0.Add(RevertDelay)))
	assert.Equal(t, Idle, f.State())
	assert.Equal(t, Entry{}, f.Entry())
	assert.Zero(t, f.Remaining(t0))
	assert.False(t, f.Tick(t0.Add(time.Hour)))
}

func TestSubmitRejectsIncompleteAndBusy(t *testing.T) {
	f := New()
	assert.ErrorIs(t, f.Submit(Entry{Name: "  ", Message: "x"}, t0), ErrIncomplete)
	assert.ErrorIs(t, f.Submit(Entry{Name: "x"}, t0), ErrIncomplete)
	assert.Equal(t, Idle, f.State())

	require.NoError(t, f.Submit(entry(), t0))
	assert.ErrorIs(t, f.Submit(entry(), t0), ErrBusy)
}

func TestCancelKeepsSubmitted(t *testing.T) {
	f := New().WithDelay(time.Second)
	require.NoError(t, f.Submit(entry(), t0))
	f.Cancel()
	assert.False(t, f.Tick(t0.Add(time.Hour)))
	assert.Equal(t, Submitted, f.State())
	assert.Zero(t, f.Remaining(t0))

	f.reset()
	assert.Equal(t, Idle, f.State())
	require.NoError(t, f.Submit(entry(), t0))
	assert.True(t, f.Tick(t0.Add(time.Second)))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "submitted", Submitted.String())
	assert.Equal(t, "unknown", State(9).String())
}

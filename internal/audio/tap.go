package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the renderer can react to what is currently playing.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n samples, oldest first.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([][2]float64, n)
	idx := t.nextIndex - 1
	for i := n - 1; i >= 0; i-- {
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		out[i] = t.buffer[idx]
		idx--
	}
	return out
}

// Meter turns tap snapshots into smoothed per-band loudness.
type Meter struct {
	tap       *Tap
	window    int
	smoothing float64
	bands     []float64
}

func NewMeter(tap *Tap, bands, window int, smoothing float64) *Meter {
	return &Meter{
		tap:       tap,
		window:    window,
		smoothing: smoothing,
		bands:     make([]float64, bands),
	}
}

// Update folds the latest window into the bands. Call once per frame.
func (m *Meter) Update() {
	if m.tap == nil || len(m.bands) == 0 {
		return
	}
	samples := m.tap.Snapshot(m.window)
	if len(samples) == 0 {
		return
	}
	nBands := len(m.bands)
	segment := max(1, len(samples)/nBands)
	for i := 0; i < nBands; i++ {
		start := i * segment
		if start >= len(samples) {
			break
		}
		end := min(start+segment, len(samples))

		var sumSquares float64
		for s := start; s < end; s++ {
			mono := (samples[s][0] + samples[s][1]) * 0.5
			sumSquares += mono * mono
		}
		rms := math.Sqrt(sumSquares / float64(end-start))
		mag := math.Pow(rms, 0.3)
		m.bands[i] = m.smoothing*m.bands[i] + (1-m.smoothing)*mag
	}
}

func (m *Meter) Bands() []float64 { return m.bands }

// Level is the mean of the bands, clamped to [0, 1].
func (m *Meter) Level() float64 {
	if len(m.bands) == 0 {
		return 0
	}
	var sum float64
	for _, b := range m.bands {
		sum += b
	}
	return math.Max(0, math.Min(1, sum/float64(len(m.bands))))
}

package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

type Cue int

const (
	CueSelect Cue = iota // product switched to its 3D view
	CuePreview           // product switched to its external preview
	CueSubmit            // contact form sent
)

type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueSelect:  {{880, 60 * time.Millisecond}},
	CuePreview: {{660, 50 * time.Millisecond}, {990, 70 * time.Millisecond}},
	CueSubmit:  {{523.25, 80 * time.Millisecond}, {659.25, 80 * time.Millisecond}, {783.99, 140 * time.Millisecond}},
}

// tone is a sine at freq with a linear fade-out, n samples long.
func tone(sr beep.SampleRate, freq float64, n int, gain float64) beep.Streamer {
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i++ {
			env := 1 - float64(pos)/float64(n)
			v := math.Sin(step*float64(pos)) * env * gain
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return i, true
	})
}

// cueStreamer plays the notes of c back to back.
func cueStreamer(sr beep.SampleRate, c Cue) beep.Streamer {
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(sr, n.freq, sr.N(n.dur), 0.25))
	}
	return beep.Seq(parts...)
}

// cueLength is the total sample count of c.
func cueLength(sr beep.SampleRate, c Cue) int {
	total := 0
	for _, n := range cueNotes[c] {
		total += sr.N(n.dur)
	}
	return total
}

package reveal

import (
	"math"
	"time"
)

// Ease maps linear progress in [0, 1] to eased progress.
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

// Power2Out decelerates with a cubic curve.
func Power2Out(t float64) float64 { return 1 - math.Pow(1-t, 3) }

// Power3Out decelerates with a quartic curve.
func Power3Out(t float64) float64 { return 1 - math.Pow(1-t, 4) }

// State is the transform applied to an element while it enters.
type State struct {
	DX, DY  float64
	Scale   float64
	Opacity float64
}

var Shown = State{Scale: 1, Opacity: 1}

// Entrance animates from an offset, scaled, transparent pose to Shown.
// A zero FromScale means no scaling.
type Entrance struct {
	FromX, FromY float64
	FromScale    float64
	Duration     time.Duration
	Delay        time.Duration
	Ease         Ease
}

// At evaluates the entrance elapsed after it fired. Negative elapsed is the
// start pose.
func (e Entrance) At(elapsed time.Duration) State {
	p := 0.0
	switch {
	case elapsed < 0 || elapsed < e.Delay:
	case e.Duration <= 0:
		p = 1
	default:
		p = math.Min(1, float64(elapsed-e.Delay)/float64(e.Duration))
	}
	if e.Ease != nil {
		p = e.Ease(p)
	}
	from := e.FromScale
	if from == 0 {
		from = 1
	}
	return State{
		DX:      e.FromX * (1 - p),
		DY:      e.FromY * (1 - p),
		Scale:   from + (1-from)*p,
		Opacity: p,
	}
}

// Done reports whether the entrance has finished at elapsed.
func (e Entrance) Done(elapsed time.Duration) bool {
	return elapsed >= e.Delay+e.Duration
}

// Stagger returns start offsets i*step for n items.
func Stagger(n int, step time.Duration) []time.Duration {
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = time.Duration(i) * step
	}
	return out
}

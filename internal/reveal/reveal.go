// Package reveal plays one-shot entrance animations for page elements the
// first time they scroll into view.
package reveal

import (
	"log/slog"
	"time"
)

// Target is an element's vertical extent in page coordinates.
type Target struct {
	ID     string
	Top    float64
	Height float64
}

// Rule decides whether a target is visible enough to fire.
type Rule interface {
	Fires(t Target, scrollY, viewportH float64) bool
}

type startRule float64

// Start fires once the target's top edge passes the given fraction of the
// viewport height, e.g. Start(0.85) for "top 85%".
func Start(fraction float64) Rule { return startRule(fraction) }

func (f startRule) Fires(t Target, scrollY, viewportH float64) bool {
	return t.Top-scrollY <= viewportH*float64(f)
}

type thresholdRule float64

// Threshold fires once at least ratio of the target's height is inside the
// viewport.
func Threshold(ratio float64) Rule { return thresholdRule(ratio) }

func (r thresholdRule) Fires(t Target, scrollY, viewportH float64) bool {
	if t.Height <= 0 {
		return false
	}
	top := max(t.Top, scrollY)
	bottom := min(t.Top+t.Height, scrollY+viewportH)
	if bottom <= top {
		return false
	}
	return (bottom-top)/t.Height >= float64(r)
}

type item struct {
	target   Target
	rule     Rule
	entrance Entrance
	fired    bool
	firedAt  time.Time
}

// Observer watches targets and fires each at most once.
type Observer struct {
	watching []*item
	byID     map[string]*item
	log      *slog.Logger
}

func NewObserver(log *slog.Logger) *Observer {
	if log == nil {
		log = slog.Default()
	}
	return &Observer{byID: map[string]*item{}, log: log}
}

// Observe registers a target. Re-observing an id replaces its geometry but
// never re-arms a target that already fired.
func (o *Observer) Observe(t Target, r Rule, e Entrance) {
	if it, ok := o.byID[t.ID]; ok {
		it.target = t
		return
	}
	it := &item{target: t, rule: r, entrance: e}
	o.byID[t.ID] = it
	o.watching = append(o.watching, it)
}

// Update checks watched targets against the viewport and returns the ids
// that fired during this call. Fired targets stop being watched.
func (o *Observer) Update(scrollY, viewportH float64, now time.Time) []string {
	var fired []string
	kept := o.watching[:0]
	for _, it := range o.watching {
		if it.rule.Fires(it.target, scrollY, viewportH) {
			it.fired = true
			it.firedAt = now
			fired = append(fired, it.target.ID)
			continue
		}
		kept = append(kept, it)
	}
	clear(o.watching[len(kept):])
	o.watching = kept
	if len(fired) > 0 {
		o.log.Debug("revealed", "targets", fired)
	}
	return fired
}

// Pending is the number of targets still watched.
func (o *Observer) Pending() int { return len(o.watching) }

func (o *Observer) Fired(id string) bool {
	it, ok := o.byID[id]
	return ok && it.fired
}

// State is the animated look of id at now. Unknown ids are fully shown;
// targets that have not fired yet are in their entrance start pose.
func (o *Observer) State(id string, now time.Time) State {
	it, ok := o.byID[id]
	if !ok {
		return Shown
	}
	if !it.fired {
		return it.entrance.At(-1)
	}
	return it.entrance.At(now.Sub(it.firedAt))
}

package reveal

import (
	"math"
	"strconv"
	"time"
)

const (
	counterSteps    = 60
	counterInterval = 30 * time.Millisecond
)

// Counter counts a statistic up from zero once started, in fixed
// increments on a fixed interval.
type Counter struct {
	Target int

	steps   int
	next    time.Time
	started bool
	done    bool
}

func NewCounter(target int) *Counter { return &Counter{Target: target} }

// Start begins counting at now. Starting twice is a no-op.
func (c *Counter) Start(now time.Time) {
	if c.started {
		return
	}
	c.started = true
	c.next = now.Add(counterInterval)
}

// Tick applies every increment due by now.
func (c *Counter) Tick(now time.Time) {
	for c.started && !c.done && !now.Before(c.next) {
		c.steps++
		c.next = c.next.Add(counterInterval)
		c.done = c.steps >= counterSteps
	}
}

func (c *Counter) Done() bool { return c.done }

// Text is the displayed value; the final value carries a "%" for 100 and
// a "+" otherwise.
func (c *Counter) Text() string {
	if c.done {
		suffix := "+"
		if c.Target == 100 {
			suffix = "%"
		}
		return strconv.Itoa(c.Target) + suffix
	}
	return strconv.Itoa(int(math.Floor(float64(c.Target) * float64(c.steps) / counterSteps)))
}

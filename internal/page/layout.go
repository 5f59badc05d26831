// Package page holds the scrolling page: stacked sections, the navigation
// highlight, smooth anchor scrolling and the small pointer/scroll effects.
package page

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrNoSection = errors.New("no such section")

const (
	scrolledAfter = 50
	activeOffset  = 200
	smoothFactor  = 0.15
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Section is a page block. Top is assigned by the layout.
type Section struct {
	ID     string
	Title  string
	Height float64
	Top    float64
}

type Layout struct {
	sections  []Section
	viewportH float64
	scrollY   float64

	target    float64
	smoothing bool

	active   string
	menuOpen bool
}

// NewLayout stacks sections top to bottom in the given order.
func NewLayout(viewportH float64, sections ...Section) *Layout {
	l := &Layout{viewportH: viewportH}
	top := 0.0
	for _, s := range sections {
		s.Top = top
		top += s.Height
		l.sections = append(l.sections, s)
	}
	l.refresh()
	return l
}

func (l *Layout) Sections() []Section { return l.sections }

func (l *Layout) Section(id string) (Section, bool) {
	for _, s := range l.sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func (l *Layout) ContentHeight() float64 {
	if len(l.sections) == 0 {
		return 0
	}
	last := l.sections[len(l.sections)-1]
	return last.Top + last.Height
}

func (l *Layout) MaxScroll() float64 {
	return math.Max(0, l.ContentHeight()-l.viewportH)
}

func (l *Layout) ScrollY() float64 { return l.scrollY }

func (l *Layout) ViewportHeight() float64 { return l.viewportH }

// Resize changes the viewport height and re-clamps the scroll position.
func (l *Layout) Resize(viewportH float64) {
	l.viewportH = viewportH
	l.setScroll(l.scrollY)
}

// ScrollBy scrolls immediately and cancels any smooth scroll.
func (l *Layout) ScrollBy(dy float64) {
	l.smoothing = false
	l.setScroll(l.scrollY + dy)
}

// ScrollTo starts a smooth scroll bringing section id to the top.
func (l *Layout) ScrollTo(id string) error {
	s, ok := l.Section(id)
	if !ok {
		return fmt.Errorf("scroll to %q: %w", id, ErrNoSection)
	}
	l.target = l.clamp(s.Top)
	l.smoothing = true
	l.menuOpen = false
	return nil
}

// Scrolling reports whether a smooth scroll is in progress.
func (l *Layout) Scrolling() bool { return l.smoothing }

// Step advances a smooth scroll by one frame.
func (l *Layout) Step() {
	if !l.smoothing {
		return
	}
	d := l.target - l.scrollY
	if math.Abs(d) < 0.5 {
		l.setScroll(l.target)
		l.smoothing = false
		return
	}
	l.setScroll(l.scrollY + d*smoothFactor)
}

func (l *Layout) clamp(y float64) float64 {
	return math.Max(0, math.Min(l.MaxScroll(), y))
}

func (l *Layout) setScroll(y float64) {
	l.scrollY = l.clamp(y)
	l.refresh()
}

// refresh recomputes the highlighted section. When no section matches,
// the previous highlight stays.
func (l *Layout) refresh() {
	for _, s := range l.sections {
		top := s.Top - activeOffset
		if l.scrollY >= top && l.scrollY < top+s.Height {
			l.active = s.ID
		}
	}
}

// Scrolled is true once the page moved past the top, which compacts the nav bar.
func (l *Layout) Scrolled() bool { return l.scrollY > scrolledAfter }

// Active is the id of the highlighted navigation entry.
func (l *Layout) Active() string { return l.active }

// ToScreen maps a page y coordinate to the viewport.
func (l *Layout) ToScreen(y float64) float64 { return y - l.scrollY }

func (l *Layout) ToggleMenu() { l.menuOpen = !l.menuOpen }

func (l *Layout) MenuOpen() bool { return l.menuOpen }

// Loader holds the page behind a loading screen for a fixed delay.
type Loader struct {
	start time.Time
	delay time.Duration
}

func NewLoader(start time.Time, delay time.Duration) Loader {
	return Loader{start: start, delay: delay}
}

func (l Loader) Done(now time.Time) bool { return !now.Before(l.start.Add(l.delay)) }

// Progress is the elapsed share of the delay in [0, 1].
func (l Loader) Progress(now time.Time) float64 {
	if l.delay <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, float64(now.Sub(l.start))/float64(l.delay)))
}

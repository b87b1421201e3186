// Package animation drives counters that count up from zero to a formatted
// target ("124,5 M FCFA", "+8.6%") over a fixed duration, one frame per
// display refresh.
package animation

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"everest-finance/display"
)

const DefaultDuration = 2 * time.Second

// Spec describes one counter animation. Zero Duration and nil Easing take
// DefaultDuration and EaseOutCubic.
type Spec struct {
	Target   string
	Duration time.Duration
	Easing   Easing
}

// Handle controls a running animation.
type Handle struct {
	cancelled atomic.Bool
	done      chan struct{}
	once      sync.Once
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// Cancel stops the animation before its next frame. No final frame is emitted.
func (h *Handle) Cancel() {
	h.cancelled.Store(true)
	h.finish()
}

func (h *Handle) Cancelled() bool { return h.cancelled.Load() }

// Done is closed once the final frame has been emitted or the animation was cancelled.
func (h *Handle) Done() <-chan struct{} { return h.done }

func (h *Handle) finish() {
	h.once.Do(func() { close(h.done) })
}

func (h *Handle) running() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

// Animator owns at most one running animation, the way a single on-screen
// counter does.
type Animator struct {
	clock Clock

	mu     sync.Mutex
	target string
	active *Handle
}

func New(clock Clock) *Animator {
	return &Animator{clock: clock}
}

// Animate starts counting towards spec.Target, calling onFrame with each
// formatted frame; the last frame is spec.Target itself. While a run for the
// same target is in flight Animate returns its handle and starts nothing; a
// run for a different target is cancelled and replaced.
func (a *Animator) Animate(spec Spec, onFrame func(frame string)) *Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active != nil && a.active.running() {
		if a.target == spec.Target {
			return a.active
		}
		a.active.Cancel()
	}

	if spec.Duration <= 0 {
		spec.Duration = DefaultDuration
	}
	if spec.Easing == nil {
		spec.Easing = EaseOutCubic
	}

	h := newHandle()
	r := &run{
		clock:    a.clock,
		target:   display.ParseTarget(spec.Target),
		start:    a.clock.Now(),
		duration: spec.Duration,
		easing:   spec.Easing,
		onFrame:  onFrame,
		handle:   h,
	}
	a.active, a.target = h, spec.Target
	a.clock.RequestFrame(r.tick)
	return h
}

// Cancel stops the current animation, if any.
func (a *Animator) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active != nil {
		a.active.Cancel()
	}
}

type run struct {
	clock    Clock
	target   display.Target
	start    time.Time
	duration time.Duration
	easing   Easing
	onFrame  func(string)
	handle   *Handle
}

func (r *run) tick() {
	if r.handle.Cancelled() {
		return
	}

	elapsed := r.clock.Now().Sub(r.start)
	progress := math.Max(0, math.Min(float64(elapsed)/float64(r.duration), 1))
	if progress >= 1 {
		r.onFrame(r.target.Raw)
		r.handle.finish()
		return
	}

	current := r.target.Value * r.easing(progress)
	r.onFrame(r.target.Format(current))
	r.clock.RequestFrame(r.tick)
}

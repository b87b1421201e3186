package animation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"everest-finance/display"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type recorder struct {
	mu     sync.Mutex
	frames []string
}

func (r *recorder) record(frame string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, frame)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.frames...)
}

func step(clock *ManualClock, n int, d time.Duration) {
	for i := 0; i < n; i++ {
		clock.Advance(d)
	}
}

func TestAnimate_ConvergesOnLiteralTarget(t *testing.T) {
	targets := []string{"124,5 M FCFA", "+8.6%", "+8.6", "1 250 000 FCFA", "42"}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			clock := NewManualClock(epoch)
			rec := &recorder{}
			h := New(clock).Animate(Spec{Target: target}, rec.record)

			step(clock, 20, 100*time.Millisecond)

			frames := rec.all()
			require.Len(t, frames, 20)
			assert.Equal(t, target, frames[len(frames)-1])
			assert.Zero(t, clock.Pending())

			prev := 0.0
			for _, f := range frames {
				v := display.ParseTarget(f).Value
				assert.GreaterOrEqual(t, v, prev, "frame %q went backwards", f)
				prev = v
			}

			select {
			case <-h.Done():
			default:
				t.Fatal("handle not done after final frame")
			}
		})
	}
}

func TestAnimate_IntermediateFrameUsesTargetShape(t *testing.T) {
	clock := NewManualClock(epoch)
	rec := &recorder{}
	New(clock).Animate(Spec{Target: "+8.6%", Easing: Linear}, rec.record)

	clock.Advance(time.Second)

	assert.Equal(t, []string{"+4.3%"}, rec.all())
}

func TestAnimate_FallbackTargetNeverChanges(t *testing.T) {
	clock := NewManualClock(epoch)
	rec := &recorder{}
	New(clock).Animate(Spec{Target: "not-a-number"}, rec.record)

	step(clock, 25, 100*time.Millisecond)

	frames := rec.all()
	require.NotEmpty(t, frames)
	for _, f := range frames {
		assert.Equal(t, "not-a-number", f)
	}
}

func TestAnimate_CancelStopsWithoutFinalFrame(t *testing.T) {
	clock := NewManualClock(epoch)
	rec := &recorder{}
	h := New(clock).Animate(Spec{Target: "124,5 M FCFA"}, rec.record)

	step(clock, 5, 100*time.Millisecond)
	h.Cancel()
	step(clock, 30, 100*time.Millisecond)

	frames := rec.all()
	assert.Len(t, frames, 5)
	assert.NotEqual(t, "124,5 M FCFA", frames[len(frames)-1])
	assert.True(t, h.Cancelled())
	assert.Zero(t, clock.Pending())
}

func TestAnimate_SameTargetInFlightIsNoop(t *testing.T) {
	clock := NewManualClock(epoch)
	a := New(clock)
	rec := &recorder{}

	first := a.Animate(Spec{Target: "+8.6%"}, rec.record)
	second := a.Animate(Spec{Target: "+8.6%"}, rec.record)

	assert.Same(t, first, second)
	assert.Equal(t, 1, clock.Pending())

	step(clock, 20, 100*time.Millisecond)
	assert.Len(t, rec.all(), 20)

	third := a.Animate(Spec{Target: "+8.6%"}, rec.record)
	assert.NotSame(t, first, third)
}

func TestAnimate_NewTargetReplacesRun(t *testing.T) {
	clock := NewManualClock(epoch)
	a := New(clock)
	old := &recorder{}
	cur := &recorder{}

	first := a.Animate(Spec{Target: "+8.6%"}, old.record)
	clock.Advance(100 * time.Millisecond)
	second := a.Animate(Spec{Target: "-2.3%"}, cur.record)

	assert.True(t, first.Cancelled())
	step(clock, 20, 100*time.Millisecond)

	assert.Len(t, old.all(), 1)
	frames := cur.all()
	require.NotEmpty(t, frames)
	assert.Equal(t, "-2.3%", frames[len(frames)-1])
	assert.False(t, second.Cancelled())
}

func TestAnimate_DefaultDuration(t *testing.T) {
	clock := NewManualClock(epoch)
	rec := &recorder{}
	h := New(clock).Animate(Spec{Target: "42"}, rec.record)

	clock.Advance(time.Second)
	select {
	case <-h.Done():
		t.Fatal("finished before default duration elapsed")
	default:
	}

	clock.Advance(time.Second)
	<-h.Done()
	assert.Equal(t, []string{"37", "42"}, rec.all())
}

func TestAnimate_AnimatorCancel(t *testing.T) {
	clock := NewManualClock(epoch)
	a := New(clock)
	rec := &recorder{}
	h := a.Animate(Spec{Target: "42"}, rec.record)

	a.Cancel()
	clock.Advance(3 * time.Second)

	assert.Empty(t, rec.all())
	assert.True(t, h.Cancelled())
}

func TestAnimate_FrameClock(t *testing.T) {
	rec := &recorder{}
	h := New(NewFrameClock(5*time.Millisecond)).Animate(Spec{
		Target:   "124,5 M FCFA",
		Duration: 50 * time.Millisecond,
	}, rec.record)

	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("animation did not finish")
	}

	frames := rec.all()
	require.NotEmpty(t, frames)
	assert.Equal(t, "124,5 M FCFA", frames[len(frames)-1])
}

func TestEasing(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutCubic(0))
	assert.Equal(t, 1.0, EaseOutCubic(1))
	assert.InDelta(t, 0.875, EaseOutCubic(0.5), 1e-12)
	assert.Equal(t, 0.25, Linear(0.25))
}

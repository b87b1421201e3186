package service

import (
	"fmt"
	"time"

	"everest-finance/animation"
	"everest-finance/display"
	"everest-finance/domain"
)

// CounterService renders the frames an animated counter would show, sampled
// at an even cadence.
type CounterService struct{}

func NewCounterService() *CounterService {
	return &CounterService{}
}

func (s *CounterService) Frames(req domain.CounterRequest) (domain.CounterPreview, error) {
	frames := req.Frames
	if frames == 0 {
		frames = DefaultCounterFrames
	}
	durationMs := req.DurationMs
	if durationMs == 0 {
		durationMs = DefaultCounterDurationMs
	}
	if frames < 1 || frames > MaxCounterFrames {
		return domain.CounterPreview{}, fmt.Errorf("%w: entre 1 et %d images", ErrInvalidFrames, MaxCounterFrames)
	}
	if durationMs < 0 || durationMs > MaxCounterDurationMs {
		return domain.CounterPreview{}, fmt.Errorf("%w: durée entre 0 et %d ms", ErrInvalidFrames, MaxCounterDurationMs)
	}

	duration := time.Duration(durationMs) * time.Millisecond
	clock := animation.NewManualClock(time.Unix(0, 0))
	out := make([]string, 0, frames)

	animation.New(clock).Animate(animation.Spec{
		Target:   req.Target,
		Duration: duration,
	}, func(frame string) {
		out = append(out, frame)
	})

	step := duration / time.Duration(frames)
	for i := 0; i < frames-1; i++ {
		clock.Advance(step)
	}
	clock.Advance(duration - step*time.Duration(frames-1))

	return domain.CounterPreview{
		Target: req.Target,
		Kind:   display.ParseTarget(req.Target).Kind.String(),
		Frames: out,
	}, nil
}

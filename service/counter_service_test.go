package service

import (
	"errors"
	"testing"

	"everest-finance/domain"
)

func TestFrames_Defaults(t *testing.T) {
	preview, err := NewCounterService().Frames(domain.CounterRequest{Target: "124,5 M FCFA"})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(preview.Frames) != DefaultCounterFrames {
		t.Fatalf("expected %d frames, got %d", DefaultCounterFrames, len(preview.Frames))
	}
	if preview.Frames[len(preview.Frames)-1] != "124,5 M FCFA" {
		t.Errorf("expected final frame to be the target, got %q", preview.Frames[len(preview.Frames)-1])
	}
	if preview.Kind != "currency" {
		t.Errorf("expected currency kind, got %s", preview.Kind)
	}
}

func TestFrames_UnevenStep(t *testing.T) {
	preview, err := NewCounterService().Frames(domain.CounterRequest{Target: "+8.6%", Frames: 3, DurationMs: 1000})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(preview.Frames) != 3 || preview.Frames[2] != "+8.6%" {
		t.Errorf("unexpected frames %v", preview.Frames)
	}
}

func TestFrames_Fallback(t *testing.T) {
	preview, err := NewCounterService().Frames(domain.CounterRequest{Target: "not-a-number", Frames: 4})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.Kind != "string" {
		t.Errorf("expected string kind, got %s", preview.Kind)
	}
	for _, f := range preview.Frames {
		if f != "not-a-number" {
			t.Errorf("expected literal frame, got %q", f)
		}
	}
}

func TestFrames_Invalid(t *testing.T) {
	for _, req := range []domain.CounterRequest{
		{Target: "42", Frames: MaxCounterFrames + 1},
		{Target: "42", Frames: -1},
		{Target: "42", DurationMs: -10},
		{Target: "42", DurationMs: MaxCounterDurationMs + 1},
	} {
		if _, err := NewCounterService().Frames(req); !errors.Is(err, ErrInvalidFrames) {
			t.Errorf("%+v: expected ErrInvalidFrames, got %v", req, err)
		}
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"everest-finance/repository"
)

func TestYearly(t *testing.T) {
	projections := newTestProjectionService(&MockProjectionRepository{}, repository.NewMemoryCache())
	schedule := NewScheduleService(projections)

	points, err := schedule.Yearly(context.Background(), validRequest())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("expected 5 yearly points, got %d", len(points))
	}
	if points[0].Year != 1 || points[0].TotalInvested != 1_600_000 {
		t.Errorf("unexpected first year %+v", points[0])
	}

	full := ComputeProjection(scenarioA())
	last := points[len(points)-1]
	if last.ProjectedValue != full.ProjectedValue || last.NetReturn != full.NetReturn {
		t.Errorf("last point %+v does not match full projection %+v", last, full)
	}

	for i := 1; i < len(points); i++ {
		if points[i].ProjectedValue <= points[i-1].ProjectedValue {
			t.Errorf("year %d value did not grow", points[i].Year)
		}
	}
}

func TestYearly_Invalid(t *testing.T) {
	projections := newTestProjectionService(&MockProjectionRepository{}, repository.NewMemoryCache())
	req := validRequest()
	req.TimeHorizonYears = 0

	_, err := NewScheduleService(projections).Yearly(context.Background(), req)

	if !errors.Is(err, ErrInvalidHorizon) {
		t.Errorf("expected ErrInvalidHorizon, got %v", err)
	}
}

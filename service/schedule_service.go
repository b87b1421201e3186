package service

import (
	"context"

	"everest-finance/domain"
)

type ScheduleService struct {
	projections *ProjectionService
}

func NewScheduleService(projections *ProjectionService) *ScheduleService {
	return &ScheduleService{projections: projections}
}

// Yearly returns the projection at the end of each year of the horizon, for
// charting. Each point is exactly the projection at that shorter horizon.
func (s *ScheduleService) Yearly(
	_ context.Context,
	req domain.ProjectionRequest,
) ([]domain.YearPoint, error) {
	input, err := s.projections.Resolve(req)
	if err != nil {
		return nil, err
	}

	points := make([]domain.YearPoint, 0, input.TimeHorizonYears)
	for year := 1; year <= input.TimeHorizonYears; year++ {
		at := input
		at.TimeHorizonYears = year
		r := ComputeProjection(at)

		points = append(points, domain.YearPoint{
			Year:           year,
			TotalInvested:  r.TotalInvested,
			ProjectedValue: r.ProjectedValue,
			TotalFees:      r.TotalFees,
			NetReturn:      r.NetReturn,
		})
	}
	return points, nil
}

package service

import (
	"context"
	"sort"

	"everest-finance/domain"
)

type TierComparisonService struct {
	projections *ProjectionService
}

func NewTierComparisonService(projections *ProjectionService) *TierComparisonService {
	return &TierComparisonService{projections: projections}
}

// Compare projects req under every tier and ranks the quotes by net return.
// The request's own tier is ignored. Each quote also carries the fees at the
// top of the tier's range.
func (s *TierComparisonService) Compare(
	_ context.Context,
	req domain.ProjectionRequest,
) (domain.TierComparison, error) {
	if err := validateRequest(req); err != nil {
		return domain.TierComparison{}, err
	}

	tiers := s.projections.Tiers()
	quotes := make([]domain.TierQuote, 0, len(tiers))
	for _, tier := range tiers {
		input := domain.ProjectionInput{
			InitialAmount:        req.InitialAmount,
			MonthlyContribution:  req.MonthlyContribution,
			TimeHorizonYears:     req.TimeHorizonYears,
			ExpectedAnnualReturn: req.ExpectedAnnualReturn,
			ServiceTier:          tier,
		}
		result := ComputeProjection(input)
		quotes = append(quotes, domain.TierQuote{
			Tier:    tier,
			Result:  result,
			MaxFees: feesAt(input, result.ProjectedValue, tier.FeeMax),
		})
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Result.NetReturn > quotes[j].Result.NetReturn
	})

	return domain.TierComparison{
		RecommendedTier: quotes[0].Tier.ID,
		Quotes:          quotes,
	}, nil
}

package service

import (
	"math"

	"everest-finance/domain"
)

// ComputeProjection projects a monthly-compounded investment with end-of-month
// contributions. Fees are charged yearly on the average of the initial and
// final balances, at the tier's minimum rate: the quote is a floor, and
// FeeBasis says so.
//
// Inputs are not validated; out-of-range or non-finite values flow through
// the arithmetic unchanged.
func ComputeProjection(input domain.ProjectionInput) domain.ProjectionResult {
	years := float64(input.TimeHorizonYears)
	totalInvested := input.InitialAmount + input.MonthlyContribution*years*12

	projected := futureValue(input)
	feeRate := input.ServiceTier.FeeMin
	totalFees := feesAt(input, projected, feeRate)

	totalReturn := projected - totalInvested
	return domain.ProjectionResult{
		TotalInvested:  totalInvested,
		ProjectedValue: projected,
		TotalFees:      totalFees,
		TotalReturn:    totalReturn,
		NetReturn:      totalReturn - totalFees,
		FeeRate:        feeRate,
		FeeBasis:       domain.FeeBasisMinimum,
	}
}

// futureValue sums each contribution's growth one month at a time; the
// closed-form annuity formula differs from this in the last bits.
func futureValue(input domain.ProjectionInput) float64 {
	monthlyRate := input.ExpectedAnnualReturn / 12
	totalMonths := input.TimeHorizonYears * 12

	value := input.InitialAmount * math.Pow(1+monthlyRate, float64(totalMonths))
	for month := 1; month <= totalMonths; month++ {
		value += input.MonthlyContribution * math.Pow(1+monthlyRate, float64(totalMonths-month))
	}
	return value
}

func feesAt(input domain.ProjectionInput, projected, rate float64) float64 {
	avgYearlyValue := (input.InitialAmount + projected) / 2
	return avgYearlyValue * rate * float64(input.TimeHorizonYears)
}

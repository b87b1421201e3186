package domain

import "time"

// FeeBasisMinimum marks a fee estimate computed at the low end of the tier's range.
const FeeBasisMinimum = "minimum"

// ServiceTier is a management tier with its annual fee range, as fractions.
type ServiceTier struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	FeeMin float64 `json:"feeMin" yaml:"fee_min"`
	FeeMax float64 `json:"feeMax" yaml:"fee_max"`
}

type ProjectionInput struct {
	InitialAmount        float64
	MonthlyContribution  float64
	TimeHorizonYears     int
	ExpectedAnnualReturn float64
	ServiceTier          ServiceTier
}

type ProjectionResult struct {
	TotalInvested  float64 `json:"totalInvested"`
	ProjectedValue float64 `json:"projectedValue"`
	TotalFees      float64 `json:"totalFees"`
	TotalReturn    float64 `json:"totalReturn"`
	NetReturn      float64 `json:"netReturn"`
	FeeRate        float64 `json:"feeRate"`
	FeeBasis       string  `json:"feeBasis"`
}

// ProjectionRequest is the caller-facing form of ProjectionInput: the tier is
// referenced by id and resolved against the tier catalog.
type ProjectionRequest struct {
	InitialAmount        float64 `json:"initialAmount"`
	MonthlyContribution  float64 `json:"monthlyContribution"`
	TimeHorizonYears     int     `json:"timeHorizonYears"`
	ExpectedAnnualReturn float64 `json:"expectedAnnualReturn"`
	TierID               string  `json:"serviceTier"`
}

type ProjectionRecord struct {
	ID        string            `json:"id"`
	Request   ProjectionRequest `json:"request"`
	Result    ProjectionResult  `json:"result"`
	CreatedAt time.Time         `json:"createdAt"`
}

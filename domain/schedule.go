package domain

// YearPoint is the projection state at the end of a given year.
type YearPoint struct {
	Year           int     `json:"year"`
	TotalInvested  float64 `json:"totalInvested"`
	ProjectedValue float64 `json:"projectedValue"`
	TotalFees      float64 `json:"totalFees"`
	NetReturn      float64 `json:"netReturn"`
}

type TierQuote struct {
	Tier    ServiceTier      `json:"tier"`
	Result  ProjectionResult `json:"result"`
	MaxFees float64          `json:"maxFees"`
}

type TierComparison struct {
	RecommendedTier string      `json:"recommendedTier"`
	Quotes          []TierQuote `json:"quotes"`
}

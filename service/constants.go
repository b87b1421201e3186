package service

const (
	MaxInitialAmount       = 100_000_000_000.0 // 100 milliards FCFA
	MaxMonthlyContribution = 1_000_000_000.0
	MinHorizonYears        = 1
	MaxHorizonYears        = 20
	MaxAnnualReturn        = 0.5 // 50 % par an

	DefaultCounterFrames     = 20
	MaxCounterFrames         = 240
	DefaultCounterDurationMs = 2000
	MaxCounterDurationMs     = 60_000
)

package animation

// Easing maps linear progress in [0,1] onto eased progress in [0,1].
type Easing func(progress float64) float64

func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

func Linear(p float64) float64 { return p }

package http

import (
	"net/http"

	"go.uber.org/zap"
)

// NewRouter wires the API routes. POST routes go through the rate limiter.
func NewRouter(
	projections *ProjectionHandler,
	counter *CounterHandler,
	limiter *RateLimiter,
	logger *zap.Logger,
) *http.ServeMux {
	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, logger, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/projection/calculate", limited(projections.Calculate))
	mux.Handle("/projection/schedule", limited(projections.Schedule))
	mux.Handle("/projection/compare", limited(projections.Compare))
	mux.HandleFunc("/projection/tiers", projections.Tiers)
	mux.HandleFunc("/projection/history", projections.History)
	mux.Handle("/counter/frames", limited(counter.Frames))
	return mux
}

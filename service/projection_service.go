package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"everest-finance/domain"
	"everest-finance/repository"
)

type ProjectionService struct {
	repo     repository.ProjectionRepository
	cache    repository.CacheRepository
	tiers    *repository.TierCatalog
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewProjectionService creates a ProjectionService. A zero cacheTTL caches
// results without expiry.
func NewProjectionService(
	repo repository.ProjectionRepository,
	cache repository.CacheRepository,
	tiers *repository.TierCatalog,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ProjectionService {
	return &ProjectionService{
		repo:     repo,
		cache:    cache,
		tiers:    tiers,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *ProjectionService) Tiers() []domain.ServiceTier {
	return s.tiers.All()
}

// Resolve validates req and binds its tier.
func (s *ProjectionService) Resolve(req domain.ProjectionRequest) (domain.ProjectionInput, error) {
	if err := validateRequest(req); err != nil {
		return domain.ProjectionInput{}, err
	}
	tier, ok := s.tiers.Lookup(req.TierID)
	if !ok {
		return domain.ProjectionInput{}, fmt.Errorf("%w: %q", ErrUnknownTier, req.TierID)
	}
	return domain.ProjectionInput{
		InitialAmount:        req.InitialAmount,
		MonthlyContribution:  req.MonthlyContribution,
		TimeHorizonYears:     req.TimeHorizonYears,
		ExpectedAnnualReturn: req.ExpectedAnnualReturn,
		ServiceTier:          tier,
	}, nil
}

// Calculate validates req and returns its projection, from cache when possible.
func (s *ProjectionService) Calculate(
	ctx context.Context,
	req domain.ProjectionRequest,
) (domain.ProjectionResult, error) {
	input, err := s.Resolve(req)
	if err != nil {
		return domain.ProjectionResult{}, err
	}

	key := cacheKey(input)
	result, hit := s.cached(ctx, key)
	if !hit {
		result = ComputeProjection(input)
		s.store(ctx, key, result)
	}

	// Historique non critique
	if _, err := s.repo.Save(ctx, req, result); err != nil {
		s.logger.Warn("failed to save projection", zap.Error(err))
	}

	s.logger.Debug("projection computed",
		zap.String("tier", req.TierID),
		zap.Int("years", req.TimeHorizonYears),
		zap.Bool("cache_hit", hit),
	)
	return result, nil
}

func (s *ProjectionService) History(ctx context.Context, limit int) ([]domain.ProjectionRecord, error) {
	return s.repo.Recent(ctx, limit)
}

func (s *ProjectionService) cached(ctx context.Context, key string) (domain.ProjectionResult, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return domain.ProjectionResult{}, false
	}
	if !ok {
		return domain.ProjectionResult{}, false
	}
	var result domain.ProjectionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.logger.Warn("discarding corrupt cache entry", zap.String("key", key), zap.Error(err))
		return domain.ProjectionResult{}, false
	}
	return result, true
}

func (s *ProjectionService) store(ctx context.Context, key string, result domain.ProjectionResult) {
	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("failed to encode projection", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache projection", zap.String("key", key), zap.Error(err))
	}
}

// cacheKey covers the tier's fee rates so a changed catalog never reads
// results computed at the old rates.
func cacheKey(input domain.ProjectionInput) string {
	canonical := fmt.Sprintf("%g|%g|%d|%g|%s|%g|%g",
		input.InitialAmount,
		input.MonthlyContribution,
		input.TimeHorizonYears,
		input.ExpectedAnnualReturn,
		input.ServiceTier.ID,
		input.ServiceTier.FeeMin,
		input.ServiceTier.FeeMax,
	)
	return "projection:" + strconv.FormatUint(xxhash.Sum64String(canonical), 16)
}

func validateRequest(req domain.ProjectionRequest) error {
	switch {
	case !finite(req.InitialAmount) || req.InitialAmount < 0:
		return ErrInvalidAmount
	case req.InitialAmount > MaxInitialAmount:
		return fmt.Errorf("%w: maximum %.0f", ErrInvalidAmount, MaxInitialAmount)
	case !finite(req.MonthlyContribution) || req.MonthlyContribution < 0:
		return ErrInvalidContribution
	case req.MonthlyContribution > MaxMonthlyContribution:
		return fmt.Errorf("%w: maximum %.0f", ErrInvalidContribution, MaxMonthlyContribution)
	case req.TimeHorizonYears < MinHorizonYears || req.TimeHorizonYears > MaxHorizonYears:
		return fmt.Errorf("%w: entre %d et %d ans", ErrInvalidHorizon, MinHorizonYears, MaxHorizonYears)
	case !finite(req.ExpectedAnnualReturn) || req.ExpectedAnnualReturn < 0 || req.ExpectedAnnualReturn > MaxAnnualReturn:
		return fmt.Errorf("%w: entre 0 et %.2f", ErrInvalidReturn, MaxAnnualReturn)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package repository

import (
	"context"

	"everest-finance/domain"
)

type ProjectionRepository interface {
	Save(ctx context.Context, req domain.ProjectionRequest, result domain.ProjectionResult) (domain.ProjectionRecord, error)
	Recent(ctx context.Context, limit int) ([]domain.ProjectionRecord, error)
}

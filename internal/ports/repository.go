package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"arweaveCost/internal/domain"
)

// IEstimateRepository — контракт журнала расчётов (PostgreSQL, MongoDB или Redis).
type IEstimateRepository interface {
	SaveEstimate(ctx context.Context, est domain.Estimate) error
	GetHistory(ctx context.Context) ([]domain.Estimate, error)
	Ping(ctx context.Context) error
}

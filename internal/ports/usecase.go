package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"arweaveCost/internal/domain"
)

// IEstimatorUseCase — контракт бизнес-логики оценки стоимости (расчёт, цены, журнал, обработка событий из Kafka).
type IEstimatorUseCase interface {
	Calculate(ctx context.Context, fileSizes []float64) (*domain.CostReport, error)
	FetchTokenPrices(ctx context.Context) (domain.PriceQuote, error)
	FetchStorageCost(ctx context.Context, totalBytes float64) (int64, error)
	History(ctx context.Context) ([]domain.Estimate, error)
	HandleEstimateEvent(ctx context.Context, est domain.Estimate) error
}

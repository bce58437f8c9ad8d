package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"arweaveCost/internal/domain"
)

// IEstimateAnalytics — запись расчётов в хранилище для аналитики (ClickHouse).
type IEstimateAnalytics interface {
	WriteEstimate(ctx context.Context, est domain.Estimate) error
}

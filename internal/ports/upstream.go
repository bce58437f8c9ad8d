package ports

//go:generate mockgen -source=upstream.go -destination=../mocks/upstream_mock.go -package=mocks

import (
	"context"

	"arweaveCost/internal/domain"
)

// ITokenPriceSource — источник курсов токенов в USD (coingecko).
type ITokenPriceSource interface {
	FetchTokenPrices(ctx context.Context) (domain.PriceQuote, error)
}

// IStorageCostSource — источник стоимости хранения N байт в winston (шлюз arweave).
type IStorageCostSource interface {
	FetchStorageCost(ctx context.Context, totalBytes int64) (int64, error)
}

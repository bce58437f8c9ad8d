package estimator

import (
	"log/slog"
	"math"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/pkg/memo"
	"arweaveCost/internal/ports"
)

// maxExactSize — больше этого float64 уже не хранит целые байты точно.
const maxExactSize = 1 << 53

// Validate проверяет размеры файлов: непустой список конечных неотрицательных целых чисел.
func Validate(fileSizes []float64) error {
	if len(fileSizes) == 0 {
		return domain.ErrInvalidFileSizes
	}
	for _, size := range fileSizes {
		if !isByteCount(size) {
			return domain.ErrInvalidFileSizes
		}
	}
	return nil
}

// isByteCount — конечное неотрицательное целое, представимое точно.
func isByteCount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 && v <= maxExactSize && v == math.Trunc(v)
}

// sumBytes складывает размеры (после Validate). Переполнение int64 считаем невалидным вводом.
func sumBytes(fileSizes []float64) (int64, error) {
	var total int64
	for _, size := range fileSizes {
		n := int64(size)
		if total > math.MaxInt64-n {
			return 0, domain.ErrInvalidFileSizes
		}
		total += n
	}
	return total, nil
}

// CalculateFee — комиссия в winston: для загрузок меньше 100 KiB фиксированный минимум,
// иначе 15% от стоимости байтов.
func CalculateFee(totalBytes, byteCost int64) float64 {
	if totalBytes < domain.SmallUploadThreshold {
		return domain.MinimumWinstonFee
	}
	return float64(byteCost) * domain.FeeMultiplier
}

// UseCase — бизнес-логика оценки стоимости загрузки.
type UseCase struct {
	prices    ports.ITokenPriceSource
	storage   ports.IStorageCostSource
	cache     *memo.Cache
	repo      ports.IEstimateRepository
	broker    ports.IProducer
	analytics ports.IEstimateAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс. repo, broker и analytics опциональны (nil — не настроены).
func New(
	prices ports.ITokenPriceSource,
	storage ports.IStorageCostSource,
	cache *memo.Cache,
	repo ports.IEstimateRepository,
	broker ports.IProducer,
	analytics ports.IEstimateAnalytics,
	log *slog.Logger,
) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{
		prices:    prices,
		storage:   storage,
		cache:     cache,
		repo:      repo,
		broker:    broker,
		analytics: analytics,
		log:       log,
	}
}

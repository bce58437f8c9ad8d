package estimator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/pkg/memo"
)

// Неймспейсы мемоизируемых операций.
const (
	nsTokenPrices = "token-prices"
	nsStorageCost = "storage-cost"
)

// Calculate — валидирует размеры, параллельно берёт курсы и стоимость байтов (через мемо-кэш),
// считает комиссию и итог в AR и SOL. Отчёт либо целиком, либо ошибка.
func (u *UseCase) Calculate(ctx context.Context, fileSizes []float64) (*domain.CostReport, error) {
	if err := Validate(fileSizes); err != nil {
		return nil, err
	}
	totalBytes, err := sumBytes(fileSizes)
	if err != nil {
		return nil, err
	}

	var (
		quote    domain.PriceQuote
		byteCost int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := u.FetchTokenPrices(gctx)
		quote = q
		return err
	})
	g.Go(func() error {
		c, err := u.fetchStorageCost(gctx, totalBytes)
		byteCost = c
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if quote.ArweaveUSD <= 0 || quote.SolanaUSD <= 0 {
		return nil, fmt.Errorf("%w: non-positive token price", domain.ErrUpstreamFailure)
	}

	fee := CalculateFee(totalBytes, byteCost)
	totalWinstonCost := float64(byteCost) + fee
	totalArCost := totalWinstonCost / domain.WinstonsPerAR
	exchangeRate := quote.ArweaveUSD / quote.SolanaUSD

	report := &domain.CostReport{
		Arweave:      totalArCost,
		Solana:       totalArCost * exchangeRate,
		ArweavePrice: quote.ArweaveUSD,
		SolanaPrice:  quote.SolanaUSD,
		ExchangeRate: exchangeRate,
		ByteCost:     byteCost,
		TotalBytes:   totalBytes,
		Fee:          fee,
	}
	u.log.Debug("estimate calculated",
		"total_bytes", totalBytes,
		"byte_cost", byteCost,
		"fee", fee,
		"total_winston_cost", totalWinstonCost,
		"arweave", report.Arweave,
		"solana", report.Solana,
		"exchange_rate", exchangeRate,
	)

	u.record(ctx, len(fileSizes), *report)
	return report, nil
}

// FetchTokenPrices — курсы AR и SOL в USD, мемоизированы общим окном.
func (u *UseCase) FetchTokenPrices(ctx context.Context) (domain.PriceQuote, error) {
	key, err := memo.NewKey(nsTokenPrices)
	if err != nil {
		return domain.PriceQuote{}, err
	}
	return memo.Do(ctx, u.cache, key, u.prices.FetchTokenPrices)
}

// FetchStorageCost — стоимость хранения totalBytes в winston, мемоизирована по числу байт.
func (u *UseCase) FetchStorageCost(ctx context.Context, totalBytes float64) (int64, error) {
	if !isByteCount(totalBytes) {
		return 0, fmt.Errorf("%w: totalBytes. Received: %v", domain.ErrInvalidArgument, totalBytes)
	}
	return u.fetchStorageCost(ctx, int64(totalBytes))
}

func (u *UseCase) fetchStorageCost(ctx context.Context, totalBytes int64) (int64, error) {
	key, err := memo.NewKey(nsStorageCost, totalBytes)
	if err != nil {
		return 0, err
	}
	return memo.Do(ctx, u.cache, key, func(ctx context.Context) (int64, error) {
		return u.storage.FetchStorageCost(ctx, totalBytes)
	})
}

// record пишет расчёт в журнал и в брокер. Ошибки только логируем: на результат расчёта они не влияют.
func (u *UseCase) record(ctx context.Context, fileCount int, report domain.CostReport) {
	est := domain.Estimate{
		FileCount: fileCount,
		Report:    report,
		Timestamp: time.Now(),
	}
	key := strconv.FormatInt(report.TotalBytes, 10)

	if u.repo != nil {
		if err := u.repo.SaveEstimate(ctx, est); err != nil {
			u.log.Warn("estimate save", "key", key, "error", err)
		} else {
			u.log.Info("estimate saved", "key", key, "arweave", report.Arweave)
		}
	}

	if u.broker == nil {
		return
	}
	value, err := json.Marshal(est)
	if err != nil {
		u.log.Warn("estimate marshal", "key", key, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(key), value); err != nil {
		u.log.Warn("broker send", "key", key, "error", err)
	} else {
		u.log.Info("estimate published", "key", key, "arweave", report.Arweave)
	}
}

// History — журнал расчётов (обвязка над репозиторием). Без журнала — пустой список.
func (u *UseCase) History(ctx context.Context) ([]domain.Estimate, error) {
	if u.repo == nil {
		return []domain.Estimate{}, nil
	}
	return u.repo.GetHistory(ctx)
}

// HandleEstimateEvent вызывается консьюмером при получении сообщения из топика расчётов.
func (u *UseCase) HandleEstimateEvent(ctx context.Context, est domain.Estimate) error {
	if u.analytics == nil {
		return nil
	}
	if err := u.analytics.WriteEstimate(ctx, est); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("estimate stored to click", "total_bytes", est.Report.TotalBytes, "arweave", est.Report.Arweave, "files", est.FileCount)
	return nil
}

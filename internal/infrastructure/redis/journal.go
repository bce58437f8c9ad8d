package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/ports"
)

const (
	// journalKey — список расчётов, новые в голове.
	journalKey = "arweavecost:estimates"
	// seqKey — счётчик ID расчётов.
	seqKey = "arweavecost:estimates:seq"
	// historyLimit — сколько последних расчётов храним и отдаём.
	historyLimit = 100
)

var _ ports.IEstimateRepository = (*EstimateRepo)(nil)

// EstimateRepo реализует ports.IEstimateRepository поверх списка Redis (LPUSH + LTRIM), хранит последние historyLimit расчётов.
type EstimateRepo struct {
	cli *Client
	log *slog.Logger
}

// NewEstimateRepo возвращает журнал расчётов.
func NewEstimateRepo(cli *Client, log *slog.Logger) *EstimateRepo {
	return &EstimateRepo{cli: cli, log: log}
}

// SaveEstimate кладёт расчёт в голову списка и обрезает хвост.
func (r *EstimateRepo) SaveEstimate(ctx context.Context, est domain.Estimate) error {
	id, err := r.cli.Incr(ctx, seqKey).Result()
	if err != nil {
		r.log.Debug("journal seq failed", "error", err)
		return err
	}
	est.ID = int(id)
	value, err := json.Marshal(est)
	if err != nil {
		return fmt.Errorf("journal marshal: %w", err)
	}

	pipe := r.cli.TxPipeline()
	pipe.LPush(ctx, journalKey, value)
	pipe.LTrim(ctx, journalKey, 0, historyLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		r.log.Debug("journal push failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает последние расчёты (новые сначала).
func (r *EstimateRepo) GetHistory(ctx context.Context) ([]domain.Estimate, error) {
	items, err := r.cli.LRange(ctx, journalKey, 0, historyLimit-1).Result()
	if err != nil {
		r.log.Debug("journal range failed", "error", err)
		return nil, err
	}
	list := make([]domain.Estimate, 0, len(items))
	for _, item := range items {
		var est domain.Estimate
		if err := json.Unmarshal([]byte(item), &est); err != nil {
			r.log.Debug("journal parse failed", "error", err)
			return nil, fmt.Errorf("journal parse value: %w", err)
		}
		list = append(list, est)
	}
	return list, nil
}

// Ping проверяет доступность Redis (readiness).
func (r *EstimateRepo) Ping(ctx context.Context) error {
	return r.cli.Ping(ctx)
}

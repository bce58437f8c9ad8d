package click

import (
	"context"
	"fmt"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/ports"
)

const estimatesAnalyticsTable = "estimates_analytics"

var _ ports.IEstimateAnalytics = (*EstimateWriter)(nil)

// EstimateWriter записывает расчёты в ClickHouse для аналитики (объёмы загрузок, динамика цен AR/SOL).
type EstimateWriter struct {
	db    *Client
	table string
}

// NewEstimateWriter создаёт писатель расчётов для аналитики.
func NewEstimateWriter(db *Client) *EstimateWriter {
	return &EstimateWriter{db: db, table: db.Database() + "." + estimatesAnalyticsTable}
}

// EnsureTable создаёт таблицу расчётов, если её ещё нет. Вызови один раз при старте приложения.
func (w *EstimateWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			file_count UInt32,
			total_bytes Int64,
			byte_cost Int64,
			fee Float64,
			arweave Float64,
			solana Float64,
			arweave_price Float64,
			solana_price Float64,
			exchange_rate Float64,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, total_bytes)
		PARTITION BY toYYYYMM(created_at)`,
		w.table,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteEstimate реализует ports.IEstimateAnalytics: пишет один расчёт в ClickHouse.
func (w *EstimateWriter) WriteEstimate(ctx context.Context, est domain.Estimate) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (file_count, total_bytes, byte_cost, fee, arweave, solana,
		                 arweave_price, solana_price, exchange_rate, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.table,
	)
	rep := est.Report
	_, err := w.db.DB().ExecContext(ctx, query,
		uint32(est.FileCount), rep.TotalBytes, rep.ByteCost, rep.Fee, rep.Arweave, rep.Solana,
		rep.ArweavePrice, rep.SolanaPrice, rep.ExchangeRate, est.Timestamp)
	if err != nil {
		return fmt.Errorf("insert estimate: %w", err)
	}
	return nil
}

// countSince возвращает число расчётов и суммарный объём в байтах начиная с момента since (unix ms).
func (w *EstimateWriter) countSince(ctx context.Context, sinceUnixMilli int64) (count uint64, totalBytes int64, err error) {
	query := fmt.Sprintf(
		"SELECT count(), sum(total_bytes) FROM %s WHERE created_at >= fromUnixTimestamp64Milli(?)",
		w.table,
	)
	err = w.db.DB().QueryRowContext(ctx, query, sinceUnixMilli).Scan(&count, &totalBytes)
	if err != nil {
		return 0, 0, fmt.Errorf("count estimates: %w", err)
	}
	return count, totalBytes, nil
}

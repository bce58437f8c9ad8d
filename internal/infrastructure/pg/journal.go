package pg

import (
	"context"
	"log/slog"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/ports"
)

// historyLimit — сколько последних расчётов отдаёт GetHistory.
const historyLimit = 100

var _ ports.IEstimateRepository = (*EstimateRepo)(nil)

// EstimateRepo реализует ports.IEstimateRepository для PostgreSQL.
type EstimateRepo struct {
	db  *DB
	log *slog.Logger
}

// NewEstimateRepo возвращает журнал расчётов.
func NewEstimateRepo(db *DB, log *slog.Logger) *EstimateRepo {
	return &EstimateRepo{db: db, log: log}
}

// SaveEstimate сохраняет расчёт в БД.
func (r *EstimateRepo) SaveEstimate(ctx context.Context, est domain.Estimate) error {
	rep := est.Report
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO estimates (file_count, total_bytes, byte_cost, fee, arweave, solana,
		                        arweave_price, solana_price, exchange_rate, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		est.FileCount, rep.TotalBytes, rep.ByteCost, rep.Fee, rep.Arweave, rep.Solana,
		rep.ArweavePrice, rep.SolanaPrice, rep.ExchangeRate, est.Timestamp)
	if err != nil {
		r.log.Debug("SaveEstimate failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает последние расчёты (новые сначала).
func (r *EstimateRepo) GetHistory(ctx context.Context) ([]domain.Estimate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, file_count, total_bytes, byte_cost, fee, arweave, solana,
		        arweave_price, solana_price, exchange_rate, created_at
		 FROM estimates ORDER BY created_at DESC, id DESC LIMIT $1`, historyLimit)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	list := make([]domain.Estimate, 0)
	for rows.Next() {
		var est domain.Estimate
		rep := &est.Report
		err := rows.Scan(&est.ID, &est.FileCount, &rep.TotalBytes, &rep.ByteCost, &rep.Fee, &rep.Arweave, &rep.Solana,
			&rep.ArweavePrice, &rep.SolanaPrice, &rep.ExchangeRate, &est.Timestamp)
		if err != nil {
			return nil, err
		}
		list = append(list, est)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *EstimateRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

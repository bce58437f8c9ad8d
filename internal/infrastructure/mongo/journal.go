package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/ports"
)

// historyLimit — сколько последних расчётов отдаёт GetHistory.
const historyLimit = 100

var _ ports.IEstimateRepository = (*EstimateRepo)(nil)

// estimateDoc — документ в коллекции estimates (ID в домене int для совместимости с PG, при чтении оставляем 0).
type estimateDoc struct {
	FileCount    int       `bson:"file_count"`
	TotalBytes   int64     `bson:"total_bytes"`
	ByteCost     int64     `bson:"byte_cost"`
	Fee          float64   `bson:"fee"`
	Arweave      float64   `bson:"arweave"`
	Solana       float64   `bson:"solana"`
	ArweavePrice float64   `bson:"arweave_price"`
	SolanaPrice  float64   `bson:"solana_price"`
	ExchangeRate float64   `bson:"exchange_rate"`
	CreatedAt    time.Time `bson:"created_at"`
}

// EstimateRepo реализует ports.IEstimateRepository для MongoDB.
type EstimateRepo struct {
	client *Client
	log    *slog.Logger
}

// NewEstimateRepo возвращает журнал расчётов.
func NewEstimateRepo(client *Client, log *slog.Logger) *EstimateRepo {
	return &EstimateRepo{client: client, log: log}
}

// SaveEstimate сохраняет расчёт в коллекцию.
func (r *EstimateRepo) SaveEstimate(ctx context.Context, est domain.Estimate) error {
	rep := est.Report
	doc := estimateDoc{
		FileCount:    est.FileCount,
		TotalBytes:   rep.TotalBytes,
		ByteCost:     rep.ByteCost,
		Fee:          rep.Fee,
		Arweave:      rep.Arweave,
		Solana:       rep.Solana,
		ArweavePrice: rep.ArweavePrice,
		SolanaPrice:  rep.SolanaPrice,
		ExchangeRate: rep.ExchangeRate,
		CreatedAt:    est.Timestamp,
	}
	if _, err := r.client.Coll().InsertOne(ctx, doc); err != nil {
		r.log.Debug("SaveEstimate failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает последние расчёты (новые сначала).
func (r *EstimateRepo) GetHistory(ctx context.Context) ([]domain.Estimate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(historyLimit)
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []estimateDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Estimate, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.Estimate{
			FileCount: d.FileCount,
			Report: domain.CostReport{
				Arweave:      d.Arweave,
				Solana:       d.Solana,
				ArweavePrice: d.ArweavePrice,
				SolanaPrice:  d.SolanaPrice,
				ExchangeRate: d.ExchangeRate,
				ByteCost:     d.ByteCost,
				TotalBytes:   d.TotalBytes,
				Fee:          d.Fee,
			},
			Timestamp: d.CreatedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *EstimateRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

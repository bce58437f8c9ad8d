package estimator

import (
	"time"

	"arweaveCost/internal/domain"
)

// EstimateRequest — запрос на расчёт (POST /api/v1/estimate). fileSizes принимаем как any,
// чтобы «не массив» и «не числа» давали тот же 400, что и пустой список.
type EstimateRequest struct {
	FileSizes any `json:"fileSizes"`
}

// Sizes приводит fileSizes к []float64. Всё, что не массив чисел, — domain.ErrInvalidFileSizes.
func (r EstimateRequest) Sizes() ([]float64, error) {
	list, ok := r.FileSizes.([]any)
	if !ok {
		return nil, domain.ErrInvalidFileSizes
	}
	sizes := make([]float64, 0, len(list))
	for _, v := range list {
		f, ok := v.(float64)
		if !ok {
			return nil, domain.ErrInvalidFileSizes
		}
		sizes = append(sizes, f)
	}
	return sizes, nil
}

// PricesResponse — курсы токенов в USD.
type PricesResponse struct {
	Arweave float64 `json:"arweave"`
	Solana  float64 `json:"solana"`
}

// StorageCostResponse — стоимость хранения в winston.
type StorageCostResponse struct {
	TotalBytes int64 `json:"totalBytes"`
	ByteCost   int64 `json:"byteCost"`
}

// HistoryItem — одна запись журнала (для GET /api/v1/history).
type HistoryItem struct {
	ID        int               `json:"id"`
	FileCount int               `json:"fileCount"`
	Report    domain.CostReport `json:"report"`
	Timestamp time.Time         `json:"timestamp"`
}

// HistoryResponse — ответ со списком расчётов.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// ErrorResponse — ответ с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

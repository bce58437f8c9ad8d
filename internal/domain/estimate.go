package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument возвращается при невалидных входных данных (локальная проверка, сеть не трогаем).
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidFileSizes — размеры файлов не непустой список неотрицательных целых.
var ErrInvalidFileSizes = fmt.Errorf("%w: fileSizes must be an array of integers", ErrInvalidArgument)

// ErrUpstreamFailure возвращается, когда внешний источник (coingecko, arweave) ответил данными не той формы.
var ErrUpstreamFailure = errors.New("upstream failure")

// Константы тарификации.
const (
	// WinstonsPerAR — сколько winston в одном AR.
	WinstonsPerAR = 1_000_000_000_000
	// MinimumWinstonFee — минимальная комиссия для маленьких загрузок (0.00001 AR).
	MinimumWinstonFee = 10_000_000
	// FeeMultiplier — доля комиссии от стоимости байтов (15%).
	FeeMultiplier = 0.15
	// SmallUploadThreshold — порог в байтах (100 KiB), ниже которого берём минимальную комиссию.
	SmallUploadThreshold = 100 * 1024
)

// PriceQuote — цены токенов в USD.
type PriceQuote struct {
	ArweaveUSD float64
	SolanaUSD  float64
}

// CostReport — результат расчёта стоимости загрузки.
type CostReport struct {
	Arweave      float64 `json:"arweave"`
	Solana       float64 `json:"solana"`
	ArweavePrice float64 `json:"arweavePrice"`
	SolanaPrice  float64 `json:"solanaPrice"`
	ExchangeRate float64 `json:"exchangeRate"`
	ByteCost     int64   `json:"byteCost"`
	TotalBytes   int64   `json:"totalBytes"`
	Fee          float64 `json:"fee"`
}

// Estimate — запись журнала: один выполненный расчёт.
type Estimate struct {
	ID        int        `json:"id"`
	FileCount int        `json:"fileCount"`
	Report    CostReport `json:"report"`
	Timestamp time.Time  `json:"timestamp"`
}

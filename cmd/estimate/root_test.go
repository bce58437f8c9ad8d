package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/mocks"
	"arweaveCost/internal/ports"
)

// run выполняет команду с заданными аргументами, use case — мок.
func run(t *testing.T, uc ports.IEstimatorUseCase, args ...string) (string, *options, error) {
	t.Helper()
	var got *options
	cmd := newRootCmd(func(opts *options) (ports.IEstimatorUseCase, error) {
		got = opts
		return uc, nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), got, err
}

func testReport() *domain.CostReport {
	return &domain.CostReport{
		Arweave: 0.00115, Solana: 0.000575, ArweavePrice: 10, SolanaPrice: 20,
		ExchangeRate: 0.5, ByteCost: 1_000_000_000, TotalBytes: 2024000, Fee: 150_000_000,
	}
}

func TestEstimate_Text(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimatorUseCase(ctrl)
	uc.EXPECT().Calculate(gomock.Any(), []float64{2000, 2022000}).Return(testReport(), nil)

	out, opts, err := run(t, uc, "2000", "2022000")
	require.NoError(t, err)
	assert.False(t, opts.ttlSet)
	assert.Contains(t, out, "Files:      2, 1.9 MiB (2,024,000 bytes)")
	assert.Contains(t, out, "Byte cost:  1,000,000,000 winston")
	assert.Contains(t, out, "Fee:        150,000,000 winston")
	assert.Contains(t, out, "0.001150000000 AR")
}

func TestEstimate_TextKeepsFractionalFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimatorUseCase(ctrl)
	report := testReport()
	report.ByteCost = 1_000_001
	report.Fee = 150_000.15
	uc.EXPECT().Calculate(gomock.Any(), []float64{2000, 2022000}).Return(report, nil)

	out, _, err := run(t, uc, "2000", "2022000")
	require.NoError(t, err)
	assert.Contains(t, out, "Fee:        150,000.15 winston")
}

func TestEstimate_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimatorUseCase(ctrl)
	uc.EXPECT().Calculate(gomock.Any(), []float64{2000, 2022000}).Return(testReport(), nil)

	out, opts, err := run(t, uc, "--json", "--ttl", "5s", "2000", "2022000")
	require.NoError(t, err)
	assert.True(t, opts.ttlSet)
	assert.Equal(t, 5*time.Second, opts.ttl)

	var got domain.CostReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, *testReport(), got)
}

func TestEstimate_NonNumericSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimatorUseCase(ctrl)

	_, _, err := run(t, uc, "2000", "big")
	assert.ErrorIs(t, err, domain.ErrInvalidFileSizes)
}

func TestEstimate_NoArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, _, err := run(t, mocks.NewMockIEstimatorUseCase(ctrl))
	assert.Error(t, err)
}

func TestPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimatorUseCase(ctrl)
	uc.EXPECT().FetchTokenPrices(gomock.Any()).Return(domain.PriceQuote{ArweaveUSD: 1234.5, SolanaUSD: 20}, nil)

	out, _, err := run(t, uc, "prices")
	require.NoError(t, err)
	assert.Contains(t, out, "AR:  $1,234.5000")
	assert.Contains(t, out, "SOL: $20.0000")
}

func TestStorageCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimatorUseCase(ctrl)
	uc.EXPECT().FetchStorageCost(gomock.Any(), 1024.0).Return(int64(5_000_000), nil)

	out, _, err := run(t, uc, "storage-cost", "--json", "1024")
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalBytes":1024,"byteCost":5000000}`, out)

	_, _, err = run(t, uc, "storage-cost", "abc")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

package pg

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/pkg/testutil"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setupDB подключается к контейнеру и прогоняет миграцию.
func setupDB(t *testing.T) *DB {
	t.Helper()
	c := testutil.StartPostgres(t)

	db, err := New(context.Background(), &Config{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		DBName:   c.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось подключиться к PostgreSQL")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(context.Background(), db))
	// Повторная миграция не должна падать.
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func estimateAt(totalBytes int64, ts time.Time) domain.Estimate {
	return domain.Estimate{
		FileCount: 2,
		Report: domain.CostReport{
			Arweave: 0.00115, Solana: 0.000575, ArweavePrice: 10, SolanaPrice: 20,
			ExchangeRate: 0.5, ByteCost: 1_000_000_000, TotalBytes: totalBytes, Fee: 150_000_000,
		},
		Timestamp: ts,
	}
}

func TestEstimateRepo(t *testing.T) {
	db := setupDB(t)
	repo := NewEstimateRepo(db, newTestLogger())
	ctx := context.Background()

	t.Run("пустой журнал", func(t *testing.T) {
		history, err := repo.GetHistory(ctx)
		require.NoError(t, err)
		assert.NotNil(t, history)
		assert.Empty(t, history)
	})

	t.Run("сохранение и история", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Millisecond)
		for i, n := range []int64{1000, 2000, 3000} {
			require.NoError(t, repo.SaveEstimate(ctx, estimateAt(n, now.Add(time.Duration(i)*time.Second))))
		}

		history, err := repo.GetHistory(ctx)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, int64(3000), history[0].Report.TotalBytes, "новые сначала")
		assert.Equal(t, int64(1000), history[2].Report.TotalBytes)
		assert.Equal(t, 2, history[0].FileCount)
		assert.Equal(t, 0.5, history[0].Report.ExchangeRate)
		assert.NotZero(t, history[0].ID)
		assert.WithinDuration(t, now.Add(2*time.Second), history[0].Timestamp, time.Millisecond)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(ctx))
	})
}

package coingecko

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arweaveCost/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestClient поднимает httptest-сервер, который на /api/v3/simple/price отвечает status и body.
func newTestClient(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/simple/price", r.URL.Path)
		assert.Equal(t, "solana,arweave", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(&Config{URL: srv.URL + "/", Timeout: 5 * time.Second}, newTestLogger())
}

func TestFetchTokenPrices(t *testing.T) {
	cli := newTestClient(t, http.StatusOK, `{"arweave":{"usd":8.41},"solana":{"usd":142.7}}`)

	quote, err := cli.FetchTokenPrices(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.PriceQuote{ArweaveUSD: 8.41, SolanaUSD: 142.7}, quote)
}

func TestFetchTokenPrices_InvalidResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "нет solana", status: http.StatusOK, body: `{"arweave":{"usd":8.41}}`},
		{name: "нет arweave.usd", status: http.StatusOK, body: `{"arweave":{},"solana":{"usd":142.7}}`},
		{name: "нулевая цена", status: http.StatusOK, body: `{"arweave":{"usd":0},"solana":{"usd":142.7}}`},
		{name: "строка вместо числа", status: http.StatusOK, body: `{"arweave":{"usd":"8.41"},"solana":{"usd":142.7}}`},
		{name: "не JSON", status: http.StatusOK, body: `<html>rate limited</html>`},
		{name: "429", status: http.StatusTooManyRequests, body: `{"status":{"error_code":429}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := newTestClient(t, tt.status, tt.body)

			_, err := cli.FetchTokenPrices(context.Background())

			assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
		})
	}
}

func TestFetchTokenPrices_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	cli := New(&Config{URL: srv.URL, Timeout: time.Second}, newTestLogger())

	_, err := cli.FetchTokenPrices(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUpstreamFailure)
}

func TestFetchTokenPrices_Live(t *testing.T) {
	if os.Getenv("ESTIMATOR_LIVE_TESTS") != "1" {
		t.Skip("живые тесты выключены (ESTIMATOR_LIVE_TESTS=1)")
	}
	cli := New(&Config{URL: "https://api.coingecko.com", Timeout: 10 * time.Second}, newTestLogger())

	quote, err := cli.FetchTokenPrices(context.Background())

	require.NoError(t, err)
	assert.Greater(t, quote.ArweaveUSD, 0.0)
	assert.Greater(t, quote.SolanaUSD, 0.0)
}

func TestFetchTokenPrices_NilLogger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"arweave":{}}`))
	}))
	defer srv.Close()
	cli := New(&Config{URL: srv.URL, Timeout: time.Second}, nil)

	var err error
	require.NotPanics(t, func() { _, err = cli.FetchTokenPrices(context.Background()) })
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
}

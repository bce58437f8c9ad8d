package coingecko

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/tidwall/gjson"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/ports"
)

const (
	pricePath    = "/api/v3/simple/price?ids=solana,arweave&vs_currencies=usd"
	maxBodyBytes = 1 << 20
)

var _ ports.ITokenPriceSource = (*Client)(nil)

// Config — настройки клиента coingecko. Переменные: ESTIMATOR_COINGECKO_URL, ESTIMATOR_COINGECKO_TIMEOUT.
type Config struct {
	URL     string        `envconfig:"URL" default:"https://api.coingecko.com"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// Client — клиент курсов токенов. Из ответа читаем только arweave.usd и solana.usd.
type Client struct {
	http    *http.Client
	baseURL string
	log     *slog.Logger
}

// New создаёт клиента по конфигу. log == nil — slog.Default().
func New(cfg *Config, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	cli := cleanhttp.DefaultPooledClient()
	cli.Timeout = cfg.Timeout
	return &Client{http: cli, baseURL: strings.TrimRight(cfg.URL, "/"), log: log}
}

// FetchTokenPrices запрашивает курсы AR и SOL в USD.
// Ответ без любого из полей usd (или с нулём) — domain.ErrUpstreamFailure.
func (c *Client) FetchTokenPrices(ctx context.Context) (domain.PriceQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pricePath, nil)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("coingecko request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("coingecko request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("coingecko read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Debug("coingecko bad status", "status", resp.StatusCode, "body", string(body))
		return domain.PriceQuote{}, fmt.Errorf("%w: coingecko status %d", domain.ErrUpstreamFailure, resp.StatusCode)
	}

	ar := gjson.GetBytes(body, "arweave.usd")
	sol := gjson.GetBytes(body, "solana.usd")
	if !gjson.ValidBytes(body) || ar.Type != gjson.Number || sol.Type != gjson.Number || ar.Float() <= 0 || sol.Float() <= 0 {
		c.log.Debug("invalid coingecko response", "body", string(body))
		return domain.PriceQuote{}, fmt.Errorf("%w: invalid response from coingecko", domain.ErrUpstreamFailure)
	}

	return domain.PriceQuote{ArweaveUSD: ar.Float(), SolanaUSD: sol.Float()}, nil
}

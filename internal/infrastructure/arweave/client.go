package arweave

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"arweaveCost/internal/domain"
	"arweaveCost/internal/ports"
)

const maxBodyBytes = 4 << 10

var _ ports.IStorageCostSource = (*Client)(nil)

// Config — настройки шлюза arweave. Переменные: ESTIMATOR_ARWEAVE_URL, ESTIMATOR_ARWEAVE_TIMEOUT.
type Config struct {
	URL     string        `envconfig:"URL" default:"https://arweave.net"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// Client — клиент цены хранения: GET /price/{bytes} отдаёт целое число winston телом ответа.
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

// FetchStorageCost возвращает стоимость хранения totalBytes в winston.
// Нечисловое тело — domain.ErrUpstreamFailure.
func (c *Client) FetchStorageCost(ctx context.Context, totalBytes int64) (int64, error) {
	url := c.baseURL + "/price/" + strconv.FormatInt(totalBytes, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("arweave request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("arweave request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, fmt.Errorf("arweave read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Debug("arweave bad status", "status", resp.StatusCode, "bytes", totalBytes)
		return 0, fmt.Errorf("%w: arweave status %d", domain.ErrUpstreamFailure, resp.StatusCode)
	}

	raw := strings.TrimSpace(string(body))
	cost, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || cost < 0 {
		c.log.Debug("invalid arweave response", "body", raw, "bytes", totalBytes)
		return 0, fmt.Errorf("%w: invalid response from arweave: %q", domain.ErrUpstreamFailure, raw)
	}
	return cost, nil
}

package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ARichthammer/crypto-price-api/internal/config"
)

type Client struct {
	cfg        config.CoinGeckoConfig
	httpClient *http.Client
}

// NewClient - Создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg config.CoinGeckoConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchPrice — получает текущую цену монеты по каноничному ID через
// эндпоинт /simple/price. Ответ API имеет вид {"<id>": {"<currency>": <число>}}.
func (c *Client) FetchPrice(ctx context.Context, id, currency string) (float64, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return 0, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path, _ = url.JoinPath(u.Path, "simple", "price")

	vs := strings.ToLower(currency)

	q := u.Query()
	q.Set("ids", id)
	q.Set("vs_currencies", vs)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	ua := c.cfg.UserAgent
	if ua == "" {
		ua = "crypto-price-api/1.0 (+https://github.com/ARichthammer/crypto-price-api)"
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("request failed: %s", resp.Status)
	}

	var data map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("decoding response: %w", err)
	}

	price, ok := data[id][vs]
	if !ok {
		return 0, fmt.Errorf("price for %q not found in response", id)
	}
	return price, nil
}

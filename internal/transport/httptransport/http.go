package httptransport

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"log/slog"

	"github.com/ARichthammer/crypto-price-api/internal/coins"
	"github.com/ARichthammer/crypto-price-api/internal/domain"
	"github.com/ARichthammer/crypto-price-api/internal/ports/errcode"
	"github.com/labstack/echo/v4"
)

// Фиксированные тексты публичного контракта. На них завязаны автоматические
// вызывающие, поэтому менять их можно только вместе с документацией API.
const (
	noteResolved     = "Price resolved successfully using normalized coin identifier."
	causeUnknownCoin = "The pricing API requires a CoinGecko coin ID."
	msgUpstream      = "Failed to retrieve price from CoinGecko."
	exampleFix       = "bitcoin"
)

var (
	suggestionsUnknownCoin = []string{
		"Ask the user to clarify the cryptocurrency name",
		"Use common names like 'bitcoin' or 'ethereum'",
		"Supported examples: bitcoin/BTC, ethereum/ETH, solana/SOL, cardano/ADA",
	}
	suggestionsUpstream = []string{
		"Retry later",
		"Check CoinGecko API availability",
	}
)

// PriceService — абстракция сервиса получения цены.
type PriceService interface {
	Lookup(ctx context.Context, rawCoin string) (domain.Quote, error)
}

// PriceResponse — DTO успешного ответа с ценой.
type PriceResponse struct {
	CoinID   string  `json:"coin_id"`
	Currency string  `json:"currency"`
	Price    float64 `json:"price"`
	Note     string  `json:"note"`
}

// ErrorDetail — структурированное описание ошибки для вызывающего.
// SupportedCoins и ExampleFix заполняются только для ошибок резолва.
type ErrorDetail struct {
	Code           errcode.Code `json:"code"`
	Message        string       `json:"message"`
	Cause          string       `json:"cause"`
	Suggestions    []string     `json:"suggestions"`
	SupportedCoins []string     `json:"supported_coins,omitempty"`
	ExampleFix     string       `json:"example_fix,omitempty"`
}

// ErrorResponse — обёртка {"error": {...}} вокруг ErrorDetail.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func makePriceResponse(q domain.Quote) PriceResponse {
	return PriceResponse{
		CoinID:   q.CoinID,
		Currency: q.Currency,
		Price:    q.Price,
		Note:     noteResolved,
	}
}

// newUnknownCoinError — тело ошибки резолва: нефатальная, исправимая
// вызывающим, поэтому отдаётся со статусом 200.
func newUnknownCoinError(input string, supported []string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{
		Code:           errcode.UnknownCrypto,
		Message:        fmt.Sprintf("Unable to resolve crypto identifier '%s'.", input),
		Cause:          causeUnknownCoin,
		Suggestions:    suggestionsUnknownCoin,
		SupportedCoins: supported,
		ExampleFix:     exampleFix,
	}}
}

// newUpstreamError — тело фатальной ошибки похода за ценой (статус 500).
func newUpstreamError(cause error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{
		Code:        errcode.CoinGeckoAPI,
		Message:     msgUpstream,
		Cause:       cause.Error(),
		Suggestions: suggestionsUpstream,
	}}
}

// PriceHandler — HTTP‑handler цен.
type PriceHandler struct {
	logger  *slog.Logger
	svc     PriceService
	table   *coins.Table
	timeout time.Duration
}

func NewPriceHandler(logger *slog.Logger, svc PriceService, table *coins.Table, timeout time.Duration) *PriceHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	if table == nil {
		log.Fatal("nil coins table")
	}
	// Задаём таймаут по умолчанию, если он не задан
	if timeout <= 0 {
		timeout = time.Second * 15
	}
	return &PriceHandler{
		logger:  logger,
		svc:     svc,
		table:   table,
		timeout: timeout,
	}
}

func (h *PriceHandler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	// Регистрируем маршруты
	r.GET("/crypto/price", h.GetPrice)
	r.GET("/crypto/coins", h.GetCoins)
	r.GET("/healthz", h.Healthz)
}

// GetPrice — GET /crypto/price?coin=<имя или тикер>.
// Нерезолвящийся ввод (в том числе пустой) — не сбой: отдаём 200 с телом
// ошибки, чтобы автоматический вызывающий разобрал её без обработки
// исключений. Сбой похода за ценой — 500 с тем же структурированным телом.
func (h *PriceHandler) GetPrice(c echo.Context) error {
	rawCoin := c.QueryParam("coin")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	quote, err := h.svc.Lookup(ctx, rawCoin)
	if err != nil {
		code := FromServiceError(err)
		if code == errcode.UnknownCrypto {
			return c.JSON(http.StatusOK, newUnknownCoinError(rawCoin, h.table.IDs()))
		}
		h.logger.Error("price lookup failed",
			slog.String("op", "GetPrice"),
			slog.String("coin", rawCoin),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, newUpstreamError(err))
	}

	return c.JSON(http.StatusOK, makePriceResponse(quote))
}

// GetCoins — список поддерживаемых монет с принимаемыми написаниями.
func (h *PriceHandler) GetCoins(c echo.Context) error {
	return c.JSON(http.StatusOK, h.table.Entries())
}

// Healthz — проверка живости сервиса.
func (h *PriceHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "ok",
		"service": "crypto-price-api",
		"version": "1.0.0",
	})
}

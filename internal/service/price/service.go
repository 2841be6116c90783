package price

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/ARichthammer/crypto-price-api/internal/domain"
)

type Service interface {
	// Lookup — резолвит пользовательский ввод и запрашивает текущую цену.
	Lookup(ctx context.Context, rawCoin string) (domain.Quote, error)
}

// PriceProvider — внешний источник цен (например, CoinGecko API).
type PriceProvider interface {
	FetchPrice(ctx context.Context, id, currency string) (float64, error)
}

// CoinResolver — таблица алиасов, приводящая ввод к каноничному ID.
type CoinResolver interface {
	Resolve(raw string) (string, bool)
}

type service struct {
	resolver CoinResolver
	provider PriceProvider
	currency string
	logger   *slog.Logger
}

// NewService — конструктор сервиса получения цены по пользовательскому вводу.
func NewService(resolver CoinResolver, provider PriceProvider, currency string, logger *slog.Logger) Service {
	if currency == "" {
		currency = "usd"
	}
	return &service{
		resolver: resolver,
		provider: provider,
		currency: strings.ToLower(currency),
		logger:   logger,
	}
}

// Lookup — один цикл запроса: резолв алиаса, затем ровно один поход за ценой.
// Нерезолвящийся ввод — ErrUnknownCoin, внешний вызов при этом не выполняется.
// Любая ошибка провайдера (сеть, таймаут, статус, формат) возвращается как
// единый класс сбоя upstream без повторных попыток.
func (s *service) Lookup(ctx context.Context, rawCoin string) (domain.Quote, error) {
	id, ok := s.resolver.Resolve(rawCoin)
	if !ok {
		s.logger.Warn("coin not resolved", "coin", rawCoin)
		return domain.Quote{}, ErrUnknownCoin
	}

	value, err := s.provider.FetchPrice(ctx, id, s.currency)
	if err != nil {
		s.logger.Error("fetch price", "coin_id", id, "err", err)
		return domain.Quote{}, fmt.Errorf("fetch price: %w", err)
	}

	s.logger.Info("price resolved", "coin_id", id, "price", value)
	return domain.Quote{
		CoinID:    id,
		Currency:  strings.ToUpper(s.currency),
		Price:     value,
		FetchedAt: time.Now().UTC(),
	}, nil
}

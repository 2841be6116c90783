package bot

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/ARichthammer/crypto-price-api/internal/pkg/botfmt"
	"github.com/ARichthammer/crypto-price-api/internal/service/price"
	"gopkg.in/telebot.v4"
)

// handleStart — отправляет справку по доступным командам бота
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send("Привет! Доступные команды:\n" +
		"/price {монета} - текущая цена в USD (имя или тикер: bitcoin, BTC)\n" +
		"/coins - список поддерживаемых монет")
}

// handlePrice — резолвит введённое имя монеты и показывает текущую цену.
// Нерезолвящийся ввод — подсказка со списком монет, сбой похода за ценой —
// просьба повторить позже; та же двухуровневая схема, что и в HTTP API.
func (b *Bot) handlePrice(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	args := c.Args()
	if len(args) == 0 {
		return c.Send("Укажи монету: /price bitcoin")
	}
	rawCoin := args[0]

	quote, err := b.svc.Lookup(ctx, rawCoin)
	if err != nil {
		if errors.Is(err, price.ErrUnknownCoin) {
			var bld strings.Builder
			bld.WriteString("Монета не распознана. Поддерживаются:\n")
			for _, e := range b.table.Entries() {
				bld.WriteString(botfmt.FormatCoinLine(e.ID, e.Aliases))
				bld.WriteByte('\n')
			}
			bld.WriteString("Пример: /price bitcoin")
			return c.Send(bld.String())
		}
		b.logger.Error("bot price lookup failed",
			slog.String("coin", rawCoin),
			slog.String("error", err.Error()),
		)
		return c.Send("Не удалось получить цену с CoinGecko, попробуйте позже")
	}

	return c.Send(botfmt.FormatQuote(quote))
}

// handleCoins — выводит список поддерживаемых монет с принимаемыми написаниями
func (b *Bot) handleCoins(c telebot.Context) error {
	var bld strings.Builder
	for _, e := range b.table.Entries() {
		bld.WriteString(botfmt.FormatCoinLine(e.ID, e.Aliases))
		bld.WriteByte('\n')
	}
	return c.Send(bld.String())
}

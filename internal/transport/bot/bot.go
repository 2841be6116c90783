package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/ARichthammer/crypto-price-api/internal/coins"
	"github.com/ARichthammer/crypto-price-api/internal/config"
	"github.com/ARichthammer/crypto-price-api/internal/service/price"
	"gopkg.in/telebot.v4"
)

// Bot — Telegram-транспорт поверх того же сервиса цен, что и HTTP API.
type Bot struct {
	bot    *telebot.Bot
	svc    price.Service
	table  *coins.Table
	logger *slog.Logger
}

// New создаёт бота и регистрирует команды
func New(cfg config.TelegramConfig, svc price.Service, table *coins.Table, logger *slog.Logger) (*Bot, error) {
	const defaultPollTimeout = 10 * time.Second

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: defaultPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:    b,
		svc:    svc,
		table:  table,
		logger: logger,
	}

	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/price", bot.handlePrice)
	b.Handle("/coins", bot.handleCoins)
	return bot, nil
}

// Start запускает long-poll бота
func (b *Bot) Start(ctx context.Context) {
	go b.bot.Start()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}

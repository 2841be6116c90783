package domain

import "time"

// Quote - результат разового запроса цены у внешнего API
type Quote struct {
	CoinID    string    `json:"coin_id"`    // Каноничный ID CoinGecko (bitcoin, ethereum)
	Currency  string    `json:"currency"`   // Код валюты (USD)
	Price     float64   `json:"price"`      // Текущая цена
	FetchedAt time.Time `json:"fetched_at"` // Время получения курса (UTC)
}

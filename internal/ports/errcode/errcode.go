package errcode

type Code string

// Коды публичного API. UnknownCrypto — вход не резолвится в каноничный ID
// (ошибка вызывающего, отдаётся со статусом 200). CoinGeckoAPI — любой сбой
// похода за ценой: сеть, таймаут, не-2xx статус, неожиданный формат ответа.
const (
	UnknownCrypto Code = "UNKNOWN_CRYPTO"
	CoinGeckoAPI  Code = "COINGECKO_API_ERROR"
)

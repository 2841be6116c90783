package httptransport

import (
	"errors"

	"github.com/ARichthammer/crypto-price-api/internal/ports/errcode"
	"github.com/ARichthammer/crypto-price-api/internal/service/price"
)

// FromServiceError — переводит ошибку сервиса в публичный код API.
// Всё, что не является ошибкой резолва, считается сбоем похода за ценой.
func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, price.ErrUnknownCoin):
		return errcode.UnknownCrypto
	default:
		return errcode.CoinGeckoAPI
	}
}

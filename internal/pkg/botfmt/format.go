package botfmt

import (
	"fmt"
	"strings"

	"github.com/ARichthammer/crypto-price-api/internal/domain"
)

// FormatQuote — сообщение с ценой для команды /price
func FormatQuote(q domain.Quote) string {
	return fmt.Sprintf("%s | %s %s | Обновлено: %s",
		q.CoinID,
		humanPrice(q.Price),
		q.Currency,
		q.FetchedAt.Format("15:04:05"),
	)
}

// FormatCoinLine — строка списка поддерживаемых монет для /coins
func FormatCoinLine(id string, aliases []string) string {
	return fmt.Sprintf("%s (%s)", id, strings.Join(aliases, ", "))
}

// humanPrice — форматирование числа с двумя знаками после запятой.
func humanPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

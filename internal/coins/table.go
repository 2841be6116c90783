package coins

import "strings"

// Фиксированный справочник поддерживаемых монет. Порядок записей важен:
// он определяет порядок supported_coins в ответах API и порядок перебора
// при резолве.

// Entry — каноничный идентификатор CoinGecko и принимаемые написания монеты.
type Entry struct {
	ID      string   `json:"id"`
	Aliases []string `json:"aliases"`
}

var entries = []Entry{
	{ID: "bitcoin", Aliases: []string{"bitcoin", "btc"}},
	{ID: "ethereum", Aliases: []string{"ethereum", "eth"}},
	{ID: "solana", Aliases: []string{"solana", "sol"}},
	{ID: "ripple", Aliases: []string{"ripple", "xrp"}},
	{ID: "cardano", Aliases: []string{"cardano", "ada"}},
	{ID: "dogecoin", Aliases: []string{"dogecoin", "doge"}},
	{ID: "polkadot", Aliases: []string{"polkadot", "dot"}},
	{ID: "litecoin", Aliases: []string{"litecoin", "ltc"}},
	{ID: "chainlink", Aliases: []string{"chainlink", "link"}},
	{ID: "polygon", Aliases: []string{"polygon", "matic"}},
}

// Table — неизменяемая таблица алиасов. Создаётся один раз при старте процесса
// и дальше читается конкурентно без блокировок.
type Table struct {
	entries []Entry
}

// NewTable — собирает таблицу из фиксированного справочника.
func NewTable() *Table {
	return &Table{entries: entries}
}

// Resolve — приводит пользовательский ввод к каноничному ID монеты.
// Сравнение точное, без учёта регистра и обрамляющих пробелов; частичные
// совпадения ("bit" для "bitcoin") не принимаются.
func (t *Table) Resolve(raw string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, e := range t.entries {
		for _, alias := range e.Aliases {
			if alias == normalized {
				return e.ID, true
			}
		}
	}
	return "", false
}

// IDs — каноничные идентификаторы в порядке следования записей.
func (t *Table) IDs() []string {
	out := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e.ID)
	}
	return out
}

// Entries — копия записей таблицы для выдачи наружу.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

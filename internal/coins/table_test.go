package coins

import (
	"strings"
	"testing"
)

// Каждый алиас из таблицы резолвится в свой каноничный ID независимо от
// регистра и обрамляющих пробелов.
func TestResolve_AllAliases(t *testing.T) {
	t.Parallel()
	table := NewTable()

	for _, e := range table.Entries() {
		for _, alias := range e.Aliases {
			variants := []string{
				alias,
				"  " + alias + "  ",
				strings.ToUpper(alias),
				"\t" + strings.ToUpper(alias) + "\n",
			}
			for _, v := range variants {
				id, ok := table.Resolve(v)
				if !ok {
					t.Fatalf("Resolve(%q): expected hit for %s", v, e.ID)
				}
				if id != e.ID {
					t.Fatalf("Resolve(%q) = %q, want %q", v, id, e.ID)
				}
			}
		}
	}
}

func TestResolve_Misses(t *testing.T) {
	t.Parallel()
	table := NewTable()

	for _, in := range []string{"", "   ", "dogebonk", "bit", "bitcoin cash", "btc eth"} {
		if id, ok := table.Resolve(in); ok {
			t.Fatalf("Resolve(%q) = %q, want miss", in, id)
		}
	}
}

// Порядок и состав IDs фиксированы: 10 монет в порядке записей таблицы.
func TestIDs_Order(t *testing.T) {
	t.Parallel()
	table := NewTable()

	want := []string{
		"bitcoin", "ethereum", "solana", "ripple", "cardano",
		"dogecoin", "polkadot", "litecoin", "chainlink", "polygon",
	}
	got := table.IDs()
	if len(got) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// Entries отдаёт копию: мутация снаружи не трогает таблицу.
func TestEntries_Copy(t *testing.T) {
	t.Parallel()
	table := NewTable()

	es := table.Entries()
	es[0] = Entry{ID: "mutated"}

	if id, ok := table.Resolve("btc"); !ok || id != "bitcoin" {
		t.Fatalf("table mutated through Entries copy: %q %v", id, ok)
	}
}

package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ARichthammer/crypto-price-api/internal/config"
)

func newTestClient(baseURL string, timeout time.Duration) *Client {
	return NewClient(config.CoinGeckoConfig{
		BaseURL:   baseURL,
		Currency:  "usd",
		Timeout:   timeout,
		UserAgent: "crypto-price-api-test/1.0",
	})
}

func TestFetchPrice_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/simple/price" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("ids") != "bitcoin" {
			t.Errorf("ids = %q, want bitcoin", q.Get("ids"))
		}
		if q.Get("vs_currencies") != "usd" {
			t.Errorf("vs_currencies = %q, want usd", q.Get("vs_currencies"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %q", r.Header.Get("Accept"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bitcoin":{"usd":65000.5}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 2*time.Second)
	got, err := c.FetchPrice(context.Background(), "bitcoin", "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 65000.5 {
		t.Fatalf("price = %v, want 65000.5", got)
	}
}

func TestFetchPrice_Non200(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 2*time.Second)
	_, err := c.FetchPrice(context.Background(), "bitcoin", "usd")
	if err == nil {
		t.Fatal("expected error on 503")
	}
	if !strings.Contains(err.Error(), "request failed") {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestFetchPrice_MalformedBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bitcoin":`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 2*time.Second)
	_, err := c.FetchPrice(context.Background(), "bitcoin", "usd")
	if err == nil {
		t.Fatal("expected decode error")
	}
}

// Ответ без запрошенной монеты или валюты — тоже сбой
func TestFetchPrice_MissingField(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ethereum":{"usd":3500}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 2*time.Second)
	_, err := c.FetchPrice(context.Background(), "bitcoin", "usd")
	if err == nil {
		t.Fatal("expected missing-field error")
	}
	if !strings.Contains(err.Error(), "not found in response") {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestFetchPrice_Timeout(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"bitcoin":{"usd":65000.5}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 50*time.Millisecond)
	_, err := c.FetchPrice(context.Background(), "bitcoin", "usd")
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

// Валюта в запросе приводится к нижнему регистру
func TestFetchPrice_CurrencyLowercased(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("vs_currencies"); got != "usd" {
			t.Errorf("vs_currencies = %q, want usd", got)
		}
		w.Write([]byte(`{"bitcoin":{"usd":1.0}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 2*time.Second)
	if _, err := c.FetchPrice(context.Background(), "bitcoin", "USD"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

package pricefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestFetchQuotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"currency":"ETH","date":"2023-08-29T07:10:40.000Z","price":2000},
			{"currency":"BTC","date":"2023-08-29T07:10:40.000Z","price":40000}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, 0)
	quotes, err := c.FetchQuotes(context.Background())
	if err != nil {
		t.Fatalf("FetchQuotes() error = %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("got %d quotes, want 2", len(quotes))
	}
	if quotes[0].Currency != "ETH" || quotes[0].Price != 2000 {
		t.Errorf("quotes[0] = %+v, want ETH at 2000", quotes[0])
	}
}

func TestFetchQuotesMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, 0)
	if _, err := c.FetchQuotes(context.Background()); err == nil {
		t.Error("expected error for malformed response")
	}
}

func TestFetchQuotesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, 0)
	if _, err := c.FetchQuotes(context.Background()); err == nil {
		t.Error("expected error for HTTP 500")
	}
}

func TestFetchQuotesRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`[{"currency":"ETH","date":"","price":2000}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Millisecond, 2)
	quotes, err := c.FetchQuotes(context.Background())
	if err != nil {
		t.Fatalf("FetchQuotes() error = %v", err)
	}
	if len(quotes) != 1 {
		t.Errorf("got %d quotes, want 1", len(quotes))
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestFetchQuotesContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, time.Minute, 3)
	if _, err := c.FetchQuotes(ctx); err == nil {
		t.Error("expected error when context is cancelled during retry wait")
	}
}

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/solarcodion/code-challenge/internal/domain"
	"github.com/solarcodion/code-challenge/internal/pricefeed"
)

type stubQuoteSource struct {
	quotes []pricefeed.Quote
	err    error
}

func (s *stubQuoteSource) FetchQuotes(_ context.Context) ([]pricefeed.Quote, error) {
	return s.quotes, s.err
}

const iconBase = "https://icons.example.com/tokens"

func TestLoadBuildsSortedCatalog(t *testing.T) {
	src := &stubQuoteSource{quotes: []pricefeed.Quote{
		{Currency: "ETH", Price: 2000},
		{Currency: "BTC", Price: 40000},
		{Currency: "USDC", Price: 1},
	}}
	svc := NewService(src, iconBase)

	tokens, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantOrder := []string{"BTC", "ETH", "USDC"}
	if len(tokens) != len(wantOrder) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(wantOrder))
	}
	for i, symbol := range wantOrder {
		if tokens[i].Symbol != symbol {
			t.Errorf("tokens[%d].Symbol = %q, want %q", i, tokens[i].Symbol, symbol)
		}
	}

	eth := tokens[1]
	if eth.Name != "Ethereum" {
		t.Errorf("ETH name = %q, want Ethereum", eth.Name)
	}
	if !eth.HasPrice() || eth.UnitPrice() != 2000 {
		t.Errorf("ETH price = %v, want 2000", eth.Price)
	}
	if eth.IconURL != iconBase+"/ETH.svg" {
		t.Errorf("ETH icon = %q", eth.IconURL)
	}
}

func TestLoadDeduplicatesLastSeenWins(t *testing.T) {
	src := &stubQuoteSource{quotes: []pricefeed.Quote{
		{Currency: "ETH", Price: 1900},
		{Currency: "ETH", Price: 2000},
		{Currency: "BTC", Price: 40000},
	}}
	svc := NewService(src, iconBase)

	tokens, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	if tokens[1].Symbol != "ETH" || tokens[1].UnitPrice() != 2000 {
		t.Errorf("ETH = %+v, want last-seen price 2000", tokens[1])
	}
}

func TestLoadPropagatesSourceError(t *testing.T) {
	src := &stubQuoteSource{err: errors.New("network down")}
	svc := NewService(src, iconBase)

	if _, err := svc.Load(context.Background()); err == nil {
		t.Error("expected error when quote source fails")
	}
}

func TestDisplayNameFallsBackToSymbol(t *testing.T) {
	if got := DisplayName("SWTH"); got != "Switcheo" {
		t.Errorf("DisplayName(SWTH) = %q", got)
	}
	if got := DisplayName("WBTC"); got != "WBTC" {
		t.Errorf("DisplayName(WBTC) = %q, want symbol fallback", got)
	}
}

func price(p float64) *float64 { return &p }

func TestDefaultPair(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []domain.Token
		wantSource string
		wantTarget string
		wantNone   bool
	}{
		{
			name: "eth and btc present",
			tokens: []domain.Token{
				{Symbol: "BTC", Price: price(40000)},
				{Symbol: "ETH", Price: price(2000)},
				{Symbol: "USDC", Price: price(1)},
			},
			wantSource: "ETH",
			wantTarget: "BTC",
		},
		{
			name: "no eth falls back to first",
			tokens: []domain.Token{
				{Symbol: "BUSD", Price: price(1)},
				{Symbol: "USDT", Price: price(1)},
			},
			wantSource: "BUSD",
			wantTarget: "USDT",
		},
		{
			name: "no btc falls back to next distinct",
			tokens: []domain.Token{
				{Symbol: "ETH", Price: price(2000)},
				{Symbol: "USDC", Price: price(1)},
			},
			wantSource: "ETH",
			wantTarget: "USDC",
		},
		{
			name: "btc first with no eth picks distinct target",
			tokens: []domain.Token{
				{Symbol: "BTC", Price: price(40000)},
				{Symbol: "USDT", Price: price(1)},
			},
			wantSource: "BTC",
			wantTarget: "USDT",
		},
		{
			name:     "single token",
			tokens:   []domain.Token{{Symbol: "ETH", Price: price(2000)}},
			wantNone: true,
		},
		{
			name:     "empty catalog",
			tokens:   nil,
			wantNone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst := DefaultPair(tt.tokens)
			if tt.wantNone {
				if src != nil || dst != nil {
					t.Fatalf("DefaultPair() = (%v, %v), want no defaults", src, dst)
				}
				return
			}
			if src == nil || dst == nil {
				t.Fatalf("DefaultPair() = (%v, %v), want both set", src, dst)
			}
			if src.Symbol != tt.wantSource {
				t.Errorf("source = %q, want %q", src.Symbol, tt.wantSource)
			}
			if dst.Symbol != tt.wantTarget {
				t.Errorf("target = %q, want %q", dst.Symbol, tt.wantTarget)
			}
			if src.Symbol == dst.Symbol {
				t.Error("source and target must be distinct")
			}
		})
	}
}

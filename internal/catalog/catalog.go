package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/solarcodion/code-challenge/internal/domain"
	"github.com/solarcodion/code-challenge/internal/pricefeed"
)

// displayNames maps well-known symbols to human-readable names. Unknown
// symbols fall back to the symbol itself.
var displayNames = map[string]string{
	"ETH":  "Ethereum",
	"BTC":  "Bitcoin",
	"USDC": "USD Coin",
	"SWTH": "Switcheo",
	"BUSD": "Binance USD",
	"USDT": "Tether",
}

// QuoteSource provides the current price quotes for the catalog.
type QuoteSource interface {
	FetchQuotes(ctx context.Context) ([]pricefeed.Quote, error)
}

// Service builds the token catalog from upstream price quotes.
type Service struct {
	source      QuoteSource
	iconBaseURL string
}

// NewService creates a new catalog service. Token icons are addressed
// as "{iconBaseURL}/{SYMBOL}.svg".
func NewService(source QuoteSource, iconBaseURL string) *Service {
	return &Service{
		source:      source,
		iconBaseURL: iconBaseURL,
	}
}

// Load fetches quotes and builds the sorted token catalog: one token
// per distinct currency (later quotes overwrite earlier ones), ordered
// alphabetically by symbol.
func (s *Service) Load(ctx context.Context) ([]domain.Token, error) {
	quotes, err := s.source.FetchQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return s.build(quotes), nil
}

func (s *Service) build(quotes []pricefeed.Quote) []domain.Token {
	prices := make(map[string]float64, len(quotes))
	for _, q := range quotes {
		prices[q.Currency] = q.Price
	}

	tokens := lo.MapToSlice(prices, func(symbol string, price float64) domain.Token {
		p := price
		return domain.Token{
			Symbol:  symbol,
			Name:    DisplayName(symbol),
			Price:   &p,
			IconURL: fmt.Sprintf("%s/%s.svg", s.iconBaseURL, symbol),
		}
	})

	slices.SortFunc(tokens, func(a, b domain.Token) int {
		return strings.Compare(a.Symbol, b.Symbol)
	})
	return tokens
}

// DisplayName returns the human-readable name for a symbol.
func DisplayName(symbol string) string {
	if name, ok := displayNames[symbol]; ok {
		return name
	}
	return symbol
}

// DefaultPair picks the initial source and target tokens: ETH (or the
// first token) as source, BTC (or the next token distinct from the
// source) as target. With fewer than two tokens no defaults are picked.
func DefaultPair(tokens []domain.Token) (source, target *domain.Token) {
	if len(tokens) < 2 {
		return nil, nil
	}

	src, found := lo.Find(tokens, func(t domain.Token) bool { return t.Symbol == "ETH" })
	if !found {
		src = tokens[0]
	}

	dst, found := lo.Find(tokens, func(t domain.Token) bool {
		return t.Symbol == "BTC" && t.Symbol != src.Symbol
	})
	if !found {
		dst, found = lo.Find(tokens, func(t domain.Token) bool { return t.Symbol != src.Symbol })
		if !found {
			return nil, nil
		}
	}

	return &src, &dst
}

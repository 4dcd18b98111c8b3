package swapform

import (
	"fmt"

	"github.com/solarcodion/code-challenge/internal/domain"
)

// deriveTarget computes the target amount string from the current
// selection and source amount. It returns "" whenever no derivation is
// possible: a side unselected, a price unknown, the amount empty or
// unparseable, the amount negative, or a zero target price.
func deriveTarget(source, target *domain.Token, sourceAmount string) string {
	if source == nil || target == nil || !source.HasPrice() || !target.HasPrice() {
		return ""
	}

	amount, ok := domain.ParseAmount(sourceAmount)
	if !ok || amount.IsNegative() {
		return ""
	}

	rate, ok := domain.Rate(source.UnitPrice(), target.UnitPrice())
	if !ok {
		return ""
	}

	return domain.FormatAmount(domain.Convert(amount, rate))
}

// rateString renders the exchange-rate display line, e.g.
// "1 ETH ≈ 0.050000 BTC". It returns "" when either side is unselected,
// a price is unknown, or no meaningful rate exists.
func rateString(source, target *domain.Token) string {
	if source == nil || target == nil || !source.HasPrice() || !target.HasPrice() {
		return ""
	}

	rate, ok := domain.Rate(source.UnitPrice(), target.UnitPrice())
	if !ok {
		return ""
	}

	return fmt.Sprintf("1 %s ≈ %s %s", source.Symbol, domain.FormatAmount(rate), target.Symbol)
}

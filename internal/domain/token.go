package domain

// Token represents a tradable asset with an optional current unit price.
// The catalog is keyed by Symbol; tokens are immutable once loaded for
// the session.
type Token struct {
	Symbol  string   `json:"symbol"`
	Name    string   `json:"name"`
	Price   *float64 `json:"price,omitempty"`
	IconURL string   `json:"iconUrl"`
}

// HasPrice returns true when the token carries a known unit price.
func (t Token) HasPrice() bool {
	return t.Price != nil
}

// UnitPrice returns the token's unit price, or 0 when unknown.
func (t Token) UnitPrice() float64 {
	if t.Price == nil {
		return 0
	}
	return *t.Price
}

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/solarcodion/code-challenge/internal/domain"
)

// TokenSource provides the current token catalog for serving reads.
type TokenSource interface {
	Tokens() []domain.Token
}

// Handler provides HTTP endpoints for the token catalog and one-shot
// quote derivation.
type Handler struct {
	tokens TokenSource
}

// NewHandler creates a new API handler.
func NewHandler(tokens TokenSource) *Handler {
	return &Handler{tokens: tokens}
}

// GetTokens handles GET /api/v1/tokens.
func (h *Handler) GetTokens(w http.ResponseWriter, r *http.Request) {
	tokens := h.tokens.Tokens()
	writeJSON(w, http.StatusOK, listEnvelope{Success: true, Count: len(tokens), Data: tokens})
}

// quoteResponse is the payload for a derived quote.
type quoteResponse struct {
	From       string `json:"from"`
	To         string `json:"to"`
	FromAmount string `json:"fromAmount"`
	ToAmount   string `json:"toAmount"`
	Rate       string `json:"rate"`
}

// GetQuote handles GET /api/v1/quote?from=ETH&to=BTC&amount=2.
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fromSymbol := q.Get("from")
	toSymbol := q.Get("to")
	amountText := q.Get("amount")

	if fromSymbol == "" || toSymbol == "" {
		writeError(w, http.StatusBadRequest, "from and to symbols are required")
		return
	}
	if fromSymbol == toSymbol {
		writeError(w, http.StatusBadRequest, "from and to must be distinct")
		return
	}

	amount, ok := domain.ParseAmount(amountText)
	if !ok || amount.IsNegative() {
		writeError(w, http.StatusBadRequest, "amount must be a non-negative number")
		return
	}

	tokens := h.tokens.Tokens()
	from, found := lo.Find(tokens, func(t domain.Token) bool { return t.Symbol == fromSymbol })
	if !found {
		writeError(w, http.StatusNotFound, "unknown token: "+fromSymbol)
		return
	}
	to, found := lo.Find(tokens, func(t domain.Token) bool { return t.Symbol == toSymbol })
	if !found {
		writeError(w, http.StatusNotFound, "unknown token: "+toSymbol)
		return
	}

	rate, ok := domain.Rate(from.UnitPrice(), to.UnitPrice())
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "no rate available for this pair")
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: quoteResponse{
		From:       from.Symbol,
		To:         to.Symbol,
		FromAmount: amountText,
		ToAmount:   domain.FormatAmount(domain.Convert(amount, rate)),
		Rate:       domain.FormatAmount(rate),
	}})
}

// envelope is the standard single-object response wrapper.
type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// listEnvelope is the standard list response wrapper.
type listEnvelope struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"success":false,"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg any) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/solarcodion/code-challenge/internal/domain"
)

// Writer writes catalog report rows to a destination.
type Writer interface {
	Write(ctx context.Context, tokens []domain.Token) error
}

// CatalogLoader loads the current token catalog.
type CatalogLoader interface {
	Load(ctx context.Context) ([]domain.Token, error)
}

// Service loads the catalog and delegates report writing to a Writer.
type Service struct {
	loader CatalogLoader
	writer Writer
}

// NewService creates a new export Service.
func NewService(loader CatalogLoader, writer Writer) *Service {
	return &Service{
		loader: loader,
		writer: writer,
	}
}

// Export loads the current catalog and writes the report.
func (s *Service) Export(ctx context.Context) error {
	tokens, err := s.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog for export: %w", err)
	}

	if err := s.writer.Write(ctx, tokens); err != nil {
		return fmt.Errorf("writing catalog report: %w", err)
	}

	slog.Info("catalog report written", "tokens", len(tokens))
	return nil
}

// buildCatalogRows builds the header row plus one row per token.
// Columns: Symbol | Name | Unit Price | Icon URL
func buildCatalogRows(tokens []domain.Token) [][]any {
	rows := make([][]any, 0, len(tokens)+1)
	rows = append(rows, []any{"Symbol", "Name", "Unit Price", "Icon URL"})

	for _, t := range tokens {
		var price any
		if t.HasPrice() {
			price = t.UnitPrice()
		} else {
			price = ""
		}
		rows = append(rows, []any{t.Symbol, t.Name, price, t.IconURL})
	}

	return rows
}

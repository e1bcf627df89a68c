package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kjannette/marketmind-backend/internal/models"
)

// MaxSearchResults caps every Search result.
const MaxSearchResults = 10

var ErrNotFound = errors.New("symbol not found")

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	stocks  map[string]models.StockRecord
	symbols []string
	indices []models.MarketIndex
	search  []models.SearchEntry
}

// NormalizeSymbol trims and uppercases a user-supplied symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Lookup returns a copy of the record for symbol.
func (c *Catalog) Lookup(symbol string) (models.StockRecord, error) {
	sym := NormalizeSymbol(symbol)
	rec, ok := c.stocks[sym]
	if !ok {
		return models.StockRecord{}, fmt.Errorf("%w: %s", ErrNotFound, sym)
	}
	return rec, nil
}

// BasePrice is the current quoted price for symbol.
func (c *Catalog) BasePrice(symbol string) (float64, error) {
	rec, err := c.Lookup(symbol)
	if err != nil {
		return 0, err
	}
	return rec.CurrentQuote.Price, nil
}

// Search matches query case-insensitively against each entry's symbol and
// name, keeping list order. An empty query matches everything; callers are
// expected to validate first.
func (c *Catalog) Search(query string) []models.SearchEntry {
	q := strings.ToUpper(query)
	out := make([]models.SearchEntry, 0, MaxSearchResults)
	for _, e := range c.search {
		if strings.Contains(strings.ToUpper(e.Symbol), q) ||
			strings.Contains(strings.ToUpper(e.Name), q) {
			out = append(out, e)
			if len(out) == MaxSearchResults {
				break
			}
		}
	}
	return out
}

func (c *Catalog) Indices() []models.MarketIndex {
	out := make([]models.MarketIndex, len(c.indices))
	copy(out, c.indices)
	return out
}

// Symbols lists known stock symbols in catalog order.
func (c *Catalog) Symbols() []string {
	out := make([]string, len(c.symbols))
	copy(out, c.symbols)
	return out
}

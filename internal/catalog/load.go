package catalog

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kjannette/marketmind-backend/internal/models"
)

//go:embed data/catalog.yaml
var embedded []byte

type document struct {
	Stocks  []models.StockRecord `yaml:"stocks"`
	Indices []models.MarketIndex `yaml:"indices"`
	Search  []models.SearchEntry `yaml:"search"`
}

// Default builds the catalog shipped with the binary.
func Default() (*Catalog, error) {
	c, err := Parse(embedded)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return c, nil
}

// LoadFile builds a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Load picks LoadFile when path is set, Default otherwise.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	var errs []string
	c := &Catalog{stocks: make(map[string]models.StockRecord, len(doc.Stocks))}

	if len(doc.Stocks) == 0 {
		errs = append(errs, "no stocks defined")
	}
	for i, rec := range doc.Stocks {
		if rec.Symbol == "" {
			errs = append(errs, fmt.Sprintf("stocks[%d]: symbol is required", i))
			continue
		}
		if rec.Symbol != NormalizeSymbol(rec.Symbol) {
			errs = append(errs, fmt.Sprintf("stocks[%d]: symbol %q must be uppercase", i, rec.Symbol))
			continue
		}
		if _, dup := c.stocks[rec.Symbol]; dup {
			errs = append(errs, fmt.Sprintf("stocks[%d]: duplicate symbol %s", i, rec.Symbol))
			continue
		}
		if !positive(rec.CurrentQuote.Price) {
			errs = append(errs, fmt.Sprintf("%s: price must be positive", rec.Symbol))
		}
		trend, err := resolveTrend(rec.CurrentQuote.Trend, rec.CurrentQuote.Change)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", rec.Symbol, err))
		}
		rec.CurrentQuote.Trend = trend
		if rec.DisplayName == "" {
			rec.DisplayName = rec.Symbol
		}
		c.stocks[rec.Symbol] = rec
		c.symbols = append(c.symbols, rec.Symbol)
	}

	if len(doc.Indices) == 0 {
		errs = append(errs, "no indices defined")
	}
	for i, idx := range doc.Indices {
		if idx.Symbol == "" || idx.Name == "" {
			errs = append(errs, fmt.Sprintf("indices[%d]: symbol and name are required", i))
		}
		trend, err := resolveTrend(idx.Trend, idx.Change)
		if err != nil {
			errs = append(errs, fmt.Sprintf("indices[%d] %s: %v", i, idx.Symbol, err))
		}
		idx.Trend = trend
		c.indices = append(c.indices, idx)
	}

	for i, e := range doc.Search {
		if e.Symbol == "" || e.Name == "" {
			errs = append(errs, fmt.Sprintf("search[%d]: symbol and name are required", i))
			continue
		}
		c.search = append(c.search, e)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog:\n  %s", strings.Join(errs, "\n  "))
	}
	return c, nil
}

// resolveTrend fills in a missing trend from the change sign and rejects
// one that contradicts it.
func resolveTrend(t models.Trend, change float64) (models.Trend, error) {
	derived := models.TrendFor(change)
	if t == "" {
		return derived, nil
	}
	if !t.Valid() {
		return t, fmt.Errorf("invalid trend %q", t)
	}
	if change != 0 && t != derived {
		return t, fmt.Errorf("trend %q disagrees with change %.2f", t, change)
	}
	return t, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Package marketdata composes catalog records and synthetic history into the
// payloads served by the API.
package marketdata

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kjannette/marketmind-backend/internal/catalog"
	"github.com/kjannette/marketmind-backend/internal/models"
	"github.com/kjannette/marketmind-backend/internal/series"
)

const (
	ServiceName  = "MarketMind API"
	Version      = "2.0.0"
	Mode         = "demo"
	DataSource   = "Mock Data (Demo Mode)"
	SearchSource = "mock_data"
)

var (
	ErrNotFound   = catalog.ErrNotFound
	ErrValidation = errors.New("validation failed")
)

type Options struct {
	HistoryDays   int
	HistoryWindow int
	DefaultSymbol string
	DefaultPeriod string
}

// Snapshot is one stock-data response before JSON shaping.
type Snapshot struct {
	Record       models.StockRecord
	History      []models.DailyBar
	RecordsCount int
	Period       string
}

type Overview struct {
	Indices   []models.MarketIndex
	Timestamp time.Time
}

type Health struct {
	Status           string
	Service          string
	Version          string
	Mode             string
	DataSources      []string
	AvailableSymbols []string
	Timestamp        time.Time
}

type Service struct {
	catalog *catalog.Catalog
	series  *series.Generator
	opts    Options
	now     func() time.Time
}

func NewService(c *catalog.Catalog, g *series.Generator, opts Options) *Service {
	if opts.HistoryDays <= 0 {
		opts.HistoryDays = 30
	}
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = 30
	}
	if opts.DefaultSymbol == "" {
		opts.DefaultSymbol = "AAPL"
	}
	if opts.DefaultPeriod == "" {
		opts.DefaultPeriod = "1mo"
	}
	return &Service{catalog: c, series: g, opts: opts, now: time.Now}
}

// ResolveSymbol applies the default symbol and normalizes case.
func (s *Service) ResolveSymbol(symbol string) string {
	sym := catalog.NormalizeSymbol(symbol)
	if sym == "" {
		return catalog.NormalizeSymbol(s.opts.DefaultSymbol)
	}
	return sym
}

// StockData looks symbol up and attaches a freshly generated history.
// Unknown symbols fail with ErrNotFound; there is no default base price.
func (s *Service) StockData(symbol, period string) (*Snapshot, error) {
	sym := s.ResolveSymbol(symbol)
	if period == "" {
		period = s.opts.DefaultPeriod
	}

	rec, err := s.catalog.Lookup(sym)
	if err != nil {
		return nil, err
	}

	bars, err := s.series.Generate(rec.CurrentQuote.Price, s.opts.HistoryDays)
	if err != nil {
		return nil, fmt.Errorf("generate history for %s: %w", sym, err)
	}

	return &Snapshot{
		Record:       rec,
		History:      series.Tail(bars, s.opts.HistoryWindow),
		RecordsCount: len(bars),
		Period:       period,
	}, nil
}

// ValidateQuery trims q and rejects it when nothing is left.
func ValidateQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", fmt.Errorf("%w: query parameter required", ErrValidation)
	}
	return q, nil
}

// Search returns the matches and the trimmed query that produced them.
func (s *Service) Search(query string) ([]models.SearchEntry, string, error) {
	q, err := ValidateQuery(query)
	if err != nil {
		return nil, "", err
	}
	return s.catalog.Search(q), q, nil
}

func (s *Service) Overview() Overview {
	return Overview{Indices: s.catalog.Indices(), Timestamp: s.now()}
}

func (s *Service) Health() Health {
	return Health{
		Status:           "healthy",
		Service:          ServiceName,
		Version:          Version,
		Mode:             Mode,
		DataSources:      []string{"Mock Data"},
		AvailableSymbols: s.catalog.Symbols(),
		Timestamp:        s.now(),
	}
}

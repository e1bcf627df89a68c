// Package series synthesizes daily OHLCV history around a base price.
//
// The output is cosmetic. Each bar is drawn independently; the only thing
// bars share is the base price and the date sequence.
package series

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kjannette/marketmind-backend/internal/models"
)

const dateLayout = "2006-01-02"

// Draw ranges.
const (
	maxVariation = 0.03
	jitterLow    = 0.98
	jitterHigh   = 1.02
	openLow      = 0.995
	openHigh     = 1.005
	highLow      = 1.005
	highHigh     = 1.025
	lowLow       = 0.975
	lowHigh      = 0.995
	minVolume    = 1_000_000
	maxVolume    = 100_000_000
)

var (
	ErrInvalidBasePrice = errors.New("base price must be a positive finite number")
	ErrInvalidDays      = errors.New("days must be positive")
)

type Option func(*Generator)

// WithSeed makes the output reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// Generator is safe for concurrent use; calls serialize on one random source.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Generate returns days bars ordered oldest to newest, the last dated today.
//
// The variation for the bar at offset i (days..1) is scaled by i/days, so
// bars close to today carry almost none of it and the series pulls toward
// basePrice at the recent end.
func (g *Generator) Generate(basePrice float64, days int) ([]models.DailyBar, error) {
	if basePrice <= 0 || math.IsNaN(basePrice) || math.IsInf(basePrice, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePrice, basePrice)
	}
	if days <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDays, days)
	}

	now := g.now()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	g.mu.Lock()
	defer g.mu.Unlock()

	bars := make([]models.DailyBar, 0, days)
	for i := days; i >= 1; i-- {
		variation := g.uniform(-maxVariation, maxVariation)
		price := basePrice * (1 + variation*(float64(i)/float64(days)))
		price *= g.uniform(jitterLow, jitterHigh)

		bars = append(bars, models.DailyBar{
			Date:   today.AddDate(0, 0, -(i - 1)).Format(dateLayout),
			Open:   round2(price * g.uniform(openLow, openHigh)),
			High:   round2(price * g.uniform(highLow, highHigh)),
			Low:    round2(price * g.uniform(lowLow, lowHigh)),
			Close:  round2(price),
			Volume: minVolume + g.rng.Int64N(maxVolume-minVolume+1),
		})
	}
	return bars, nil
}

// Tail returns the last n bars, or all of them when n >= len(bars).
func Tail(bars []models.DailyBar, n int) []models.DailyBar {
	if n <= 0 {
		return []models.DailyBar{}
	}
	if n >= len(bars) {
		return bars
	}
	return bars[len(bars)-n:]
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

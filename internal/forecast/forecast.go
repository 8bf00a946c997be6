// Package forecast generates the synthetic market projection shown alongside
// an estimate: a linear trend with Gaussian noise, one point per calendar
// month. It is illustrative only, not a fitted model.
package forecast

import (
	"math/rand"
	"sync"
	"time"

	"github.com/cyberweblabs/propdata/pkg/constants"
	"github.com/cyberweblabs/propdata/pkg/datetime"
	"go.uber.org/zap"
)

// Point is one projected month in a forecast series.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type cacheKey struct {
	startPrice float64
	months     int
}

// Generator produces forecast series. Results are cached by their two scalar
// inputs; repeated identical calls return the cached series, which freezes
// the randomized noise for those inputs.
type Generator struct {
	logger *zap.Logger
	rng    *rand.Rand
	now    func() time.Time

	mu    sync.Mutex
	cache map[cacheKey][]Point
}

// NewGenerator creates a generator with a time-seeded random source. If
// logger is nil, it will use a no-op logger to prevent panics.
func NewGenerator(logger *zap.Logger) *Generator {
	return NewGeneratorWithSource(logger,
		rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewGeneratorWithSource creates a generator with an injectable random
// source and clock for reproducible output.
func NewGeneratorWithSource(logger *zap.Logger, rng *rand.Rand, now func() time.Time) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{
		logger: logger,
		rng:    rng,
		now:    now,
		cache:  make(map[cacheKey][]Point),
	}
}

// Project returns months points starting from the end of the current month,
// stepping one calendar month at a time. The trend interpolates linearly
// from startPrice to startPrice times the growth rate, with independent
// Gaussian noise (sigma = 1.5% of startPrice) added to each point. A months
// value below 1 yields an empty series.
func (g *Generator) Project(startPrice float64, months int) []Point {
	if months < 1 {
		return nil
	}

	key := cacheKey{startPrice: startPrice, months: months}
	g.mu.Lock()
	defer g.mu.Unlock()
	if cached, ok := g.cache[key]; ok {
		g.logger.Debug("returning cached forecast",
			zap.String("op", "forecast.Project"),
			zap.Float64("startPrice", startPrice),
			zap.Int("months", months),
		)
		return cached
	}

	endPrice := startPrice * constants.ForecastGrowthRate
	sigma := startPrice * constants.ForecastNoiseRate
	start := g.now()

	points := make([]Point, months)
	for i := 0; i < months; i++ {
		trend := startPrice
		if months > 1 {
			trend = startPrice + (endPrice-startPrice)*float64(i)/float64(months-1)
		}
		points[i] = Point{
			Date:  datetime.OffsetMonthEnd(start, i),
			Value: trend + g.rng.NormFloat64()*sigma,
		}
	}

	g.cache[key] = points
	return points
}

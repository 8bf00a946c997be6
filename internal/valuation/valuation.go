// Package valuation implements the pricing formula: base rate times area
// times the market multipliers, an age-based depreciation curve for
// structures, additive feature premiums, and a per-call volatility jitter.
package valuation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cyberweblabs/propdata/internal/config"
	"github.com/cyberweblabs/propdata/internal/rates"
	"github.com/cyberweblabs/propdata/pkg/constants"
	"github.com/cyberweblabs/propdata/pkg/mathutil"
	"go.uber.org/zap"
)

// PropertyType enumerates the supported property categories.
type PropertyType string

const (
	// Residential properties carry structure value and never the commercial
	// uplift.
	Residential PropertyType = "Residential"

	// Commercial properties have zero structure value and apply the
	// commercial uplift to land plus features.
	Commercial PropertyType = "Commercial"
)

// Request holds all user-supplied attributes for one estimate. It is created
// per estimate and never persisted.
type Request struct {
	Location   string       `json:"location"`
	Area       int          `json:"area"`
	Type       PropertyType `json:"type"`
	RoadWidth  string       `json:"roadWidth"`
	YearBuilt  int          `json:"yearBuilt"`
	Bedrooms   int          `json:"bedrooms"`
	Quality    string       `json:"quality"`
	Corner     bool         `json:"corner"`
	ParkFacing bool         `json:"parkFacing"`
	WestOpen   bool         `json:"westOpen"`
}

// Breakdown itemizes a computed estimate. Every field except the final price
// is reproducible from the same inputs.
type Breakdown struct {
	BaseRate           float64 `json:"baseRate"`
	Land               float64 `json:"land"`
	Structure          float64 `json:"structure"`
	Features           float64 `json:"features"`
	DepreciationFactor float64 `json:"depreciationFactor"`
	Subtotal           float64 `json:"subtotal"` // pre-jitter, post-uplift
}

// Result holds the final jittered price and its breakdown.
type Result struct {
	Price     float64   `json:"price"`
	Breakdown Breakdown `json:"breakdown"`
}

// Engine computes estimates against a market configuration and rate table.
type Engine struct {
	logger *zap.Logger
	market *config.Market
	rates  *rates.Table
	rng    *rand.Rand
	now    func() time.Time
}

// NewEngine creates an engine with a time-seeded random source. If logger is
// nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger, market *config.Market, table *rates.Table) *Engine {
	return NewEngineWithSource(logger, market, table,
		rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewEngineWithSource creates an engine with an injectable random source and
// clock for reproducible output.
func NewEngineWithSource(logger *zap.Logger, market *config.Market, table *rates.Table, rng *rand.Rand, now func() time.Time) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		logger: logger,
		market: market,
		rates:  table,
		rng:    rng,
		now:    now,
	}
}

// DepreciationFactor returns the structure-value multiplier for a
// construction year. Age is clamped to a minimum of 0, so future-dated years
// still receive the new-construction premium.
func (e *Engine) DepreciationFactor(yearBuilt int) float64 {
	age := e.now().Year() - yearBuilt
	if age < 0 {
		age = 0
	}
	switch {
	case age <= 0:
		return 1.10
	case age <= 5:
		return 1.00
	case age <= 10:
		return 0.85
	case age <= 20:
		return 0.70
	default:
		return 0.55
	}
}

// Estimate prices a request and returns the final price with its breakdown.
// The engine performs no range validation of its own; callers are
// responsible for supplying well-formed requests. A zero-valued required
// field is logged and returned as an error unchanged.
func (e *Engine) Estimate(req Request) (Result, error) {
	if err := req.checkRequired(); err != nil {
		e.logger.Error("estimate computation failed",
			zap.String("op", "valuation.Estimate"),
			zap.Error(err),
		)
		return Result{}, err
	}

	baseRate, known := e.rates.BaseRate(req.Location)
	if !known {
		e.logger.Debug("location not in rate tables, using default rate",
			zap.String("op", "valuation.Estimate"),
			zap.String("location", req.Location),
			zap.Float64("rate", baseRate),
		)
	}

	roadFactor := e.market.RoadFactor(req.RoadWidth)
	land := baseRate * roadFactor * float64(req.Area)

	structure := 0.0
	depreciation := 1.0
	if req.Type == Residential {
		rawStructure := float64(req.Bedrooms) * e.market.RoomPremium
		depreciation = e.DepreciationFactor(req.YearBuilt)
		structure = rawStructure * e.market.QualityFactor(req.Quality) * depreciation
	}

	// Feature premiums are additive and proportional to land value, not to
	// the running total.
	features := 0.0
	if req.Corner {
		features += land * constants.CornerPremiumRate
	}
	if req.ParkFacing {
		features += land * constants.ParkFacingPremiumRate
	}
	if req.WestOpen {
		features += land * constants.WestOpenPremiumRate
	}

	subtotal := land + structure + features
	if req.Type == Commercial {
		subtotal *= e.market.CommercialMultiplier
	}

	jitter := constants.JitterMin + e.rng.Float64()*(constants.JitterMax-constants.JitterMin)
	price := mathutil.Round(subtotal * jitter)

	return Result{
		Price: price,
		Breakdown: Breakdown{
			BaseRate:           baseRate,
			Land:               land,
			Structure:          structure,
			Features:           features,
			DepreciationFactor: depreciation,
			Subtotal:           subtotal,
		},
	}, nil
}

func (req Request) checkRequired() error {
	if req.Location == "" {
		return fmt.Errorf("request is missing a location")
	}
	if req.Type == "" {
		return fmt.Errorf("request is missing a property type")
	}
	if req.Area <= 0 {
		return fmt.Errorf("request has no plot area")
	}
	return nil
}

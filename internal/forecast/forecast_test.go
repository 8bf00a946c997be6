package forecast

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/cyberweblabs/propdata/pkg/constants"
	"github.com/cyberweblabs/propdata/pkg/testutil"
	"go.uber.org/zap"
)

var forecastNow = testutil.FixedClock(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))

func newTestGenerator(seed int64) *Generator {
	return NewGeneratorWithSource(zap.NewNop(), rand.New(rand.NewSource(seed)), forecastNow)
}

func TestProjectPointCount(t *testing.T) {
	tests := []struct {
		name     string
		months   int
		expected int
	}{
		{name: "standard projection", months: 12, expected: 12},
		{name: "single month", months: 1, expected: 1},
		{name: "zero months yields empty series", months: 0, expected: 0},
		{name: "negative months yields empty series", months: -3, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := newTestGenerator(1).Project(50000000, tt.months)
			if len(points) != tt.expected {
				t.Errorf("Project() returned %d points, expected %d", len(points), tt.expected)
			}
		})
	}
}

func TestProjectDatesStrictlyIncreasingByMonth(t *testing.T) {
	points := newTestGenerator(1).Project(50000000, 24)

	for i, point := range points {
		// Every point lands on the last day of its month.
		next := point.Date.AddDate(0, 0, 1)
		if next.Day() != 1 {
			t.Errorf("point %d date %s is not an end-of-month date", i, point.Date.Format(constants.DateTimeLayout))
		}
		if i == 0 {
			continue
		}
		if !points[i-1].Date.Before(point.Date) {
			t.Errorf("dates not strictly increasing at point %d: %s then %s",
				i, points[i-1].Date.Format(constants.DateTimeLayout), point.Date.Format(constants.DateTimeLayout))
		}
		monthGap := int(point.Date.Month()) - int(points[i-1].Date.Month())
		if monthGap < 0 {
			monthGap += 12
		}
		if monthGap != 1 {
			t.Errorf("dates at point %d step by %d months, expected 1", i, monthGap)
		}
	}
}

func TestProjectTrendEndpoints(t *testing.T) {
	startPrice := 50000000.0
	points := newTestGenerator(1).Project(startPrice, 12)

	// Noise is Gaussian with sigma = 1.5% of the start price; 5 sigma is a
	// generous bound for a single seeded draw.
	noiseBound := 5 * startPrice * constants.ForecastNoiseRate

	if math.Abs(points[0].Value-startPrice) > noiseBound {
		t.Errorf("first point %.0f deviates from start price %.0f beyond noise bound", points[0].Value, startPrice)
	}
	endTrend := startPrice * constants.ForecastGrowthRate
	if math.Abs(points[len(points)-1].Value-endTrend) > noiseBound {
		t.Errorf("last point %.0f deviates from end trend %.0f beyond noise bound", points[len(points)-1].Value, endTrend)
	}
}

func TestProjectCachesByInputs(t *testing.T) {
	generator := newTestGenerator(1)

	first := generator.Project(50000000, 12)
	second := generator.Project(50000000, 12)

	if len(first) != len(second) {
		t.Fatalf("cached series length %d differs from original %d", len(second), len(first))
	}
	// Identical inputs return the frozen series, noise included.
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("cached point %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}

	// Different inputs miss the cache.
	other := generator.Project(50000000, 6)
	if len(other) != 6 {
		t.Errorf("Project() with different months returned %d points, expected 6", len(other))
	}
}

// Package constants provides shared constants for the propdata application.
package constants

// DateTimeLayout is the format used for forecast point dates and is also the
// output date format.
const DateTimeLayout = "2006-01-02"

// ReportDateLayout is the date stamp format used in generated reports.
const ReportDateLayout = "02-Jan-2006"

// Valuation constants
const (
	// DefaultBaseRate is the land rate (PKR per square yard) used for
	// locations absent from the rate tables.
	DefaultBaseRate = 50000.0

	// NeutralFactor is the multiplier used for unknown quality tiers and
	// road-width categories.
	NeutralFactor = 1.0

	// CornerPremiumRate is the fraction of land value added for corner plots.
	CornerPremiumRate = 0.15

	// ParkFacingPremiumRate is the fraction of land value added for
	// park-facing plots.
	ParkFacingPremiumRate = 0.10

	// WestOpenPremiumRate is the fraction of land value added for west-open
	// plots.
	WestOpenPremiumRate = 0.05

	// JitterMin and JitterMax bound the uniform market-volatility multiplier
	// applied once per estimate.
	JitterMin = 0.97
	JitterMax = 1.03
)

// Forecast constants
const (
	// ForecastGrowthRate is the total trend growth over the projection window
	// (start price to start price times 1.12).
	ForecastGrowthRate = 1.12

	// ForecastNoiseRate is the Gaussian noise standard deviation as a
	// fraction of the start price.
	ForecastNoiseRate = 0.015

	// DefaultForecastMonths is the projection length used by the UI and CLI
	// when none is requested.
	DefaultForecastMonths = 12
)

// Currency scale divisors
const (
	// CroreDivisor converts PKR to crore.
	CroreDivisor = 10000000.0

	// LakhDivisor converts PKR to lakh.
	LakhDivisor = 100000.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum body size for JSON
	// API requests (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024
)

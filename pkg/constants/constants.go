// Package constants provides shared constants for the hybrid-forecast application.
package constants

// DateTimeLayout is the format used for period labels in output and in the
// optional startDate configuration field.
const DateTimeLayout = "2006-01"

// Time grid constants
const (
	// QuartersPerYear is the number of projection steps per year
	QuartersPerYear = 4

	// QuarterYears is the elapsed time represented by one projection step
	QuarterYears = 0.25

	// MonthsPerQuarter is used when deriving calendar period labels
	MonthsPerQuarter = 3
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Option pricing constants
const (
	// ExpiryFloorYears is the remaining time below which an option is priced
	// at intrinsic value; keeps the closed form away from its T -> 0 singularity.
	ExpiryFloorYears = 0.001

	// NormalClampZ bounds the normal CDF argument; beyond it the CDF saturates
	// to exactly 0 or 1 to avoid overflow in the exponential term.
	NormalClampZ = 6.0
)

// Benchmark constants
const (
	// IndexAnnualDrag is the fixed drag on the index total return (3 bps)
	IndexAnnualDrag = 0.0003

	// PrivateEquityLeverage scales the index net growth rate for the PE proxy
	PrivateEquityLeverage = 1.2

	// PrivateEquityManagementDrag is the PE proxy's annual management fee
	PrivateEquityManagementDrag = 0.015

	// PrivateEquityCarryRate is the PE proxy's carry on profit
	PrivateEquityCarryRate = 0.20

	// BondAnnualRate is the fixed bond ladder yield
	BondAnnualRate = 0.062
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

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size for
	// projection requests (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

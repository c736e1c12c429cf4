// Package constants provides shared constants for the mortgage engine.
package constants

// DateLayout is the format for closing dates in scenario files and output.
const DateLayout = "2006-01-02"

// MonthLayout is the format for month-precision dates such as the original
// loan start date on a refinance.
const MonthLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the day-count basis for prepaid interest proration
	DaysPerYear = 365.0

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// CentPlaces is the number of decimal places for currency rounding
	CentPlaces = 2

	// AppraisalRoundingStep is the step the LTV-target solver rounds
	// minimum appraised values up to
	AppraisalRoundingStep = 1000
)

// Program thresholds
const (
	// ConventionalPMICutoffLTV is the LTV at or below which a conventional
	// loan carries no PMI. The check is a strict inequality: exactly 80.00
	// is PMI-free.
	ConventionalPMICutoffLTV = 80.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default rate-table configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Server constants
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes caps the size of a scenario request body
	DefaultMaxBodySizeBytes = 1 << 20
)

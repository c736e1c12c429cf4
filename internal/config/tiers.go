package config

import (
	"sort"
	"strconv"
	"strings"

	"github.com/homelend/mortgage-engine/internal/errors"
)

// RateTier is a closed numeric range mapped to a rate or fee value. Bounds
// are inclusive on both ends; tables keep tiers ordered and non-overlapping.
type RateTier struct {
	Low   float64
	High  float64
	Value float64
}

// RateTable is an ordered set of non-overlapping rate tiers, parsed once at
// load time from range-keyed configuration entries like "80.01-85.00": 0.30.
type RateTable struct {
	tiers []RateTier
}

// ParseRateTable builds a RateTable from range-keyed values. The table name
// is used for error reporting only.
func ParseRateTable(name string, ranges map[string]float64) (RateTable, error) {
	if len(ranges) == 0 {
		return RateTable{}, errors.NewConfiguration(name, "rate table is empty")
	}

	tiers := make([]RateTier, 0, len(ranges))
	for key, value := range ranges {
		low, high, err := parseRange(name, key)
		if err != nil {
			return RateTable{}, err
		}
		tiers = append(tiers, RateTier{Low: low, High: high, Value: value})
	}

	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Low < tiers[j].Low })
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Low <= tiers[i-1].High {
			return RateTable{}, errors.NewConfiguration(name,
				"tiers %0.2f-%0.2f and %0.2f-%0.2f overlap",
				tiers[i-1].Low, tiers[i-1].High, tiers[i].Low, tiers[i].High)
		}
	}

	return RateTable{tiers: tiers}, nil
}

// MustRateTable is ParseRateTable for known-good tables; it panics on error.
// Intended for test fixtures.
func MustRateTable(name string, ranges map[string]float64) RateTable {
	t, err := ParseRateTable(name, ranges)
	if err != nil {
		panic(err)
	}
	return t
}

func parseRange(name, key string) (float64, float64, error) {
	parts := strings.Split(strings.TrimSpace(key), "-")
	if len(parts) != 2 {
		return 0, 0, errors.NewConfiguration(name, "range key %q is not of the form low-high", key)
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, errors.NewConfiguration(name, "range key %q has a malformed lower bound", key)
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, errors.NewConfiguration(name, "range key %q has a malformed upper bound", key)
	}
	if high < low {
		return 0, 0, errors.NewConfiguration(name, "range key %q has upper bound below lower bound", key)
	}
	return low, high, nil
}

// Lookup returns the value of the tier containing v. The second return is
// false when no tier matches; callers surface that as a CalculationError
// rather than defaulting.
func (t RateTable) Lookup(v float64) (float64, bool) {
	for _, tier := range t.tiers {
		if v >= tier.Low && v <= tier.High {
			return tier.Value, true
		}
	}
	return 0, false
}

// Len returns the number of tiers in the table.
func (t RateTable) Len() int {
	return len(t.tiers)
}

// Tiers returns a copy of the ordered tiers.
func (t RateTable) Tiers() []RateTier {
	out := make([]RateTier, len(t.tiers))
	copy(out, t.tiers)
	return out
}

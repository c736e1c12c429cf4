package mathutil

import (
	"testing"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round down", 10.124, 10.12},
		{"Round up", 10.126, 10.13},
		{"Half rounds up", 10.125, 10.13},
		{"Already exact", 10.10, 10.10},
		{"Negative value", -10.126, -10.13},
		{"Float drift collapses", 80.00000000000001, 80.00},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundCents(tt.input)
			if result != tt.expected {
				t.Errorf("RoundCents(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundUpToThousand(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Exact thousand stays", 350000, 350000},
		{"Just above rounds up", 350000.01, 351000},
		{"Mid-band rounds up", 354321.99, 355000},
		{"Small value", 1, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundUpToThousand(tt.input)
			if result != tt.expected {
				t.Errorf("RoundUpToThousand(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{"One percent", 100000, 1, 1000},
		{"Upfront MIP", 270200, 1.75, 4728.5},
		{"Zero percent", 100000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyPercentage(tt.value, tt.percentage)
			if !WithinTolerance(result, tt.expected, 0.01) {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, result, tt.expected)
			}
		})
	}
}

func TestCalculatePercentage(t *testing.T) {
	if got := CalculatePercentage(240000, 300000); !WithinTolerance(got, 80.0, 0.000001) {
		t.Errorf("CalculatePercentage(240000, 300000) = %v, expected 80", got)
	}
	if got := CalculatePercentage(1, 0); got != 0 {
		t.Errorf("CalculatePercentage with zero total = %v, expected 0", got)
	}
}

func TestComparisonHelpers(t *testing.T) {
	if !IsZero(0.005) {
		t.Error("IsZero(0.005) should be true within tolerance")
	}
	if IsPositive(0.005) {
		t.Error("IsPositive(0.005) should be false within tolerance")
	}
	if Min(1, 2) != 1 || Max(1, 2) != 2 {
		t.Error("Min/Max returned wrong values")
	}
}

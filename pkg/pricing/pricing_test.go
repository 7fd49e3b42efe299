package pricing

import (
	"math"
	"testing"
)

func TestCallIntrinsicAtExpiry(t *testing.T) {
	tests := []struct {
		name     string
		spot     float64
		strike   float64
		tte      float64
		expected float64
	}{
		{"In the money at expiry", 120, 100, 0, 20},
		{"At the money at expiry", 100, 100, 0, 0},
		{"Out of the money at expiry", 80, 100, 0, 0},
		{"Below the expiry floor", 110, 100, 0.0005, 10},
		{"At the expiry floor", 110, 100, 0.001, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Call(tt.spot, tt.strike, tt.tte, 0.04, 0.15)
			if err != nil {
				t.Fatalf("Call() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Call(%v, %v, %v) = %v, expected %v", tt.spot, tt.strike, tt.tte, got, tt.expected)
			}
		})
	}
}

func TestCallKnownValues(t *testing.T) {
	// Reference values computed from the closed form with the 0.5*vol^2
	// drift; they differ from textbook Black-Scholes and pin that variant.
	tests := []struct {
		name     string
		spot     float64
		strike   float64
		tte      float64
		rate     float64
		vol      float64
		expected float64
	}{
		{"ATM one year no rate", 100, 100, 1, 0, 0.15, 5.978543},
		{"ATM one year discounted", 100, 100, 1, 0.04, 0.15, 5.744121},
		{"ITM half year", 120, 100, 0.5, 0.04, 0.2, 20.310120},
		{"ATM ten years", 563.22, 563.22, 10, 0.04, 0.15, 70.779114},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Call(tt.spot, tt.strike, tt.tte, tt.rate, tt.vol)
			if err != nil {
				t.Fatalf("Call() unexpected error: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-5 {
				t.Errorf("Call() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCallMonotonicInSpot(t *testing.T) {
	prev := -1.0
	for spot := 50.0; spot <= 200.0; spot += 2.5 {
		price, err := Call(spot, 100, 2, 0.04, 0.2)
		if err != nil {
			t.Fatalf("Call() unexpected error: %v", err)
		}
		if price < prev {
			t.Fatalf("price decreased in spot at %v: %v < %v", spot, price, prev)
		}
		prev = price
	}
}

func TestCallNonNegative(t *testing.T) {
	for _, spot := range []float64{1, 50, 100, 500} {
		price, err := Call(spot, 100, 3, 0.04, 0.25)
		if err != nil {
			t.Fatalf("Call() unexpected error: %v", err)
		}
		if price < 0 {
			t.Errorf("Call(spot=%v) = %v, expected non-negative", spot, price)
		}
	}
}

func TestCallDomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		spot   float64
		strike float64
	}{
		{"Zero spot", 0, 100},
		{"Negative spot", -10, 100},
		{"Zero strike", 100, 0},
		{"Negative strike", 100, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Call(tt.spot, tt.strike, 1, 0.04, 0.15); err == nil {
				t.Errorf("Call(%v, %v) expected error but got none", tt.spot, tt.strike)
			}
		})
	}
}

func TestCallZeroVolatility(t *testing.T) {
	got, err := Call(120, 100, 2, 0.04, 0)
	if err != nil {
		t.Fatalf("Call() unexpected error: %v", err)
	}
	if got != 20 {
		t.Errorf("Call() with zero volatility = %v, expected intrinsic 20", got)
	}
}

func TestIntrinsic(t *testing.T) {
	if got := Intrinsic(120, 100); got != 20 {
		t.Errorf("Intrinsic(120, 100) = %v, expected 20", got)
	}
	if got := Intrinsic(80, 100); got != 0 {
		t.Errorf("Intrinsic(80, 100) = %v, expected 0", got)
	}
}

package benchmark

import (
	"math"
	"testing"
)

func TestIndexNetRate(t *testing.T) {
	got := IndexNetRate(8, 1.3)
	expected := 0.093 - 0.0003
	if math.Abs(got-expected) > 1e-12 {
		t.Errorf("IndexNetRate(8, 1.3) = %v, expected %v", got, expected)
	}
}

func TestIndexValue(t *testing.T) {
	tests := []struct {
		name     string
		t        float64
		expected float64
	}{
		{"Initial point", 0, 1000000},
		{"One year", 1, 1000000 * 1.0927},
		{"Ten years", 10, 1000000 * math.Pow(1.0927, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IndexValue(1000000, 8, 1.3, tt.t)
			if math.Abs(got-tt.expected) > 1e-4 {
				t.Errorf("IndexValue(t=%v) = %v, expected %v", tt.t, got, tt.expected)
			}
		})
	}
}

func TestPrivateEquityValue(t *testing.T) {
	investment := 1000000.0

	// At t=0 the value is the investment and no carry applies.
	if got := PrivateEquityValue(investment, 8, 1.3, 0); got != investment {
		t.Errorf("PrivateEquityValue(t=0) = %v, expected %v", got, investment)
	}

	// One year: levered net rate, then 20% carry on the profit.
	netRate := 1.2*(0.093-0.0003) - 0.015
	gross := investment * (1 + netRate)
	expected := gross - (gross-investment)*0.20
	if got := PrivateEquityValue(investment, 8, 1.3, 1); math.Abs(got-expected) > 1e-6 {
		t.Errorf("PrivateEquityValue(t=1) = %v, expected %v", got, expected)
	}
}

func TestPrivateEquityValueNoCarryOnLoss(t *testing.T) {
	// A deeply negative index rate drives the levered proxy below the
	// investment; no carry is taken on a loss.
	investment := 1000000.0
	netRate := 1.2*(-0.10-0.0003) - 0.015
	expected := investment * (1 + netRate)
	got := PrivateEquityValue(investment, -10, 0, 1)
	if math.Abs(got-expected) > 1e-6 {
		t.Errorf("PrivateEquityValue(loss) = %v, expected uncut %v", got, expected)
	}
}

func TestBondValue(t *testing.T) {
	investment := 1000000.0
	if got := BondValue(investment, 0); got != investment {
		t.Errorf("BondValue(t=0) = %v, expected %v", got, investment)
	}
	expected := investment * math.Pow(1.062, 10)
	if got := BondValue(investment, 10); math.Abs(got-expected) > 1e-4 {
		t.Errorf("BondValue(t=10) = %v, expected %v", got, expected)
	}
}

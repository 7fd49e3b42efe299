package portfolio

import (
	"math"
	"testing"
)

func referencePortfolio() Portfolio {
	return Portfolio{
		MasterCostBasis: 7289316.47,
		Positions: []Position{
			{Kind: Credit, CostBasis: 3489323.60, CurrentValue: 3489323.60},
			{Kind: Option, CostBasis: 3799992.87, CurrentValue: 3126483.16, Strike: 563.22, Quantity: 44000},
		},
	}
}

func TestScaleIdentity(t *testing.T) {
	ref := referencePortfolio()

	// Investing exactly the master cost basis reproduces the raw current values.
	state, err := ref.Scale(ref.MasterCostBasis)
	if err != nil {
		t.Fatalf("Scale() unexpected error: %v", err)
	}

	if math.Abs(state.CreditValue-3489323.60) > 1e-6 {
		t.Errorf("CreditValue = %v, expected 3489323.60", state.CreditValue)
	}
	if math.Abs(state.OptionValue-3126483.16) > 1e-6 {
		t.Errorf("OptionValue = %v, expected 3126483.16", state.OptionValue)
	}
	if math.Abs(state.OptionQuantity-44000) > 1e-9 {
		t.Errorf("OptionQuantity = %v, expected 44000", state.OptionQuantity)
	}
	if state.WeightedStrike != 563.22 {
		t.Errorf("WeightedStrike = %v, expected 563.22 (unscaled)", state.WeightedStrike)
	}
}

func TestScaleProportional(t *testing.T) {
	ref := referencePortfolio()

	state, err := ref.Scale(ref.MasterCostBasis / 2)
	if err != nil {
		t.Fatalf("Scale() unexpected error: %v", err)
	}

	if math.Abs(state.CreditValue-3489323.60/2) > 1e-6 {
		t.Errorf("CreditValue = %v, expected half of reference", state.CreditValue)
	}
	if math.Abs(state.OptionQuantity-22000) > 1e-9 {
		t.Errorf("OptionQuantity = %v, expected 22000", state.OptionQuantity)
	}
	if state.WeightedStrike != 563.22 {
		t.Errorf("WeightedStrike = %v, strikes must not scale", state.WeightedStrike)
	}
}

func TestScaleLastOptionStrikeWins(t *testing.T) {
	ref := Portfolio{
		MasterCostBasis: 1000,
		Positions: []Position{
			{Kind: Option, CostBasis: 400, CurrentValue: 300, Strike: 100, Quantity: 10},
			{Kind: Option, CostBasis: 600, CurrentValue: 500, Strike: 250, Quantity: 5},
		},
	}

	state, err := ref.Scale(1000)
	if err != nil {
		t.Fatalf("Scale() unexpected error: %v", err)
	}
	if state.WeightedStrike != 250 {
		t.Errorf("WeightedStrike = %v, expected last option row's strike 250", state.WeightedStrike)
	}
	if state.OptionValue != 800 {
		t.Errorf("OptionValue = %v, expected accumulated 800", state.OptionValue)
	}
	if state.OptionQuantity != 15 {
		t.Errorf("OptionQuantity = %v, expected accumulated 15", state.OptionQuantity)
	}
}

func TestScaleErrors(t *testing.T) {
	tests := []struct {
		name       string
		portfolio  Portfolio
		investment float64
	}{
		{"Zero master cost basis", Portfolio{MasterCostBasis: 0}, 1000},
		{"Negative master cost basis", Portfolio{MasterCostBasis: -1}, 1000},
		{"Zero investment", referencePortfolio(), 0},
		{"Negative investment", referencePortfolio(), -500},
		{
			"Unknown position kind",
			Portfolio{MasterCostBasis: 1000, Positions: []Position{{Kind: "equity", CurrentValue: 100}}},
			1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.portfolio.Scale(tt.investment); err == nil {
				t.Errorf("Scale() expected error but got none")
			}
		})
	}
}

func TestScaledStateDerived(t *testing.T) {
	state := ScaledState{CreditValue: 1000, OptionValue: 500, OptionQuantity: 10, WeightedStrike: 100}

	if got := state.NAV(); got != 1500 {
		t.Errorf("NAV() = %v, expected 1500", got)
	}
	if got := state.Notional(120); got != 1000+10*120 {
		t.Errorf("Notional(120) = %v, expected 2200", got)
	}
}

// Package portfolio defines the reference portfolio supplied to the
// projection engine and the scaling of that portfolio to a target investment.
package portfolio

import (
	"fmt"
)

// PositionKind discriminates the two sleeves of the reference portfolio.
type PositionKind string

const (
	// Credit is the fixed-income-like sleeve.
	Credit PositionKind = "credit"

	// Option is the leveraged sleeve.
	Option PositionKind = "option"
)

// Position is one sleeve of the reference portfolio. Strike, Quantity, and
// Expiration are meaningful only for Option positions.
type Position struct {
	Kind         PositionKind
	CostBasis    float64
	CurrentValue float64
	Strike       float64
	Quantity     float64
	Expiration   string
}

// Portfolio is the ordered reference position list plus the master cost
// basis at reference scale. The engine expects one Credit and one Option
// position; multiple Option rows accumulate value and quantity, with the
// last row's strike taken as the weighted strike.
type Portfolio struct {
	Positions       []Position
	MasterCostBasis float64
}

// ScaledState is the reference portfolio scaled to a target investment.
type ScaledState struct {
	CreditValue    float64
	OptionValue    float64
	OptionQuantity float64
	WeightedStrike float64
}

// NAV returns the combined mark of both sleeves.
func (s ScaledState) NAV() float64 {
	return s.CreditValue + s.OptionValue
}

// Notional returns the nominal exposure at the given spot: credit value plus
// the option sleeve's underlying exposure.
func (s ScaledState) Notional(spot float64) float64 {
	return s.CreditValue + s.OptionQuantity*spot
}

// Scale folds the reference positions into a ScaledState proportional to
// investment / master cost basis. Strikes are not scaled.
func (p Portfolio) Scale(investment float64) (ScaledState, error) {
	if p.MasterCostBasis <= 0 {
		return ScaledState{}, fmt.Errorf("master cost basis must be positive, got %f", p.MasterCostBasis)
	}
	if investment <= 0 {
		return ScaledState{}, fmt.Errorf("investment must be positive, got %f", investment)
	}

	ratio := investment / p.MasterCostBasis
	var state ScaledState
	for _, pos := range p.Positions {
		switch pos.Kind {
		case Credit:
			state.CreditValue += pos.CurrentValue * ratio
		case Option:
			state.OptionValue += pos.CurrentValue * ratio
			state.OptionQuantity += pos.Quantity * ratio
			state.WeightedStrike = pos.Strike
		default:
			return ScaledState{}, fmt.Errorf("unknown position kind %q", pos.Kind)
		}
	}

	return state, nil
}

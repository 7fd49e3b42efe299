// Package metrics derives summary performance measures from a projection's
// final value.
package metrics

import (
	"fmt"
	"math"
)

// Summary holds the multiple on invested capital and the annualized return
// derived from it. IRR here is a geometric-mean growth rate, not a
// cash-flow IRR.
type Summary struct {
	MOIC       float64
	IRRPercent float64
}

// Compute returns the MOIC and annualized IRR for a final value reached
// after the given number of years on the given investment.
func Compute(finalValue, investment float64, years int) (Summary, error) {
	if investment <= 0 {
		return Summary{}, fmt.Errorf("investment must be positive, got %f", investment)
	}
	if years <= 0 {
		return Summary{}, fmt.Errorf("years must be positive, got %d", years)
	}

	moic := finalValue / investment
	irr := (math.Pow(moic, 1.0/float64(years)) - 1.0) * 100.0

	return Summary{MOIC: moic, IRRPercent: irr}, nil
}

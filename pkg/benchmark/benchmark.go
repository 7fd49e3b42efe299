// Package benchmark computes the reference trajectories the strategy is
// compared against: an equity index net of a fixed drag, a leveraged
// private-equity proxy, and a fixed-rate bond ladder.
package benchmark

import (
	"math"

	"github.com/iwvelando/hybrid-forecast/pkg/constants"
	"github.com/iwvelando/hybrid-forecast/pkg/mathutil"
)

// IndexNetRate returns the index total-return growth rate net of the fixed
// annual drag, as a decimal.
func IndexNetRate(priceReturnPct, divYieldPct float64) float64 {
	return mathutil.PercentToDecimal(priceReturnPct+divYieldPct) - constants.IndexAnnualDrag
}

// IndexValue returns the index benchmark value after t years.
func IndexValue(investment, priceReturnPct, divYieldPct, t float64) float64 {
	return investment * math.Pow(1+IndexNetRate(priceReturnPct, divYieldPct), t)
}

// PrivateEquityValue returns the private-equity proxy value after t years:
// the index net rate levered up, less a management drag, with a single
// carry taken on any profit above the investment.
func PrivateEquityValue(investment, priceReturnPct, divYieldPct, t float64) float64 {
	grossRate := constants.PrivateEquityLeverage * IndexNetRate(priceReturnPct, divYieldPct)
	netRate := grossRate - constants.PrivateEquityManagementDrag
	value := investment * math.Pow(1+netRate, t)
	if profit := value - investment; profit > 0 {
		value -= profit * constants.PrivateEquityCarryRate
	}
	return value
}

// BondValue returns the fixed-rate bond ladder value after t years.
func BondValue(investment, t float64) float64 {
	return investment * math.Pow(1+constants.BondAnnualRate, t)
}

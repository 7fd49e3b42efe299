// Package projection defines the data structures related to a projection and
// includes the quarterly engine that computes it.
package projection

import (
	"fmt"
	"math"
	"time"

	"github.com/iwvelando/hybrid-forecast/internal/config"
	"github.com/iwvelando/hybrid-forecast/pkg/benchmark"
	"github.com/iwvelando/hybrid-forecast/pkg/constants"
	"github.com/iwvelando/hybrid-forecast/pkg/mathutil"
	"github.com/iwvelando/hybrid-forecast/pkg/metrics"
	"github.com/iwvelando/hybrid-forecast/pkg/portfolio"
	"github.com/iwvelando/hybrid-forecast/pkg/pricing"
	"github.com/iwvelando/hybrid-forecast/pkg/schedule"
	"go.uber.org/zap"
)

// Series holds the per-quarter trajectories, one entry per quarter plus the
// initial point at index 0.
type Series struct {
	Labels        []string  `json:"labels"`
	Strategy      []float64 `json:"strategy"`
	CreditSleeve  []float64 `json:"creditSleeve"`
	OptionSleeve  []float64 `json:"optionSleeve"`
	Intrinsic     []float64 `json:"intrinsic"`
	Index         []float64 `json:"index"`
	PrivateEquity []float64 `json:"privateEquity"`
	Bonds         []float64 `json:"bonds"`
}

// Result is the full output of one projection: the series plus the summary
// metrics the chart layer displays alongside them.
type Result struct {
	Series             Series  `json:"series"`
	InitialNotional    float64 `json:"initialNotional"`
	FinalStrategyValue float64 `json:"finalStrategyValue"`
	StrategyMOIC       float64 `json:"strategyMoic"`
	StrategyIRRPercent float64 `json:"strategyIrrPercent"`
	FinalIndexValue    float64 `json:"finalIndexValue"`
	IndexMOIC          float64 `json:"indexMoic"`
	IndexIRRPercent    float64 `json:"indexIrrPercent"`
}

// Run computes the projection for the given inputs and reference portfolio.
// Every quarterly step is a pure function of the step index and the initial
// scaled state; steps do not compound on each other's output.
func Run(logger *zap.Logger, inputs config.ProjectionInputs, ref portfolio.Portfolio, start time.Time) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := inputs.Validate(); err != nil {
		return nil, err
	}

	state, err := ref.Scale(inputs.Investment)
	if err != nil {
		return nil, err
	}

	steps := inputs.Years * constants.QuartersPerYear
	series := Series{
		Labels:        schedule.QuarterLabels(start, inputs.Years),
		Strategy:      make([]float64, 0, steps+1),
		CreditSleeve:  make([]float64, 0, steps+1),
		OptionSleeve:  make([]float64, 0, steps+1),
		Intrinsic:     make([]float64, 0, steps+1),
		Index:         make([]float64, 0, steps+1),
		PrivateEquity: make([]float64, 0, steps+1),
		Bonds:         make([]float64, 0, steps+1),
	}

	// Initial point carries the scaled state without fees.
	series.Strategy = append(series.Strategy, state.NAV())
	series.CreditSleeve = append(series.CreditSleeve, state.CreditValue)
	series.OptionSleeve = append(series.OptionSleeve, state.OptionValue)
	series.Intrinsic = append(series.Intrinsic, pricing.Intrinsic(inputs.CurrentSpot, state.WeightedStrike)*state.OptionQuantity)
	series.Index = append(series.Index, inputs.Investment)
	series.PrivateEquity = append(series.PrivateEquity, inputs.Investment)
	series.Bonds = append(series.Bonds, inputs.Investment)

	gPrice := mathutil.PercentToDecimal(inputs.SpxPriceReturn)
	gCredit := mathutil.PercentToDecimal(inputs.CreditYield)
	carryRate := mathutil.PercentToDecimal(inputs.CarryFee)

	for q := 1; q <= steps; q++ {
		t := float64(q) * constants.QuarterYears

		spot := inputs.CurrentSpot * math.Pow(1+gPrice, t)
		grossCredit := state.CreditValue * math.Pow(1+gCredit, t)

		remaining := math.Max(0, float64(inputs.Years)-t)
		unitPrice, priceErr := pricing.Call(spot, state.WeightedStrike, remaining,
			mathutil.PercentToDecimal(inputs.RiskFreeRate), mathutil.PercentToDecimal(inputs.Volatility))
		if priceErr != nil {
			return nil, fmt.Errorf("pricing option sleeve at quarter %d: %w", q, priceErr)
		}
		grossOption := unitPrice * state.OptionQuantity
		grossIntrinsic := pricing.Intrinsic(spot, state.WeightedStrike) * state.OptionQuantity

		// Management drag applies to both sleeves and, for comparability,
		// to the intrinsic line.
		drag := math.Pow(1-mathutil.PercentToDecimal(inputs.MgmtFee), t)
		creditLine := grossCredit * drag
		optionLine := grossOption * drag
		intrinsicLine := grossIntrinsic * drag

		// Carry waterfall, pro-rated between sleeves. The intrinsic line
		// takes the option sleeve's share so the two option lines stay
		// comparable after carry.
		profit := creditLine + optionLine - inputs.Investment
		if profit > 0 {
			combined := creditLine + optionLine
			if combined <= 0 {
				logger.Warn("skipping carry allocation with non-positive combined value",
					zap.String("op", "projection.Run"),
					zap.Int("quarter", q),
					zap.Float64("combined", combined),
				)
			} else {
				carryAmount := profit * carryRate
				creditShare := creditLine / combined
				optionShare := 1 - creditShare
				creditLine -= carryAmount * creditShare
				optionLine -= carryAmount * optionShare
				intrinsicLine -= carryAmount * optionShare
			}
		}

		series.Strategy = append(series.Strategy, creditLine+optionLine)
		series.CreditSleeve = append(series.CreditSleeve, creditLine)
		series.OptionSleeve = append(series.OptionSleeve, optionLine)
		series.Intrinsic = append(series.Intrinsic, intrinsicLine)
		series.Index = append(series.Index, benchmark.IndexValue(inputs.Investment, inputs.SpxPriceReturn, inputs.SpxDivYield, t))
		series.PrivateEquity = append(series.PrivateEquity, benchmark.PrivateEquityValue(inputs.Investment, inputs.SpxPriceReturn, inputs.SpxDivYield, t))
		series.Bonds = append(series.Bonds, benchmark.BondValue(inputs.Investment, t))
	}

	finalStrategy := series.Strategy[len(series.Strategy)-1]
	finalIndex := series.Index[len(series.Index)-1]

	strategyMetrics, err := metrics.Compute(finalStrategy, inputs.Investment, inputs.Years)
	if err != nil {
		return nil, err
	}
	indexMetrics, err := metrics.Compute(finalIndex, inputs.Investment, inputs.Years)
	if err != nil {
		return nil, err
	}

	logger.Debug("projection complete",
		zap.String("op", "projection.Run"),
		zap.Int("steps", steps),
		zap.Float64("finalStrategyValue", finalStrategy),
	)

	return &Result{
		Series:             series,
		InitialNotional:    state.Notional(inputs.CurrentSpot),
		FinalStrategyValue: finalStrategy,
		StrategyMOIC:       strategyMetrics.MOIC,
		StrategyIRRPercent: strategyMetrics.IRRPercent,
		FinalIndexValue:    finalIndex,
		IndexMOIC:          indexMetrics.MOIC,
		IndexIRRPercent:    indexMetrics.IRRPercent,
	}, nil
}

// RunConfiguration validates the full configuration and runs the projection
// it describes. This is the single entry point used by the CLI and the API.
func RunConfiguration(logger *zap.Logger, conf config.Configuration) (*Result, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	ref, err := conf.ReferencePortfolio()
	if err != nil {
		return nil, err
	}
	return Run(logger, conf.Inputs, ref, conf.Start(time.Now()))
}

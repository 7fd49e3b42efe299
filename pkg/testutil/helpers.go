// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/hybrid-forecast/internal/config"
)

// ReferenceInputs returns the demo projection parameters: the investment
// equals the master cost basis and the spot equals the weighted strike, so
// scaling is the identity and the initial intrinsic value is zero.
func ReferenceInputs() config.ProjectionInputs {
	return config.ProjectionInputs{
		Investment:     7289316.47,
		CurrentSpot:    563.22,
		SpxPriceReturn: 8,
		SpxDivYield:    1.3,
		CreditYield:    5,
		Volatility:     15,
		MgmtFee:        1.5,
		CarryFee:       20,
		RiskFreeRate:   4,
		Years:          10,
	}
}

// ReferencePortfolio returns the demo reference portfolio matching
// ReferenceInputs.
func ReferencePortfolio() config.Portfolio {
	return config.Portfolio{
		MasterCostBasis: 7289316.47,
		Positions: []config.Position{
			{
				Kind:         "credit",
				CostBasis:    3489323.60,
				CurrentValue: 3489323.60,
			},
			{
				Kind:         "option",
				CostBasis:    3799992.87,
				CurrentValue: 3126483.16,
				Strike:       563.22,
				Quantity:     44000,
				Expiration:   "2036-01",
			},
		},
	}
}

// ReferenceConfiguration returns a full demo configuration with a fixed
// start date for deterministic period labels.
func ReferenceConfiguration() config.Configuration {
	return config.Configuration{
		Inputs:    ReferenceInputs(),
		Portfolio: ReferencePortfolio(),
		StartDate: "2026-01",
	}
}

// Package normdist provides a standard normal cumulative distribution
// approximation suitable for closed-form option pricing.
package normdist

import (
	"math"

	"github.com/iwvelando/hybrid-forecast/pkg/constants"
)

// Zelen & Severo rational approximation coefficients (Abramowitz & Stegun 26.2.17).
const (
	b1 = 0.31938153
	b2 = -0.356563782
	b3 = 1.781477937
	b4 = -1.821255978
	b5 = 1.330274429
	p  = 0.2316419
	c  = 0.39894228
)

// CDF returns the standard normal cumulative distribution function at z.
// The result is saturated to exactly 0 or 1 outside |z| > constants.NormalClampZ.
func CDF(z float64) float64 {
	if z > constants.NormalClampZ {
		return 1.0
	}
	if z < -constants.NormalClampZ {
		return 0.0
	}
	if z < 0 {
		return 1.0 - CDF(-z)
	}
	t := 1.0 / (1.0 + p*z)
	poly := t * (b1 + t*(b2+t*(b3+t*(b4+t*b5))))
	return 1.0 - c*math.Exp(-z*z/2.0)*poly
}

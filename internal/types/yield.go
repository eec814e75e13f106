package types

import "math"

const (
	DefaultYieldTolerance = 1e-9
	DefaultYieldMaxIter   = 1_000
)

// YieldToMaturity calculates the annual yield (as a decimal) at which the
// bond is priced at P using the Newton-Raphson numerical method.
//
// Parameters:
//
//	b:    Bond terms.
//	P:    Clean price of the bond.
//	y:    Estimated yield to maturity (initial guess, as a decimal).
//	t:    Tolerance level for convergence on price.
//	i:    Maximum number of iterations.
//
// Returns:
//
//	Yield to maturity as a decimal.
func YieldToMaturity(b *BondTerms, P, y, t float64, i int) (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}

	if P <= 0 {
		return 0, ErrInvalidPrice
	}

	CP := b.PeriodicCoupon()
	n := b.Frequency
	periods := float64(b.Periods())

	for range i {
		ypp := y / float64(n)
		if ypp == 0 {
			// the annuity factor is undefined at zero, nudge off it
			y = 1e-6
			ypp = y / float64(n)
		}

		dp := presentValue(CP, b.Par, ypp, periods) - P
		if math.Abs(dp) < t {
			return y, nil
		}

		d := priceDerivative(CP, b.Par, ypp, periods, n)
		if math.Abs(d) < 1e-12 {
			return 0, ErrYieldDerivativeTooSmall
		}

		y = y - dp/d
	}

	return 0, ErrYieldNoConvergence
}

// EstimatedYieldToMaturity calculates a rough estimate of the yield to maturity used as a starting
// point for numerical methods to calculate a more accurate YTM.
//
//	C: Annual coupon rate (as a percentage).
//	F: Par amount of the bond.
//	P: Market price of the bond.
//	m: Number of years to maturity.
//
// Returns:
//
//	Estimated yield to maturity as a decimal.
func EstimatedYieldToMaturity(C, F, P, m float64) float64 {
	CP := C / 100 * F
	return (CP + (F-P)/m) / ((F + P) / 2)
}

// SolveYield is YieldToMaturity with the estimated yield as the starting
// point and default tolerance and iterations.
func SolveYield(b *BondTerms, P float64) (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}

	if P <= 0 {
		return 0, ErrInvalidPrice
	}

	guess := EstimatedYieldToMaturity(b.CouponRate, b.Par, P, float64(b.MaturityYears))

	return YieldToMaturity(b, P, guess, DefaultYieldTolerance, DefaultYieldMaxIter)
}

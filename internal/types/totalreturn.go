package types

import "math"

// TotalReturn calculates the realized total return of a bond bought at P and
// held for h years, with coupons reinvested at r and the bond sold at the
// horizon at the projected yield py.
//
// Parameters:
//
//	P:    Purchase price of the bond.
//	C:    Annual coupon rate (as a percentage).
//	n:    The number of coupon payments per year.
//	r:    Annual reinvestment rate (as a decimal).
//	h:    Investment horizon in years.
//	py:   Annual yield projected at the horizon (as a decimal).
//	F:    Par amount of the bond.
//	m:    Years to maturity.
//
// The periodic return is annualized by doubling (bond-equivalent) and by
// compounding twice (effective annual) whatever the payment frequency.
func TotalReturn(P, C float64, n int, r, h, py, F float64, m int) (ReturnResult, error) {
	if n <= 0 {
		return ReturnResult{}, ErrInvalidFrequency
	}

	if P <= 0 {
		return ReturnResult{}, ErrInvalidPrice
	}

	periods := h * float64(n)
	if periods <= 0 || h >= float64(m) {
		return ReturnResult{}, ErrInvalidHorizon
	}

	rpp := r / float64(n)
	if rpp == 0 {
		return ReturnResult{}, ErrZeroReinvestmentRate
	}

	ypp := py / float64(n)
	if ypp == 0 {
		return ReturnResult{}, ErrZeroYield
	}

	CP := periodicCoupon(C, F, n)
	interest := futureValue(CP, rpp, periods)

	// value at the horizon of the cash flows still to come
	remaining := (float64(m) - h) * float64(n)
	sale := presentValue(CP, F, ypp, remaining)

	return realizedReturn(P, interest, sale, periods)
}

// HoldToMaturityReturn calculates the realized total return when the bond is
// held until it redeems, so the horizon sale price is simply par.
func HoldToMaturityReturn(P, C float64, n int, r, F float64, m int) (ReturnResult, error) {
	if n <= 0 {
		return ReturnResult{}, ErrInvalidFrequency
	}

	if P <= 0 {
		return ReturnResult{}, ErrInvalidPrice
	}

	periods := float64(m * n)
	if periods <= 0 {
		return ReturnResult{}, ErrNoPeriods
	}

	rpp := r / float64(n)
	if rpp == 0 {
		return ReturnResult{}, ErrZeroReinvestmentRate
	}

	interest := futureValue(periodicCoupon(C, F, n), rpp, periods)

	return realizedReturn(P, interest, F, periods)
}

// futureValue of an ordinary annuity of p payments CP reinvested at i.
func futureValue(CP, i, p float64) float64 {
	return CP * (math.Pow(1+i, p) - 1) / i
}

func realizedReturn(P, interest, sale, periods float64) (ReturnResult, error) {
	total := interest + sale

	growth := total / P
	if growth < 0 {
		return ReturnResult{}, ErrNegativeGrowth
	}

	periodic := math.Pow(growth, 1/periods) - 1

	return ReturnResult{
		CouponInterest:  interest,
		SalePrice:       sale,
		FutureDollars:   total,
		PeriodicReturn:  periodic,
		BondEquivalent:  2 * periodic * 100,
		EffectiveAnnual: (math.Pow(1+periodic, 2) - 1) * 100,
	}, nil
}

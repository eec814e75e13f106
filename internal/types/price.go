package types

import "math"

// Price calculates the clean price of a bullet bond from its required yield
// as the present value of an annuity of coupons plus the discounted par.
//
// Parameters:
//
//	m:    Years to maturity.
//	C:    Annual coupon rate (as a percentage).
//	n:    The number of coupon payments per year.
//	F:    Par amount of the bond.
//	y:    Annual required yield (as a decimal, 0.07 for 7%).
//
// Returns:
//
//	Clean bond price.
func Price(m int, C float64, n int, F, y float64) (float64, error) {
	if n <= 0 {
		return 0, ErrInvalidFrequency
	}

	periods := m * n
	if periods < 0 {
		return 0, ErrNegativePeriods
	}

	ypp := y / float64(n)
	if ypp == 0 {
		return 0, ErrZeroYield
	}

	return presentValue(periodicCoupon(C, F, n), F, ypp, float64(periods)), nil
}

// presentValue discounts p coupons of CP and a final F at the periodic rate i.
func presentValue(CP, F, i, p float64) float64 {
	discount := math.Pow(1+i, -p)
	return CP*(1-discount)/i + F*discount
}

// priceDerivative is dPrice/dy for the annual yield y, where i = y/n.
func priceDerivative(CP, F, i, p float64, n int) float64 {
	discount := math.Pow(1+i, -p)
	dDiscount := -p * math.Pow(1+i, -p-1)

	annuity := (-dDiscount*i - (1 - discount)) / (i * i)
	dPdi := CP*annuity + F*dDiscount

	return dPdi / float64(n)
}

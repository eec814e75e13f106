package types

import (
	"fmt"
	"time"
)

type PaymentKind string

var (
	Coupon    PaymentKind = "Coupon"
	Principal PaymentKind = "Principal"
)

// Frequencies lists the supported number of payments per year.
var Frequencies = []int{1, 2, 4, 12}

// BondTerms are the fixed terms of a bullet bond.
type BondTerms struct {
	Par           float64
	MaturityYears int
	CouponRate    float64 // annual, percent
	Frequency     int     // payments per year
}

func NewBondTerms(par float64, maturityYears int, couponRate float64, frequency int) *BondTerms {
	return &BondTerms{
		Par:           par,
		MaturityYears: maturityYears,
		CouponRate:    couponRate,
		Frequency:     frequency,
	}
}

// Periods returns the number of coupon periods to maturity.
func (b *BondTerms) Periods() int {
	return b.MaturityYears * b.Frequency
}

// PeriodicCoupon returns the coupon amount paid each period.
func (b *BondTerms) PeriodicCoupon() float64 {
	return periodicCoupon(b.CouponRate, b.Par, b.Frequency)
}

func (b *BondTerms) Validate() error {
	if b == nil {
		return ErrNilTerms
	}

	if b.Par <= 0 {
		return ErrInvalidPar
	}

	if b.MaturityYears <= 0 {
		return ErrInvalidMaturity
	}

	if b.CouponRate < 0 {
		return ErrInvalidCoupon
	}

	if !ValidFrequency(b.Frequency) {
		return fmt.Errorf("%w: %d", ErrInvalidFrequency, b.Frequency)
	}

	return nil
}

func (b *BondTerms) Price(annualYield float64) (float64, error) {
	return Price(b.MaturityYears, b.CouponRate, b.Frequency, b.Par, annualYield)
}

func (b *BondTerms) TotalReturn(price, reinvestmentRate, horizonYears, projectedYield float64) (ReturnResult, error) {
	return TotalReturn(price, b.CouponRate, b.Frequency, reinvestmentRate, horizonYears, projectedYield, b.Par, b.MaturityYears)
}

func (b *BondTerms) Schedule(start time.Time) ([]CashFlow, error) {
	return GenerateSchedule(b.MaturityYears, b.CouponRate, b.Frequency, b.Par, start)
}

func ValidFrequency(n int) bool {
	for _, f := range Frequencies {
		if f == n {
			return true
		}
	}
	return false
}

// CashFlow is a single dated payment of a schedule.
type CashFlow struct {
	Period int
	Date   time.Time
	Kind   PaymentKind
	Amount float64
}

// ReturnResult holds the realized total return over a horizon, with the
// intermediate dollar figures used to derive it.
type ReturnResult struct {
	CouponInterest  float64 // coupons plus interest-on-interest
	SalePrice       float64 // projected price at the horizon
	FutureDollars   float64
	PeriodicReturn  float64 // decimal, per period
	BondEquivalent  float64 // percent
	EffectiveAnnual float64 // percent
}

func periodicCoupon(couponRate, par float64, frequency int) float64 {
	return couponRate / 100 * par / float64(frequency)
}

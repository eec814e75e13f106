package types

import "time"

const daysPerYear = 365

// GenerateSchedule returns the future coupon payments of a bond followed by
// the repayment of par.
//
// Coupon k falls 365/n*k days after start, fractional days included, and the
// principal falls 365*m days after start. Both use a fixed 365 day year, with
// no leap year or coupon date adjustment.
func GenerateSchedule(m int, C float64, n int, F float64, start time.Time) ([]CashFlow, error) {
	if n <= 0 {
		return nil, ErrInvalidFrequency
	}

	periods := m * n
	if periods <= 0 {
		return nil, ErrNoPeriods
	}

	CP := periodicCoupon(C, F, n)

	schedule := make([]CashFlow, 0, periods+1)
	for k := 1; k <= periods; k++ {
		schedule = append(schedule, CashFlow{
			Period: k,
			Date:   couponDate(start, k, n),
			Kind:   Coupon,
			Amount: CP,
		})
	}

	schedule = append(schedule, CashFlow{
		Period: periods,
		Date:   wallClockDate(start, daysPerYear*m, 0),
		Kind:   Principal,
		Amount: F,
	})

	return schedule, nil
}

// couponDate splits the offset into whole 365 day years and a remainder so
// long maturities do not overflow time.Duration.
func couponDate(start time.Time, k, n int) time.Time {
	years := k / n
	rem := time.Duration(k%n) * daysPerYear * 24 * time.Hour / time.Duration(n)
	return wallClockDate(start, daysPerYear*years, rem)
}

// wallClockDate adds days and rem to the wall clock of start, ignoring any
// daylight saving change in start's location.
func wallClockDate(start time.Time, days int, rem time.Duration) time.Time {
	wall := time.Date(
		start.Year(),
		start.Month(),
		start.Day(),
		start.Hour(),
		start.Minute(),
		start.Second(),
		start.Nanosecond(),
		time.UTC,
	)

	t := wall.AddDate(0, 0, days).Add(rem)

	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		t.Hour(),
		t.Minute(),
		t.Second(),
		t.Nanosecond(),
		start.Location(),
	)
}

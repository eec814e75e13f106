package render

import (
	"fmt"
	"io"

	"benritz/bondcalc/internal/types"
)

const DateFormat = "2006-01-02"

func FormatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// WriteSchedule writes the schedule as a fixed width table of date, payment
// type and amount. Every column, the last one included, is padded to 15.
func WriteSchedule(w io.Writer, flows []types.CashFlow) error {
	if _, err := fmt.Fprintf(w, "%-15s %-15s %-15s\n", "Date", "Payment Type", "Payment Amount"); err != nil {
		return err
	}

	for _, cf := range flows {
		if _, err := fmt.Fprintf(w, "%-15s %-15s $%-15.2f\n", cf.Date.Format(DateFormat), cf.Kind, cf.Amount); err != nil {
			return err
		}
	}

	return nil
}

func WriteReturn(w io.Writer, r types.ReturnResult) error {
	_, err := fmt.Fprintf(
		w,
		"Total Coupon Interest: %s\nProjected Sale Price: %s\nTotal Future Dollars: %s\nBond-Equivalent Total Return: %s\nEffective Annual Total Return: %s\n",
		FormatPrice(r.CouponInterest),
		FormatPrice(r.SalePrice),
		FormatPrice(r.FutureDollars),
		FormatPercent(r.BondEquivalent),
		FormatPercent(r.EffectiveAnnual),
	)
	return err
}

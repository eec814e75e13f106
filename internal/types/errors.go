package types

import "fmt"

// ErrDomain is wrapped by every invalid-input error returned by the
// calculators so callers can test with errors.Is(err, ErrDomain).
var ErrDomain = fmt.Errorf("domain error")

var (
	ErrNilTerms                = fmt.Errorf("%w: bond terms are nil", ErrDomain)
	ErrInvalidPar              = fmt.Errorf("%w: par amount must be greater than 0", ErrDomain)
	ErrInvalidMaturity         = fmt.Errorf("%w: maturity must be greater than 0 years", ErrDomain)
	ErrInvalidCoupon           = fmt.Errorf("%w: coupon rate must not be negative", ErrDomain)
	ErrInvalidFrequency        = fmt.Errorf("%w: invalid payment frequency", ErrDomain)
	ErrNegativePeriods         = fmt.Errorf("%w: period count is negative", ErrDomain)
	ErrNoPeriods               = fmt.Errorf("%w: period count must be greater than 0", ErrDomain)
	ErrZeroYield               = fmt.Errorf("%w: periodic yield is zero", ErrDomain)
	ErrZeroReinvestmentRate    = fmt.Errorf("%w: periodic reinvestment rate is zero", ErrDomain)
	ErrInvalidHorizon          = fmt.Errorf("%w: horizon must be greater than 0 and less than maturity", ErrDomain)
	ErrInvalidPrice            = fmt.Errorf("%w: bond price must be greater than 0", ErrDomain)
	ErrNegativeGrowth          = fmt.Errorf("%w: total future dollars to price ratio is negative", ErrDomain)
	ErrYieldNoConvergence      = fmt.Errorf("Newton-Raphson failed to converge within max iterations")
	ErrYieldDerivativeTooSmall = fmt.Errorf("Newton-Raphson failed (derivative is too small)")
)

package recorder

import "benritz/bondcalc/internal/types"

// PriceEvent records a yield to price conversion, or the inverse.
type PriceEvent struct {
	Terms *types.BondTerms
	Yield float64 // percent
	Price float64
}

// ReturnEvent records a total return calculation and its assumptions.
type ReturnEvent struct {
	Terms          *types.BondTerms
	BondPrice      float64
	Reinvestment   float64 // percent
	Horizon        float64 // years
	ProjectedYield float64 // percent
	Result         types.ReturnResult
}

// ScheduleEvent records where a generated schedule was stored.
type ScheduleEvent struct {
	RunID    string
	Terms    *types.BondTerms
	Payments int
	Location string
}

// Recorder keeps a history of calculations.
type Recorder interface {
	RecordPrice(evt *PriceEvent) error
	RecordReturn(evt *ReturnEvent) error
	RecordSchedule(evt *ScheduleEvent) error
	Close() error
}

package recorder

// NoopRecorder is used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordPrice(_ *PriceEvent) error       { return nil }
func (n *NoopRecorder) RecordReturn(_ *ReturnEvent) error     { return nil }
func (n *NoopRecorder) RecordSchedule(_ *ScheduleEvent) error { return nil }
func (n *NoopRecorder) Close() error                          { return nil }

package recorder

import (
	"path/filepath"
	"testing"

	"benritz/bondcalc/internal/types"
)

func count(t *testing.T, r *SQLiteRecorder, table string) int {
	t.Helper()
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestSQLiteRecorder(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "bondcalc.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	terms := types.NewBondTerms(1000, 20, 8, 2)

	if err := r.RecordPrice(&PriceEvent{Terms: terms, Yield: 7, Price: 1106.78}); err != nil {
		t.Fatalf("record price: %v", err)
	}
	if err := r.RecordReturn(&ReturnEvent{
		Terms:          terms,
		BondPrice:      828.40,
		Reinvestment:   6,
		Horizon:        3,
		ProjectedYield: 7,
		Result:         types.ReturnResult{BondEquivalent: 17.15, EffectiveAnnual: 17.89},
	}); err != nil {
		t.Fatalf("record return: %v", err)
	}
	if err := r.RecordSchedule(&ScheduleEvent{RunID: "run-1", Terms: terms, Payments: 41, Location: "/tmp/x.parquet"}); err != nil {
		t.Fatalf("record schedule: %v", err)
	}
	if err := r.RecordPrice(&PriceEvent{Yield: 5, Price: 100}); err != nil {
		t.Fatalf("record price without terms: %v", err)
	}

	if n := count(t, r, "price_calcs"); n != 2 {
		t.Errorf("expected 2 price rows, got %d", n)
	}
	if n := count(t, r, "return_calcs"); n != 1 {
		t.Errorf("expected 1 return row, got %d", n)
	}

	var price float64
	if err := r.db.QueryRow("SELECT price FROM price_calcs WHERE yield = 7").Scan(&price); err != nil {
		t.Fatal(err)
	}
	if price != 1106.78 {
		t.Errorf("expected stored price 1106.78, got %v", price)
	}

	var payments int
	if err := r.db.QueryRow("SELECT payments FROM schedules WHERE run_id = ?", "run-1").Scan(&payments); err != nil {
		t.Fatal(err)
	}
	if payments != 41 {
		t.Errorf("expected 41 payments, got %d", payments)
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	if err := r.RecordPrice(&PriceEvent{}); err != nil {
		t.Error(err)
	}
	if err := r.Close(); err != nil {
		t.Error(err)
	}
}

package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"benritz/bondcalc/internal/types"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists calculation history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_calcs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			par         REAL,
			maturity    INTEGER,
			coupon_rate REAL,
			frequency   INTEGER,
			yield       REAL,
			price       REAL
		)`,
		`CREATE TABLE IF NOT EXISTS return_calcs (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			par              REAL,
			maturity         INTEGER,
			coupon_rate      REAL,
			frequency        INTEGER,
			bond_price       REAL,
			reinvestment     REAL,
			horizon          REAL,
			projected_yield  REAL,
			coupon_interest  REAL,
			sale_price       REAL,
			future_dollars   REAL,
			bond_equivalent  REAL,
			effective_annual REAL
		)`,
		`CREATE TABLE IF NOT EXISTS schedules (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			run_id      TEXT NOT NULL,
			par         REAL,
			maturity    INTEGER,
			coupon_rate REAL,
			frequency   INTEGER,
			payments    INTEGER,
			location    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_schedules_run ON schedules(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func termsOrEmpty(t *types.BondTerms) types.BondTerms {
	if t == nil {
		return types.BondTerms{}
	}
	return *t
}

func (r *SQLiteRecorder) RecordPrice(evt *PriceEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := termsOrEmpty(evt.Terms)
	_, err := r.db.Exec(
		`INSERT INTO price_calcs (timestamp, par, maturity, coupon_rate, frequency, yield, price)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), t.Par, t.MaturityYears, t.CouponRate, t.Frequency, evt.Yield, evt.Price,
	)
	if err != nil {
		return fmt.Errorf("record price: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) RecordReturn(evt *ReturnEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := termsOrEmpty(evt.Terms)
	res := evt.Result
	_, err := r.db.Exec(
		`INSERT INTO return_calcs (timestamp, par, maturity, coupon_rate, frequency,
			bond_price, reinvestment, horizon, projected_yield,
			coupon_interest, sale_price, future_dollars, bond_equivalent, effective_annual)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), t.Par, t.MaturityYears, t.CouponRate, t.Frequency,
		evt.BondPrice, evt.Reinvestment, evt.Horizon, evt.ProjectedYield,
		res.CouponInterest, res.SalePrice, res.FutureDollars, res.BondEquivalent, res.EffectiveAnnual,
	)
	if err != nil {
		return fmt.Errorf("record return: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) RecordSchedule(evt *ScheduleEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := termsOrEmpty(evt.Terms)
	_, err := r.db.Exec(
		`INSERT INTO schedules (timestamp, run_id, par, maturity, coupon_rate, frequency, payments, location)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), evt.RunID, t.Par, t.MaturityYears, t.CouponRate, t.Frequency, evt.Payments, evt.Location,
	)
	if err != nil {
		return fmt.Errorf("record schedule: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

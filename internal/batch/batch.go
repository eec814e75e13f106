package batch

import (
	"benritz/bondcalc/internal/types"
	"fmt"
	"strconv"
	"strings"

	"github.com/pbnjay/grate"
	_ "github.com/pbnjay/grate/xls"
	_ "github.com/pbnjay/grate/xlsx"
)

var (
	ErrInvalidRow       = fmt.Errorf("invalid row")
	ErrNoRows           = fmt.Errorf("no bond rows found")
	ErrInvalidPar       = fmt.Errorf("invalid par amount")
	ErrInvalidMaturity  = fmt.Errorf("invalid maturity")
	ErrInvalidCoupon    = fmt.Errorf("invalid coupon rate")
	ErrInvalidFrequency = fmt.Errorf("invalid payment frequency")
	ErrInvalidYield     = fmt.Errorf("invalid required yield")
)

var (
	COL_NAME      = 0
	COL_PAR       = 1
	COL_MATURITY  = 2
	COL_COUPON    = 3
	COL_FREQUENCY = 4
	COL_YIELD     = 5
	NUM_COLS      = 6
)

// PricedBond is a row of the workbook and the price at its required yield.
type PricedBond struct {
	Row   int
	Name  string
	Terms *types.BondTerms
	Yield float64 // percent
	Price float64
	Err   error
}

func (p *PricedBond) SetError(err error) {
	if p.Err == nil {
		p.Err = err
	}
}

type PricedBonds struct {
	Source   string
	Bonds    []*PricedBond
	Failures []*PricedBond
}

func (p *PricedBonds) AddBond(pb *PricedBond) {
	if pb.Err == nil {
		p.Bonds = append(p.Bonds, pb)
	} else {
		p.Failures = append(p.Failures, pb)
	}
}

func NewPricedBonds(source string) *PricedBonds {
	return &PricedBonds{
		Source:   source,
		Bonds:    []*PricedBond{},
		Failures: []*PricedBond{},
	}
}

// PriceWorkbook prices every bond row of every sheet in the workbook at path.
//
// Rows are name, par, maturity (years), coupon (%), frequency and required
// yield (%). Rows whose par column is not a number, such as headers, are
// skipped. A row with bad terms is recorded as a failure.
func PriceWorkbook(path string) (*PricedBonds, error) {
	wb, err := grate.Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheets, err := wb.List()
	if err != nil {
		return nil, err
	}

	priced := NewPricedBonds(path)
	rowNum := 0

	for _, sheetName := range sheets {
		sheet, err := wb.Get(sheetName)
		if err != nil {
			return nil, err
		}

		for sheet.Next() {
			rowNum++
			pb, err := ParseRow(rowNum, sheet.Strings())
			if err != nil {
				continue
			}
			priced.AddBond(pb)
		}

		if err := sheet.Err(); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheetName, err)
		}
	}

	if len(priced.Bonds) == 0 && len(priced.Failures) == 0 {
		return nil, ErrNoRows
	}

	return priced, nil
}

// ParseRow parses and prices a single row. It returns ErrInvalidRow for rows
// that do not describe a bond at all.
func ParseRow(rowNum int, row []string) (*PricedBond, error) {
	if len(row) < NUM_COLS {
		return nil, ErrInvalidRow
	}

	par, err := parseFloat(row[COL_PAR])
	if err != nil {
		return nil, ErrInvalidRow
	}

	pb := &PricedBond{
		Row:  rowNum,
		Name: strings.TrimSpace(row[COL_NAME]),
	}

	maturity, err := strconv.Atoi(strings.TrimSpace(row[COL_MATURITY]))
	if err != nil {
		pb.SetError(ErrInvalidMaturity)
	}

	coupon, err := parseFloat(row[COL_COUPON])
	if err != nil {
		pb.SetError(ErrInvalidCoupon)
	}

	frequency, err := strconv.Atoi(strings.TrimSpace(row[COL_FREQUENCY]))
	if err != nil {
		pb.SetError(ErrInvalidFrequency)
	}

	yield, err := parseFloat(row[COL_YIELD])
	if err != nil {
		pb.SetError(ErrInvalidYield)
	}

	pb.Terms = types.NewBondTerms(par, maturity, coupon, frequency)
	pb.Yield = yield

	if pb.Err == nil {
		pb.SetError(pb.Terms.Validate())
	}

	if pb.Err == nil {
		price, err := pb.Terms.Price(yield / 100)
		if err != nil {
			pb.SetError(err)
		} else {
			pb.Price = price
		}
	}

	return pb, nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseFloat(s, 64)
}

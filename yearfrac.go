package serialdate

import (
	dec "github.com/govalues/decimal"
)

// DaysPerYear is the fixed divisor of the Actual/365 Fixed day count
// convention.
const DaysPerYear = 365

// TimeFrac returns the year fraction from d1 to d2 as (d2 - d1) / 365.
//
// This is the Actual/365 Fixed convention: the divisor is always 365, even
// when the period spans a leap day, so a full leap year yields 366/365 rather
// than 1.
func TimeFrac(d1, d2 Date) float64 {
	return float64(d2.Sub(d1)) / DaysPerYear
}

// TimeFracDecimal is TimeFrac computed with decimal arithmetic, rounded to
// the precision of dec.Decimal.
func TimeFracDecimal(d1, d2 Date) (dec.Decimal, error) {
	days, err := dec.New(int64(d2.Sub(d1)), 0)
	if err != nil {
		return dec.Decimal{}, err
	}
	year, err := dec.New(DaysPerYear, 0)
	if err != nil {
		return dec.Decimal{}, err
	}
	return days.Quo(year)
}

// Package serialdate provides a calendar date value type backed by a serial
// day number.
//
// A Date stores only the number of days elapsed since 1-Jan-1900 (serial 0).
// Year, month and day are derived on demand from lookup tables that are built
// once per process and shared read-only. Dates in [FirstYear, LastYear) of the
// proleptic Gregorian calendar are representable; anything else is rejected
// with an error matching [ErrInvalidDate].
//
// Basic usage:
//
//	d, err := serialdate.New(2024, 3, 7)
//	if err != nil {
//		return err
//	}
//	d.Serial()  // 45356
//	d.String()  // "7-3-2024"
//	d.Compact() // "20240307"
//
// The zero Date is 1-Jan-1900. Dates are plain values: they can be compared
// with == and used as map keys.
package serialdate

import (
	"iter"
	"time"
)

// Date is a calendar date represented by its serial number.
type Date struct {
	serial int
}

// New returns the Date for year, month (1-12) and day.
func New(year, month, day int) (Date, error) {
	if err := ValidateFields(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{serial: tables().toSerial(year, month, day)}, nil
}

// FromSerial returns the Date with the given serial number.
func FromSerial(serial int) (Date, error) {
	if err := ValidateSerial(serial); err != nil {
		return Date{}, err
	}
	return Date{serial: serial}, nil
}

// MustNew is like New but panics if the date is invalid.
func MustNew(year, month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// MustFromSerial is like FromSerial but panics if serial is out of range.
func MustFromSerial(serial int) Date {
	d, err := FromSerial(serial)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the Date of the calendar day shown by t in its own
// location. No zone conversion is applied.
func FromTime(t time.Time) (Date, error) {
	y, m, d := t.Date()
	return New(y, int(m), d)
}

// Serial returns the number of days elapsed since 1-Jan of FirstYear.
func (d Date) Serial() int {
	return d.serial
}

// Fields returns the year, month (1-12) and day of d.
func (d Date) Fields() (year, month, day int) {
	return tables().fromSerial(d.serial)
}

// Year returns the year of d.
func (d Date) Year() int {
	y, _, _ := d.Fields()
	return y
}

// Month returns the month of d, 1-12.
func (d Date) Month() int {
	_, m, _ := d.Fields()
	return m
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	_, _, day := d.Fields()
	return day
}

// Weekday returns the day of the week. 1-Jan-1900 was a Monday.
func (d Date) Weekday() time.Weekday {
	return time.Weekday((d.serial + 1) % 7)
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	y, m, day := d.Fields()
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

// Equal reports whether d and other are the same date.
func (d Date) Equal(other Date) bool {
	return d.serial == other.serial
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.serial < other.serial
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Before(other):
		return -1
	case d.After(other):
		return 1
	}
	return 0
}

// InRange reports whether d is in [from, to].
func (d Date) InRange(from, to Date) bool {
	return !d.Before(from) && !to.Before(d)
}

// Sub returns the number of days from other to d. The result is negative
// when d is before other.
func (d Date) Sub(other Date) int {
	return d.serial - other.serial
}

// Days returns an iterator over every date in [from, to] in ascending order.
// It yields nothing if to is before from.
func Days(from, to Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for s := from.serial; s <= to.serial; s++ {
			if !yield(Date{serial: s}) {
				return
			}
		}
	}
}

package serialdate

import (
	"errors"
	"fmt"
)

// ErrInvalidDate is matched by every error returned for an out of range
// date, serial number or unparsable date string.
var ErrInvalidDate = errors.New("invalid date")

// InvalidDateError describes the bound that a year, month, day or serial
// number violated.
type InvalidDateError struct {
	Field string // "year", "month", "day" or "serial"
	Value int    // the offending value
	Min   int    // smallest accepted value
	Max   int    // largest accepted value
}

// Error describes the violated bound.
func (e *InvalidDateError) Error() string {
	switch {
	case e.Value < e.Min && e.Field == "year":
		return fmt.Sprintf("invalid date: year must be no earlier than %d, got %d", e.Min, e.Value)
	case e.Field == "year":
		return fmt.Sprintf("invalid date: year must be earlier than %d, got %d", e.Max+1, e.Value)
	case e.Value < e.Min && e.Field == "serial":
		return fmt.Sprintf("invalid date: serial number must be non-negative, got %d", e.Value)
	case e.Field == "serial":
		return fmt.Sprintf("invalid date: serial number must be smaller than %d, got %d", e.Max+1, e.Value)
	}
	return fmt.Sprintf("invalid date: %s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}

// Is reports whether target is ErrInvalidDate.
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// ValidateFields checks that (year, month, day) is a date in
// [FirstYear, LastYear). Conditions are checked in order: year lower bound,
// year upper bound, month, day, and the first violation is returned.
func ValidateFields(year, month, day int) error {
	if year < FirstYear || year >= LastYear {
		return &InvalidDateError{Field: "year", Value: year, Min: FirstYear, Max: LastYear - 1}
	}
	if month < 1 || month > 12 {
		return &InvalidDateError{Field: "month", Value: month, Min: 1, Max: 12}
	}
	dmax := tables().monthLength(year, month)
	if day < 1 || day > dmax {
		return &InvalidDateError{Field: "day", Value: day, Min: 1, Max: dmax}
	}
	return nil
}

// ValidateSerial checks that serial is in [0, SerialLimit()).
func ValidateSerial(serial int) error {
	limit := SerialLimit()
	if serial < 0 || serial >= limit {
		return &InvalidDateError{Field: "serial", Value: serial, Min: 0, Max: limit - 1}
	}
	return nil
}

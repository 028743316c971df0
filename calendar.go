package serialdate

import "sync"

const (
	// FirstYear is the first supported year. Serial 0 is 1-Jan of FirstYear.
	FirstYear = 1900
	// LastYear is the end of the supported year range (exclusive).
	LastYear = 2200
	// NumYears is the number of supported years.
	NumYears = LastYear - FirstYear
)

// calendar holds the lookup tables shared by every Date. It is built once
// and never written to afterwards.
type calendar struct {
	daysInMonth    [12]int       // days in month M of a non-leap year
	daysYearToDate [12]int       // days from 1-Jan to 1-M of a non-leap year
	daysFromEpoch  [NumYears]int // days from 1-Jan-FirstYear to 1-Jan of each year
	serialLimit    int
}

var tables = sync.OnceValue(newCalendar)

func newCalendar() *calendar {
	c := &calendar{
		daysInMonth:    [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
		daysYearToDate: [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334},
	}
	for i, s, y := 0, 0, FirstYear; i < NumYears; i, y = i+1, y+1 {
		c.daysFromEpoch[i] = s
		s += daysInYear(y)
	}
	c.serialLimit = c.daysFromEpoch[NumYears-1] + 365
	if IsLeapYear(LastYear) {
		c.serialLimit++
	}
	return c
}

// IsLeapYear reports whether year is a leap year under the Gregorian rule.
// It is defined for any year, not only those in [FirstYear, LastYear).
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month of year, taking
// leap years into account. It returns 0 if month is not in 1..12.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return tables().monthLength(year, month)
}

// SerialLimit returns the serial number of the first day beyond the
// representable range. Valid serials are in [0, SerialLimit()).
func SerialLimit() int {
	return tables().serialLimit
}

func (c *calendar) monthLength(year, month int) int {
	n := c.daysInMonth[month-1]
	if month == 2 && IsLeapYear(year) {
		n++
	}
	return n
}

// dayOfYear returns the 0-based offset of (month, day) from 1-Jan of year.
func (c *calendar) dayOfYear(year, month, day int) int {
	n := c.daysYearToDate[month-1] + day - 1
	if month > 2 && IsLeapYear(year) {
		n++
	}
	return n
}

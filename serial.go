package serialdate

import "sort"

// toSerial converts validated fields to a serial number.
func (c *calendar) toSerial(year, month, day int) int {
	return c.daysFromEpoch[year-FirstYear] + c.dayOfYear(year, month, day)
}

// fromSerial converts a validated serial number to its fields. The year is
// the last one whose 1-Jan offset does not exceed serial.
func (c *calendar) fromSerial(serial int) (year, month, day int) {
	i := sort.Search(NumYears, func(i int) bool {
		return c.daysFromEpoch[i] > serial
	}) - 1
	year = FirstYear + i
	rem := serial - c.daysFromEpoch[i]
	month = 1
	for n := c.monthLength(year, month); rem >= n; n = c.monthLength(year, month) {
		rem -= n
		month++
	}
	return year, month, rem + 1
}

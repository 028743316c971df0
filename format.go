package serialdate

import (
	"fmt"
	"strconv"
	"strings"
)

// Style selects one of the two textual forms of a Date.
type Style int

const (
	// Pretty renders "D-M-YYYY" with no zero padding, e.g. "7-3-2024".
	Pretty Style = iota
	// Compact renders "YYYYMMDD", e.g. "20240307".
	Compact
)

// String returns the style name accepted by ParseStyleName.
func (s Style) String() string {
	switch s {
	case Pretty:
		return "pretty"
	case Compact:
		return "compact"
	}
	return "Style(" + strconv.Itoa(int(s)) + ")"
}

// ParseStyleName returns the Style named "pretty" or "compact".
func ParseStyleName(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pretty":
		return Pretty, nil
	case "compact":
		return Compact, nil
	}
	return 0, fmt.Errorf("unknown date style %q, expected pretty or compact", name)
}

// String returns d in the Pretty form.
func (d Date) String() string {
	return d.Format(Pretty)
}

// Compact returns d in the Compact form.
func (d Date) Compact() string {
	return d.Format(Compact)
}

// Format returns d in the given style. Unknown styles use Compact.
func (d Date) Format(style Style) string {
	y, m, day := d.Fields()
	if style == Pretty {
		return strconv.Itoa(day) + "-" + strconv.Itoa(m) + "-" + strconv.Itoa(y)
	}
	return fmt.Sprintf("%d%02d%02d", y, m, day)
}

// Parse parses a date in the Compact form "YYYYMMDD".
func Parse(s string) (Date, error) {
	if len(s) != 8 || !allDigits(s) {
		return Date{}, fmt.Errorf("%w: %q is not of the form YYYYMMDD", ErrInvalidDate, s)
	}
	y, _ := strconv.Atoi(s[:4])
	m, _ := strconv.Atoi(s[4:6])
	d, _ := strconv.Atoi(s[6:])
	return newParsed(s, y, m, d)
}

// ParsePretty parses a date in the Pretty form "D-M-YYYY". Zero padded day
// and month values are accepted.
func ParsePretty(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q is not of the form D-M-YYYY", ErrInvalidDate, s)
	}
	var f [3]int
	for i, p := range parts {
		if len(p) == 0 || len(p) > 4 || !allDigits(p) {
			return Date{}, fmt.Errorf("%w: %q is not of the form D-M-YYYY", ErrInvalidDate, s)
		}
		f[i], _ = strconv.Atoi(p)
	}
	return newParsed(s, f[2], f[1], f[0])
}

// ParseStyle parses s in the given style.
func ParseStyle(style Style, s string) (Date, error) {
	if style == Pretty {
		return ParsePretty(s)
	}
	return Parse(s)
}

func newParsed(s string, year, month, day int) (Date, error) {
	d, err := New(year, month, day)
	if err != nil {
		return Date{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

package serialdate

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		date    Date
		pretty  string
		compact string
	}{
		{ymd(2024, 3, 7), "7-3-2024", "20240307"},
		{ymd(1900, 1, 1), "1-1-1900", "19000101"},
		{ymd(1999, 12, 31), "31-12-1999", "19991231"},
		{ymd(2000, 2, 29), "29-2-2000", "20000229"},
		{ymd(2199, 12, 31), "31-12-2199", "21991231"},
		{ymd(2024, 10, 1), "1-10-2024", "20241001"},
	}
	for _, tt := range tests {
		t.Run(tt.compact, func(t *testing.T) {
			t.Parallel()
			if got := tt.date.String(); got != tt.pretty {
				t.Errorf("String() = %q, want %q", got, tt.pretty)
			}
			if got := tt.date.Format(Pretty); got != tt.pretty {
				t.Errorf("Format(Pretty) = %q, want %q", got, tt.pretty)
			}
			if got := tt.date.Compact(); got != tt.compact {
				t.Errorf("Compact() = %q, want %q", got, tt.compact)
			}
			if got := tt.date.Format(Compact); got != tt.compact {
				t.Errorf("Format(Compact) = %q, want %q", got, tt.compact)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"20240307", ymd(2024, 3, 7), false},
		{"19000101", Date{}, false},
		{"21991231", ymd(2199, 12, 31), false},
		{"20240229", ymd(2024, 2, 29), false},
		{"20230229", Date{}, true},
		{"18991231", Date{}, true},
		{"22000101", Date{}, true},
		{"20241301", Date{}, true},
		{"2024037", Date{}, true},
		{"202403070", Date{}, true},
		{"2024-3-7", Date{}, true},
		{"+2024030", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidDate", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePretty(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"7-3-2024", ymd(2024, 3, 7), false},
		{"07-03-2024", ymd(2024, 3, 7), false},
		{"1-1-1900", Date{}, false},
		{"29-2-2024", ymd(2024, 2, 29), false},
		{"29-2-2023", Date{}, true},
		{"7-13-2024", Date{}, true},
		{"7-3", Date{}, true},
		{"7-3-2024-1", Date{}, true},
		{"a-3-2024", Date{}, true},
		{"-3-2024", Date{}, true},
		{"7-3-12024", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePretty(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("ParsePretty(%q) error = %v, want ErrInvalidDate", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePretty(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePretty(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_KeepsFieldError(t *testing.T) {
	t.Parallel()

	_, err := Parse("20230229")
	var ide *InvalidDateError
	if !errors.As(err, &ide) {
		t.Fatalf("Parse(20230229) = %v, want *InvalidDateError", err)
	}
	if ide.Field != "day" || ide.Max != 28 {
		t.Errorf("got field %q max %d, want day max 28", ide.Field, ide.Max)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	for s := 0; s < SerialLimit(); s += 97 {
		d := MustFromSerial(s)
		for _, style := range []Style{Pretty, Compact} {
			got, err := ParseStyle(style, d.Format(style))
			if err != nil {
				t.Fatalf("ParseStyle(%v, %q): %v", style, d.Format(style), err)
			}
			if got != d {
				t.Fatalf("ParseStyle(%v, %q) = %v, want %v", style, d.Format(style), got, d)
			}
		}
	}
}

func TestParseStyleName(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"pretty", Pretty, false},
		{"Compact", Compact, false},
		{" compact ", Compact, false},
		{"iso", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseStyleName(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStyleName(%q) error = %v, wantErr = %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStyleName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if Pretty.String() != "pretty" || Compact.String() != "compact" {
		t.Errorf("Style names = %q, %q", Pretty, Compact)
	}
}

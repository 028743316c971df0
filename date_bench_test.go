package serialdate

import "testing"

func BenchmarkNew(b *testing.B) {
	for b.Loop() {
		New(2024, 3, 7)
	}
}

func BenchmarkFromSerial(b *testing.B) {
	for b.Loop() {
		FromSerial(45356)
	}
}

func BenchmarkFields(b *testing.B) {
	d := ymd(2199, 12, 31)
	for b.Loop() {
		d.Fields()
	}
}

func BenchmarkFieldsLinearScan(b *testing.B) {
	for b.Loop() {
		fromSerialLinear(109572)
	}
}

func BenchmarkCompact(b *testing.B) {
	d := ymd(2024, 3, 7)
	for b.Loop() {
		_ = d.Compact()
	}
}

func BenchmarkPretty(b *testing.B) {
	d := ymd(2024, 3, 7)
	for b.Loop() {
		_ = d.String()
	}
}

func BenchmarkParse(b *testing.B) {
	for b.Loop() {
		Parse("20240307")
	}
}

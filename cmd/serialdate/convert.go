package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/rabitt1ove/serialdate"
)

// Maximum input size to prevent memory exhaustion.
const maxCSVInputSize = 64 * 1024 * 1024

var outputHeader = []string{"date", "serial", "compact", "pretty"}

func (a *app) convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "convert a column of dates in a CSV file to serial numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")
			return a.convert(cmd, input, output)
		},
	}
	f := cmd.Flags()
	f.String("input", "-", "input CSV file, - for stdin")
	f.String("output", "-", "output CSV file, - for stdout")
	f.String("encoding", "utf-8", "input character encoding, e.g. shift_jis, euc-jp, windows-1252")
	f.Int("column", 0, "0-based index of the date column")
	f.Bool("keep-going", false, "report every bad row instead of stopping at the first")
	a.bindFlag("encoding", f.Lookup("encoding"))
	a.bindFlag("convert.column", f.Lookup("column"))
	a.bindFlag("convert.keep_going", f.Lookup("keep-going"))
	return cmd
}

func (a *app) convert(cmd *cobra.Command, input, output string) error {
	var in io.Reader = cmd.InOrStdin()
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	r, err := decodeReader(io.LimitReader(in, maxCSVInputSize), a.v.GetString("encoding"))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	column := a.v.GetInt("convert.column")
	keepGoing := a.v.GetBool("convert.keep_going")
	n, err := convertCSV(r, out, column, keepGoing, a.log)
	a.log.Info("converted dates",
		zap.String("input", input),
		zap.Int("rows", n),
		zap.Error(err))
	return err
}

// decodeReader returns a reader that decodes r from the named encoding to
// UTF-8. Names are WHATWG encoding labels.
func decodeReader(r io.Reader, name string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// convertCSV reads dates from the given column of r and writes one output
// row per date to w. It returns the number of dates written. A leading row
// whose date cell contains no digits is treated as a header and skipped.
// Blank cells are skipped. Rows converted before an error are always
// flushed to w.
func convertCSV(r io.Reader, w io.Writer, column int, keepGoing bool, log *zap.Logger) (written int, err error) {
	if column < 0 {
		return 0, fmt.Errorf("invalid column %d", column)
	}
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	writer := csv.NewWriter(w)
	defer func() {
		writer.Flush()
		if ferr := writer.Error(); ferr != nil && err == nil {
			err = ferr
		}
	}()
	if err := writer.Write(outputHeader); err != nil {
		return 0, err
	}

	var errs errors.M
	for first := true; ; first = false {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return written, err
		}
		line, _ := reader.FieldPos(0)

		if len(record) <= column {
			rowErr := fmt.Errorf("line %d: expected at least %d columns, got %d", line, column+1, len(record))
			if !keepGoing {
				return written, rowErr
			}
			errs.Append(rowErr)
			continue
		}
		cell := strings.TrimSpace(record[column])
		if cell == "" {
			continue
		}
		if first && !strings.ContainsAny(cell, "0123456789") {
			log.Debug("skipping header", zap.String("header", cell))
			continue
		}

		d, err := parseDate(cell)
		if err != nil {
			rowErr := fmt.Errorf("line %d: %w", line, err)
			if !keepGoing {
				return written, rowErr
			}
			log.Warn("skipping row", zap.Int("line", line), zap.Error(err))
			errs.Append(rowErr)
			continue
		}
		if err := writer.Write([]string{cell, strconv.Itoa(d.Serial()), d.Compact(), d.String()}); err != nil {
			return written, err
		}
		written++
	}
	return written, errs.Err()
}

// parseDate accepts YYYY/M/D, D-M-YYYY or YYYYMMDD.
func parseDate(s string) (serialdate.Date, error) {
	switch {
	case strings.Contains(s, "/"):
		parts := strings.Split(s, "/")
		if len(parts) != 3 {
			return serialdate.Date{}, fmt.Errorf("%w: %q is not of the form YYYY/M/D", serialdate.ErrInvalidDate, s)
		}
		y, m, d, err := parseFields(parts)
		if err != nil {
			return serialdate.Date{}, fmt.Errorf("%w: %q: %v", serialdate.ErrInvalidDate, s, err)
		}
		return serialdate.New(y, m, d)
	case strings.Contains(s, "-"):
		return serialdate.ParsePretty(s)
	}
	return serialdate.Parse(s)
}

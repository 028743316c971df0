// Command serialdate converts between calendar dates and serial day numbers.
//
// Dates are accepted as YYYYMMDD, D-M-YYYY or YYYY/M/D. Serial 0 is
// 1-Jan-1900.
//
// Usage:
//
//	serialdate serial 2024 3 7             # 45356
//	serialdate date 45356 --format compact # 20240307
//	serialdate diff 20240307 20240101      # 66
//	serialdate frac 20200101 20210101      # 1.0027397260273972
//	serialdate convert --input dates.csv --encoding shift_jis
//
// Settings are read, in increasing order of precedence, from serialdate.yaml
// (in the working directory or $HOME/.config/serialdate), SERIALDATE_*
// environment variables and command line flags.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "serialdate:", err)
		os.Exit(1)
	}
}

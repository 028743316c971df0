package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rabitt1ove/serialdate"
)

func newRootCmd() *cobra.Command {
	a := newApp()
	root := &cobra.Command{
		Use:           "serialdate",
		Short:         "convert between calendar dates and serial day numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ./serialdate.yaml)")
	pf.String("format", "pretty", "date output format: pretty (D-M-YYYY) or compact (YYYYMMDD)")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	a.bindFlag("format", pf.Lookup("format"))
	a.bindFlag("log.level", pf.Lookup("log-level"))

	root.AddCommand(
		a.serialCmd(),
		a.dateCmd(),
		a.diffCmd(),
		a.fracCmd(),
		a.validateCmd(),
		a.rangeCmd(),
		a.convertCmd(),
	)
	return root
}

func (a *app) serialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serial YEAR MONTH DAY",
		Short: "print the serial number of a date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, m, d, err := parseFields(args)
			if err != nil {
				return err
			}
			date, err := serialdate.New(y, m, d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), date.Serial())
			return nil
		},
	}
}

func (a *app) dateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date SERIAL",
		Short: "print the date with the given serial number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := a.style()
			if err != nil {
				return err
			}
			s, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid serial number %q", args[0])
			}
			date, err := serialdate.FromSerial(s)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), date.Format(style))
			return nil
		},
	}
}

func (a *app) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff D1 D2",
		Short: "print D1 - D2 in days",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d1, d2, err := parseDatePair(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d1.Sub(d2))
			return nil
		},
	}
}

func (a *app) fracCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frac D1 D2",
		Short: "print the Actual/365 Fixed year fraction from D1 to D2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d1, d2, err := parseDatePair(args)
			if err != nil {
				return err
			}
			if exact, _ := cmd.Flags().GetBool("exact"); exact {
				f, err := serialdate.TimeFracDecimal(d1, d2)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), f.String())
				return nil
			}
			f := serialdate.TimeFrac(d1, d2)
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(f, 'g', -1, 64))
			return nil
		},
	}
	cmd.Flags().Bool("exact", false, "use decimal arithmetic")
	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate (--serial N | YEAR MONTH DAY)",
		Short: "check that a date or serial number is representable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("serial") {
				if len(args) != 0 {
					return fmt.Errorf("--serial takes no positional arguments")
				}
				s, _ := cmd.Flags().GetInt("serial")
				if err := serialdate.ValidateSerial(s); err != nil {
					return err
				}
				a.log.Debug("valid serial", zap.Int("serial", s))
			} else {
				if len(args) != 3 {
					return fmt.Errorf("expected YEAR MONTH DAY or --serial")
				}
				y, m, d, err := parseFields(args)
				if err != nil {
					return err
				}
				if err := serialdate.ValidateFields(y, m, d); err != nil {
					return err
				}
				a.log.Debug("valid date", zap.Int("year", y), zap.Int("month", m), zap.Int("day", d))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().Int("serial", 0, "serial number to validate")
	return cmd
}

func (a *app) rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range FROM TO",
		Short: "print every date from FROM to TO inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := a.style()
			if err != nil {
				return err
			}
			from, to, err := parseDatePair(args)
			if err != nil {
				return err
			}
			if to.Before(from) {
				a.log.Warn("empty range", zap.Stringer("from", from), zap.Stringer("to", to))
			}
			w := cmd.OutOrStdout()
			for d := range serialdate.Days(from, to) {
				fmt.Fprintln(w, d.Format(style))
			}
			return nil
		},
	}
}

func parseFields(args []string) (year, month, day int, err error) {
	var f [3]int
	for i, name := range []string{"year", "month", "day"} {
		f[i], err = strconv.Atoi(args[i])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid %s %q", name, args[i])
		}
	}
	return f[0], f[1], f[2], nil
}

func parseDatePair(args []string) (serialdate.Date, serialdate.Date, error) {
	d1, err := parseDate(args[0])
	if err != nil {
		return serialdate.Date{}, serialdate.Date{}, err
	}
	d2, err := parseDate(args[1])
	if err != nil {
		return serialdate.Date{}, serialdate.Date{}, err
	}
	return d1, d2, nil
}

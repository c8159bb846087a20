// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"cloudeng.io/errors"
	"cloudeng.io/ifc"
	"cloudeng.io/ifc/ifcapi"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

type convertFlags struct {
	CommonFlags
	OutputFlags
	Both    bool `subcmd:"both,false,'display the conversions for both the original and proposed schemes'"`
	Samples bool `subcmd:"samples,false,'convert a set of sample dates that illustrate the boundaries of the calendar'"`
}

type yearFlags struct {
	CommonFlags
	OutputFlags
}

type leapFlags struct {
	CommonFlags
	OutputFlags
}

// parseDates parses all of the supplied dates, returning all of the
// errors encountered rather than just the first.
func parseDates(args []string) (ifc.CalendarDateList, error) {
	dates := make(ifc.CalendarDateList, 0, len(args))
	errs := &errors.M{}
	for _, arg := range args {
		cd, err := ifc.ParseCalendarDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		dates = append(dates, cd)
	}
	return dates, errs.Err()
}

func parseYears(args []string) ([]int, error) {
	years := make([]int, 0, len(args))
	errs := &errors.M{}
	for _, arg := range args {
		y, err := strconv.Atoi(arg)
		if err != nil {
			errs.Append(fmt.Errorf("invalid year: %q", arg))
			continue
		}
		years = append(years, y)
	}
	return years, errs.Err()
}

func convert(ctx context.Context, values any, args []string) error {
	fv := values.(*convertFlags)
	ctx, cfg, done, err := setup(ctx, fv.CommonFlags, fv.OutputFlags)
	if err != nil {
		return err
	}
	defer done()
	return convertDates(ctx, os.Stdout, cfg, fv.Both, fv.Samples, args)
}

func convertDates(ctx context.Context, out io.Writer, cfg Config, both, samples bool, args []string) error {
	var dates ifc.CalendarDateList
	switch {
	case samples:
		dates = ifc.Samples()
	case len(args) == 0:
		dates = ifc.CalendarDateList{ifc.Today()}
	default:
		var err error
		if dates, err = parseDates(args); err != nil {
			return err
		}
	}
	ctxlog.Logger(ctx).Info("converting", "dates", len(dates), "scheme", cfg.Scheme.String(), "both", both)

	schemes := []ifc.Scheme{cfg.Scheme}
	if both {
		schemes = []ifc.Scheme{ifc.Original, ifc.Proposed}
	}
	conversions := make([]ifcapi.Conversion, 0, len(dates)*len(schemes))
	for _, cd := range dates {
		for _, s := range schemes {
			conversions = append(conversions, ifcapi.NewConversion(cd, s))
		}
	}
	if cfg.Format != "text" {
		return encode(out, cfg.Format, conversions)
	}
	for i := 0; i < len(conversions); i += len(schemes) {
		c := conversions[i]
		if i > 0 && conversions[i-len(schemes)].Gregorian.Year != c.Gregorian.Year {
			fmt.Fprintln(out)
		}
		if !both {
			fmt.Fprintf(out, "%s => %s\n", c.Gregorian, c.IFC)
			continue
		}
		fmt.Fprintf(out, "%s => %-18s  %s\n", c.Gregorian, c.IFC, conversions[i+1].IFC)
	}
	return nil
}

func year(ctx context.Context, values any, args []string) error {
	fv := values.(*yearFlags)
	ctx, cfg, done, err := setup(ctx, fv.CommonFlags, fv.OutputFlags)
	if err != nil {
		return err
	}
	defer done()
	return listYear(ctx, os.Stdout, cfg, args[0])
}

func listYear(ctx context.Context, out io.Writer, cfg Config, arg string) error {
	years, err := parseYears([]string{arg})
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("listing", "year", years[0], "scheme", cfg.Scheme.String())
	if cfg.Format != "text" {
		return encode(out, cfg.Format, ifcapi.NewYearResponse(years[0], cfg.Scheme))
	}
	for cd, d := range ifc.Year(years[0], cfg.Scheme) {
		fmt.Fprintf(out, "%s %3d => %s\n", cd, ifc.DayOfYear(cd), d)
	}
	return nil
}

func leap(ctx context.Context, values any, args []string) error {
	fv := values.(*leapFlags)
	ctx, cfg, done, err := setup(ctx, fv.CommonFlags, fv.OutputFlags)
	if err != nil {
		return err
	}
	defer done()
	return leapYears(ctx, os.Stdout, cfg, args)
}

func leapYears(_ context.Context, out io.Writer, cfg Config, args []string) error {
	if len(args) == 0 {
		args = []string{strconv.Itoa(ifc.Today().Year)}
	}
	years, err := parseYears(args)
	if err != nil {
		return err
	}
	resp := make([]ifcapi.LeapResponse, len(years))
	for i, y := range years {
		resp[i] = ifcapi.NewLeapResponse(y)
	}
	if cfg.Format != "text" {
		return encode(out, cfg.Format, resp)
	}
	for _, r := range resp {
		is := "is not"
		if r.Leap {
			is = "is"
		}
		fmt.Fprintf(out, "%d %s a leap year (%d days)\n", r.Year, is, r.Days)
	}
	return nil
}

func encode(out io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return validFormat(format)
}

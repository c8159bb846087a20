// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command ifcdate converts Gregorian dates to the International Fixed
// Calendar. It can convert individual dates, list an entire year, report
// on leap years and serve the same functionality as a JSON HTTP API.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	convertCmd := subcmd.NewCommand("convert",
		subcmd.MustRegisterFlagStruct(&convertFlags{}, nil, nil),
		convert)
	convertCmd.Document(`convert Gregorian dates to the International Fixed Calendar. Dates may be specified as 2006-01-02, 2006/01/02, Jan-02-2006 or 02-Jan-2006, the current UTC date is used if none are specified.`, "[date...]")

	yearCmd := subcmd.NewCommand("year",
		subcmd.MustRegisterFlagStruct(&yearFlags{}, nil, nil),
		year, subcmd.ExactlyNumArguments(1))
	yearCmd.Document(`list every date in a Gregorian year and its International Fixed Calendar equivalent.`, "<year>")

	leapCmd := subcmd.NewCommand("leap",
		subcmd.MustRegisterFlagStruct(&leapFlags{}, nil, nil),
		leap)
	leapCmd.Document(`report whether the specified years are leap years.`, "<year>...")

	serveCmd := subcmd.NewCommand("serve",
		subcmd.MustRegisterFlagStruct(&serveFlags{}, nil, nil),
		serve, subcmd.ExactlyNumArguments(0))
	serveCmd.Document(`run an HTTP server that provides a JSON API for date conversion.`)

	cmdSet = subcmd.NewCommandSet(convertCmd, yearCmd, leapCmd, serveCmd)
	cmdSet.Document(`convert Gregorian dates to the International Fixed Calendar (IFC).

The IFC has 13 months of 28 days, with Sol inserted between June and July,
plus New Years Day and, in leap years, Leap Day, neither of which belong to
any month. Two placements of Leap Day are supported via the --scheme flag:

  original: Leap Day follows June 28th and precedes Sol 1st.
  proposed: Leap Day follows New Years Day at the end of the year.

Default values for the scheme, output format, logging and server may be
specified in a YAML configuration file via --config, for example:

  scheme: proposed
  format: json
  logging:
    level: 2
    format: text
  server:
    address: localhost:8080
    grace: 10s

Flags whose values differ from their defaults take precedence over the
configuration file.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

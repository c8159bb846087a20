// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"cloudeng.io/ifc/ifcapi"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/webapp"
)

type serveFlags struct {
	CommonFlags
	Scheme  string        `subcmd:"scheme,,'default leap day placement for requests that do not specify one: original or proposed'"`
	Address string        `subcmd:"address,localhost:8080,'address to listen on'"`
	Grace   time.Duration `subcmd:"grace,5s,'grace period for shutting down the server'"`
}

func serve(ctx context.Context, values any, _ []string) error {
	ctx, done := signal.NotifyContext(ctx, os.Interrupt)
	defer done()
	fv := values.(*serveFlags)
	ctx, cfg, closeLog, err := setup(ctx, fv.CommonFlags, OutputFlags{Scheme: fv.Scheme})
	if err != nil {
		return err
	}
	defer closeLog()
	overrideServer(&cfg.Server, fv.Address, fv.Grace)
	return runServer(ctx, cfg, nil)
}

// runServer runs the API server until ctx is canceled. If started is
// not nil, the listening address is sent on it once the server is ready
// to accept connections.
func runServer(ctx context.Context, cfg Config, started chan<- string) error {
	ln, srv, err := webapp.NewHTTPServer(ctx, cfg.Server.Address, ifcapi.NewRouter(cfg.Scheme))
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("serving", "addr", ln.Addr().String(), "scheme", cfg.Scheme.String())
	if started != nil {
		started <- ln.Addr().String()
	}
	return webapp.ServeWithShutdown(ctx, ln, srv, cfg.Server.Grace)
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/ifc"
	"cloudeng.io/logging/ctxlog"
)

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'YAML configuration file'"`
}

// OutputFlags control how conversions are performed and displayed.
type OutputFlags struct {
	Scheme string `subcmd:"scheme,,'leap day placement: original or proposed, defaults to original'"`
	Format string `subcmd:"format,,'output format: text, json or yaml, defaults to text'"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Address string        `yaml:"address"`
	Grace   time.Duration `yaml:"grace"`
}

// Config represents the YAML configuration file.
type Config struct {
	Scheme  ifc.Scheme            `yaml:"scheme"`
	Format  string                `yaml:"format"`
	Logging cmdutil.LoggingConfig `yaml:"logging"`
	Server  ServerConfig          `yaml:"server"`
}

const (
	defaultAddress = "localhost:8080"
	defaultGrace   = 5 * time.Second
)

func defaultConfig() Config {
	return Config{
		Scheme: ifc.Original,
		Format: "text",
		Server: ServerConfig{
			Address: defaultAddress,
			Grace:   defaultGrace,
		},
	}
}

// loadConfig returns the default configuration overridden by the
// contents of the config file, if any, which is in turn overridden by
// any flags whose values differ from their defaults.
func loadConfig(ctx context.Context, cf CommonFlags, of OutputFlags) (Config, error) {
	cfg := defaultConfig()
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFileStrict(ctx, cf.Config, &cfg); err != nil {
			return Config{}, err
		}
	}
	if cfg.Logging == (cmdutil.LoggingConfig{}) {
		cfg.Logging = cf.LoggingConfig()
	} else {
		overrideLogging(&cfg.Logging, cf.LoggingFlags)
	}
	if len(of.Scheme) > 0 {
		if err := cfg.Scheme.Set(of.Scheme); err != nil {
			return Config{}, err
		}
	}
	if len(of.Format) > 0 {
		cfg.Format = of.Format
	}
	if err := validFormat(cfg.Format); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// defaultLoggingFlags must match the subcmd tags of cmdutil.LoggingFlags.
var defaultLoggingFlags = cmdutil.LoggingFlags{Format: "json"}

// overrideLogging applies the logging flags that were changed from their
// defaults to a logging configuration read from a config file.
func overrideLogging(cfg *cmdutil.LoggingConfig, lf cmdutil.LoggingFlags) {
	if lf.Level != defaultLoggingFlags.Level {
		cfg.Level = lf.Level
	}
	if lf.File != defaultLoggingFlags.File {
		cfg.File = lf.File
	}
	if lf.Format != defaultLoggingFlags.Format {
		cfg.Format = lf.Format
	}
	if lf.SourceCode != defaultLoggingFlags.SourceCode {
		cfg.SourceCode = lf.SourceCode
	}
}

// overrideServer is like overrideLogging for the serve command's flags.
func overrideServer(cfg *ServerConfig, address string, grace time.Duration) {
	if address != defaultAddress {
		cfg.Address = address
	}
	if grace != defaultGrace {
		cfg.Grace = grace
	}
}

func validFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unsupported format %q, expected text, json or yaml", format)
}

// setup loads the configuration and creates a logger which is stored
// in the returned context. The returned function closes the log file.
func setup(ctx context.Context, cf CommonFlags, of OutputFlags) (context.Context, Config, func(), error) {
	cfg, err := loadConfig(ctx, cf, of)
	if err != nil {
		return ctx, Config{}, nil, err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return ctx, Config{}, nil, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	ctxlog.Logger(ctx).Debug("configuration", "config", cf.Config, "scheme", cfg.Scheme.String(), "format", cfg.Format)
	return ctx, cfg, func() { logger.Close() }, nil
}

package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"seed-almanac/category"
	"seed-almanac/internal/almanac"
	"seed-almanac/internal/config"
	"seed-almanac/internal/engine"
	"seed-almanac/internal/logging"
	"seed-almanac/internal/source"
)

// errInvalidAlmanac marks failures caused by the input rather than the tool.
var errInvalidAlmanac = errors.New("invalid almanac")

func isInvalid(err error) bool {
	return errors.Is(err, errInvalidAlmanac) || errors.Is(err, engine.ErrInvalidTables)
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	chain      []string
	workers    int
	strict     bool
	devLog     bool
}

// app bundles what a subcommand needs once flags are parsed.
type app struct {
	cfg     *config.Config
	chain   category.Chain
	logger  *zap.Logger
	almanac *almanac.Almanac
}

// loadConfig merges the config file with flags that were set explicitly.
func (g *globalFlags) loadConfig(changed func(string) bool) (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}

	if changed("log-level") {
		cfg.Log.Level = g.logLevel
	}

	if changed("dev-log") {
		cfg.Log.Development = g.devLog
	}

	if changed("chain") {
		cfg.Chain = g.chain
	}

	if changed("workers") {
		cfg.Workers = g.workers
	}

	if changed("strict") {
		cfg.Strict = g.strict
	}

	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newApp(g *globalFlags, changed func(string) bool, path string) (*app, error) {
	cfg, err := g.loadConfig(changed)
	if err != nil {
		return nil, err
	}

	chain, err := cfg.ResolveChain()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	a, err := source.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidAlmanac, err)
	}

	logger.Debug("almanac loaded",
		zap.String("path", path),
		zap.Int("seeds", len(a.Seeds)),
		zap.Int("tables", len(a.Tables)),
	)

	return &app{cfg: cfg, chain: chain, logger: logger, almanac: a}, nil
}

func (a *app) engine() (*engine.Engine, error) {
	opts := []engine.Option{
		engine.WithLogger(a.logger),
		engine.WithWorkers(a.cfg.Workers),
	}

	if a.cfg.Strict {
		opts = append(opts, engine.WithStrict())
	}

	e, err := engine.New(a.chain, a.almanac.Tables, opts...)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidTables) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", errInvalidAlmanac, err)
	}

	return e, nil
}

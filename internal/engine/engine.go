package engine

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"seed-almanac/category"
	"seed-almanac/internal/almanac"
)

// Engine resolves values along a chain. It is safe for concurrent use.
type Engine struct {
	chain    category.Chain
	tables   almanac.Tables
	backward almanac.Index
	forward  almanac.Index
	// fwdErr is set when tables share a source category; only forward
	// resolution depends on that index.
	fwdErr  error
	logger  *zap.Logger
	workers int
	strict  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithWorkers bounds the number of seeds resolved concurrently.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithStrict makes New reject tables that fail almanac.Validate.
func WithStrict() Option {
	return func(e *Engine) {
		e.strict = true
	}
}

// New indexes tables along chain. Two tables sharing a destination category
// are rejected. Tables sharing a source category are accepted; backward
// resolution ignores the source half of a table key, and forward resolution
// reports the ambiguity when it is used.
func New(chain category.Chain, tables almanac.Tables, opts ...Option) (*Engine, error) {
	e := &Engine{
		chain:   chain,
		tables:  tables,
		logger:  zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(e)
	}

	if chain.Len() == 0 {
		return nil, fmt.Errorf("engine: %w", category.ErrInvalidChain)
	}

	if e.strict {
		if diags := almanac.Validate(chain, tables); !diags.IsValid() {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTables, diags.Error())
		}
	}

	var err error

	e.backward, err = almanac.NewDestIndex(tables)
	if err != nil {
		return nil, fmt.Errorf("index by destination: %w", err)
	}

	if e.forward, err = almanac.NewSourceIndex(tables); err != nil {
		e.fwdErr = fmt.Errorf("index by source: %w", err)
		e.logger.Debug("forward resolution disabled", zap.Error(err))
	}

	e.logger.Debug("engine ready",
		zap.Stringer("chain", chain),
		zap.Int("tables", len(tables)),
		zap.Int("workers", e.workers),
		zap.Bool("strict", e.strict),
	)

	return e, nil
}

// Chain returns the chain the engine walks.
func (e *Engine) Chain() category.Chain {
	return e.chain
}

// ResolveHop moves v one category back. The table leading to v's category
// supplies the rules; the first rule whose destination window holds v's
// magnitude gives the new magnitude, otherwise the magnitude is kept.
//
// If no table leads to v's category, a warning is logged and a zero value in
// the chain's first category is returned. Resolving a value already in the
// first category fails with category.ErrNoPredecessor.
func (e *Engine) ResolveHop(v category.Value) (category.Value, error) {
	if v.Is(e.chain.First()) || !e.chain.Contains(v.Category()) {
		return v.StepBack(e.chain, nil)
	}

	rules, ok := e.backward.Lookup(v.Category())
	if !ok {
		e.logger.Warn("no table leads to category, substituting sentinel",
			zap.Stringer("category", v.Category()),
			zap.Int64("magnitude", v.Magnitude()),
			zap.Stringer("sentinel", e.chain.First()),
		)

		return category.New(e.chain.First(), 0), nil
	}

	if m, ok := rules.Backward(v.Magnitude()); ok {
		return v.StepBack(e.chain, &m)
	}

	return v.StepBack(e.chain, nil)
}

// ResolveForward moves v one category forward using the table that starts
// at v's category. Uncovered magnitudes are kept. A missing table is an
// error, as are tables sharing a source category.
func (e *Engine) ResolveForward(v category.Value) (category.Value, error) {
	if e.fwdErr != nil {
		return category.Value{}, e.fwdErr
	}

	if v.Is(e.chain.Last()) || !e.chain.Contains(v.Category()) {
		return v.StepForward(e.chain, nil)
	}

	rules, ok := e.forward.Lookup(v.Category())
	if !ok {
		return category.Value{}, fmt.Errorf("%w: nothing maps from %s", ErrMissingTable, v.Category())
	}

	if m, ok := rules.Forward(v.Magnitude()); ok {
		return v.StepForward(e.chain, &m)
	}

	return v.StepForward(e.chain, nil)
}

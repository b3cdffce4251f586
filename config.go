// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "github.com/go-antlr/adaptivell/internal/diag"

// SimulatorConfig groups the runtime knobs a ParserATNSimulator exposes:
// which PredictionMode to run under, a stored DFA state limit
// (MaxDFAStates, which ParserATNSimulator does not consult), and where
// diagnostics go. Built with functional options, matching the explicit
// struct-plus-constructor shape the teacher's own ATN/state
// constructors use rather than a config file or global state.
type SimulatorConfig struct {
	PredictionMode PredictionMode
	MaxDFAStates   int
	Logger         *diag.Logger
}

// Option configures a SimulatorConfig.
type Option func(*SimulatorConfig)

// WithPredictionMode overrides the default PredictionModeLL.
func WithPredictionMode(m PredictionMode) Option {
	return func(c *SimulatorConfig) { c.PredictionMode = m }
}

// WithMaxDFAStates records a limit on how many DFAState values a single
// decision's DFA may intern. The value is only stored: ParserATNSimulator
// does not read it, and every decision's DFA grows without bound.
func WithMaxDFAStates(n int) Option {
	return func(c *SimulatorConfig) { c.MaxDFAStates = n }
}

// WithLogger installs a diagnostic sink. Omitting this option leaves
// logging disabled.
func WithLogger(l *diag.Logger) Option {
	return func(c *SimulatorConfig) { c.Logger = l }
}

// NewSimulatorConfig applies opts over the defaults: LL prediction mode,
// an unbounded DFA cache, and logging disabled.
func NewSimulatorConfig(opts ...Option) *SimulatorConfig {
	c := &SimulatorConfig{
		PredictionMode: PredictionModeLL,
		MaxDFAStates:   0,
		Logger:         diag.Disabled(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

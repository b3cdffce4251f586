// Package diag wraps zerolog with the event vocabulary the prediction
// engine needs: decision entry/exit, DFA edge installation, cache
// growth milestones, and the ambiguity/context-sensitivity reports that
// mirror the ErrorListener contract. Grounded in the factory/logger
// split of the teacher corpus's pkg/logging package, trimmed to what a
// library (rather than an application) needs: no file rotation, no
// environment loading, just a configured zerolog.Logger and a no-op
// default so callers pay nothing until they opt in.
package diag

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger is the diagnostic sink installed on a simulator.
type Logger struct {
	z        zerolog.Logger
	disabled bool
}

// Disabled returns the default logger: every call is a no-op.
func Disabled() *Logger {
	return &Logger{z: zerolog.New(io.Discard), disabled: true}
}

// New wraps an existing zerolog.Logger, e.g. one built by an
// application's own logging factory.
func New(z zerolog.Logger) *Logger {
	return &Logger{z: z}
}

func (l *Logger) DecisionEnter(decision, startIndex int) {
	if l.disabled {
		return
	}
	l.z.Debug().Int("decision", decision).Int("start_index", startIndex).Msg("adaptivePredict enter")
}

func (l *Logger) DecisionExit(decision, prediction int) {
	if l.disabled {
		return
	}
	l.z.Debug().Int("decision", decision).Int("prediction", prediction).Msg("adaptivePredict exit")
}

func (l *Logger) SLLToLLEscalation(decision, startIndex int) {
	if l.disabled {
		return
	}
	l.z.Info().Int("decision", decision).Int("start_index", startIndex).Msg("SLL conflict, escalating to LL")
}

func (l *Logger) DFAEdgeInstalled(decision, tokenType, fromState, toState int) {
	if l.disabled {
		return
	}
	l.z.Debug().Int("decision", decision).Int("token", tokenType).Int("from", fromState).Int("to", toState).Msg("DFA edge installed")
}

func (l *Logger) CacheMilestone(decision, numStates int) {
	if l.disabled {
		return
	}
	l.z.Info().Int("decision", decision).Int("num_states", numStates).Msg("DFA cache size milestone")
}

func (l *Logger) Ambiguity(decision, startIndex, stopIndex int, exact bool, ambigAlts string) {
	if l.disabled {
		return
	}
	l.z.Warn().Int("decision", decision).Int("start_index", startIndex).Int("stop_index", stopIndex).
		Bool("exact", exact).Str("ambig_alts", ambigAlts).Msg("ambiguity detected")
}

func (l *Logger) ContextSensitivity(decision, startIndex, stopIndex, prediction int) {
	if l.disabled {
		return
	}
	l.z.Info().Int("decision", decision).Int("start_index", startIndex).Int("stop_index", stopIndex).
		Int("prediction", prediction).Msg("context sensitivity resolved")
}

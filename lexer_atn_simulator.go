// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LexerATNSimulator recognizes the longest token a lexer rule's ATN
// can match at the current input position, reusing the same
// ATNConfigSet/closure machinery ParserATNSimulator runs on (§1
// Non-goals: "lexer DFA construction details beyond the shared
// simulator skeleton" are out of scope — this type is that shared
// skeleton, not a lexer DFA cache).
type LexerATNSimulator struct {
	atn        *ATN
	mergeCache *mergeCache
	config     *SimulatorConfig
}

// NewLexerATNSimulator wires a lexer simulator over atn.
func NewLexerATNSimulator(atn *ATN, opts ...Option) *LexerATNSimulator {
	return &LexerATNSimulator{atn: atn, mergeCache: newMergeCache(), config: NewSimulatorConfig(opts...)}
}

// LexerMatch is the outcome of a successful Match: which rule matched
// and how many input symbols it consumed.
type LexerMatch struct {
	RuleIndex int
	Length    int
}

// Match scans input from its current position using mode's start
// state, applying maximal-munch: it keeps the longest position at
// which some rule's RuleStopState was reached, breaking ties toward
// the lowest rule index (earliest-declared rule wins, the same
// tie-break convention generated lexers rely on). Input is restored to
// its starting position before returning; it is the caller's
// responsibility to consume the matched length once it decides to
// accept it.
func (l *LexerATNSimulator) Match(input CharStream, mode int) (*LexerMatch, error) {
	start := l.atn.modeToStartState[mode]
	configs := NewATNConfigSet(false)
	busy := newClosureBusySet()
	for i, t := range start.GetTransitions() {
		c := NewATNConfig(t.getTarget(), i+1, EmptyPredictionContext)
		l.closure(c, configs, busy)
	}

	startIndex := input.Index()
	defer input.Seek(startIndex)

	var best *LexerMatch
	consumed := 0
	for {
		if rule := l.acceptedRule(configs); rule >= 0 {
			best = &LexerMatch{RuleIndex: rule, Length: consumed}
		}
		symbol := input.LA(1)
		if symbol == TokenEOF {
			break
		}
		reach := l.computeReach(configs, symbol)
		if reach == nil {
			break
		}
		input.Consume()
		consumed++
		configs = reach
	}

	if best == nil {
		return nil, &PredictionError{Kind: NoViableAlt, Message: "no viable lexer rule at input position"}
	}
	return best, nil
}

func (l *LexerATNSimulator) acceptedRule(configs *ATNConfigSet) int {
	best := -1
	for _, c := range configs.Configs() {
		if _, ok := c.state.(*RuleStopState); ok {
			if best == -1 || c.state.GetRuleIndex() < best {
				best = c.state.GetRuleIndex()
			}
		}
	}
	return best
}

func (l *LexerATNSimulator) computeReach(configs *ATNConfigSet, symbol int) *ATNConfigSet {
	reach := NewATNConfigSet(false)
	busy := newClosureBusySet()
	for _, c := range configs.Configs() {
		for _, t := range c.state.GetTransitions() {
			if t.Matches(symbol, 0, 0x10FFFF) {
				next := c.transitionTo(t.getTarget(), c.context)
				l.closure(next, reach, busy)
			}
		}
	}
	if reach.IsEmpty() {
		return nil
	}
	return reach
}

func (l *LexerATNSimulator) closure(config *ATNConfig, configs *ATNConfigSet, busy *closureBusySet) {
	if _, ok := config.state.(*RuleStopState); ok {
		if !busy.add(config) {
			return
		}
		if config.context == nil || config.context.isEmpty() {
			configs.Add(config, l.mergeCache)
			return
		}
		for i := 0; i < config.context.length(); i++ {
			if config.context.getReturnState(i) == PredictionContextEmptyReturnState {
				configs.Add(config, l.mergeCache)
				continue
			}
			returnState := l.atn.states[config.context.getReturnState(i)]
			newContext := config.context.getParent(i)
			c := NewATNConfig(returnState, config.alt, newContext)
			l.closure(c, configs, busy)
		}
		return
	}

	if !busy.add(config) {
		return
	}
	configs.Add(config, l.mergeCache)

	for _, t := range config.state.GetTransitions() {
		switch tt := t.(type) {
		case *RuleTransition:
			newContext := NewSingletonPredictionContext(config.context, tt.followState.GetStateNumber())
			c := config.transitionTo(t.getTarget(), newContext)
			l.closure(c, configs, busy)
		default:
			if t.IsEpsilon() {
				c := config.transitionTo(t.getTarget(), config.context)
				l.closure(c, configs, busy)
			}
		}
	}
}

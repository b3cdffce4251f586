// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATNConfig is a triple (state, alt, context) representing one possible
// parse position, plus the optional semanticContext and the
// reachesIntoOuterContext bookkeeping used by conflict analysis (§3.5).
//
// state and alt never change after construction; context may be
// replaced in place when ATNConfigSet.add merges an incoming config
// into an existing entry (§4.5).
type ATNConfig struct {
	state  ATNState
	alt    int
	context PredictionContext

	semanticContext SemanticContext

	// reachesIntoOuterContext counts how many rule-stop pops, during
	// full-context closure, crossed beyond the decision's own starting
	// context. Zero means the config never left the decision's rule.
	reachesIntoOuterContext int

	precedenceFilterSuppressed bool
}

// NewATNConfig creates a fresh config with the default NONE semantic
// context. context may be nil only before the config has gone through
// closure (§3.5).
func NewATNConfig(state ATNState, alt int, context PredictionContext) *ATNConfig {
	return &ATNConfig{state: state, alt: alt, context: context, semanticContext: SemanticContextNone}
}

// NewATNConfigWithSemantic creates a config carrying a non-default
// semantic context.
func NewATNConfigWithSemantic(state ATNState, alt int, context PredictionContext, semCtx SemanticContext) *ATNConfig {
	if semCtx == nil {
		semCtx = SemanticContextNone
	}
	return &ATNConfig{state: state, alt: alt, context: context, semanticContext: semCtx}
}

// transitionTo returns a copy of c advanced to state with the given
// context, preserving alt and semanticContext. Used by closure when
// following a transition.
func (c *ATNConfig) transitionTo(state ATNState, context PredictionContext) *ATNConfig {
	return &ATNConfig{
		state:                      state,
		alt:                        c.alt,
		context:                    context,
		semanticContext:            c.semanticContext,
		reachesIntoOuterContext:    c.reachesIntoOuterContext,
		precedenceFilterSuppressed: c.precedenceFilterSuppressed,
	}
}

func (c *ATNConfig) GetState() ATNState            { return c.state }
func (c *ATNConfig) GetAlt() int                   { return c.alt }
func (c *ATNConfig) GetContext() PredictionContext { return c.context }
func (c *ATNConfig) SetContext(ctx PredictionContext) { c.context = ctx }
func (c *ATNConfig) GetSemanticContext() SemanticContext { return c.semanticContext }
func (c *ATNConfig) GetReachesIntoOuterContext() int  { return c.reachesIntoOuterContext }

// lookupHash/lookupEquals implement the "Lookup" discipline of §4.4:
// two configs are equivalent iff (state, alt, semanticContext) match.
func (c *ATNConfig) lookupHash() int {
	h := 7
	h = h*31 + c.state.GetStateNumber()
	h = h*31 + c.alt
	h = h*31 + c.semanticContext.hash()
	return h
}

func (c *ATNConfig) lookupEquals(o *ATNConfig) bool {
	return c.state.GetStateNumber() == o.state.GetStateNumber() &&
		c.alt == o.alt &&
		c.semanticContext.equals(o.semanticContext)
}

// orderedHash/orderedEquals implement the "Ordered" discipline of §4.4:
// equivalence requires the full tuple, including context, to match.
func (c *ATNConfig) orderedHash() int {
	h := c.lookupHash()
	if c.context != nil {
		h = h*31 + c.context.hash()
	}
	return h
}

func (c *ATNConfig) orderedEquals(o *ATNConfig) bool {
	if !c.lookupEquals(o) {
		return false
	}
	if c.context == nil || o.context == nil {
		return c.context == o.context
	}
	return c.context.equals(o.context)
}

// LexerActionExecutor runs the lexer actions accumulated along a path
// through the ATN once a lexer rule is accepted.
type LexerActionExecutor struct {
	actions []LexerAction
}

func NewLexerActionExecutor(actions []LexerAction) *LexerActionExecutor {
	return &LexerActionExecutor{actions: actions}
}

// LexerATNConfig extends ATNConfig with the lexer action executor
// accumulated on the path leading to this configuration (§3.5).
type LexerATNConfig struct {
	ATNConfig
	lexerActionExecutor *LexerActionExecutor
	passedThroughNonGreedyDecision bool
}

func NewLexerATNConfig(state ATNState, alt int, context PredictionContext, executor *LexerActionExecutor) *LexerATNConfig {
	return &LexerATNConfig{
		ATNConfig:            ATNConfig{state: state, alt: alt, context: context, semanticContext: SemanticContextNone},
		lexerActionExecutor: executor,
	}
}

func (c *LexerATNConfig) transitionTo(state ATNState, context PredictionContext) *LexerATNConfig {
	return &LexerATNConfig{
		ATNConfig:                      *c.ATNConfig.transitionTo(state, context),
		lexerActionExecutor:            c.lexerActionExecutor,
		passedThroughNonGreedyDecision: c.passedThroughNonGreedyDecision || isNonGreedyDecisionState(state),
	}
}

func isNonGreedyDecisionState(state ATNState) bool {
	d, ok := state.(DecisionState)
	return ok && d.getNonGreedy()
}

// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LL1AnalyzerHitPred marks that lookahead computation crossed a
// context-dependent predicate it could not evaluate statically; it is
// folded into the returned set rather than silently dropped.
const LL1AnalyzerHitPred = -3

// LL1Analyzer computes the set of tokens that could be matched next
// from a given ATN state, optionally following the call stack recorded
// by a RuleContext (§9 "supplemented features": the NextTokens/
// getExpectedTokens surface used for error recovery and IDE-style
// completion, grounded in the real runtime's analyzer of the same
// name).
type LL1Analyzer struct {
	atn *ATN
}

// NewLL1Analyzer returns an analyzer over the given ATN.
func NewLL1Analyzer(atn *ATN) *LL1Analyzer {
	return &LL1Analyzer{atn: atn}
}

// llLookKey identifies one (state, context) pair already visited during
// a Look walk, preventing infinite recursion around rule cycles.
type llLookKey struct {
	state int
	ctx   PredictionContext
}

// Look computes the set of tokens reachable from s. If ctx is non-nil,
// the walk continues past the rule stop states recorded in ctx,
// popping the call stack the way closure does; a nil ctx restricts the
// walk to s's own rule, leaving Token.EPSILON in the result if the rule
// can end without consuming anything.
func (la *LL1Analyzer) Look(s, stopState ATNState, ctx RuleContext) *IntervalSet {
	r := NewIntervalSet()
	var lookContext PredictionContext
	if ctx != nil {
		lookContext = predictionContextFromRuleContext(la.atn, ctx)
	}
	visited := make(map[llLookKey]bool)
	calledRuleStack := NewBitSet()
	la.look(s, stopState, lookContext, r, visited, calledRuleStack, true, true)
	return r
}

func (la *LL1Analyzer) look(s, stopState ATNState, ctx PredictionContext, look *IntervalSet, visited map[llLookKey]bool, calledRuleStack *BitSet, seeThroughPreds, addEOF bool) {
	key := llLookKey{state: s.GetStateNumber(), ctx: ctx}
	if visited[key] {
		return
	}
	visited[key] = true

	if s == stopState {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		}
		if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
	}

	if _, ok := s.(*RuleStopState); ok {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		}
		if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
		if ctx != EmptyPredictionContext {
			wasSet := calledRuleStack.Get(s.GetRuleIndex())
			calledRuleStack.Clear(s.GetRuleIndex())
			defer func() {
				if wasSet {
					calledRuleStack.Set(s.GetRuleIndex())
				}
			}()
			for i := 0; i < ctx.length(); i++ {
				returnState := la.atn.states[ctx.getReturnState(i)]
				la.look(returnState, stopState, ctx.getParent(i), look, visited, calledRuleStack, seeThroughPreds, addEOF)
			}
			return
		}
	}

	for _, t := range s.GetTransitions() {
		switch tt := t.(type) {
		case *RuleTransition:
			if calledRuleStack.Get(tt.ruleIndex) {
				continue
			}
			newContext := NewSingletonPredictionContext(ctx, tt.followState.GetStateNumber())
			calledRuleStack.Set(tt.ruleIndex)
			la.look(t.getTarget(), stopState, newContext, look, visited, calledRuleStack, seeThroughPreds, addEOF)
			calledRuleStack.Clear(tt.ruleIndex)
		case *PredicateTransition:
			if seeThroughPreds {
				la.look(t.getTarget(), stopState, ctx, look, visited, calledRuleStack, seeThroughPreds, addEOF)
			} else {
				look.AddOne(LL1AnalyzerHitPred)
			}
		case *WildcardTransition:
			look.AddRange(TokenMinUserTokenType, la.atn.maxTokenType)
		default:
			if t.IsEpsilon() {
				la.look(t.getTarget(), stopState, ctx, look, visited, calledRuleStack, seeThroughPreds, addEOF)
				continue
			}
			set := t.getLabel()
			if set == nil {
				continue
			}
			if _, ok := t.(*NotSetTransition); ok {
				set = set.complement(TokenMinUserTokenType, la.atn.maxTokenType)
			}
			look.addSet(set)
		}
	}
}

// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "sort"

// ParserATNSimulator drives adaptive LL(*) prediction for one parser:
// closure, reach, conflict detection, and DFA caching (§4.6). A single
// instance may be shared by multiple parser invocations of the same
// grammar (§5): the ATN, sharedContextCache, and every DFA in
// decisionToDFA are mutated additively only.
type ParserATNSimulator struct {
	atn                *ATN
	decisionToDFA      []*DFA
	sharedContextCache *PredictionContextCache
	mergeCache         *mergeCache

	recognizer Recognizer
	config     *SimulatorConfig

	errorListener ErrorListener
}

// NewParserATNSimulator wires a simulator over atn, with one DFA per
// decision already allocated in decisionToDFA (index == decision).
// recognizer may be nil, in which case semantic predicates are treated
// as vacuously true (§3.3 predicate transitions, mirroring
// Predicate.evaluate's documented nil-parser behavior).
func NewParserATNSimulator(atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache, recognizer Recognizer, opts ...Option) *ParserATNSimulator {
	return &ParserATNSimulator{
		atn:                atn,
		decisionToDFA:      decisionToDFA,
		sharedContextCache: sharedContextCache,
		mergeCache:         newMergeCache(),
		recognizer:         recognizer,
		config:             NewSimulatorConfig(opts...),
		errorListener:      NewConsoleErrorListener(),
	}
}

// SetErrorListener installs the listener decisions are reported through
// (§6.3).
func (sim *ParserATNSimulator) SetErrorListener(l ErrorListener) { sim.errorListener = l }

// AdaptivePredict is the entry point (§4.6): it returns the predicted
// alternative for the given decision, consuming exactly the lookahead
// it needs and restoring the input position to startIndex before
// returning (§5 ordering/resource-acquisition rules).
func (sim *ParserATNSimulator) AdaptivePredict(input TokenStream, decision int, outerContext RuleContext) (int, error) {
	dfa := sim.decisionToDFA[decision]
	startIndex := input.Index()
	mark := input.Mark()
	defer input.Release(mark)

	sim.config.Logger.DecisionEnter(decision, startIndex)

	s0 := dfa.GetS0()
	if s0 == nil {
		configs := sim.computeStartState(dfa.atnStartState, EmptyPredictionContext, false)
		s0 = sim.addDFAState(dfa, NewDFAState(configs))
		dfa.SetS0(s0)
	}

	alt, err := sim.execATN(input, dfa, s0, outerContext, startIndex)
	input.Seek(startIndex)
	if err != nil {
		return 0, err
	}

	sim.config.Logger.DecisionExit(decision, alt)
	return alt, nil
}

// execATN runs the SLL pass, escalating to full-context LL prediction
// the moment a DFA state demands it (§4.6 SLL pass, step 3).
func (sim *ParserATNSimulator) execATN(input TokenStream, dfa *DFA, s0 *DFAState, outerContext RuleContext, startIndex int) (int, error) {
	previousD := s0
	t := input.LA(1)

	for {
		D := previousD.GetEdge(t)
		if D == nil {
			reach := sim.computeReachSet(previousD.GetConfigs(), t, false)
			if reach == nil {
				sim.addDFAEdge(dfa, previousD, t, nil)
				return 0, newNoViableAltError(dfa.Decision(), input.LT(1), previousD.GetConfigs())
			}
			D = sim.computeTargetState(dfa, reach, false)
			sim.addDFAEdge(dfa, previousD, t, D)
		}

		if D.RequiresFullContext() {
			input.Seek(startIndex)
			sim.config.Logger.SLLToLLEscalation(dfa.Decision(), startIndex)
			sim.errorListener.ReportAttemptingFullContext(sim.recognizer, dfa, startIndex, input.Index(), D.GetConfigs().GetConflictingAlts(), D.GetConfigs())

			alt, ambigAlts, err := sim.execATNWithFullContext(input, dfa, previousD, outerContext)
			if err != nil {
				return 0, err
			}
			if ambigAlts != nil && !ambigAlts.IsEmpty() {
				exact := sim.config.PredictionMode == PredictionModeLLExactAmbigDetection
				sim.config.Logger.Ambiguity(dfa.Decision(), startIndex, input.Index(), exact, ambigAlts.String())
				sim.errorListener.ReportAmbiguity(sim.recognizer, dfa, startIndex, input.Index(), exact, ambigAlts, D.GetConfigs())
			} else {
				sim.config.Logger.ContextSensitivity(dfa.Decision(), startIndex, input.Index(), alt)
				sim.errorListener.ReportContextSensitivity(sim.recognizer, dfa, startIndex, input.Index(), alt, D.GetConfigs())
			}
			return alt, nil
		}

		if D.IsAcceptState() {
			if len(D.GetPredicates()) == 0 {
				return D.GetPrediction(), nil
			}
			if alt := sim.evalPredicates(D.GetPredicates(), outerContext); alt != ATNInvalidAltNumber {
				return alt, nil
			}
			return 0, newFailedPredicateError(dfa.Decision(), "no predicate satisfied at accept state")
		}

		input.Consume()
		previousD = D
		t = input.LA(1)
	}
}

// execATNWithFullContext reruns prediction from startIndex with the
// caller's outer context attached to every config, so left-recursive
// cycles and nested rule calls disambiguate precisely (§4.6 LL pass).
// It returns the predicted alt and, when the decision was genuinely
// ambiguous rather than merely context-sensitive, the conflicting alt
// set reportAmbiguity needs.
func (sim *ParserATNSimulator) execATNWithFullContext(input TokenStream, dfa *DFA, previousD *DFAState, outerContext RuleContext) (int, *BitSet, error) {
	fullCtx := true

	s0Full := dfa.GetS0Full()
	if s0Full == nil {
		llCtx := predictionContextFromRuleContext(sim.atn, outerContext)
		configs := sim.computeStartState(dfa.atnStartState, llCtx, fullCtx)
		s0Full = sim.addDFAState(dfa, NewDFAState(configs))
		dfa.SetS0Full(s0Full)
	}

	D := s0Full
	t := input.LA(1)
	for {
		reach := sim.computeReachSet(D.GetConfigs(), t, fullCtx)
		if reach == nil {
			return 0, nil, newNoViableAltError(dfa.Decision(), input.LT(1), D.GetConfigs())
		}

		if uniqueAlt := reach.UniqueAlt(); uniqueAlt != ATNInvalidAltNumber {
			return uniqueAlt, nil, nil
		}

		altsets := reach.GetConflictingAltSubsets()
		ambigAlts := getConflictingAlts(reach)
		if alt := resolvesToJustOneViableAlt(altsets); alt != ATNInvalidAltNumber {
			return alt, ambigAlts, nil
		}

		if !ambigAlts.IsEmpty() && (t == TokenEOF || len(reach.Configs()) == len(D.GetConfigs())) {
			return ambigAlts.NextSetBit(0), ambigAlts, nil
		}
		if t == TokenEOF {
			return 0, nil, newNoViableAltError(dfa.Decision(), input.LT(1), reach)
		}

		D = sim.addDFAState(dfa, NewDFAState(reach))
		input.Consume()
		t = input.LA(1)
	}
}

// computeTargetState builds, interns, and returns the DFAState reached
// from a closed config set: a unique alt makes it an immediate accept
// state; a predicate-gated tie defers the decision to accept-time
// evaluation; an unresolved conflict either picks the minimum alt
// (fullCtx) or marks the state as requiring full-context escalation
// (§4.6 step "predicateDFAState / pick unique alt / conflict
// analysis").
func (sim *ParserATNSimulator) computeTargetState(dfa *DFA, reach *ATNConfigSet, fullCtx bool) *DFAState {
	D := NewDFAState(reach)

	if uniqueAlt := reach.UniqueAlt(); uniqueAlt != ATNInvalidAltNumber {
		D.SetPrediction(uniqueAlt)
		return sim.addDFAState(dfa, D)
	}

	if reach.HasSemanticContext() {
		sim.predicateDFAState(D, reach)
		if D.IsAcceptState() {
			return sim.addDFAState(dfa, D)
		}
	}

	if hasSLLConflictTerminatingPrediction(reach) {
		if fullCtx {
			D.SetPrediction(getConflictingAlts(reach).NextSetBit(0))
		} else {
			D.requiresFullContext = true
			reach.SetConflictingAlts(getConflictingAlts(reach))
		}
	}
	return sim.addDFAState(dfa, D)
}

// predicateDFAState resolves a conflict among configs that carry
// distinguishing semantic predicates: each alt's per-config predicates
// are OR'd together, and an alt whose merged predicate is NONE (always
// true) wins outright; otherwise the state becomes a predicate-gated
// accept state evaluated at AdaptivePredict time (§3.7 PredicatePrediction).
func (sim *ParserATNSimulator) predicateDFAState(D *DFAState, configs *ATNConfigSet) {
	altToPred := make(map[int]SemanticContext)
	var order []int
	for _, c := range configs.Configs() {
		if existing, ok := altToPred[c.alt]; ok {
			altToPred[c.alt] = SemanticContextOr(existing, c.semanticContext)
			continue
		}
		order = append(order, c.alt)
		altToPred[c.alt] = c.semanticContext
	}
	sort.Ints(order)

	for _, alt := range order {
		if altToPred[alt] == SemanticContextNone {
			D.SetPrediction(alt)
			return
		}
	}
	for _, alt := range order {
		D.AddPredicate(altToPred[alt], alt)
	}
	D.isAcceptState = true
	D.prediction = ATNInvalidAltNumber
}

// evalPredicates returns the alt of the first predicate that evaluates
// true, or ATNInvalidAltNumber if none do (§7: "a predicate that is
// uniquely predicted but evaluates false causes FailedPredicate").
func (sim *ParserATNSimulator) evalPredicates(preds []PredicatePrediction, outerContext RuleContext) int {
	for _, pp := range preds {
		if pp.Pred.evaluate(sim.recognizer, outerContext) {
			return pp.Alt
		}
	}
	return ATNInvalidAltNumber
}

func (sim *ParserATNSimulator) addDFAState(dfa *DFA, state *DFAState) *DFAState {
	state.configs.OptimizeConfigs(sim.sharedContextCache)
	interned := dfa.AddState(state)
	if n := dfa.NumStates(); n%64 == 0 {
		sim.config.Logger.CacheMilestone(dfa.Decision(), n)
	}
	return interned
}

func (sim *ParserATNSimulator) addDFAEdge(dfa *DFA, from *DFAState, t int, target *DFAState) {
	dfa.AddEdge(from, t, target)
	if target != nil {
		sim.config.Logger.DFAEdgeInstalled(dfa.Decision(), t, from.GetStateNumber(), target.GetStateNumber())
	}
}

// computeStartState builds the initial config set for a decision: one
// config per outgoing alternative of p, each closed over ctx (§4.6).
func (sim *ParserATNSimulator) computeStartState(p ATNState, ctx PredictionContext, fullCtx bool) *ATNConfigSet {
	configs := NewATNConfigSet(fullCtx)
	busy := newClosureBusySet()
	for i, t := range p.GetTransitions() {
		c := NewATNConfig(t.getTarget(), i+1, ctx)
		sim.closure(c, configs, busy, true, fullCtx)
	}
	return configs
}

// computeReachSet advances every config in configs across one input
// symbol t, closing each resulting config before it is added (§4.6
// "Reach advances consuming transitions by one input symbol, producing
// a new configuration set, then closes it"). Configs already in a rule
// stop state are carried over unchanged when t is EOF and dropped
// otherwise. It returns nil if nothing survives, signaling
// no-viable-alt to the caller.
func (sim *ParserATNSimulator) computeReachSet(configs *ATNConfigSet, t int, fullCtx bool) *ATNConfigSet {
	reach := NewATNConfigSet(fullCtx)
	busy := newClosureBusySet()
	for _, c := range configs.Configs() {
		if _, ok := c.state.(*RuleStopState); ok {
			if t == TokenEOF {
				reach.Add(c.transitionTo(c.state, c.context), sim.mergeCache)
			}
			continue
		}
		for _, trans := range c.state.GetTransitions() {
			target := sim.getReachableTarget(trans, t)
			if target == nil {
				continue
			}
			next := c.transitionTo(target, c.context)
			sim.closure(next, reach, busy, false, fullCtx)
		}
	}
	if reach.IsEmpty() {
		return nil
	}
	return reach
}

func (sim *ParserATNSimulator) getReachableTarget(trans Transition, ttype int) ATNState {
	if trans.Matches(ttype, TokenMinUserTokenType, sim.atn.maxTokenType) {
		return trans.getTarget()
	}
	return nil
}

// closure computes the epsilon-closure of one config into configs,
// suppressing re-entry of any (state, alt, context, semanticContext)
// tuple already seen this call via busy (§4.6: "a per-call closureBusy
// set keyed by identity... duplicates are suppressed").
func (sim *ParserATNSimulator) closure(config *ATNConfig, configs *ATNConfigSet, busy *closureBusySet, collectPredicates, fullCtx bool) {
	sim.closureCheckingStopState(config, configs, busy, collectPredicates, fullCtx, 0)
}

func (sim *ParserATNSimulator) closureCheckingStopState(config *ATNConfig, configs *ATNConfigSet, busy *closureBusySet, collectPredicates, fullCtx bool, depth int) {
	if _, ok := config.state.(*RuleStopState); ok {
		if !busy.add(config) {
			return
		}
		if config.context != nil && !config.context.isEmpty() {
			for i := 0; i < config.context.length(); i++ {
				if config.context.getReturnState(i) == PredictionContextEmptyReturnState {
					if fullCtx {
						configs.Add(config.transitionTo(config.state, EmptyPredictionContext), sim.mergeCache)
					} else {
						configs.Add(config, sim.mergeCache)
					}
					continue
				}
				returnState := sim.atn.states[config.context.getReturnState(i)]
				newContext := config.context.getParent(i)
				c := NewATNConfigWithSemantic(returnState, config.alt, newContext, config.semanticContext)
				if fullCtx {
					c.reachesIntoOuterContext = config.reachesIntoOuterContext + 1
				} else {
					c.reachesIntoOuterContext = config.reachesIntoOuterContext
				}
				sim.closureCheckingStopState(c, configs, busy, collectPredicates, fullCtx, depth-1)
			}
			return
		}
		configs.Add(config, sim.mergeCache)
		return
	}
	sim.closureImpl(config, configs, busy, collectPredicates, fullCtx, depth)
}

func (sim *ParserATNSimulator) closureImpl(config *ATNConfig, configs *ATNConfigSet, busy *closureBusySet, collectPredicates, fullCtx bool, depth int) {
	if !busy.add(config) {
		return
	}
	configs.Add(config, sim.mergeCache)

	for _, t := range config.state.GetTransitions() {
		switch tt := t.(type) {
		case *RuleTransition:
			newContext := NewSingletonPredictionContext(config.context, tt.followState.GetStateNumber())
			c := config.transitionTo(t.getTarget(), newContext)
			sim.closureCheckingStopState(c, configs, busy, collectPredicates, fullCtx, depth+1)
		case *PredicateTransition:
			if !collectPredicates {
				c := config.transitionTo(t.getTarget(), config.context)
				sim.closureCheckingStopState(c, configs, busy, collectPredicates, fullCtx, depth)
				continue
			}
			c := config.transitionTo(t.getTarget(), config.context)
			c.semanticContext = SemanticContextAnd(config.semanticContext, tt.getPredicate())
			sim.closureCheckingStopState(c, configs, busy, collectPredicates, fullCtx, depth)
		case *PrecedencePredicateTransition:
			if !collectPredicates {
				c := config.transitionTo(t.getTarget(), config.context)
				sim.closureCheckingStopState(c, configs, busy, collectPredicates, fullCtx, depth)
				continue
			}
			c := config.transitionTo(t.getTarget(), config.context)
			c.semanticContext = SemanticContextAnd(config.semanticContext, tt.getPredicate())
			sim.closureCheckingStopState(c, configs, busy, collectPredicates, fullCtx, depth)
		default:
			if t.IsEpsilon() {
				c := config.transitionTo(t.getTarget(), config.context)
				sim.closureCheckingStopState(c, configs, busy, collectPredicates, fullCtx, depth)
			}
			// consuming transitions (atom/range/set/not-set/wildcard) are
			// left for computeReachSet to match against the input symbol.
		}
	}
}

// closureBusySet dedups ATNConfig visits within one closure call by the
// Ordered equality discipline (state, alt, context, and semanticContext
// all must match for two configs to collide) — the identity spec.md §4.6
// asks for, implemented as a hash-bucketed set rather than a pointer-
// identity map so structurally-identical configs produced along
// different paths still collapse.
type closureBusySet struct {
	buckets map[int][]*ATNConfig
}

func newClosureBusySet() *closureBusySet {
	return &closureBusySet{buckets: make(map[int][]*ATNConfig)}
}

func (b *closureBusySet) add(c *ATNConfig) bool {
	h := c.orderedHash()
	for _, existing := range b.buckets[h] {
		if existing.orderedEquals(c) {
			return false
		}
	}
	b.buckets[h] = append(b.buckets[h], c)
	return true
}

// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// ATNSerializedVersion is the only version this deserializer accepts
// (§4.3, §6.4). A mismatch fails with UnsupportedOperation.
const ATNSerializedVersion = 4

// ATN grammar types (§6.4 header).
const (
	ATNTypeLexer = iota
	ATNTypeParser
)

// serializedATNState is the flat, version-tagged encoding of one
// ATNState, as it appears in the state table (§6.4).
type serializedATNState struct {
	Type      ATNStateType
	RuleIndex int
	// Arg1/Arg2 hold variant-specific payload: a BlockStartState's
	// matching end-state number, a loop state's loopback/end pointer,
	// etc. Their meaning is keyed by Type.
	Arg1, Arg2 int
	NonGreedy  bool
}

// serializedTransition is the flat encoding of one Transition (§3.3,
// §6.4 edge table): source/target are state numbers, Arg1..Arg3 carry
// the type-specific payload (token type, rule index, predicate index,
// precedence, or an index into the Sets table).
type serializedTransition struct {
	Src, Trg   int
	Type       TransitionType
	Arg1, Arg2, Arg3 int
}

// SerializedATN is the compact, version-gated form an ATN is persisted
// to and loaded from (§4.3, §6.4). It plays the role of the real
// runtime's UTF-16 code-unit stream, but as explicit Go structures —
// the wire encoding/decoding to bytes is intentionally out of scope
// here (§1 Non-goals: "I/O").
type SerializedATN struct {
	Version      int
	GrammarType  int
	MaxTokenType int

	States      []serializedATNState
	Transitions []serializedTransition
	Sets        []*IntervalSet

	RuleToStartState []int
	RuleToStopState  []int
	RuleToTokenType  []int

	DecisionToState []int // state numbers, in decision order

	ModeToStartState []int
	ModeNames        []string

	LexerActions []LexerAction
}

// SerializeATN captures a after it has been built via NewATN/addState,
// producing the form DeserializeATN can round-trip (§8.2).
func SerializeATN(a *ATN) *SerializedATN {
	out := &SerializedATN{
		Version:      ATNSerializedVersion,
		GrammarType:  a.grammarType,
		MaxTokenType: a.maxTokenType,
	}
	for _, s := range a.states {
		if s == nil {
			out.States = append(out.States, serializedATNState{Type: ATNStateInvalid, RuleIndex: -1})
			continue
		}
		rec := serializedATNState{Type: s.GetStateType(), RuleIndex: s.GetRuleIndex()}
		switch st := s.(type) {
		case *BlockStartState:
			if st.EndState != nil {
				rec.Arg1 = st.EndState.GetStateNumber()
			}
		case *PlusBlockStartState:
			if st.EndState != nil {
				rec.Arg1 = st.EndState.GetStateNumber()
			}
		case *StarBlockStartState:
			if st.EndState != nil {
				rec.Arg1 = st.EndState.GetStateNumber()
			}
		case *BlockEndState:
			if st.startState != nil {
				rec.Arg1 = st.startState.GetStateNumber()
			}
		case *StarLoopEntryState:
			if st.loopBackState != nil {
				rec.Arg1 = st.loopBackState.GetStateNumber()
			}
			if st.precedenceRuleDecision {
				rec.Arg2 = 1
			}
		case *LoopEndState:
			if st.loopBackState != nil {
				rec.Arg1 = st.loopBackState.GetStateNumber()
			}
		case *RuleStartState:
			if st.stopState != nil {
				rec.Arg1 = st.stopState.GetStateNumber()
			}
			if st.isLeftRecursive {
				rec.Arg2 = 1
			}
		}
		if ds, ok := s.(DecisionState); ok {
			rec.NonGreedy = ds.getNonGreedy()
		}
		out.States = append(out.States, rec)

		for _, t := range s.GetTransitions() {
			tr := serializedTransition{Src: stateNum(s), Trg: t.getTarget().GetStateNumber(), Type: t.getSerializationType()}
			switch tt := t.(type) {
			case *AtomTransition:
				tr.Arg1 = tt.tokenType
			case *RangeTransition:
				tr.Arg1, tr.Arg2 = tt.start, tt.stop
			case *RuleTransition:
				tr.Arg1, tr.Arg2, tr.Arg3 = tt.ruleIndex, tt.precedence, tt.followState.GetStateNumber()
			case *PredicateTransition:
				tr.Arg1, tr.Arg2 = tt.ruleIndex, tt.predIndex
				if tt.isCtxDependent {
					tr.Arg3 = 1
				}
			case *ActionTransition:
				tr.Arg1, tr.Arg2 = tt.ruleIndex, tt.actionIndex
				if tt.isCtxDependent {
					tr.Arg3 = 1
				}
			case *PrecedencePredicateTransition:
				tr.Arg1 = tt.precedence
			case *SetTransition:
				tr.Arg1 = registerSet(out, tt.label)
			case *NotSetTransition:
				tr.Arg1 = registerSet(out, tt.label)
			}
			out.Transitions = append(out.Transitions, tr)
		}
	}
	for _, s := range a.ruleToStartState {
		out.RuleToStartState = append(out.RuleToStartState, s.GetStateNumber())
	}
	for _, s := range a.ruleToStopState {
		out.RuleToStopState = append(out.RuleToStopState, s.GetStateNumber())
	}
	out.RuleToTokenType = append(out.RuleToTokenType, a.ruleToTokenType...)
	for _, d := range a.DecisionToState {
		out.DecisionToState = append(out.DecisionToState, d.GetStateNumber())
	}
	for mode, s := range a.modeToStartState {
		out.ModeToStartState = append(out.ModeToStartState, s.GetStateNumber())
		for name, st := range a.modeNameToStartState {
			if st == s {
				out.ModeNames = append(out.ModeNames, name)
				break
			}
		}
		_ = mode
	}
	out.LexerActions = append(out.LexerActions, a.lexerActions...)
	return out
}

func stateNum(s ATNState) int { return s.GetStateNumber() }

func registerSet(out *SerializedATN, set *IntervalSet) int {
	for idx, s := range out.Sets {
		if s == set {
			return idx
		}
	}
	out.Sets = append(out.Sets, set)
	return len(out.Sets) - 1
}

// DeserializeATN rebuilds a live ATN from its serialized form. It fails
// with an UnsupportedOperation PredictionError on a version mismatch
// (§4.3).
func DeserializeATN(in *SerializedATN) (*ATN, error) {
	if in.Version != ATNSerializedVersion {
		return nil, &PredictionError{Kind: UnsupportedOperation, Message: fmt.Sprintf("ATN serialized with version %d, runtime supports %d", in.Version, ATNSerializedVersion)}
	}

	a := NewATN(in.GrammarType, in.MaxTokenType)

	states := make([]ATNState, len(in.States))
	for idx, rec := range in.States {
		states[idx] = newStateForType(rec.Type)
		if states[idx] != nil {
			states[idx].SetRuleIndex(rec.RuleIndex)
		}
	}
	for idx, s := range states {
		a.addState(s)
		_ = idx
	}

	// Second pass: wire state-to-state pointers now that every state
	// number resolves.
	for idx, rec := range in.States {
		s := states[idx]
		if s == nil {
			continue
		}
		switch st := s.(type) {
		case *BlockStartState:
			st.EndState = states[rec.Arg1].(*BlockEndState)
			st.EndState.startState = st
		case *PlusBlockStartState:
			st.EndState = states[rec.Arg1].(*BlockEndState)
			st.EndState.startState = st
		case *StarBlockStartState:
			st.EndState = states[rec.Arg1].(*BlockEndState)
			st.EndState.startState = st
		case *BlockEndState:
			st.startState = states[rec.Arg1]
		case *StarLoopEntryState:
			st.loopBackState = states[rec.Arg1].(*StarLoopbackState)
			st.precedenceRuleDecision = rec.Arg2 != 0
		case *LoopEndState:
			st.loopBackState = states[rec.Arg1]
		case *RuleStartState:
			st.stopState = states[rec.Arg1].(*RuleStopState)
			st.isLeftRecursive = rec.Arg2 != 0
		}
		if ds, ok := s.(DecisionState); ok {
			ds.setNonGreedy(rec.NonGreedy)
			a.defineDecisionState(ds)
		}
	}

	for _, tr := range in.Transitions {
		target := states[tr.Trg]
		var t Transition
		switch tr.Type {
		case TransitionEpsilon:
			t = NewEpsilonTransition(target, -1)
		case TransitionAtom:
			t = NewAtomTransition(target, tr.Arg1)
		case TransitionRange:
			t = NewRangeTransition(target, tr.Arg1, tr.Arg2)
		case TransitionSet:
			t = NewSetTransition(target, in.Sets[tr.Arg1])
		case TransitionNotSet:
			t = NewNotSetTransition(target, in.Sets[tr.Arg1])
		case TransitionWildcard:
			t = NewWildcardTransition(target)
		case TransitionRule:
			t = NewRuleTransition(target, tr.Arg1, tr.Arg2, states[tr.Arg3])
		case TransitionPredicate:
			t = NewPredicateTransition(target, tr.Arg1, tr.Arg2, tr.Arg3 != 0)
		case TransitionAction:
			t = NewActionTransition(target, tr.Arg1, tr.Arg2, tr.Arg3 != 0)
		case TransitionPrecedence:
			t = NewPrecedencePredicateTransition(target, tr.Arg1)
		default:
			return nil, &PredictionError{Kind: UnsupportedOperation, Message: fmt.Sprintf("unknown transition type %d", tr.Type)}
		}
		states[tr.Src].AddTransition(t)
	}

	a.ruleToStartState = make([]*RuleStartState, len(in.RuleToStartState))
	for idx, sn := range in.RuleToStartState {
		a.ruleToStartState[idx] = states[sn].(*RuleStartState)
	}
	a.ruleToStopState = make([]*RuleStopState, len(in.RuleToStopState))
	for idx, sn := range in.RuleToStopState {
		a.ruleToStopState[idx] = states[sn].(*RuleStopState)
	}
	a.ruleToTokenType = append([]int(nil), in.RuleToTokenType...)

	// DecisionToState was already populated by defineDecisionState calls
	// above in state-number order; reorder to match the serialized
	// decision order exactly, as the real format allows decisions to be
	// declared out of state order.
	if len(in.DecisionToState) > 0 {
		ordered := make([]DecisionState, len(in.DecisionToState))
		for decision, sn := range in.DecisionToState {
			ordered[decision] = states[sn].(DecisionState)
			ordered[decision].setDecision(decision)
		}
		a.DecisionToState = ordered
	}

	for idx, sn := range in.ModeToStartState {
		ts := states[sn].(*TokensStartState)
		a.modeToStartState = append(a.modeToStartState, ts)
		if idx < len(in.ModeNames) {
			a.modeNameToStartState[in.ModeNames[idx]] = ts
		}
	}

	a.lexerActions = append([]LexerAction(nil), in.LexerActions...)

	return a, nil
}

func newStateForType(t ATNStateType) ATNState {
	switch t {
	case ATNStateBasic:
		return NewBasicState()
	case ATNStateRuleStart:
		return NewRuleStartState()
	case ATNStateBlockStart:
		return NewBlockStartState()
	case ATNStatePlusBlockStart:
		return NewPlusBlockStartState()
	case ATNStateStarBlockStart:
		return NewStarBlockStartState()
	case ATNStateTokenStart:
		return NewTokensStartState()
	case ATNStateRuleStop:
		return NewRuleStopState()
	case ATNStateBlockEnd:
		return NewBlockEndState()
	case ATNStateStarLoopBack:
		return NewStarLoopbackState()
	case ATNStateStarLoopEntry:
		return NewStarLoopEntryState()
	case ATNStatePlusLoopBack:
		return NewPlusLoopbackState()
	case ATNStateLoopEnd:
		return NewLoopEndState()
	default:
		return nil
	}
}

// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// TransitionType tags the variant of a Transition (§3.3, §9: tagged
// variant rather than a subclass tree).
type TransitionType int

const (
	TransitionEpsilon TransitionType = iota + 1
	TransitionRange
	TransitionRule
	TransitionPredicate
	TransitionAtom
	TransitionAction
	TransitionSet
	TransitionNotSet
	TransitionWildcard
	TransitionPrecedence
)

// Transition is one outgoing edge of an ATNState (§3.3).
type Transition interface {
	getTarget() ATNState
	setTarget(ATNState)
	getSerializationType() TransitionType
	IsEpsilon() bool
	getLabel() *IntervalSet
	Matches(symbol, minVocabSymbol, maxVocabSymbol int) bool
}

// BaseTransition is embedded by every transition variant.
type BaseTransition struct {
	target          ATNState
	serializationType TransitionType
	label            *IntervalSet
	isEpsilon        bool
}

func (t *BaseTransition) getTarget() ATNState                { return t.target }
func (t *BaseTransition) setTarget(s ATNState)                { t.target = s }
func (t *BaseTransition) getSerializationType() TransitionType { return t.serializationType }
func (t *BaseTransition) IsEpsilon() bool                      { return t.isEpsilon }
func (t *BaseTransition) getLabel() *IntervalSet               { return t.label }
func (t *BaseTransition) Matches(symbol, minVocabSymbol, maxVocabSymbol int) bool {
	if t.label == nil {
		return false
	}
	return t.label.Contains(symbol)
}

// EpsilonTransition consumes no input.
type EpsilonTransition struct {
	BaseTransition
	outermostPrecedenceReturn int
}

func NewEpsilonTransition(target ATNState, outermostPrecedenceReturn int) *EpsilonTransition {
	return &EpsilonTransition{
		BaseTransition:            BaseTransition{target: target, serializationType: TransitionEpsilon, isEpsilon: true},
		outermostPrecedenceReturn: outermostPrecedenceReturn,
	}
}

// AtomTransition matches a single token type.
type AtomTransition struct {
	BaseTransition
	tokenType int
}

func NewAtomTransition(target ATNState, tokenType int) *AtomTransition {
	return &AtomTransition{
		BaseTransition: BaseTransition{target: target, serializationType: TransitionAtom, label: NewIntervalSetFromValues(tokenType)},
		tokenType:      tokenType,
	}
}

// RangeTransition matches an inclusive [from, to] token-type range.
type RangeTransition struct {
	BaseTransition
	start, stop int
}

func NewRangeTransition(target ATNState, start, stop int) *RangeTransition {
	s := NewIntervalSet()
	s.AddRange(start, stop)
	return &RangeTransition{
		BaseTransition: BaseTransition{target: target, serializationType: TransitionRange, label: s},
		start:          start,
		stop:           stop,
	}
}

// SetTransition matches any token type in the given IntervalSet.
type SetTransition struct {
	BaseTransition
}

func NewSetTransition(target ATNState, set *IntervalSet) *SetTransition {
	if set == nil {
		set = NewIntervalSet()
	}
	return &SetTransition{BaseTransition{target: target, serializationType: TransitionSet, label: set}}
}

// NotSetTransition matches any token type NOT in the given set.
type NotSetTransition struct{ SetTransition }

func NewNotSetTransition(target ATNState, set *IntervalSet) *NotSetTransition {
	t := &NotSetTransition{SetTransition{BaseTransition{target: target, serializationType: TransitionNotSet, label: set}}}
	return t
}

func (t *NotSetTransition) Matches(symbol, minVocabSymbol, maxVocabSymbol int) bool {
	if symbol < minVocabSymbol || symbol > maxVocabSymbol {
		return false
	}
	return t.label == nil || !t.label.Contains(symbol)
}

// WildcardTransition matches any token type within the vocabulary.
type WildcardTransition struct{ BaseTransition }

func NewWildcardTransition(target ATNState) *WildcardTransition {
	return &WildcardTransition{BaseTransition{target: target, serializationType: TransitionWildcard}}
}

func (t *WildcardTransition) Matches(symbol, minVocabSymbol, maxVocabSymbol int) bool {
	return symbol >= minVocabSymbol && symbol <= maxVocabSymbol
}

// RuleTransition invokes a rule: it records the return state to push
// onto the PredictionContext and (for left-recursive rules) the
// precedence level the callee must respect.
type RuleTransition struct {
	BaseTransition
	ruleIndex     int
	precedence    int
	followState   ATNState
}

func NewRuleTransition(ruleStart ATNState, ruleIndex, precedence int, followState ATNState) *RuleTransition {
	return &RuleTransition{
		BaseTransition: BaseTransition{target: ruleStart, serializationType: TransitionRule, isEpsilon: true},
		ruleIndex:      ruleIndex,
		precedence:     precedence,
		followState:    followState,
	}
}

// PredicateTransition carries a semantic predicate. The simulator never
// evaluates it during closure: closing a decision's start state folds it
// into the config's SemanticContext, and later closures pass through it
// without recording it (§4.6).
type PredicateTransition struct {
	BaseTransition
	ruleIndex, predIndex int
	isCtxDependent       bool
}

func NewPredicateTransition(target ATNState, ruleIndex, predIndex int, isCtxDependent bool) *PredicateTransition {
	return &PredicateTransition{
		BaseTransition: BaseTransition{target: target, serializationType: TransitionPredicate, isEpsilon: true},
		ruleIndex:      ruleIndex,
		predIndex:      predIndex,
		isCtxDependent: isCtxDependent,
	}
}

func (t *PredicateTransition) getPredicate() *Predicate {
	return NewPredicate(t.ruleIndex, t.predIndex, t.isCtxDependent)
}

// ActionTransition carries an embedded action; it never changes the
// configuration during prediction (§4.6) and is skipped by closure.
type ActionTransition struct {
	BaseTransition
	ruleIndex, actionIndex int
	isCtxDependent          bool
}

func NewActionTransition(target ATNState, ruleIndex, actionIndex int, isCtxDependent bool) *ActionTransition {
	return &ActionTransition{
		BaseTransition: BaseTransition{target: target, serializationType: TransitionAction, isEpsilon: true},
		ruleIndex:       ruleIndex,
		actionIndex:     actionIndex,
		isCtxDependent:  isCtxDependent,
	}
}

// PrecedencePredicateTransition implements precedence climbing for
// left-recursive rules: it succeeds only while the caller's minimum
// precedence is at most the transition's level.
type PrecedencePredicateTransition struct {
	BaseTransition
	precedence int
}

func NewPrecedencePredicateTransition(target ATNState, precedence int) *PrecedencePredicateTransition {
	return &PrecedencePredicateTransition{
		BaseTransition: BaseTransition{target: target, serializationType: TransitionPrecedence, isEpsilon: true},
		precedence:      precedence,
	}
}

func (t *PrecedencePredicateTransition) getPredicate() *PrecedencePredicate {
	return NewPrecedencePredicate(t.precedence)
}

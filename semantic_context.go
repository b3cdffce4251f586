// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"sort"
	"strings"
)

// SemanticContext is a boolean combination of predicates and precedence
// checks guarding an ATNConfig (§3.5, §4.7). The zero-value NONE always
// evaluates true: it is the identity element for `and` and absorbs any
// operand under `or`.
type SemanticContext interface {
	evaluate(parser Recognizer, outerContext RuleContext) bool
	evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext
	hash() int
	equals(other SemanticContext) bool
	String() string
}

// SemanticContextNone is the trivially-true predicate; configs default
// to it.
var SemanticContextNone SemanticContext = &semanticContextNone{}

type semanticContextNone struct{}

func (*semanticContextNone) evaluate(Recognizer, RuleContext) bool { return true }
func (s *semanticContextNone) evalPrecedence(Recognizer, RuleContext) SemanticContext {
	return s
}
func (*semanticContextNone) hash() int                        { return 1 }
func (*semanticContextNone) equals(o SemanticContext) bool     { _, ok := o.(*semanticContextNone); return ok }
func (*semanticContextNone) String() string                   { return "" }

// Predicate references a semantic predicate `{...}?` attached to a
// grammar action. isCtxDependent marks predicates that read from the
// invoking rule context and therefore cannot be evaluated purely from
// the ATN during closure.
type Predicate struct {
	ruleIndex, predIndex int
	isCtxDependent       bool
}

func NewPredicate(ruleIndex, predIndex int, isCtxDependent bool) *Predicate {
	return &Predicate{ruleIndex: ruleIndex, predIndex: predIndex, isCtxDependent: isCtxDependent}
}

func (p *Predicate) evaluate(parser Recognizer, outerContext RuleContext) bool {
	if parser == nil {
		return true
	}
	var localctx RuleContext
	if p.isCtxDependent {
		localctx = outerContext
	}
	return parser.Sempred(localctx, p.ruleIndex, p.predIndex)
}

func (p *Predicate) evalPrecedence(Recognizer, RuleContext) SemanticContext { return p }

func (p *Predicate) hash() int {
	return p.ruleIndex*31*31 + p.predIndex*31 + boolHash(p.isCtxDependent)
}

func (p *Predicate) equals(other SemanticContext) bool {
	o, ok := other.(*Predicate)
	return ok && o.ruleIndex == p.ruleIndex && o.predIndex == p.predIndex && o.isCtxDependent == p.isCtxDependent
}

func (p *Predicate) String() string {
	return fmt.Sprintf("{%d:%d}?", p.ruleIndex, p.predIndex)
}

func boolHash(b bool) int {
	if b {
		return 1
	}
	return 0
}

// PrecedencePredicate guards a left-recursive alternative by minimum
// precedence level (§4.6, the e:e'+'e precedence-climbing scenario).
type PrecedencePredicate struct {
	precedence int
}

func NewPrecedencePredicate(precedence int) *PrecedencePredicate {
	return &PrecedencePredicate{precedence: precedence}
}

func (p *PrecedencePredicate) evaluate(parser Recognizer, outerContext RuleContext) bool {
	if parser == nil {
		return true
	}
	return parser.Precpred(outerContext, p.precedence)
}

func (p *PrecedencePredicate) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	if parser != nil && parser.Precpred(outerContext, p.precedence) {
		return SemanticContextNone
	}
	return nil
}

func (p *PrecedencePredicate) hash() int                    { return p.precedence * 31 }
func (p *PrecedencePredicate) equals(other SemanticContext) bool {
	o, ok := other.(*PrecedencePredicate)
	return ok && o.precedence == p.precedence
}
func (p *PrecedencePredicate) String() string { return fmt.Sprintf(">=_p %d", p.precedence) }

func comparePrecedencePredicates(a, b *PrecedencePredicate) int {
	return a.precedence - b.precedence
}

// AndContext is a conjunction of two or more operands, flattened by the
// `and` smart constructor; precedence predicates collapse to one, other
// duplicate operands are kept.
type AndContext struct{ opnds []SemanticContext }

func (a *AndContext) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, o := range a.opnds {
		if !o.evaluate(parser, outerContext) {
			return false
		}
	}
	return true
}

func (a *AndContext) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	differs := false
	operands := make([]SemanticContext, 0, len(a.opnds))
	for _, ctx := range a.opnds {
		evaluated := ctx.evalPrecedence(parser, outerContext)
		differs = differs || evaluated != ctx
		if evaluated == nil {
			return nil
		} else if evaluated != SemanticContextNone {
			operands = append(operands, evaluated)
		}
	}
	if !differs {
		return a
	}
	if len(operands) == 0 {
		return SemanticContextNone
	}
	result := operands[0]
	for _, o := range operands[1:] {
		result = SemanticContextAnd(result, o)
	}
	return result
}

func (a *AndContext) hash() int {
	h := 7
	for _, o := range a.opnds {
		h = h*31 + o.hash()
	}
	return h
}

func (a *AndContext) equals(other SemanticContext) bool {
	o, ok := other.(*AndContext)
	if !ok || len(o.opnds) != len(a.opnds) {
		return false
	}
	for i := range a.opnds {
		if !a.opnds[i].equals(o.opnds[i]) {
			return false
		}
	}
	return true
}

func (a *AndContext) String() string {
	parts := make([]string, len(a.opnds))
	for i, o := range a.opnds {
		parts[i] = o.String()
	}
	return strings.Join(parts, "&&")
}

// OrContext is a disjunction, built the same way as AndContext.
type OrContext struct{ opnds []SemanticContext }

func (o *OrContext) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, op := range o.opnds {
		if op.evaluate(parser, outerContext) {
			return true
		}
	}
	return false
}

func (o *OrContext) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	differs := false
	operands := make([]SemanticContext, 0, len(o.opnds))
	for _, ctx := range o.opnds {
		evaluated := ctx.evalPrecedence(parser, outerContext)
		differs = differs || evaluated != ctx
		if evaluated == SemanticContextNone {
			return SemanticContextNone
		} else if evaluated != nil {
			operands = append(operands, evaluated)
		}
	}
	if !differs {
		return o
	}
	if len(operands) == 0 {
		return nil
	}
	result := operands[0]
	for _, op := range operands[1:] {
		result = SemanticContextOr(result, op)
	}
	return result
}

func (o *OrContext) hash() int {
	h := 13
	for _, op := range o.opnds {
		h = h*31 + op.hash()
	}
	return h
}

func (o *OrContext) equals(other SemanticContext) bool {
	oo, ok := other.(*OrContext)
	if !ok || len(oo.opnds) != len(o.opnds) {
		return false
	}
	for i := range o.opnds {
		if !o.opnds[i].equals(oo.opnds[i]) {
			return false
		}
	}
	return true
}

func (o *OrContext) String() string {
	parts := make([]string, len(o.opnds))
	for i, op := range o.opnds {
		parts[i] = op.String()
	}
	return strings.Join(parts, "||")
}

func flattenOperands(kind TransitionType, a, b SemanticContext) []SemanticContext {
	var result []SemanticContext
	collect := func(ctx SemanticContext) {
		if kind == TransitionPredicate { // reuse as "AND" tag
			if and, ok := ctx.(*AndContext); ok {
				result = append(result, and.opnds...)
				return
			}
		} else {
			if or, ok := ctx.(*OrContext); ok {
				result = append(result, or.opnds...)
				return
			}
		}
		result = append(result, ctx)
	}
	collect(a)
	collect(b)
	return result
}

// SemanticContextAnd is the smart constructor for conjunction: NONE is
// absorbed, duplicate PrecedencePredicates collapse to their minimum,
// and nested AndContexts are flattened.
func SemanticContextAnd(a, b SemanticContext) SemanticContext {
	if a == nil || a == SemanticContextNone {
		return b
	}
	if b == nil || b == SemanticContextNone {
		return a
	}
	operands := flattenOperands(TransitionPredicate, a, b)
	precedencePredicates := extractPrecedencePredicates(&operands)
	if len(precedencePredicates) > 0 {
		sort.Slice(precedencePredicates, func(i, j int) bool {
			return comparePrecedencePredicates(precedencePredicates[i], precedencePredicates[j]) < 0
		})
		operands = append(operands, precedencePredicates[0])
	}
	if len(operands) == 1 {
		return operands[0]
	}
	return &AndContext{opnds: operands}
}

// SemanticContextOr is the smart constructor for disjunction, dual to
// SemanticContextAnd (keeps the maximum PrecedencePredicate).
func SemanticContextOr(a, b SemanticContext) SemanticContext {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a == SemanticContextNone || b == SemanticContextNone {
		return SemanticContextNone
	}
	operands := flattenOperands(TransitionRule, a, b)
	precedencePredicates := extractPrecedencePredicates(&operands)
	if len(precedencePredicates) > 0 {
		sort.Slice(precedencePredicates, func(i, j int) bool {
			return comparePrecedencePredicates(precedencePredicates[i], precedencePredicates[j]) < 0
		})
		operands = append(operands, precedencePredicates[len(precedencePredicates)-1])
	}
	if len(operands) == 1 {
		return operands[0]
	}
	return &OrContext{opnds: operands}
}

func extractPrecedencePredicates(operands *[]SemanticContext) []*PrecedencePredicate {
	var preds []*PrecedencePredicate
	kept := (*operands)[:0:0]
	for _, op := range *operands {
		if pp, ok := op.(*PrecedencePredicate); ok {
			preds = append(preds, pp)
		} else {
			kept = append(kept, op)
		}
	}
	*operands = kept
	return preds
}

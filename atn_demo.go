// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// BuildAmbiguousIDDemo constructs the ATN for `a: ID | ID | ID ';'`
// (§8.3's worked ambiguity scenario): the first two alternatives are
// genuinely ambiguous, the third disambiguates once a trailing ';' is
// present. Exported for cmd/atndump and tests that want a small,
// hand-built ATN without going through the deserializer.
func BuildAmbiguousIDDemo() (a *ATN, decision int, idType, semiType int) {
	idType, semiType = 1, 2

	a = NewATN(ATNTypeParser, semiType)

	ruleStart := NewRuleStartState()
	ruleStop := NewRuleStopState()
	a.AddState(ruleStart)
	a.AddState(ruleStop)
	a.ruleToStartState = []*RuleStartState{ruleStart}
	a.ruleToStopState = []*RuleStopState{ruleStop}

	block := NewBlockStartState()
	blockEnd := NewBlockEndState()
	a.AddState(block)
	a.AddState(blockEnd)
	block.EndState = blockEnd
	blockEnd.startState = block
	decision = a.DefineDecisionState(block)

	alt1 := NewBasicState()
	alt2 := NewBasicState()
	alt3a := NewBasicState()
	alt3b := NewBasicState()
	a.AddState(alt1)
	a.AddState(alt2)
	a.AddState(alt3a)
	a.AddState(alt3b)

	block.AddTransition(NewEpsilonTransition(alt1, -1))
	block.AddTransition(NewEpsilonTransition(alt2, -1))
	block.AddTransition(NewEpsilonTransition(alt3a, -1))

	alt1.AddTransition(NewAtomTransition(blockEnd, idType))
	alt2.AddTransition(NewAtomTransition(blockEnd, idType))
	alt3a.AddTransition(NewAtomTransition(alt3b, idType))
	alt3b.AddTransition(NewAtomTransition(blockEnd, semiType))

	blockEnd.AddTransition(NewEpsilonTransition(ruleStop, -1))
	ruleStart.AddTransition(NewEpsilonTransition(block, -1))

	return a, decision, idType, semiType
}

// BuildLoopingExprDemo constructs the ATN for `e: INT (('+' | '*') INT)*`
// (§8.3's left-associative binary-expression scenario, reshaped from the
// grammar's literal left-recursive form `e: e '+' e | e '*' e | INT` into
// its equivalent iterative expansion so the loop-continuation decision
// can be driven directly without a recursive-descent caller; see DESIGN.md).
// The returned decision is the StarLoopEntryState choosing between
// "consume another operator/operand pair" and "exit the loop".
func BuildLoopingExprDemo() (a *ATN, decision int, intType, plusType, starType int) {
	intType, plusType, starType = 1, 2, 3

	a = NewATN(ATNTypeParser, starType)

	ruleStart := NewRuleStartState()
	ruleStop := NewRuleStopState()
	a.AddState(ruleStart)
	a.AddState(ruleStop)
	a.ruleToStartState = []*RuleStartState{ruleStart}
	a.ruleToStopState = []*RuleStopState{ruleStop}

	primary := NewBasicState()
	loopEntry := NewStarLoopEntryState()
	loopBack := NewStarLoopbackState()
	loopEnd := NewLoopEndState()
	opAndOperand := NewBasicState()
	opStart := NewBasicState()
	a.AddState(primary)
	a.AddState(loopEntry)
	a.AddState(loopBack)
	a.AddState(loopEnd)
	a.AddState(opAndOperand)
	a.AddState(opStart)
	decision = a.DefineDecisionState(loopEntry)

	loopEntry.loopBackState = loopBack
	loopEnd.loopBackState = loopBack

	ruleStart.AddTransition(NewEpsilonTransition(primary, -1))
	primary.AddTransition(NewAtomTransition(loopEntry, intType))

	ops := NewIntervalSet()
	ops.AddOne(plusType)
	ops.AddOne(starType)
	loopEntry.AddTransition(NewEpsilonTransition(opStart, -1))
	loopEntry.AddTransition(NewEpsilonTransition(loopEnd, -1))
	opStart.AddTransition(NewSetTransition(opAndOperand, ops))

	opAndOperand.AddTransition(NewAtomTransition(loopBack, intType))
	loopBack.AddTransition(NewEpsilonTransition(loopEntry, -1))

	loopEnd.AddTransition(NewEpsilonTransition(ruleStop, -1))

	return a, decision, intType, plusType, starType
}

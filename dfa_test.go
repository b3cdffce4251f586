// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDecisionStateNumbered(n int) *BlockStartState {
	s := NewBlockStartState()
	s.SetStateNumber(n)
	return s
}

func TestNewDFAStartsEmpty(t *testing.T) {
	d := NewDFA(newDecisionStateNumbered(0), 3)
	assert.Equal(t, 3, d.Decision())
	assert.Equal(t, 0, d.NumStates())
	assert.Nil(t, d.GetS0())
	assert.Nil(t, d.GetS0Full())
	assert.False(t, d.IsPrecedenceDfa())
}

func TestDFAAddStateAssignsSequentialNumbers(t *testing.T) {
	d := NewDFA(newDecisionStateNumbered(0), 0)

	c1 := NewATNConfigSet(false)
	c1.Add(NewATNConfig(newBasicStateNumbered(1), 1, EmptyPredictionContext), nil)
	s1 := d.AddState(NewDFAState(c1))

	c2 := NewATNConfigSet(false)
	c2.Add(NewATNConfig(newBasicStateNumbered(2), 2, EmptyPredictionContext), nil)
	s2 := d.AddState(NewDFAState(c2))

	assert.Equal(t, 0, s1.GetStateNumber())
	assert.Equal(t, 1, s2.GetStateNumber())
	assert.Equal(t, 2, d.NumStates())
}

func TestDFAAddStateInternsStructurallyEqualConfigs(t *testing.T) {
	d := NewDFA(newDecisionStateNumbered(0), 0)
	state := newBasicStateNumbered(1)

	c1 := NewATNConfigSet(false)
	c1.Add(NewATNConfig(state, 1, EmptyPredictionContext), nil)
	first := d.AddState(NewDFAState(c1))

	c2 := NewATNConfigSet(false)
	c2.Add(NewATNConfig(state, 1, EmptyPredictionContext), nil)
	second := d.AddState(NewDFAState(c2))

	assert.Same(t, first, second, "a structurally-equal config set must intern to the existing state")
	assert.Equal(t, 1, d.NumStates())
}

func TestDFAAddStateFreezesInternedConfigs(t *testing.T) {
	d := NewDFA(newDecisionStateNumbered(0), 0)
	c := NewATNConfigSet(false)
	c.Add(NewATNConfig(newBasicStateNumbered(1), 1, EmptyPredictionContext), nil)
	s := d.AddState(NewDFAState(c))

	require.Panics(t, func() {
		s.GetConfigs().Add(NewATNConfig(newBasicStateNumbered(2), 2, EmptyPredictionContext), nil)
	})
}

func TestDFAAddEdgeAndGetEdge(t *testing.T) {
	d := NewDFA(newDecisionStateNumbered(0), 0)
	c1 := NewATNConfigSet(false)
	c1.Add(NewATNConfig(newBasicStateNumbered(1), 1, EmptyPredictionContext), nil)
	from := d.AddState(NewDFAState(c1))

	c2 := NewATNConfigSet(false)
	c2.Add(NewATNConfig(newBasicStateNumbered(2), 1, EmptyPredictionContext), nil)
	to := d.AddState(NewDFAState(c2))

	d.AddEdge(from, 5, to)
	assert.Same(t, to, from.GetEdge(5))
	assert.Nil(t, from.GetEdge(6))
}

func TestDFASetS0AndS0Full(t *testing.T) {
	d := NewDFA(newDecisionStateNumbered(0), 0)
	c := NewATNConfigSet(false)
	c.Add(NewATNConfig(newBasicStateNumbered(1), 1, EmptyPredictionContext), nil)
	s := NewDFAState(c)

	d.SetS0(s)
	assert.Same(t, s, d.GetS0())

	full := NewDFAState(NewATNConfigSet(false))
	d.SetS0Full(full)
	assert.Same(t, full, d.GetS0Full())
}

func TestDFAStringOnlyListsAcceptStates(t *testing.T) {
	d := NewDFA(newDecisionStateNumbered(0), 0)

	c1 := NewATNConfigSet(false)
	c1.Add(NewATNConfig(newBasicStateNumbered(1), 1, EmptyPredictionContext), nil)
	nonAccept := d.AddState(NewDFAState(c1))
	_ = nonAccept

	c2 := NewATNConfigSet(false)
	c2.Add(NewATNConfig(newBasicStateNumbered(2), 1, EmptyPredictionContext), nil)
	accept := d.AddState(NewDFAState(c2))
	accept.SetPrediction(1)

	out := d.String()
	assert.Contains(t, out, "s1=>1")
	assert.NotContains(t, out, "s0\n")
}

func TestDFAToDotStringIncludesEdgesAndShapes(t *testing.T) {
	d := NewDFA(newDecisionStateNumbered(0), 0)
	c1 := NewATNConfigSet(false)
	c1.Add(NewATNConfig(newBasicStateNumbered(1), 1, EmptyPredictionContext), nil)
	from := d.AddState(NewDFAState(c1))

	c2 := NewATNConfigSet(false)
	c2.Add(NewATNConfig(newBasicStateNumbered(2), 1, EmptyPredictionContext), nil)
	to := d.AddState(NewDFAState(c2))
	to.SetPrediction(1)

	d.AddEdge(from, 4, to)

	dot := d.ToDotString()
	assert.Contains(t, dot, "digraph DFA")
	assert.Contains(t, dot, "doublecircle")
	assert.Contains(t, dot, "s0 -> s1")
	assert.Contains(t, dot, `label="4"`)
}

func TestDFAPrecedenceFlag(t *testing.T) {
	d := NewDFA(newDecisionStateNumbered(0), 0)
	assert.False(t, d.IsPrecedenceDfa())
	d.SetPrecedenceDfa(true)
	assert.True(t, d.IsPrecedenceDfa())
}

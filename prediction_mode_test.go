// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bitSetOf(bits ...int) *BitSet {
	b := NewBitSet()
	for _, i := range bits {
		b.Set(i)
	}
	return b
}

func TestHasNonConflictingAltSet(t *testing.T) {
	assert.True(t, hasNonConflictingAltSet([]*BitSet{bitSetOf(1), bitSetOf(2, 3)}))
	assert.False(t, hasNonConflictingAltSet([]*BitSet{bitSetOf(1, 2), bitSetOf(3, 4)}))
}

func TestHasConflictingAltSet(t *testing.T) {
	assert.True(t, hasConflictingAltSet([]*BitSet{bitSetOf(1, 2)}))
	assert.False(t, hasConflictingAltSet([]*BitSet{bitSetOf(1), bitSetOf(2)}))
}

func TestGetUniqueAlt(t *testing.T) {
	assert.Equal(t, 1, getUniqueAlt([]*BitSet{bitSetOf(1), bitSetOf(1)}))
	assert.Equal(t, ATNInvalidAltNumber, getUniqueAlt([]*BitSet{bitSetOf(1), bitSetOf(2)}))
}

func TestGetSingleViableAlt(t *testing.T) {
	// Each subset's minimum is 1, so the overall single viable alt is 1
	// even though the subsets themselves conflict internally.
	assert.Equal(t, 1, getSingleViableAlt([]*BitSet{bitSetOf(1, 2), bitSetOf(1, 3)}))
	assert.Equal(t, ATNInvalidAltNumber, getSingleViableAlt([]*BitSet{bitSetOf(1), bitSetOf(2)}))
}

func TestAllSubsetsEqual(t *testing.T) {
	assert.True(t, allSubsetsEqual([]*BitSet{bitSetOf(1, 2), bitSetOf(1, 2)}))
	assert.False(t, allSubsetsEqual([]*BitSet{bitSetOf(1, 2), bitSetOf(1, 3)}))
}

func TestHasSLLConflictTerminatingPredictionAllRuleStopStates(t *testing.T) {
	s := NewATNConfigSet(false)
	stop := NewRuleStopState()
	stop.SetStateNumber(1)
	s.Add(NewATNConfig(stop, 1, EmptyPredictionContext), nil)
	assert.True(t, hasSLLConflictTerminatingPrediction(s))
}

func TestHasSLLConflictTerminatingPredictionResolvedByState(t *testing.T) {
	s := NewATNConfigSet(false)
	state1 := newBasicStateNumbered(1)
	state2 := newBasicStateNumbered(2)

	// The two alts sit on different ATN states, so each altset is a
	// singleton and no state maps to more than one alt: SLL keeps going.
	s.Add(NewATNConfig(state1, 1, EmptyPredictionContext), nil)
	s.Add(NewATNConfig(state2, 2, EmptyPredictionContext), nil)
	assert.False(t, hasSLLConflictTerminatingPrediction(s))
}

func TestGetConflictingAlts(t *testing.T) {
	s := NewATNConfigSet(false)
	state := newBasicStateNumbered(1)
	s.Add(NewATNConfig(state, 1, EmptyPredictionContext), nil)
	s.Add(NewATNConfig(state, 2, EmptyPredictionContext), nil)

	conflicting := getConflictingAlts(s)
	assert.Equal(t, "{1, 2}", conflicting.String())
}

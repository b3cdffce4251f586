// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBasicStateNumbered(n int) *BasicState {
	s := NewBasicState()
	s.SetStateNumber(n)
	return s
}

func TestATNConfigSetAddMergesEqualConfigsByLookupEquality(t *testing.T) {
	s := NewATNConfigSet(false)
	state := newBasicStateNumbered(1)

	ctxA := NewSingletonPredictionContext(EmptyPredictionContext, 10)
	ctxB := NewSingletonPredictionContext(EmptyPredictionContext, 20)

	added1 := s.Add(NewATNConfig(state, 1, ctxA), newMergeCache())
	added2 := s.Add(NewATNConfig(state, 1, ctxB), newMergeCache())

	assert.True(t, added1)
	assert.False(t, added2, "a config equal under LookupEquality should merge, not duplicate")
	assert.Equal(t, 1, s.Size())
}

func TestATNConfigSetOrderedEqualityDistinguishesByContext(t *testing.T) {
	s := NewOrderedATNConfigSet()
	state := newBasicStateNumbered(1)

	ctxA := NewSingletonPredictionContext(EmptyPredictionContext, 10)
	ctxB := NewSingletonPredictionContext(EmptyPredictionContext, 20)

	s.Add(NewATNConfig(state, 1, ctxA), nil)
	s.Add(NewATNConfig(state, 1, ctxB), nil)

	assert.Equal(t, 2, s.Size(), "Ordered equality must treat differing contexts as distinct")
}

func TestATNConfigSetUniqueAlt(t *testing.T) {
	s := NewATNConfigSet(false)
	state1 := newBasicStateNumbered(1)
	state2 := newBasicStateNumbered(2)

	s.Add(NewATNConfig(state1, 1, EmptyPredictionContext), nil)
	assert.Equal(t, 1, s.UniqueAlt())

	s.Add(NewATNConfig(state2, 2, EmptyPredictionContext), nil)
	assert.Equal(t, ATNInvalidAltNumber, s.UniqueAlt())
}

func TestATNConfigSetReadonlyPanicsOnAdd(t *testing.T) {
	s := NewATNConfigSet(false)
	state := newBasicStateNumbered(1)
	s.Add(NewATNConfig(state, 1, EmptyPredictionContext), nil)
	s.SetReadonly(true)

	require.Panics(t, func() {
		s.Add(NewATNConfig(state, 2, EmptyPredictionContext), nil)
	})
}

func TestATNConfigSetHasSemanticContext(t *testing.T) {
	s := NewATNConfigSet(false)
	state := newBasicStateNumbered(1)
	assert.False(t, s.HasSemanticContext())

	pred := NewPredicate(0, 0, false)
	c := NewATNConfigWithSemantic(state, 1, EmptyPredictionContext, pred)
	s.Add(c, nil)
	assert.True(t, s.HasSemanticContext())
}

func TestATNConfigSetGetConflictingAltSubsets(t *testing.T) {
	s := NewATNConfigSet(false)
	state := newBasicStateNumbered(1)

	s.Add(NewATNConfig(state, 1, EmptyPredictionContext), nil)
	s.Add(NewATNConfig(state, 2, EmptyPredictionContext), nil)

	altsets := s.GetConflictingAltSubsets()
	require.Len(t, altsets, 1)
	assert.Equal(t, 2, altsets[0].Cardinality())
}

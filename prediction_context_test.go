// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyPredictionContextIsEmpty(t *testing.T) {
	assert.True(t, EmptyPredictionContext.isEmpty())
	assert.True(t, EmptyPredictionContext.hasEmptyPath())
}

func TestMergeIdenticalSingletonsReturnsSameValue(t *testing.T) {
	a := NewSingletonPredictionContext(EmptyPredictionContext, 5)
	merged := mergePredictionContexts(a, a, true, nil)
	assert.Same(t, PredictionContext(a), merged)
}

func TestMergeSingletonsSameReturnStateMergesParents(t *testing.T) {
	parentA := NewSingletonPredictionContext(EmptyPredictionContext, 1)
	parentB := NewSingletonPredictionContext(EmptyPredictionContext, 2)
	a := NewSingletonPredictionContext(parentA, 9)
	b := NewSingletonPredictionContext(parentB, 9)

	merged := mergePredictionContexts(a, b, true, nil)
	single, ok := merged.(*SingletonPredictionContext)
	require.True(t, ok)
	assert.Equal(t, 9, single.returnState)

	mergedParent, ok := single.parent.(*ArrayPredictionContext)
	require.True(t, ok)
	assert.Equal(t, 2, mergedParent.length())
}

func TestMergeSingletonsDifferentReturnStatesProducesSortedArray(t *testing.T) {
	a := NewSingletonPredictionContext(EmptyPredictionContext, 5)
	b := NewSingletonPredictionContext(EmptyPredictionContext, 2)

	merged := mergePredictionContexts(a, b, true, nil)
	arr, ok := merged.(*ArrayPredictionContext)
	require.True(t, ok)
	assert.Equal(t, []int{2, 5}, arr.returnStates)
}

func TestMergeRootSLLWildcardAbsorbsIntoEmpty(t *testing.T) {
	nonEmpty := NewSingletonPredictionContext(EmptyPredictionContext, 7)
	merged := mergePredictionContexts(EmptyPredictionContext, nonEmpty, true, nil)
	assert.Same(t, EmptyPredictionContext, merged)
}

func TestMergeRootLLKeepsEmptyAsDistinguishedReturnState(t *testing.T) {
	nonEmpty := NewSingletonPredictionContext(nil, 7)
	merged := mergePredictionContexts(EmptyPredictionContext, nonEmpty, false, nil)
	arr, ok := merged.(*ArrayPredictionContext)
	require.True(t, ok)
	assert.Equal(t, []int{7, PredictionContextEmptyReturnState}, arr.returnStates)
}

func TestMergeArraysUnionsAndMergesSharedReturnStates(t *testing.T) {
	a := &ArrayPredictionContext{
		parents:      []PredictionContext{EmptyPredictionContext, EmptyPredictionContext},
		returnStates: []int{1, 3},
	}
	b := &ArrayPredictionContext{
		parents:      []PredictionContext{EmptyPredictionContext, EmptyPredictionContext},
		returnStates: []int{2, 3},
	}
	merged := mergeArrays(a, b, true, nil)
	arr, ok := merged.(*ArrayPredictionContext)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, arr.returnStates)
}

func TestPredictionContextCacheInterningReturnsSameInstance(t *testing.T) {
	cache := NewPredictionContextCache()
	a := NewSingletonPredictionContext(EmptyPredictionContext, 4)
	b := NewSingletonPredictionContext(EmptyPredictionContext, 4)

	firstInterned := cache.GetOrAdd(a)
	secondInterned := cache.GetOrAdd(b)
	assert.Same(t, firstInterned, secondInterned)
}

func TestPredictionContextCacheMergeIsMemoized(t *testing.T) {
	cache := NewPredictionContextCache()
	a := NewSingletonPredictionContext(EmptyPredictionContext, 1)
	b := NewSingletonPredictionContext(EmptyPredictionContext, 2)

	first := cache.Merge(a, b, true)
	second := cache.Merge(a, b, true)
	assert.Same(t, first, second)
}

// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalSetAddMerge(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(5, 10)
	s.AddRange(1, 3)
	s.AddRange(11, 12)
	require.Equal(t, []Interval{{1, 3}, {5, 12}}, s.Intervals())
}

func TestIntervalSetAddAdjacentMergesIntoOne(t *testing.T) {
	s := NewIntervalSet()
	s.AddOne(1)
	s.AddOne(2)
	s.AddOne(3)
	require.Equal(t, []Interval{{1, 3}}, s.Intervals())
}

func TestIntervalSetContains(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(5, 10)
	assert.True(t, s.Contains(5))
	assert.True(t, s.Contains(10))
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(11))
}

func TestIntervalSetRemoveOneSplits(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(1, 5)
	s.removeOne(3)
	require.Equal(t, []Interval{{1, 2}, {4, 5}}, s.Intervals())
}

func TestIntervalSetRemoveOneAtEdge(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(1, 5)
	s.removeOne(1)
	require.Equal(t, []Interval{{2, 5}}, s.Intervals())
}

func TestIntervalSetComplement(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(3, 5)
	c := s.complement(1, 10)
	require.Equal(t, []Interval{{1, 2}, {6, 10}}, c.Intervals())
}

func TestIntervalSetComplementEmptySet(t *testing.T) {
	s := NewIntervalSet()
	c := s.complement(1, 3)
	require.Equal(t, []Interval{{1, 3}}, c.Intervals())
}

func TestIntervalSetString(t *testing.T) {
	s := NewIntervalSet()
	s.AddOne(5)
	assert.Equal(t, "5", s.String())

	s.AddOne(6)
	assert.Equal(t, "5..6", s.String())

	s2 := NewIntervalSet()
	s2.AddOne(1)
	s2.AddOne(3)
	assert.Equal(t, "{1, 3}", s2.String())
}

func TestIntervalSetReadonlyPanics(t *testing.T) {
	s := NewIntervalSet()
	s.AddOne(1)
	s.SetReadonly(true)
	require.Panics(t, func() { s.AddOne(2) })
}

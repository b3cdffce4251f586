// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitSetSetGetClear(t *testing.T) {
	b := NewBitSet()
	assert.True(t, b.IsEmpty())

	b.Set(5)
	b.Set(130)
	assert.True(t, b.Get(5))
	assert.True(t, b.Get(130))
	assert.False(t, b.Get(6))
	assert.Equal(t, 2, b.Cardinality())

	b.Clear(5)
	assert.False(t, b.Get(5))
	assert.Equal(t, 1, b.Cardinality())
}

func TestBitSetRangeOps(t *testing.T) {
	b := NewBitSet()
	b.SetRange(3, 8)
	for i := 3; i < 8; i++ {
		assert.True(t, b.Get(i), "bit %d should be set", i)
	}
	assert.False(t, b.Get(2))
	assert.False(t, b.Get(8))

	b.ClearRange(4, 6)
	assert.True(t, b.Get(3))
	assert.False(t, b.Get(4))
	assert.False(t, b.Get(5))
	assert.True(t, b.Get(6))
}

func TestBitSetOrAndXorAndNot(t *testing.T) {
	a := NewBitSet()
	a.Set(1)
	a.Set(2)
	b := NewBitSet()
	b.Set(2)
	b.Set(3)

	or := a.Clone()
	or.Or(b)
	assert.Equal(t, "{1, 2, 3}", or.String())

	and := a.Clone()
	and.And(b)
	assert.Equal(t, "{2}", and.String())

	xor := a.Clone()
	xor.Xor(b)
	assert.Equal(t, "{1, 3}", xor.String())

	andNot := a.Clone()
	andNot.AndNot(b)
	assert.Equal(t, "{1}", andNot.String())
}

func TestBitSetNextSetBit(t *testing.T) {
	b := NewBitSet()
	b.Set(10)
	b.Set(70)
	assert.Equal(t, 10, b.NextSetBit(0))
	assert.Equal(t, 70, b.NextSetBit(11))
	assert.Equal(t, -1, b.NextSetBit(71))
}

func TestBitSetEqualsAndHash(t *testing.T) {
	a := NewBitSet()
	a.Set(1)
	a.Set(64)
	b := NewBitSet()
	b.Set(64)
	b.Set(1)

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())

	b.Set(99)
	assert.False(t, a.Equals(b))
}

func TestBitSetNegativeIndexPanics(t *testing.T) {
	b := NewBitSet()
	require.Panics(t, func() { b.Set(-1) })
}

func TestBitSetString(t *testing.T) {
	b := NewBitSet()
	assert.Equal(t, "{}", b.String())
	b.Set(1)
	b.Set(2)
	assert.Equal(t, "{1, 2}", b.String())
}

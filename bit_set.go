// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"bytes"
	"fmt"
	"math/bits"
)

const bitSetWordSize = 64

// BitSet is a dense bit vector over non-negative integers, growing
// automatically as higher bits are set. It is used throughout the
// prediction engine to represent sets of grammar alternatives and
// conflicting-alt subsets (§4.1).
//
// The zero value is an empty set ready to use.
type BitSet struct {
	words []uint64
}

// NewBitSet returns an empty BitSet.
func NewBitSet() *BitSet {
	return &BitSet{}
}

func wordIndex(bitIndex int) int {
	return bitIndex / bitSetWordSize
}

func (b *BitSet) ensureCapacity(wordIdx int) {
	if wordIdx < len(b.words) {
		return
	}
	grown := make([]uint64, wordIdx+1)
	copy(grown, b.words)
	b.words = grown
}

func checkIndex(bitIndex int) {
	if bitIndex < 0 {
		panic(&PredictionError{Kind: IndexOutOfBounds, Message: fmt.Sprintf("bit index %d < 0", bitIndex)})
	}
}

// Set sets bit i to true.
func (b *BitSet) Set(i int) {
	checkIndex(i)
	w := wordIndex(i)
	b.ensureCapacity(w)
	b.words[w] |= 1 << uint(i%bitSetWordSize)
}

// SetRange sets every bit in [from, to) to true.
func (b *BitSet) SetRange(from, to int) {
	checkIndex(from)
	checkIndex(to)
	for i := from; i < to; i++ {
		b.Set(i)
	}
}

// Clear sets bit i to false.
func (b *BitSet) Clear(i int) {
	checkIndex(i)
	w := wordIndex(i)
	if w >= len(b.words) {
		return
	}
	b.words[w] &^= 1 << uint(i%bitSetWordSize)
}

// ClearRange sets every bit in [from, to) to false.
func (b *BitSet) ClearRange(from, to int) {
	checkIndex(from)
	checkIndex(to)
	for i := from; i < to; i++ {
		b.Clear(i)
	}
}

// Get reports whether bit i is set. Indices beyond the current length
// are simply false.
func (b *BitSet) Get(i int) bool {
	checkIndex(i)
	w := wordIndex(i)
	if w >= len(b.words) {
		return false
	}
	return b.words[w]&(1<<uint(i%bitSetWordSize)) != 0
}

// Flip toggles bit i.
func (b *BitSet) Flip(i int) {
	checkIndex(i)
	w := wordIndex(i)
	b.ensureCapacity(w)
	b.words[w] ^= 1 << uint(i%bitSetWordSize)
}

// FlipRange toggles every bit in [from, to).
func (b *BitSet) FlipRange(from, to int) {
	checkIndex(from)
	checkIndex(to)
	for i := from; i < to; i++ {
		b.Flip(i)
	}
}

// Cardinality returns the number of set bits.
func (b *BitSet) Cardinality() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Length returns the index of the highest set bit plus one, or 0 if the
// set is empty.
func (b *BitSet) Length() int {
	for i := len(b.words) - 1; i >= 0; i-- {
		if b.words[i] != 0 {
			return i*bitSetWordSize + (bitSetWordSize - bits.LeadingZeros64(b.words[i]))
		}
	}
	return 0
}

// IsEmpty reports whether no bit is set.
func (b *BitSet) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Intersects reports whether b and other share any set bit.
func (b *BitSet) Intersects(other *BitSet) bool {
	n := len(b.words)
	if len(other.words) < n {
		n = len(other.words)
	}
	for i := 0; i < n; i++ {
		if b.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

func (b *BitSet) binOp(other *BitSet, f func(a, b uint64) uint64, growToOther bool) {
	if growToOther && len(other.words) > len(b.words) {
		b.ensureCapacity(len(other.words) - 1)
	}
	for i := 0; i < len(b.words); i++ {
		var ow uint64
		if i < len(other.words) {
			ow = other.words[i]
		}
		b.words[i] = f(b.words[i], ow)
	}
}

// And performs in-place set intersection.
func (b *BitSet) And(other *BitSet) {
	b.binOp(other, func(a, c uint64) uint64 { return a & c }, false)
}

// Or performs in-place set union, growing b if other has higher bits.
func (b *BitSet) Or(other *BitSet) {
	b.binOp(other, func(a, c uint64) uint64 { return a | c }, true)
}

// Xor performs in-place symmetric difference, growing b if needed.
func (b *BitSet) Xor(other *BitSet) {
	b.binOp(other, func(a, c uint64) uint64 { return a ^ c }, true)
}

// AndNot clears every bit in b that is set in other (in-place set
// difference).
func (b *BitSet) AndNot(other *BitSet) {
	b.binOp(other, func(a, c uint64) uint64 { return a &^ c }, false)
}

// NextSetBit returns the index of the first set bit at or after from, or
// -1 if there is none.
func (b *BitSet) NextSetBit(from int) int {
	checkIndex(from)
	w := wordIndex(from)
	if w >= len(b.words) {
		return -1
	}
	mask := ^uint64(0) << uint(from%bitSetWordSize)
	word := b.words[w] & mask
	for {
		if word != 0 {
			return w*bitSetWordSize + bits.TrailingZeros64(word)
		}
		w++
		if w >= len(b.words) {
			return -1
		}
		word = b.words[w]
	}
}

// NextClearBit returns the index of the first clear bit at or after
// from. Because the set is conceptually infinite (all bits beyond
// Length() are clear), this always succeeds.
func (b *BitSet) NextClearBit(from int) int {
	checkIndex(from)
	w := wordIndex(from)
	if w >= len(b.words) {
		return from
	}
	mask := ^uint64(0) << uint(from%bitSetWordSize)
	word := ^b.words[w] & mask
	for {
		if word != 0 {
			return w*bitSetWordSize + bits.TrailingZeros64(word)
		}
		w++
		if w >= len(b.words) {
			return w * bitSetWordSize
		}
		word = ^b.words[w]
	}
}

// PreviousSetBit returns the index of the nearest set bit at or before
// from, or -1 if there is none. from == -1 is accepted and always
// returns -1 (the one exception to negative indices being rejected).
func (b *BitSet) PreviousSetBit(from int) int {
	if from == -1 {
		return -1
	}
	checkIndex(from)
	w := wordIndex(from)
	if w >= len(b.words) {
		w = len(b.words) - 1
		if w < 0 {
			return -1
		}
	} else {
		bit := uint(from % bitSetWordSize)
		mask := ^uint64(0) >> uint(bitSetWordSize-1-int(bit))
		word := b.words[w] & mask
		if word != 0 {
			return w*bitSetWordSize + (bitSetWordSize - 1 - bits.LeadingZeros64(word))
		}
		w--
	}
	for w >= 0 {
		if b.words[w] != 0 {
			return w*bitSetWordSize + (bitSetWordSize - 1 - bits.LeadingZeros64(b.words[w]))
		}
		w--
	}
	return -1
}

// PreviousClearBit returns the index of the nearest clear bit at or
// before from, or -1 if from == -1 (the one accepted negative index).
func (b *BitSet) PreviousClearBit(from int) int {
	if from == -1 {
		return -1
	}
	checkIndex(from)
	w := wordIndex(from)
	if w >= len(b.words) {
		return from
	}
	bit := uint(from % bitSetWordSize)
	mask := ^uint64(0) >> uint(bitSetWordSize-1-int(bit))
	word := ^b.words[w] & mask
	for {
		if word != 0 {
			return w*bitSetWordSize + (bitSetWordSize - 1 - bits.LeadingZeros64(word))
		}
		w--
		if w < 0 {
			return -1
		}
		word = ^b.words[w]
	}
}

// Equals reports structural equality: same set of bits regardless of
// trailing all-zero words.
func (b *BitSet) Equals(other interface{}) bool {
	o, ok := other.(*BitSet)
	if !ok || o == nil {
		return false
	}
	n := len(b.words)
	if len(o.words) > n {
		n = len(o.words)
	}
	for i := 0; i < n; i++ {
		var a, c uint64
		if i < len(b.words) {
			a = b.words[i]
		}
		if i < len(o.words) {
			c = o.words[i]
		}
		if a != c {
			return false
		}
	}
	return true
}

// Hash returns a hash stable across structurally-equal BitSets.
func (b *BitSet) Hash() int {
	h := 1
	for i := 0; i < len(b.words); i++ {
		if b.words[i] == 0 {
			continue
		}
		h = h*31 + int(b.words[i]^(b.words[i]>>32))
		h = h*31 + i
	}
	return h
}

// Clone returns an independent copy.
func (b *BitSet) Clone() *BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &BitSet{words: words}
}

// String renders the set as "{a, b, c}" in ascending order, the form
// used by ambiguity reporting (§4.1).
func (b *BitSet) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for i := b.NextSetBit(0); i >= 0; i = b.NextSetBit(i + 1) {
		if !first {
			buf.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&buf, "%d", i)
	}
	buf.WriteByte('}')
	return buf.String()
}

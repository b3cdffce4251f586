// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"sort"

	"golang.org/x/exp/slices"
)

// PredictionContextEmptyReturnState sorts last among return states so
// that EMPTY, as a distinguished "$" return state, always lands at the
// end of an Array context's parallel arrays (§3.4).
const PredictionContextEmptyReturnState = 0x7FFFFFFF

// PredictionContext is the call-stack DAG shared across configurations
// (§3.4, §4.2). It is built during closure, merged monotonically, and
// interned so that structurally-equal results share one allocation.
type PredictionContext interface {
	length() int
	getParent(index int) PredictionContext
	getReturnState(index int) int
	hash() int
	equals(other PredictionContext) bool
	isEmpty() bool
	hasEmptyPath() bool
	String() string
}

// EmptyPredictionContext is the process-wide singleton representing
// "$", the bottom of the stack, or "no known caller". It is itself a
// SingletonPredictionContext with a nil parent and the distinguished
// EMPTY return state, matching §3.4 exactly.
var EmptyPredictionContext PredictionContext = &SingletonPredictionContext{parent: nil, returnState: PredictionContextEmptyReturnState}

// SingletonPredictionContext is one call frame: a parent plus the state
// execution should resume at on rule return.
type SingletonPredictionContext struct {
	parent      PredictionContext
	returnState int
}

// NewSingletonPredictionContext builds a singleton, collapsing to EMPTY
// when parent is nil and returnState is the EMPTY sentinel.
func NewSingletonPredictionContext(parent PredictionContext, returnState int) *SingletonPredictionContext {
	if parent == nil && returnState == PredictionContextEmptyReturnState {
		return EmptyPredictionContext.(*SingletonPredictionContext)
	}
	return &SingletonPredictionContext{parent: parent, returnState: returnState}
}

func (s *SingletonPredictionContext) length() int { return 1 }
func (s *SingletonPredictionContext) getParent(int) PredictionContext { return s.parent }
func (s *SingletonPredictionContext) getReturnState(int) int          { return s.returnState }
func (s *SingletonPredictionContext) isEmpty() bool {
	return s.parent == nil && s.returnState == PredictionContextEmptyReturnState
}
func (s *SingletonPredictionContext) hasEmptyPath() bool {
	return s.returnState == PredictionContextEmptyReturnState
}

func (s *SingletonPredictionContext) hash() int {
	h := 1
	if s.parent != nil {
		h = s.parent.hash()
	}
	h = h*31 + s.returnState
	return h
}

func (s *SingletonPredictionContext) equals(other PredictionContext) bool {
	o, ok := other.(*SingletonPredictionContext)
	if !ok {
		return false
	}
	if s.returnState != o.returnState {
		return false
	}
	if s.parent == nil {
		return o.parent == nil
	}
	return s.parent.equals(o.parent)
}

func (s *SingletonPredictionContext) String() string {
	var up string
	if s.parent != nil {
		up = s.parent.String()
	}
	if len(up) == 0 {
		if s.returnState == PredictionContextEmptyReturnState {
			return "$"
		}
		return itoa(s.returnState)
	}
	return itoa(s.returnState) + " " + up
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// ArrayPredictionContext represents an n-ary fork: parallel, sorted
// arrays of parents/returnStates with no duplicate returnState (§3.4).
// An Array of size 1 is always canonicalized to a Singleton before
// being published.
type ArrayPredictionContext struct {
	parents      []PredictionContext
	returnStates []int
}

func NewArrayPredictionContext(parents []PredictionContext, returnStates []int) *ArrayPredictionContext {
	return &ArrayPredictionContext{parents: parents, returnStates: returnStates}
}

func (a *ArrayPredictionContext) length() int { return len(a.returnStates) }
func (a *ArrayPredictionContext) getParent(i int) PredictionContext { return a.parents[i] }
func (a *ArrayPredictionContext) getReturnState(i int) int           { return a.returnStates[i] }
func (a *ArrayPredictionContext) isEmpty() bool {
	return len(a.returnStates) == 1 && a.returnStates[0] == PredictionContextEmptyReturnState
}
func (a *ArrayPredictionContext) hasEmptyPath() bool {
	return a.getReturnState(a.length()-1) == PredictionContextEmptyReturnState
}

func (a *ArrayPredictionContext) hash() int {
	h := 1
	for i, rs := range a.returnStates {
		ph := 0
		if a.parents[i] != nil {
			ph = a.parents[i].hash()
		}
		h = h*31 + ph
		h = h*31 + rs
	}
	return h
}

func (a *ArrayPredictionContext) equals(other PredictionContext) bool {
	o, ok := other.(*ArrayPredictionContext)
	if !ok || len(o.returnStates) != len(a.returnStates) {
		return false
	}
	for i := range a.returnStates {
		if a.returnStates[i] != o.returnStates[i] {
			return false
		}
		if (a.parents[i] == nil) != (o.parents[i] == nil) {
			return false
		}
		if a.parents[i] != nil && !a.parents[i].equals(o.parents[i]) {
			return false
		}
	}
	return true
}

func (a *ArrayPredictionContext) String() string {
	if a.isEmpty() {
		return "[]"
	}
	s := "["
	for i := 0; i < len(a.returnStates); i++ {
		if i > 0 {
			s += ", "
		}
		if a.returnStates[i] == PredictionContextEmptyReturnState {
			s += "$"
			continue
		}
		s += itoa(a.returnStates[i])
		if a.parents[i] != nil {
			s += " " + a.parents[i].String()
		} else {
			s += " nil"
		}
	}
	return s + "]"
}

// --- construction from a parser's invocation chain ---

// predictionContextFromRuleContext walks a parser's invocation chain
// (outermost caller to innermost), building an Array/Singleton chain
// ending at EMPTY (§4.2 fromRuleContext).
func predictionContextFromRuleContext(a *ATN, outerContext RuleContext) PredictionContext {
	if outerContext == nil || outerContext.GetParent() == nil {
		return EmptyPredictionContext
	}
	parent := predictionContextFromRuleContext(a, outerContext.GetParent())
	state := a.states[outerContext.GetInvokingState()]
	transition := state.GetTransitions()[0].(*RuleTransition)
	return NewSingletonPredictionContext(parent, transition.followState.GetStateNumber())
}

// --- merge: the heart of §4.2 ---

// mergeCache memoizes merge results so repeated merges of the same
// structurally-interned pair are O(1). Keyed by the pointer identity of
// the two operands (after any prior interning), matching the teacher
// corpus' "explicitly-owned handle" idiom for shared mutable caches
// (§9).
type mergeCache struct {
	m map[PredictionContext]map[PredictionContext]PredictionContext
}

func newMergeCache() *mergeCache {
	return &mergeCache{m: make(map[PredictionContext]map[PredictionContext]PredictionContext)}
}

func (c *mergeCache) get(a, b PredictionContext) (PredictionContext, bool) {
	if inner, ok := c.m[a]; ok {
		if v, ok := inner[b]; ok {
			return v, true
		}
	}
	if inner, ok := c.m[b]; ok {
		if v, ok := inner[a]; ok {
			return v, true
		}
	}
	return nil, false
}

func (c *mergeCache) put(a, b, v PredictionContext) {
	inner, ok := c.m[a]
	if !ok {
		inner = make(map[PredictionContext]PredictionContext)
		c.m[a] = inner
	}
	inner[b] = v
}

// mergePredictionContexts computes a new context representing a ∪ b as
// stack sets (§4.2 rules 1-5).
func mergePredictionContexts(a, b PredictionContext, rootIsWildcard bool, cache *mergeCache) PredictionContext {
	if a == b {
		return a
	}
	as, aIsSingle := a.(*SingletonPredictionContext)
	bs, bIsSingle := b.(*SingletonPredictionContext)
	if aIsSingle && bIsSingle {
		return mergeSingletons(as, bs, rootIsWildcard, cache)
	}
	if rootIsWildcard {
		if a.isEmpty() {
			return a
		}
		if b.isEmpty() {
			return b
		}
	}
	var aArr, bArr *ArrayPredictionContext
	if aIsSingle {
		aArr = &ArrayPredictionContext{parents: []PredictionContext{as.parent}, returnStates: []int{as.returnState}}
	} else {
		aArr = a.(*ArrayPredictionContext)
	}
	if bIsSingle {
		bArr = &ArrayPredictionContext{parents: []PredictionContext{bs.parent}, returnStates: []int{bs.returnState}}
	} else {
		bArr = b.(*ArrayPredictionContext)
	}
	return mergeArrays(aArr, bArr, rootIsWildcard, cache)
}

func mergeSingletons(a, b *SingletonPredictionContext, rootIsWildcard bool, cache *mergeCache) PredictionContext {
	if cache != nil {
		if v, ok := cache.get(a, b); ok {
			return v
		}
	}
	rootMerge := mergeRoot(a, b, rootIsWildcard)
	if rootMerge != nil {
		if cache != nil {
			cache.put(a, b, rootMerge)
		}
		return rootMerge
	}
	if a.returnState == b.returnState {
		parent := mergePredictionContexts(a.parent, b.parent, rootIsWildcard, cache)
		if parent == a.parent {
			return a
		}
		if parent == b.parent {
			return b
		}
		merged := NewSingletonPredictionContext(parent, a.returnState)
		if cache != nil {
			cache.put(a, b, merged)
		}
		return merged
	}
	// different return states: produce an Array with both, sorted.
	var parent1, parent2 PredictionContext
	var rs1, rs2 int
	if a.returnState < b.returnState {
		parent1, rs1 = a.parent, a.returnState
		parent2, rs2 = b.parent, b.returnState
	} else {
		parent1, rs1 = b.parent, b.returnState
		parent2, rs2 = a.parent, a.returnState
	}
	merged := &ArrayPredictionContext{
		parents:      []PredictionContext{parent1, parent2},
		returnStates: []int{rs1, rs2},
	}
	if cache != nil {
		cache.put(a, b, merged)
	}
	return merged
}

// mergeRoot handles the EMPTY-sentinel special cases of rule 3. It
// returns nil when neither operand is EMPTY (fall through to the
// general singleton merge).
func mergeRoot(a, b *SingletonPredictionContext, rootIsWildcard bool) PredictionContext {
	aIsEmpty := a.isEmpty()
	bIsEmpty := b.isEmpty()
	if aIsEmpty || bIsEmpty {
		if rootIsWildcard {
			// SLL: wildcard absorbs everything into EMPTY.
			return EmptyPredictionContext
		}
		// LL: EMPTY participates as a distinguished returnState.
		if aIsEmpty && bIsEmpty {
			return EmptyPredictionContext
		}
		var nonEmpty *SingletonPredictionContext
		if aIsEmpty {
			nonEmpty = b
		} else {
			nonEmpty = a
		}
		// EMPTY_RETURN_STATE sorts last (§3.4), so the non-empty
		// return state always comes first here.
		payloads := []int{nonEmpty.returnState, PredictionContextEmptyReturnState}
		parents := []PredictionContext{nonEmpty.parent, nil}
		return &ArrayPredictionContext{parents: parents, returnStates: payloads}
	}
	return nil
}

// mergeArrays implements the Array-Array merge: a sorted merge on
// returnState, recursively merging parents of equal returnStates.
func mergeArrays(a, b *ArrayPredictionContext, rootIsWildcard bool, cache *mergeCache) PredictionContext {
	if cache != nil {
		if v, ok := cache.get(a, b); ok {
			return v
		}
	}
	i, j := 0, 0
	mergedParents := make([]PredictionContext, 0, len(a.returnStates)+len(b.returnStates))
	mergedReturnStates := make([]int, 0, len(a.returnStates)+len(b.returnStates))
	for i < len(a.returnStates) && j < len(b.returnStates) {
		pa, pb := a.parents[i], b.parents[j]
		ra, rb := a.returnStates[i], b.returnStates[j]
		switch {
		case ra == rb:
			mergedReturnStates = append(mergedReturnStates, ra)
			mergedParents = append(mergedParents, mergePredictionContexts(pa, pb, rootIsWildcard, cache))
			i++
			j++
		case ra < rb:
			mergedReturnStates = append(mergedReturnStates, ra)
			mergedParents = append(mergedParents, pa)
			i++
		default:
			mergedReturnStates = append(mergedReturnStates, rb)
			mergedParents = append(mergedParents, pb)
			j++
		}
	}
	for ; i < len(a.returnStates); i++ {
		mergedReturnStates = append(mergedReturnStates, a.returnStates[i])
		mergedParents = append(mergedParents, a.parents[i])
	}
	for ; j < len(b.returnStates); j++ {
		mergedReturnStates = append(mergedReturnStates, b.returnStates[j])
		mergedParents = append(mergedParents, b.parents[j])
	}
	var result PredictionContext
	if len(mergedReturnStates) == 1 {
		result = NewSingletonPredictionContext(mergedParents[0], mergedReturnStates[0])
	} else {
		result = &ArrayPredictionContext{parents: mergedParents, returnStates: mergedReturnStates}
	}
	if cache != nil {
		cache.put(a, b, result)
	}
	return result
}

// sortReturnStates sorts returnStates ascending and reorders parents to
// match, for building Array contexts from unsorted input. Nothing in
// the package calls it.
func sortReturnStates(returnStates []int, parents []PredictionContext) {
	idx := make([]int, len(returnStates))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return returnStates[idx[i]] < returnStates[idx[j]] })
	rs := make([]int, len(returnStates))
	ps := make([]PredictionContext, len(parents))
	for newPos, oldPos := range idx {
		rs[newPos] = returnStates[oldPos]
		ps[newPos] = parents[oldPos]
	}
	copy(returnStates, rs)
	copy(parents, ps)
}

// --- interning cache ---

// PredictionContextCache interns PredictionContexts by structural hash
// so that merged results compare equal by pointer (§3.4, §9: "explicitly
// -owned handle passed into the simulator").
type PredictionContextCache struct {
	cache map[int][]PredictionContext
	merge *mergeCache
}

// NewPredictionContextCache returns an empty cache. One instance is
// normally shared by every decision of a parser.
func NewPredictionContextCache() *PredictionContextCache {
	return &PredictionContextCache{cache: make(map[int][]PredictionContext), merge: newMergeCache()}
}

// GetOrAdd returns the interned equivalent of ctx, publishing ctx itself
// the first time a structurally-equal context is seen. This resolves
// the getOrAdd ambiguity flagged in §9's open questions: collisions
// preserve the first-seen structurally-equal context (never lose a
// context, since interning never discards information, only shares it).
func (c *PredictionContextCache) GetOrAdd(ctx PredictionContext) PredictionContext {
	if ctx == EmptyPredictionContext {
		return ctx
	}
	h := ctx.hash()
	bucket := c.cache[h]
	if i := slices.IndexFunc(bucket, func(existing PredictionContext) bool { return existing.equals(ctx) }); i >= 0 {
		return bucket[i]
	}
	c.cache[h] = append(bucket, ctx)
	return ctx
}

// Merge merges a and b, interning the result through this cache's
// shared merge-memoization table.
func (c *PredictionContextCache) Merge(a, b PredictionContext, rootIsWildcard bool) PredictionContext {
	merged := mergePredictionContexts(a, b, rootIsWildcard, c.merge)
	return c.GetOrAdd(merged)
}

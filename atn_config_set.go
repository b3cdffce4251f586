// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ConfigEquality parameterizes ATNConfigSet by its equality discipline
// (§4.4, §9: "two equalities on one container" — a trait/interface
// rather than an internal mode branch). LookupEquality is used while
// merging during closure; OrderedEquality is used for DFA-state
// uniqueness.
type ConfigEquality interface {
	hashConfig(c *ATNConfig) int
	equalConfigs(a, b *ATNConfig) bool
}

type lookupEquality struct{}

func (lookupEquality) hashConfig(c *ATNConfig) int          { return c.lookupHash() }
func (lookupEquality) equalConfigs(a, b *ATNConfig) bool    { return a.lookupEquals(b) }

type orderedEquality struct{}

func (orderedEquality) hashConfig(c *ATNConfig) int       { return c.orderedHash() }
func (orderedEquality) equalConfigs(a, b *ATNConfig) bool { return a.orderedEquals(b) }

// LookupEquality is used for configuration merging during closure
// (§4.4).
var LookupEquality ConfigEquality = lookupEquality{}

// OrderedEquality is used for DFA equivalence / state uniqueness
// (§4.4).
var OrderedEquality ConfigEquality = orderedEquality{}

// ATNConfigSet is an ordered multiset of ATNConfig under the chosen
// ConfigEquality (§3.6). It tracks the aggregate bits conflict analysis
// and the DFA cache depend on.
type ATNConfigSet struct {
	equality ConfigEquality

	configs []*ATNConfig
	// buckets maps a config's equality-hash to the indexes of configs
	// already added under that hash, mirroring §9's "preserve and
	// merge" resolution of the getOrAdd open question: every colliding
	// config is checked and, on a true equality hit, merged in place
	// rather than only the first being kept.
	buckets map[int][]int

	hasSemanticContext     bool
	dipsIntoOuterContext   bool
	uniqueAlt              int
	conflictingAlts        *BitSet
	fullCtx                bool
	readOnly               bool

	cachedHash int
}

// NewATNConfigSet creates an empty set. fullCtx selects whether this set
// belongs to an SLL (false) or LL (true) simulation pass (§3.6); it
// governs the rootIsWildcard argument used during add's merge.
func NewATNConfigSet(fullCtx bool) *ATNConfigSet {
	return &ATNConfigSet{
		equality:   LookupEquality,
		buckets:    make(map[int][]int),
		uniqueAlt:  ATNInvalidAltNumber,
		fullCtx:    fullCtx,
		cachedHash: -1,
	}
}

// NewOrderedATNConfigSet creates a set using the Ordered equality
// discipline, used for DFA-state uniqueness (§4.4).
func NewOrderedATNConfigSet() *ATNConfigSet {
	s := NewATNConfigSet(false)
	s.equality = OrderedEquality
	return s
}

func (s *ATNConfigSet) checkNotReadOnly() {
	if s.readOnly {
		panic(&PredictionError{Kind: IllegalState, Message: "this ATNConfigSet is readonly"})
	}
}

// Add inserts config, merging it into an existing equal entry rather
// than duplicating it (§4.5's add semantics). It returns true if this
// call appended a brand-new entry.
func (s *ATNConfigSet) Add(config *ATNConfig, cache *mergeCache) bool {
	s.checkNotReadOnly()
	s.cachedHash = -1

	h := s.equality.hashConfig(config)
	for _, idx := range s.buckets[h] {
		existing := s.configs[idx]
		if !s.equality.equalConfigs(existing, config) {
			continue
		}
		// Collision on an already-equal config: merge contexts rather
		// than keep only the first (§9 open question, resolved per
		// the spec towards "preserve and merge").
		rootIsWildcard := !s.fullCtx
		merged := mergePredictionContexts(existing.context, config.context, rootIsWildcard, cache)
		existing.context = merged
		if config.reachesIntoOuterContext > existing.reachesIntoOuterContext {
			existing.reachesIntoOuterContext = config.reachesIntoOuterContext
		}
		if config.precedenceFilterSuppressed {
			existing.precedenceFilterSuppressed = true
		}
		return false
	}

	s.configs = append(s.configs, config)
	idx := len(s.configs) - 1
	s.buckets[h] = append(s.buckets[h], idx)

	if config.semanticContext != SemanticContextNone {
		s.hasSemanticContext = true
	}
	if config.reachesIntoOuterContext > 0 {
		s.dipsIntoOuterContext = true
	}
	s.trackUniqueAlt(config.alt)
	return true
}

func (s *ATNConfigSet) trackUniqueAlt(alt int) {
	if s.uniqueAlt == ATNInvalidAltNumber {
		s.uniqueAlt = alt
	} else if s.uniqueAlt != alt {
		s.uniqueAlt = ATNInvalidAltNumber
	}
}

// AddAll inserts every config of other.
func (s *ATNConfigSet) AddAll(other *ATNConfigSet, cache *mergeCache) {
	for _, c := range other.configs {
		s.Add(c, cache)
	}
}

// Configs returns the set's contents in insertion order. Callers must
// not mutate the returned slice.
func (s *ATNConfigSet) Configs() []*ATNConfig { return s.configs }

func (s *ATNConfigSet) Size() int { return len(s.configs) }
func (s *ATNConfigSet) IsEmpty() bool { return len(s.configs) == 0 }

func (s *ATNConfigSet) HasSemanticContext() bool   { return s.hasSemanticContext }
func (s *ATNConfigSet) DipsIntoOuterContext() bool { return s.dipsIntoOuterContext }
func (s *ATNConfigSet) UniqueAlt() int             { return s.uniqueAlt }
func (s *ATNConfigSet) FullCtx() bool              { return s.fullCtx }
func (s *ATNConfigSet) IsReadOnly() bool           { return s.readOnly }

// SetReadonly freezes the set; any subsequent Add panics (§4.5, §8.1).
func (s *ATNConfigSet) SetReadonly(ro bool) { s.readOnly = ro }

// GetConflictingAlts returns the BitSet installed by conflict analysis,
// or nil if none has been computed.
func (s *ATNConfigSet) GetConflictingAlts() *BitSet { return s.conflictingAlts }
func (s *ATNConfigSet) SetConflictingAlts(alts *BitSet) { s.conflictingAlts = alts }

// GetAlts returns the set of every alt appearing in any config.
func (s *ATNConfigSet) GetAlts() *BitSet {
	alts := NewBitSet()
	for _, c := range s.configs {
		alts.Set(c.alt)
	}
	return alts
}

// GetPredicates returns the semantic contexts of configs carrying
// something other than NONE, in insertion order.
func (s *ATNConfigSet) GetPredicates() []SemanticContext {
	var preds []SemanticContext
	for _, c := range s.configs {
		if c.semanticContext != SemanticContextNone {
			preds = append(preds, c.semanticContext)
		}
	}
	return preds
}

// GetStateToAltMap groups configs by ATN state number and returns, for
// each state, the set of alts reachable there.
func (s *ATNConfigSet) GetStateToAltMap() map[int]*BitSet {
	m := make(map[int]*BitSet)
	for _, c := range s.configs {
		sn := c.state.GetStateNumber()
		alts, ok := m[sn]
		if !ok {
			alts = NewBitSet()
			m[sn] = alts
		}
		alts.Set(c.alt)
	}
	return m
}

// GetConflictingAltSubsets groups configs by (state, context) and
// returns, for each group, the BitSet of alts sharing that group
// (§4.6's altsets projection).
func (s *ATNConfigSet) GetConflictingAltSubsets() []*BitSet {
	type key struct {
		state int
		ctx   PredictionContext
	}
	order := make([]key, 0, len(s.configs))
	grouped := make(map[key]*BitSet)
	for _, c := range s.configs {
		k := key{c.state.GetStateNumber(), c.context}
		alts, ok := grouped[k]
		if !ok {
			alts = NewBitSet()
			grouped[k] = alts
			order = append(order, k)
		}
		alts.Set(c.alt)
	}
	result := make([]*BitSet, 0, len(order))
	for _, k := range order {
		result = append(result, grouped[k])
	}
	return result
}

// AllConfigsInRuleStopStates reports whether every config sits on a
// RuleStopState — SLL cannot advance further in that case (§4.6).
func (s *ATNConfigSet) AllConfigsInRuleStopStates() bool {
	for _, c := range s.configs {
		if _, ok := c.state.(*RuleStopState); !ok {
			return false
		}
	}
	return true
}

// DupConfigsWithoutSemanticPredicates returns a copy of the set with
// every config's semanticContext reset to NONE; used once predicates
// have already been evaluated and should not be reconsidered.
func (s *ATNConfigSet) DupConfigsWithoutSemanticPredicates() *ATNConfigSet {
	dup := NewATNConfigSet(s.fullCtx)
	for _, c := range s.configs {
		stripped := NewATNConfig(c.state, c.alt, c.context)
		stripped.reachesIntoOuterContext = c.reachesIntoOuterContext
		dup.Add(stripped, nil)
	}
	return dup
}

// OptimizeConfigs replaces every config's context with its cache-
// interned equivalent, shrinking duplicate subgraphs produced during
// closure before the set is frozen into a DFA state.
func (s *ATNConfigSet) OptimizeConfigs(cache *PredictionContextCache) {
	if cache == nil {
		return
	}
	for _, c := range s.configs {
		if c.context != nil {
			c.context = cache.GetOrAdd(c.context)
		}
	}
}

// Equals compares two config sets under the Ordered discipline,
// irrespective of which discipline built them — this is what DFAState
// interning relies on.
func (s *ATNConfigSet) Equals(other *ATNConfigSet) bool {
	if other == nil || len(s.configs) != len(other.configs) {
		return false
	}
	if s.fullCtx != other.fullCtx {
		return false
	}
	used := make([]bool, len(other.configs))
	for _, c := range s.configs {
		found := false
		for j, oc := range other.configs {
			if used[j] {
				continue
			}
			if c.orderedEquals(oc) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Hash returns a hash stable across Equals-equal sets.
func (s *ATNConfigSet) Hash() int {
	if s.cachedHash >= 0 {
		return s.cachedHash
	}
	h := 1
	for _, c := range s.configs {
		h += c.orderedHash()
	}
	s.cachedHash = h
	return h
}

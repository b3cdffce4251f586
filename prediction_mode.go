// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// PredictionMode names an SLL/LL prediction strategy (§4.7).
// ParserATNSimulator escalates an SLL conflict to the full LL pass under
// every mode; the mode only sets the exact flag of ambiguity reports.
type PredictionMode int

const (
	// PredictionModeSLL is context-free prediction: fast, but reports
	// false conflicts inside ambiguous or deeply nested contexts.
	// ParserATNSimulator runs it the same way as PredictionModeLL.
	PredictionModeSLL PredictionMode = iota
	// PredictionModeLL falls back to full-context prediction to
	// resolve SLL conflicts, stopping at the first provably unique
	// alternative.
	PredictionModeLL
	// PredictionModeLLExactAmbigDetection runs the same search as
	// PredictionModeLL and passes exact=true to reportAmbiguity; it
	// does not explore further once an alt is chosen.
	PredictionModeLLExactAmbigDetection
)

// hasNonConflictingAltSet reports whether any subset has exactly one
// member (§4.7).
func hasNonConflictingAltSet(altsets []*BitSet) bool {
	for _, s := range altsets {
		if s.Cardinality() == 1 {
			return true
		}
	}
	return false
}

// hasConflictingAltSet reports whether any subset has more than one
// member.
func hasConflictingAltSet(altsets []*BitSet) bool {
	for _, s := range altsets {
		if s.Cardinality() > 1 {
			return true
		}
	}
	return false
}

// allSubsetsConflict reports whether no subset is a singleton.
func allSubsetsConflict(altsets []*BitSet) bool {
	return !hasNonConflictingAltSet(altsets)
}

// allSubsetsEqual reports whether every subset equals the first.
func allSubsetsEqual(altsets []*BitSet) bool {
	if len(altsets) == 0 {
		return true
	}
	first := altsets[0]
	for _, s := range altsets[1:] {
		if !s.Equals(first) {
			return false
		}
	}
	return true
}

// getUniqueAlt returns the lone bit across the union of altsets if its
// cardinality is 1, else ATNInvalidAltNumber.
func getUniqueAlt(altsets []*BitSet) int {
	all := getAlts(altsets)
	if all.Cardinality() == 1 {
		return all.NextSetBit(0)
	}
	return ATNInvalidAltNumber
}

// getAlts returns the union of every subset.
func getAlts(altsets []*BitSet) *BitSet {
	all := NewBitSet()
	for _, s := range altsets {
		all.Or(s)
	}
	return all
}

// getSingleViableAlt takes the minimum bit of each subset; if the union
// of those minimums is itself a singleton, that is the single viable
// alt, else ATNInvalidAltNumber.
func getSingleViableAlt(altsets []*BitSet) int {
	result := NewBitSet()
	for _, s := range altsets {
		min := s.NextSetBit(0)
		if min < 0 {
			continue
		}
		result.Set(min)
	}
	if result.Cardinality() == 1 {
		return result.NextSetBit(0)
	}
	return ATNInvalidAltNumber
}

// resolvesToJustOneViableAlt mirrors getSingleViableAlt but is the name
// the simulator's LL pass calls it under (§4.6).
func resolvesToJustOneViableAlt(altsets []*BitSet) int {
	return getSingleViableAlt(altsets)
}

// hasSLLConflictTerminatingPrediction implements §4.6's SLL stopping
// rule: conflicting alt subsets exist, and at least one ATN state is
// shared by more than one alt (if every state mapped to one alt, SLL
// could keep disambiguating by state alone).
func hasSLLConflictTerminatingPrediction(configs *ATNConfigSet) bool {
	if configs.AllConfigsInRuleStopStates() {
		return true
	}
	altsets := configs.GetConflictingAltSubsets()
	return hasConflictingAltSet(altsets) && !hasStateAssociatedWithOneAlt(configs)
}

// hasStateAssociatedWithOneAlt reports whether every ATN state reached
// by the configs maps to exactly one alt, which means the apparent
// alt-subset conflict is resolved by state alone, not a true ambiguity.
func hasStateAssociatedWithOneAlt(configs *ATNConfigSet) bool {
	for _, alts := range configs.GetStateToAltMap() {
		if alts.Cardinality() > 1 {
			return false
		}
	}
	return true
}

// getConflictingAlts projects configs to alt subsets and returns the
// union of every subset with more than one alt — the set the LL pass
// reports as ambigAlts (§4.6, §6.3).
func getConflictingAlts(configs *ATNConfigSet) *BitSet {
	altsets := configs.GetConflictingAltSubsets()
	conflicting := NewBitSet()
	for _, s := range altsets {
		if s.Cardinality() > 1 {
			conflicting.Or(s)
		}
	}
	return conflicting
}

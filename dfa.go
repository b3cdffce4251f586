// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// DFA is the lazily-built, memoized automaton for one decision (§3.7,
// §4.8). Multiple parser instances may share one DFA concurrently
// (§5): states and edges are only ever added, and all additive
// mutation goes through mu.
//
// The interning table (states) is modeled after the
// hit/miss-tracking GetOrInsert cache of a hybrid regex DFA (the same
// "check-then-set, existing entry wins" discipline as
// coregx-coregex's dfa/lazy.Cache), adapted to key by full ATNConfigSet
// structural equality instead of an NFA-state-set hash.
type DFA struct {
	mu sync.Mutex

	// decision is the index into the ATN's DecisionToState this DFA
	// serves.
	decision int
	atnStartState DecisionState

	// states interns DFAState by its config-set hash; collisions are
	// resolved by Equals so structurally-identical sets always share
	// one DFAState (§4.8).
	states map[int][]*DFAState

	// ordered keeps a secondary index of interned states sorted by
	// stateNumber, used for deterministic dumps (ToDotString/String).
	ordered *treeset.Set

	s0     *DFAState // SLL start state
	s0full *DFAState // LL (full-context) start state

	nextStateNumber int

	precedenceDfa bool
}

func dfaStateComparator(a, b interface{}) int {
	return utils.IntComparator(a.(*DFAState).stateNumber, b.(*DFAState).stateNumber)
}

// NewDFA creates an empty DFA for the given decision state.
func NewDFA(atnStartState DecisionState, decision int) *DFA {
	return &DFA{
		decision:      decision,
		atnStartState: atnStartState,
		states:        make(map[int][]*DFAState),
		ordered:       treeset.NewWith(dfaStateComparator),
	}
}

// GetS0 returns the SLL start state (possibly nil if prediction for
// this decision has never run).
func (d *DFA) GetS0() *DFAState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.s0
}

// SetS0 installs the SLL start state.
func (d *DFA) SetS0(s *DFAState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.s0 = s
}

func (d *DFA) GetS0Full() *DFAState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.s0full
}

func (d *DFA) SetS0Full(s *DFAState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.s0full = s
}

// AddState interns newState: if a structurally-equal state is already
// present, the existing one is returned and newState is discarded
// (§4.8: "the new one is discarded"). Otherwise newState is assigned
// the next stateNumber and installed.
func (d *DFA) AddState(newState *DFAState) *DFAState {
	d.mu.Lock()
	defer d.mu.Unlock()

	h := newState.configs.Hash()
	for _, existing := range d.states[h] {
		if existing.Equals(newState) {
			return existing
		}
	}
	newState.stateNumber = d.nextStateNumber
	d.nextStateNumber++
	newState.configs.SetReadonly(true)
	d.states[h] = append(d.states[h], newState)
	d.ordered.Add(newState)
	return newState
}

// AddEdge installs the edge for token type t from one interned state to
// another under the DFA's lock, matching §5's "additive updates to
// shared DFAs must be under a per-DFA lock" discipline. A nil target
// records an explicit error edge.
func (d *DFA) AddEdge(from *DFAState, t int, target *DFAState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	from.SetEdge(t, target)
}

// NumStates reports how many distinct DFAState values have been
// interned so far.
func (d *DFA) NumStates() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.nextStateNumber
}

// Decision returns the decision index this DFA serves.
func (d *DFA) Decision() int { return d.decision }

// IsPrecedenceDfa reports whether this DFA belongs to a left-recursive
// rule's precedence-ladder decision.
func (d *DFA) IsPrecedenceDfa() bool { return d.precedenceDfa }
func (d *DFA) SetPrecedenceDfa(b bool) { d.precedenceDfa = b }

// sortedStates returns every interned state ordered by stateNumber.
func (d *DFA) sortedStates() []*DFAState {
	d.mu.Lock()
	defer d.mu.Unlock()
	it := d.ordered.Iterator()
	out := make([]*DFAState, 0, d.ordered.Size())
	for it.Next() {
		out = append(out, it.Value().(*DFAState))
	}
	return out
}

// String renders every accept state's prediction, for debugging
// (mirrors the real runtime's DFA.String, used by error diagnostics).
func (d *DFA) String() string {
	var buf bytes.Buffer
	for _, s := range d.sortedStates() {
		if s.isAcceptState {
			fmt.Fprintf(&buf, "%s\n", s.String())
		}
	}
	return buf.String()
}

// ToDotString renders the DFA as Graphviz dot, the form the
// cmd/atndump demo prints (§SPEC_FULL "supplemented features").
func (d *DFA) ToDotString() string {
	var buf bytes.Buffer
	buf.WriteString("digraph DFA {\n  rankdir=LR;\n")
	for _, s := range d.sortedStates() {
		shape := "circle"
		if s.isAcceptState {
			shape = "doublecircle"
		}
		fmt.Fprintf(&buf, "  s%d [shape=%s label=%q];\n", s.stateNumber, shape, s.String())
		for t, target := range s.edges {
			if target == nil {
				continue
			}
			fmt.Fprintf(&buf, "  s%d -> s%d [label=%q];\n", s.stateNumber, target.stateNumber, fmt.Sprintf("%d", t-1))
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"bytes"
	"fmt"
	"sort"
)

// Interval is an inclusive [Start, Stop] range of integers.
type Interval struct {
	Start, Stop int
}

func (i Interval) contains(v int) bool { return v >= i.Start && v <= i.Stop }

// IntervalSet is a set of inclusive integer intervals, kept sorted and
// non-adjacent (adjacent/overlapping intervals are merged on add). It is
// used for token-type lookahead sets and for error reporting (§2.2,
// §6.3).
type IntervalSet struct {
	intervals []Interval
	readOnly  bool
}

// NewIntervalSet returns an empty IntervalSet.
func NewIntervalSet() *IntervalSet {
	return &IntervalSet{}
}

// NewIntervalSetFromValues builds a set containing exactly the given
// values.
func NewIntervalSetFromValues(values ...int) *IntervalSet {
	s := NewIntervalSet()
	for _, v := range values {
		s.AddOne(v)
	}
	return s
}

func (s *IntervalSet) checkReadOnly() {
	if s.readOnly {
		panic(&PredictionError{Kind: IllegalState, Message: "IntervalSet is readonly"})
	}
}

// AddOne adds a single value.
func (s *IntervalSet) AddOne(v int) {
	s.AddRange(v, v)
}

// AddRange adds the inclusive range [start, stop], merging with any
// overlapping or adjacent existing interval.
func (s *IntervalSet) AddRange(start, stop int) {
	s.checkReadOnly()
	if stop < start {
		return
	}
	n := Interval{start, stop}
	idx := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].Stop+1 >= n.Start
	})
	insertAt := idx
	for idx < len(s.intervals) && s.intervals[idx].Start <= n.Stop+1 {
		if s.intervals[idx].Start < n.Start {
			n.Start = s.intervals[idx].Start
		}
		if s.intervals[idx].Stop > n.Stop {
			n.Stop = s.intervals[idx].Stop
		}
		idx++
	}
	merged := make([]Interval, 0, len(s.intervals)-idx+insertAt+1)
	merged = append(merged, s.intervals[:insertAt]...)
	merged = append(merged, n)
	merged = append(merged, s.intervals[idx:]...)
	s.intervals = merged
}

// addSet unions other into s.
func (s *IntervalSet) addSet(other *IntervalSet) {
	if other == nil {
		return
	}
	for _, iv := range other.intervals {
		s.AddRange(iv.Start, iv.Stop)
	}
}

// removeOne removes a single value, splitting an interval if necessary.
func (s *IntervalSet) removeOne(v int) {
	s.checkReadOnly()
	for i, iv := range s.intervals {
		if !iv.contains(v) {
			continue
		}
		rest := make([]Interval, 0, len(s.intervals)+1)
		rest = append(rest, s.intervals[:i]...)
		if iv.Start < v {
			rest = append(rest, Interval{iv.Start, v - 1})
		}
		if iv.Stop > v {
			rest = append(rest, Interval{v + 1, iv.Stop})
		}
		rest = append(rest, s.intervals[i+1:]...)
		s.intervals = rest
		return
	}
}

// Contains reports whether v falls in any interval of the set.
func (s *IntervalSet) Contains(v int) bool {
	for _, iv := range s.intervals {
		if iv.contains(v) {
			return true
		}
		if iv.Start > v {
			break
		}
	}
	return false
}

// IsEmpty reports whether the set has no members.
func (s *IntervalSet) IsEmpty() bool { return len(s.intervals) == 0 }

// Length returns the total number of members across all intervals.
func (s *IntervalSet) Length() int {
	n := 0
	for _, iv := range s.intervals {
		n += iv.Stop - iv.Start + 1
	}
	return n
}

// Intervals returns the backing, sorted, non-overlapping interval list.
// Callers must not mutate the returned slice.
func (s *IntervalSet) Intervals() []Interval { return s.intervals }

// SetReadonly freezes or unfreezes the set against further mutation.
func (s *IntervalSet) SetReadonly(ro bool) { s.readOnly = ro }

// complement returns the members of [minElement, maxElement] absent from
// s, used by NotSetTransition lookahead (§3.3).
func (s *IntervalSet) complement(minElement, maxElement int) *IntervalSet {
	result := NewIntervalSet()
	next := minElement
	for _, iv := range s.intervals {
		start, stop := iv.Start, iv.Stop
		if start < minElement {
			start = minElement
		}
		if stop > maxElement {
			stop = maxElement
		}
		if start > stop {
			continue
		}
		if next < start {
			result.AddRange(next, start-1)
		}
		if stop+1 > next {
			next = stop + 1
		}
	}
	if next <= maxElement {
		result.AddRange(next, maxElement)
	}
	return result
}

// String renders the set ANTLR-style: a single value prints bare, a
// single range as "a..b", several intervals comma-joined inside braces.
func (s *IntervalSet) String() string {
	if len(s.intervals) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	multi := len(s.intervals) > 1
	if multi {
		buf.WriteByte('{')
	}
	for i, iv := range s.intervals {
		if i > 0 {
			buf.WriteString(", ")
		}
		if iv.Start == iv.Stop {
			fmt.Fprintf(&buf, "%d", iv.Start)
		} else {
			fmt.Fprintf(&buf, "%d..%d", iv.Start, iv.Stop)
		}
	}
	if multi {
		buf.WriteByte('}')
	}
	return buf.String()
}

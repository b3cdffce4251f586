// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// InputStream is the reference CharStream implementation: a
// rune buffer with O(1) seek and nested marks (§6.2). mark/release
// calls nest as a stack; release only needs to match by marker index,
// not LIFO order, since every mark only ever narrows the earliest
// position that still needs protecting.
type InputStream struct {
	name  string
	data  []rune
	index int
	marks []int
}

// NewInputStream wraps a decoded string for lexing.
func NewInputStream(name, data string) *InputStream {
	return &InputStream{name: name, data: []rune(data)}
}

func (s *InputStream) LA(offset int) int {
	if offset == 0 {
		return 0
	}
	pos := s.index
	if offset < 0 {
		pos += offset
	} else {
		pos += offset - 1
	}
	if pos < 0 || pos >= len(s.data) {
		return TokenEOF
	}
	return int(s.data[pos])
}

func (s *InputStream) Mark() int {
	s.marks = append(s.marks, s.index)
	return len(s.marks) - 1
}

func (s *InputStream) Release(marker int) {
	if marker >= 0 && marker < len(s.marks) {
		s.marks = s.marks[:marker]
	}
}

func (s *InputStream) Index() int { return s.index }

func (s *InputStream) Seek(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(s.data) {
		index = len(s.data)
	}
	s.index = index
}

func (s *InputStream) Size() int { return len(s.data) }

func (s *InputStream) GetSourceName() string {
	if s.name == "" {
		return "<unknown>"
	}
	return s.name
}

func (s *InputStream) Consume() {
	if s.index >= len(s.data) {
		panic(&PredictionError{Kind: IndexOutOfBounds, Message: "cannot consume past EOF"})
	}
	s.index++
}

func (s *InputStream) GetTextFromInterval(iv Interval) string {
	start, stop := iv.Start, iv.Stop
	if start < 0 {
		start = 0
	}
	if stop >= len(s.data) {
		stop = len(s.data) - 1
	}
	if start > stop {
		return ""
	}
	return string(s.data[start : stop+1])
}

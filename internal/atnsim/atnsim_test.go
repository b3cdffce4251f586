// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

// Package atnsim drives the engine end to end against its built-in demo
// grammars, exercising AdaptivePredict the way a generated parser would
// rather than unit-testing individual ATN/DFA pieces in isolation.
package atnsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	antlr "github.com/go-antlr/adaptivell"
)

func newSimulator(a *antlr.ATN) *antlr.ParserATNSimulator {
	decisionToDFA := make([]*antlr.DFA, a.GetNumberOfDecisions())
	for i := 0; i < a.GetNumberOfDecisions(); i++ {
		decisionToDFA[i] = antlr.NewDFA(a.DecisionToState[i], i)
	}
	return antlr.NewParserATNSimulator(a, decisionToDFA, antlr.NewPredictionContextCache(), nil)
}

func tok(ttype, index int) antlr.Token {
	return &antlr.CommonToken{Type: ttype, TokenIndex: index, Channel: antlr.TokenDefaultChannel}
}

// TestAmbiguousIDGrammarDetectsAmbiguity covers §8.3's `a: ID | ID |
// ID ';'` scenario: two alts are genuine duplicates, the third only
// wins once a trailing ';' disambiguates it.
func TestAmbiguousIDGrammarDetectsAmbiguity(t *testing.T) {
	a, decision, idType, _ := antlr.BuildAmbiguousIDDemo()
	sim := newSimulator(a)

	stream := antlr.NewBufferedTokenStream([]antlr.Token{tok(idType, 0)}, "ambiguous-id")
	alt, err := sim.AdaptivePredict(stream, decision, nil)
	require.NoError(t, err)
	assert.Contains(t, []int{1, 2}, alt, "a bare ID must resolve to one of the two ambiguous alts")
	assert.Equal(t, 0, stream.Index(), "AdaptivePredict must restore the stream position")
}

func TestAmbiguousIDGrammarDisambiguatesWithSemicolon(t *testing.T) {
	a, decision, idType, semiType := antlr.BuildAmbiguousIDDemo()
	sim := newSimulator(a)

	stream := antlr.NewBufferedTokenStream([]antlr.Token{tok(idType, 0), tok(semiType, 1)}, "ambiguous-id-semi")
	alt, err := sim.AdaptivePredict(stream, decision, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, alt, "ID ';' can only be produced by the third alternative")
}

// driveLoop repeatedly calls AdaptivePredict at the loop-entry decision
// and advances the stream itself when the predicted alt is "continue",
// the way a generated parser's loop would, until the "exit" alt wins.
func driveLoop(t *testing.T, sim *antlr.ParserATNSimulator, stream *antlr.BufferedTokenStream, decision int) []int {
	t.Helper()
	var alts []int
	for {
		alt, err := sim.AdaptivePredict(stream, decision, nil)
		require.NoError(t, err)
		alts = append(alts, alt)
		if alt == 2 { // exit
			return alts
		}
		stream.Consume() // operator
		stream.Consume() // operand
	}
}

func TestLoopingExprGrammarConsumesOperatorChains(t *testing.T) {
	a, decision, intType, plusType, starType := antlr.BuildLoopingExprDemo()
	sim := newSimulator(a)

	// INT + INT * INT, positioned with the cursor already past the
	// leading INT, matching how a caller would reach the loop decision.
	stream := antlr.NewBufferedTokenStream([]antlr.Token{
		tok(intType, 0),
		tok(plusType, 1), tok(intType, 2),
		tok(starType, 3), tok(intType, 4),
	}, "looping-expr")
	stream.Consume() // leading INT already matched by the primary alt

	alts := driveLoop(t, sim, stream, decision)
	assert.Equal(t, []int{1, 1, 2}, alts, "continue, continue, exit")
	assert.Equal(t, 5, stream.Index(), "every operator/operand pair must be consumed")
}

func TestLoopingExprGrammarExitsImmediatelyAtEOF(t *testing.T) {
	a, decision, intType, _, _ := antlr.BuildLoopingExprDemo()
	sim := newSimulator(a)

	stream := antlr.NewBufferedTokenStream([]antlr.Token{tok(intType, 0)}, "looping-expr-bare")
	stream.Consume()

	alt, err := sim.AdaptivePredict(stream, decision, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, alt)
}

// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ErrorListener is the produced side of the engine's error contract
// (§6.3): a recognizer and its DFAs report syntax errors, ambiguities,
// and the SLL→LL escalations that were needed to resolve them, all
// without unwinding the parse.
type ErrorListener interface {
	SyntaxError(recognizer Recognizer, offendingSymbol Token, line, column int, msg string, e error)
	ReportAmbiguity(recognizer Recognizer, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet)
	ReportAttemptingFullContext(recognizer Recognizer, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet)
	ReportContextSensitivity(recognizer Recognizer, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet)
}

// ConsoleErrorListener is a minimal ErrorListener whose methods all do
// nothing; syntax errors and reports sent to it are discarded.
type ConsoleErrorListener struct{}

func (*ConsoleErrorListener) SyntaxError(Recognizer, Token, int, int, string, error) {}
func (*ConsoleErrorListener) ReportAmbiguity(Recognizer, *DFA, int, int, bool, *BitSet, *ATNConfigSet) {
}
func (*ConsoleErrorListener) ReportAttemptingFullContext(Recognizer, *DFA, int, int, *BitSet, *ATNConfigSet) {
}
func (*ConsoleErrorListener) ReportContextSensitivity(Recognizer, *DFA, int, int, int, *ATNConfigSet) {
}

// NewConsoleErrorListener returns a new no-op listener, used when a
// simulator is not otherwise configured.
func NewConsoleErrorListener() ErrorListener { return &ConsoleErrorListener{} }

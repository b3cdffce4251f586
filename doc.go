// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

// Package antlr implements the adaptive LL(*) prediction engine that
// drives generated ANTLR parsers and lexers: the ATN graph, prediction
// contexts, configuration sets, the per-decision DFA cache, and the
// SLL/LL simulators that tie them together.
//
// Code generated from a grammar (rule contexts, listeners, visitors) is
// out of scope here; this package only implements the contract that
// such generated code calls into at each decision point.
package antlr

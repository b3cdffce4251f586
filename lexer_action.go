// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LexerActionType tags the kind of embedded lexer action (§2 item 3,
// ATN loader's lexer-action table).
type LexerActionType int

const (
	LexerActionTypeChannel LexerActionType = iota
	LexerActionTypeCustom
	LexerActionTypeMode
	LexerActionTypeMore
	LexerActionTypePopMode
	LexerActionTypePushMode
	LexerActionTypeSkip
	LexerActionTypeType
)

// LexerAction is executed by the lexer once a token is accepted; it
// never affects ATN simulation itself (mirrors §4.6: actions are
// skipped during closure).
type LexerAction interface {
	GetActionType() LexerActionType
	IsPositionDependent() bool
	Execute(lexer Lexer)
}

// Lexer is the minimal contract a LexerAction executes against.
type Lexer interface {
	SetChannel(int)
	PushMode(int)
	PopMode() int
	SetMode(int)
	Skip()
	More()
	SetType(int)
}

type baseLexerAction struct {
	actionType         LexerActionType
	isPositionDependent bool
}

func (a *baseLexerAction) GetActionType() LexerActionType { return a.actionType }
func (a *baseLexerAction) IsPositionDependent() bool       { return a.isPositionDependent }

// LexerChannelAction sets the channel of the next emitted token.
type LexerChannelAction struct {
	baseLexerAction
	channel int
}

func NewLexerChannelAction(channel int) *LexerChannelAction {
	return &LexerChannelAction{baseLexerAction{LexerActionTypeChannel, false}, channel}
}
func (a *LexerChannelAction) Execute(lexer Lexer) { lexer.SetChannel(a.channel) }

// LexerModeAction switches the lexer's active mode.
type LexerModeAction struct {
	baseLexerAction
	mode int
}

func NewLexerModeAction(mode int) *LexerModeAction {
	return &LexerModeAction{baseLexerAction{LexerActionTypeMode, false}, mode}
}
func (a *LexerModeAction) Execute(lexer Lexer) { lexer.SetMode(a.mode) }

// LexerPushModeAction pushes a new mode onto the lexer's mode stack.
type LexerPushModeAction struct {
	baseLexerAction
	mode int
}

func NewLexerPushModeAction(mode int) *LexerPushModeAction {
	return &LexerPushModeAction{baseLexerAction{LexerActionTypePushMode, false}, mode}
}
func (a *LexerPushModeAction) Execute(lexer Lexer) { lexer.PushMode(a.mode) }

// LexerPopModeAction pops the lexer's mode stack.
type LexerPopModeAction struct{ baseLexerAction }

func NewLexerPopModeAction() *LexerPopModeAction {
	return &LexerPopModeAction{baseLexerAction{LexerActionTypePopMode, false}}
}
func (a *LexerPopModeAction) Execute(lexer Lexer) { lexer.PopMode() }

// LexerSkipAction discards the current token.
type LexerSkipAction struct{ baseLexerAction }

func NewLexerSkipAction() *LexerSkipAction {
	return &LexerSkipAction{baseLexerAction{LexerActionTypeSkip, false}}
}
func (a *LexerSkipAction) Execute(lexer Lexer) { lexer.Skip() }

// LexerMoreAction appends to the current token instead of emitting it.
type LexerMoreAction struct{ baseLexerAction }

func NewLexerMoreAction() *LexerMoreAction {
	return &LexerMoreAction{baseLexerAction{LexerActionTypeMore, false}}
}
func (a *LexerMoreAction) Execute(lexer Lexer) { lexer.More() }

// LexerTypeAction overrides the token type of the next emitted token.
type LexerTypeAction struct {
	baseLexerAction
	tokenType int
}

func NewLexerTypeAction(tokenType int) *LexerTypeAction {
	return &LexerTypeAction{baseLexerAction{LexerActionTypeType, false}, tokenType}
}
func (a *LexerTypeAction) Execute(lexer Lexer) { lexer.SetType(a.tokenType) }

// LexerCustomAction names a generated user action by rule and action
// index; isPositionDependent is true because such actions may read
// input-stream position. Its Execute does nothing.
type LexerCustomAction struct {
	baseLexerAction
	ruleIndex, actionIndex int
}

func NewLexerCustomAction(ruleIndex, actionIndex int) *LexerCustomAction {
	return &LexerCustomAction{baseLexerAction{LexerActionTypeCustom, true}, ruleIndex, actionIndex}
}
func (a *LexerCustomAction) Execute(lexer Lexer) {}

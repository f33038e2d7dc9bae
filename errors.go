package smtexpr

import (
	"fmt"
	"strings"
)

// UnexpectedCharError is reported by Tokenize for a character that cannot
// start any token. It never stops tokenization.
type UnexpectedCharError struct {
	Char rune
	Pos  int
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character '%c' at %d", e.Char, e.Pos)
}

// SyntaxError means the tokens of a line do not match the grammar shape.
type SyntaxError struct {
	Grammar Grammar
	Tokens  []Token
	Msg     string
}

func (e *SyntaxError) Error() string {
	texts := make([]string, len(e.Tokens))
	for i, tok := range e.Tokens {
		texts[i] = tok.Text
	}
	return fmt.Sprintf("invalid syntax: %s: expected %s, got [%s]", e.Msg, e.Grammar.Shape(), strings.Join(texts, " "))
}

// NumericError means a number token could not be converted to int64.
type NumericError struct {
	Text string
	Err  error
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("invalid number %q: %v", e.Text, e.Err)
}

func (e *NumericError) Unwrap() error {
	return e.Err
}

// UnknownOperatorError means a Node carries an operator other than + - *.
type UnknownOperatorError struct {
	Op Operator
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %v", e.Op)
}

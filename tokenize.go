package smtexpr

import (
	"strings"
	"unicode/utf8"
)

const simplifyKeyword = "simplify"

type tokenizer struct {
	line   string
	pos    int
	num    strings.Builder
	numPos int
	tokens []Token
	report func(*UnexpectedCharError)
}

// Tokenize splits one expression line into tokens. Characters that cannot
// start a token are passed to report, which may be nil, and skipped.
func Tokenize(line string, report func(*UnexpectedCharError)) []Token {
	t := &tokenizer{
		line:   line,
		tokens: []Token{},
		report: report,
	}
	t.scan()
	return t.tokens
}

func (t *tokenizer) scan() {
	for t.pos < len(t.line) {
		r, n := utf8.DecodeRuneInString(t.line[t.pos:])
		switch {
		case isDigit(r):
			if t.num.Len() == 0 {
				t.numPos = t.pos
			}
			t.num.WriteRune(r)
		case r == '(':
			t.emit(TokenParenOpen, n)
			continue
		case r == ')':
			t.emit(TokenParenClose, n)
			continue
		case r == '+' || r == '-' || r == '*':
			t.emit(TokenOperator, n)
			continue
		case isSpace(r):
			t.flush()
		case strings.HasPrefix(t.line[t.pos:], simplifyKeyword):
			t.emit(TokenSimplify, len(simplifyKeyword))
			continue
		default:
			if t.report != nil {
				t.report(&UnexpectedCharError{Char: r, Pos: t.pos})
			}
		}
		t.pos += n
	}
	t.flush()
}

// emit flushes the pending number and then consumes n bytes as one token.
func (t *tokenizer) emit(kind TokenKind, n int) {
	t.flush()
	t.tokens = append(t.tokens, Token{
		Kind: kind,
		Text: t.line[t.pos : t.pos+n],
		Pos:  t.pos,
	})
	t.pos += n
}

func (t *tokenizer) flush() {
	if t.num.Len() == 0 {
		return
	}
	t.tokens = append(t.tokens, Token{
		Kind: TokenNumber,
		Text: t.num.String(),
		Pos:  t.numPos,
	})
	t.num.Reset()
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isSpace matches the ASCII whitespace set only.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

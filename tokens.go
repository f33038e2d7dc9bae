package smtexpr

import "fmt"

type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenOperator
	TokenParenOpen
	TokenParenClose
	TokenSimplify
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenOperator:
		return "operator"
	case TokenParenOpen:
		return "'('"
	case TokenParenClose:
		return "')'"
	case TokenSimplify:
		return "simplify"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexeme of an expression line. Pos is the byte offset of
// the first character in the line.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q (%d)", t.Kind, t.Text, t.Pos)
}

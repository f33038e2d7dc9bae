package smtexpr

import (
	"fmt"
	"strconv"
)

type Grammar int

const (
	// GrammarPlain accepts (op left right).
	GrammarPlain Grammar = iota
	// GrammarSimplify accepts (simplify (op left right)).
	GrammarSimplify
)

type shape struct {
	kinds []TokenKind
	op    int
	left  int
	right int
}

var shapes = map[Grammar]shape{
	GrammarPlain: {
		kinds: []TokenKind{TokenParenOpen, TokenOperator, TokenNumber, TokenNumber, TokenParenClose},
		op:    1,
		left:  2,
		right: 3,
	},
	GrammarSimplify: {
		kinds: []TokenKind{TokenParenOpen, TokenSimplify, TokenParenOpen, TokenOperator, TokenNumber, TokenNumber, TokenParenClose, TokenParenClose},
		op:    3,
		left:  4,
		right: 5,
	},
}

func (g Grammar) String() string {
	switch g {
	case GrammarPlain:
		return "plain"
	case GrammarSimplify:
		return "simplify"
	}
	return fmt.Sprintf("Grammar(%d)", int(g))
}

// Shape returns the expression form accepted by g.
func (g Grammar) Shape() string {
	if g == GrammarSimplify {
		return "(simplify (op left right))"
	}
	return "(op left right)"
}

type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
)

func (o Operator) String() string {
	return string(rune(o))
}

func (o Operator) valid() bool {
	return o == OpAdd || o == OpSub || o == OpMul
}

// Node is one binary operation over two integer literals.
type Node struct {
	Op    Operator
	Left  int64
	Right int64
}

func (n Node) String() string {
	return fmt.Sprintf("(%v %d %d)", n.Op, n.Left, n.Right)
}

// Format renders n in the expression form accepted by g.
func (n Node) Format(g Grammar) string {
	if g == GrammarSimplify {
		return "(simplify " + n.String() + ")"
	}
	return n.String()
}

type Parser struct {
	Grammar Grammar
}

func NewParser(g Grammar) *Parser {
	return &Parser{Grammar: g}
}

func (p *Parser) Parse(tokens []Token) (Node, error) {
	s, ok := shapes[p.Grammar]
	if !ok {
		return Node{}, fmt.Errorf("invalid grammar: %v", p.Grammar)
	}
	if len(tokens) != len(s.kinds) {
		return Node{}, p.syntaxError(tokens, fmt.Sprintf("%d tokens", len(tokens)))
	}
	for i, kind := range s.kinds {
		if tokens[i].Kind != kind {
			return Node{}, p.syntaxError(tokens, fmt.Sprintf("%v at %d", tokens[i].Kind, tokens[i].Pos))
		}
	}

	opTok := tokens[s.op]
	if len(opTok.Text) != 1 || !Operator(opTok.Text[0]).valid() {
		return Node{}, p.syntaxError(tokens, fmt.Sprintf("operator %q at %d", opTok.Text, opTok.Pos))
	}
	left, err := parseNumber(tokens[s.left].Text)
	if err != nil {
		return Node{}, err
	}
	right, err := parseNumber(tokens[s.right].Text)
	if err != nil {
		return Node{}, err
	}
	return Node{
		Op:    Operator(opTok.Text[0]),
		Left:  left,
		Right: right,
	}, nil
}

func (p *Parser) syntaxError(tokens []Token, msg string) error {
	return &SyntaxError{Grammar: p.Grammar, Tokens: tokens, Msg: msg}
}

func parseNumber(s string) (int64, error) {
	for _, r := range s {
		if !isDigit(r) {
			return 0, &NumericError{Text: s, Err: strconv.ErrSyntax}
		}
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return 0, &NumericError{Text: s, Err: err}
	}
	return i, nil
}

package smtexpr

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
)

var operators = []Operator{OpAdd, OpSub, OpMul}

// Generator produces random expressions from its own source, so equal
// seeds give equal sequences.
type Generator struct {
	Grammar    Grammar
	MaxOperand int64
	rnd        *rand.Rand
}

func NewGenerator(seed int64, g Grammar) *Generator {
	return &Generator{
		Grammar:    g,
		MaxOperand: 10,
		rnd:        rand.New(rand.NewSource(seed)),
	}
}

func (g *Generator) Node() Node {
	limit := g.MaxOperand
	if limit <= 0 {
		limit = 1
	}
	left := g.rnd.Int63n(limit)
	right := g.rnd.Int63n(limit)
	op := operators[g.rnd.Intn(len(operators))]
	return Node{Op: op, Left: left, Right: right}
}

func (g *Generator) Next() string {
	return g.Node().Format(g.Grammar)
}

// WriteTo writes n expressions to w, one per line.
func (g *Generator) WriteTo(w io.Writer, n int) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintln(bw, g.Next()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

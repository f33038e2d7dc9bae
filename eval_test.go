package smtexpr

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		node Node
		want int64
	}{
		{Node{Op: OpAdd, Left: 1, Right: 2}, 3},
		{Node{Op: OpSub, Left: 3, Right: 10}, -7},
		{Node{Op: OpMul, Left: 7, Right: 6}, 42},
		{Node{Op: OpMul, Left: 0, Right: 5}, 0},
		{Node{Op: OpAdd, Left: math.MaxInt64, Right: 1}, math.MinInt64},
	}
	for _, test := range tests {
		got, err := Evaluate(test.node)
		if err != nil {
			t.Errorf("%v: %v", test.node, err)
			continue
		}
		if got != test.want {
			t.Errorf("want %d for %v but got %d", test.want, test.node, got)
		}
	}
}

func TestEvaluateUnknownOperator(t *testing.T) {
	_, err := Evaluate(Node{Op: '/', Left: 3, Right: 4})
	var ue *UnknownOperatorError
	if !errors.As(err, &ue) {
		t.Fatalf("want UnknownOperatorError but got %v", err)
	}
	if ue.Op != '/' {
		t.Errorf("want operator '/' but got %v", ue.Op)
	}
}

func TestEvaluateLines(t *testing.T) {
	p := NewParser(GrammarPlain)
	for l := int64(0); l < 20; l++ {
		for r := int64(0); r < 20; r++ {
			for op, want := range map[Operator]int64{OpAdd: l + r, OpSub: l - r, OpMul: l * r} {
				input := fmt.Sprintf("(%v %d %d)", op, l, r)
				node, err := p.Parse(Tokenize(input, nil))
				if err != nil {
					t.Fatalf("%q: %v", input, err)
				}
				got, err := Evaluate(node)
				if err != nil {
					t.Fatalf("%q: %v", input, err)
				}
				if got != want {
					t.Errorf("want %d for %q but got %d", want, input, got)
				}
			}
		}
	}
}

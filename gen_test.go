package smtexpr

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func generated(seed int64, g Grammar, n int) []string {
	var buf bytes.Buffer
	if err := NewGenerator(seed, g).WriteTo(&buf, n); err != nil {
		panic(err)
	}
	lines := []string{}
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

func TestGeneratorDeterministic(t *testing.T) {
	a := generated(42, GrammarPlain, 50)
	b := generated(42, GrammarPlain, 50)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf(diff)
	}
	if len(a) != 50 {
		t.Errorf("want 50 lines but got %d", len(a))
	}
}

func TestGeneratorParses(t *testing.T) {
	for _, g := range []Grammar{GrammarPlain, GrammarSimplify} {
		p := NewParser(g)
		for _, line := range generated(7, g, 200) {
			node, err := p.Parse(Tokenize(line, nil))
			if err != nil {
				t.Fatalf("%v: %q: %v", g, line, err)
			}
			if node.Left < 0 || node.Left >= 10 || node.Right < 0 || node.Right >= 10 {
				t.Errorf("operand out of range in %q", line)
			}
			if _, err := Evaluate(node); err != nil {
				t.Errorf("%q: %v", line, err)
			}
		}
	}
}

func TestGeneratorUsesAllOperators(t *testing.T) {
	gen := NewGenerator(3, GrammarPlain)
	seen := map[Operator]bool{}
	for i := 0; i < 300; i++ {
		seen[gen.Node().Op] = true
	}
	for _, op := range operators {
		if !seen[op] {
			t.Errorf("operator %v never generated", op)
		}
	}
}

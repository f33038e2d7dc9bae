package smtexpr

// Evaluate reduces n to its integer value. Overflow wraps as int64
// arithmetic does.
func Evaluate(n Node) (int64, error) {
	switch n.Op {
	case OpAdd:
		return n.Left + n.Right, nil
	case OpSub:
		return n.Left - n.Right, nil
	case OpMul:
		return n.Left * n.Right, nil
	}
	return 0, &UnknownOperatorError{Op: n.Op}
}

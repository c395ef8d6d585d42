package arith

// Evaluate computes the value of the tree. Division follows float64
// rules: dividing by zero gives an infinity, or NaN for 0/0.
func Evaluate(expr Expr) float64 {
	switch e := expr.(type) {
	case *LiteralExpr:
		return float64(e.Value)
	case *BinaryExpr:
		return evaluateBinary(e)
	default:
		panic("unexpected expression node")
	}
}

func evaluateBinary(e *BinaryExpr) float64 {
	left := Evaluate(e.Left)
	right := Evaluate(e.Right)

	switch e.Operation {
	case OperatorPlus:
		return left + right
	case OperatorMinus:
		return left - right
	case OperatorDivide:
		return left / right
	case OperatorMultiply:
		return left * right
	default:
		panic("unexpected binary op: " + string(e.Operation))
	}
}

package arith

import "strconv"

type Operator string

const (
	OperatorPlus     Operator = "+"
	OperatorMinus    Operator = "-"
	OperatorDivide   Operator = "/"
	OperatorMultiply Operator = "*"
)

const (
	additivePrecedence = iota
	multiplicativePrecedence
	atomicPrecedence
)

var tokenOperators = map[TokenType]Operator{
	TokenPlus:     OperatorPlus,
	TokenMinus:    OperatorMinus,
	TokenDivide:   OperatorDivide,
	TokenMultiply: OperatorMultiply,
}

// Precedence ranks the operator. Plus and Minus rank 0, Divide and
// Multiply rank 1.
func (o Operator) Precedence() int {
	switch o {
	case OperatorDivide, OperatorMultiply:
		return multiplicativePrecedence
	default:
		return additivePrecedence
	}
}

// Binds reports whether o binds at least as tightly as other. Operators of
// the same rank are interchangeable here.
func (o Operator) Binds(other Operator) bool {
	return o.Precedence() >= other.Precedence()
}

// Expr is a node of the expression tree: either a *LiteralExpr or a
// *BinaryExpr.
type Expr interface {
	String() string
	precedence() int
}

type LiteralExpr struct {
	Value uint64
}

func (e *LiteralExpr) String() string {
	return strconv.FormatUint(e.Value, 10)
}

func (e *LiteralExpr) precedence() int {
	return atomicPrecedence
}

type BinaryExpr struct {
	Operation Operator
	Left      Expr
	Right     Expr
}

// String renders the expression with only the brackets needed to parse
// back into the same tree.
func (e *BinaryExpr) String() string {
	left := e.Left.String()
	right := e.Right.String()

	if e.Left.precedence() < e.Operation.Precedence() {
		left = "(" + left + ")"
	}
	// Left associative: an equal rank on the right must keep its brackets.
	if e.Right.precedence() <= e.Operation.Precedence() {
		right = "(" + right + ")"
	}

	return left + string(e.Operation) + right
}

func (e *BinaryExpr) precedence() int {
	return e.Operation.Precedence()
}

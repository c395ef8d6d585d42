package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		tree   Expr
		expect float64
	}{
		{num(42), 42},
		{bin(OperatorPlus, num(1), num(2)), 3},
		{bin(OperatorMinus, num(1), num(2)), -1},
		{bin(OperatorMultiply, num(6), num(9)), 54},
		{bin(OperatorDivide, num(1), num(4)), 0.25},
		{bin(OperatorMinus, bin(OperatorMinus, num(10), num(3)), num(2)), 5},
		{bin(OperatorMinus, num(10), bin(OperatorMinus, num(3), num(2))), 9},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, Evaluate(c.tree), c.tree.String())
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	assert.True(t, math.IsInf(Evaluate(bin(OperatorDivide, num(1), num(0))), 1))
	assert.True(t, math.IsNaN(Evaluate(bin(OperatorDivide, num(0), num(0)))))
	assert.True(t, math.IsInf(Evaluate(bin(OperatorDivide, bin(OperatorMinus, num(0), num(1)), num(0))), -1))
}

func TestEvaluateUnknownNode(t *testing.T) {
	assert.Panics(t, func() {
		Evaluate(bin("%", num(1), num(2)))
	})
}

package arith

import (
	"bytes"
	"math"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		data   string
		expect float64
	}{
		{"1+6*9/10", 1.0 + (6.0*9.0)/10.0},
		{"(1+2)*3", 9},
		{"10-3-2", 5},
		{"1-2-3-4", -8},
		{"2*3/4*5", 7.5},
		{"100/10/5", 2},
		{"((1+2))", 3},
		{"2*(3+4)*5", 70},
		{"(1*(2+3))", 5},
		{"8/(4/2)", 4},
		{" 1 2 + 3 ", 15},
	}

	for _, c := range cases {
		got, err := Calculate(c.data)
		require.NoError(t, err, c.data)
		assert.Equal(t, c.expect, got, c.data)
	}
}

func TestCalculateDivisionByZero(t *testing.T) {
	got, err := Calculate("1/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	got, err = Calculate("0/(2-2)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestCalculateErrors(t *testing.T) {
	cases := []struct {
		data   string
		expect interface{}
	}{
		{"1@2", &InvalidCharacterError{}},
		{"99999999999999999999+1", &NumericOverflowError{}},
		{"1+", &SyntaxError{}},
		{"(1+2", &SyntaxError{}},
		{")1+2", &SyntaxError{}},
	}

	for _, c := range cases {
		_, err := Calculate(c.data)
		require.Error(t, err, c.data)
		assert.IsType(t, c.expect, errors.Cause(err), c.data)

		var calcErr CalcError
		assert.True(t, errors.As(err, &calcErr), c.data)
	}
}

func TestCalculatorResult(t *testing.T) {
	res, err := NewCalculator().Calculate("5 - (6/9)")
	require.NoError(t, err)

	assert.Equal(t, "5 - (6/9)", res.Input)
	assert.Len(t, res.Tokens, 7)
	assert.Equal(t, bin(OperatorMinus, num(5), bin(OperatorDivide, num(6), num(9))), res.Tree)
	assert.InDelta(t, 5-6.0/9.0, res.Value, 1e-12)
}

func TestCalculatorLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := NewCalculator(WithLogger(logger)).Calculate("(1+2)*3")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"tokenized input"`)
	assert.Contains(t, out, `"tree":"(1+2)*3"`)
	assert.Contains(t, out, `"value":9`)
}

func TestCalculatorConcurrent(t *testing.T) {
	c := NewCalculator()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			res, err := c.Calculate("1+6*9/10")
			assert.NoError(t, err)
			assert.Equal(t, 6.4, res.Value)
		}()
	}
	wg.Wait()
}

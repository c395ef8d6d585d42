package test

import (
	"math/rand"
	"strconv"
	"strings"
)

var operators = []string{"+", "-", "*", "/"}

// GetRandomExpression returns a well formed expression with size operands.
func GetRandomExpression(size int) string {
	return GetRandomExpressionWithSep(size, " ")
}

func GetRandomExpressionWithSep(size int, sep string) string {
	var toks []string
	depth := 0

	for i := 0; i < size; i++ {
		if i > 0 {
			toks = append(toks, operators[rand.Intn(len(operators))])
		}

		if i < size-1 && rand.Intn(4) == 0 {
			toks = append(toks, "(")
			depth++
		}

		toks = append(toks, strconv.Itoa(rand.Intn(1000)))

		if depth > 0 && rand.Intn(3) == 0 {
			toks = append(toks, ")")
			depth--
		}
	}

	for ; depth > 0; depth-- {
		toks = append(toks, ")")
	}

	return strings.Join(toks, sep)
}

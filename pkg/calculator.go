package arith

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Result holds the output of every stage of one evaluation.
type Result struct {
	Input  string
	Tokens []Token
	Tree   Expr
	Value  float64
}

// Calculator runs tokenize, parse and evaluate over a single input. It
// keeps no state between calls and may be shared between goroutines.
type Calculator struct {
	logger zerolog.Logger
}

type Option func(*Calculator)

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Calculator) Calculate(input string) (*Result, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, errors.Wrap(err, string(StageTokenize))
	}

	c.logger.Debug().
		Int("tokens", len(tokens)).
		Str("text", Render(tokens)).
		Msg("tokenized input")

	tree, err := Parse(tokens)
	if err != nil {
		return nil, errors.Wrap(err, string(StageParse))
	}

	c.logger.Debug().
		Str("tree", tree.String()).
		Msg("parsed expression")

	value := Evaluate(tree)

	c.logger.Debug().
		Float64("value", value).
		Msg("evaluated expression")

	return &Result{
		Input:  input,
		Tokens: tokens,
		Tree:   tree,
		Value:  value,
	}, nil
}

// Calculate evaluates input with a default Calculator.
func Calculate(input string) (float64, error) {
	res, err := NewCalculator().Calculate(input)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

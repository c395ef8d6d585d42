package arith

import "fmt"

type Stage string

const (
	StageTokenize Stage = "tokenize"
	StageParse    Stage = "parse"
)

// CalcError is implemented by every error a stage reports.
type CalcError interface {
	error
	Stage() Stage
}

type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d", e.Char, e.Pos)
}

func (e *InvalidCharacterError) Stage() Stage {
	return StageTokenize
}

type NumericOverflowError struct {
	Digits string
	Pos    int
}

func (e *NumericOverflowError) Error() string {
	return fmt.Sprintf("number %s at offset %d overflows uint64", e.Digits, e.Pos)
}

func (e *NumericOverflowError) Stage() Stage {
	return StageTokenize
}

// SyntaxError reports malformed input. Pos is the index of the offending
// token, or the token count when the input ended too early.
type SyntaxError struct {
	Reason string
	Pos    int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at token %d: %s", e.Pos, e.Reason)
}

func (e *SyntaxError) Stage() Stage {
	return StageParse
}

// InternalError means the parser stacks got out of step. It is a bug in
// the parser, never a property of the input.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "internal parser error: " + e.Reason
}

func (e *InternalError) Stage() Stage {
	return StageParse
}

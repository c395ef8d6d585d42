package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"go.arith.dev/pkg"
)

var cli struct {
	Expr     string `arg:"" optional:"" help:"Arithmetic expression, for example \"(1+2)*3\"."`
	EmitLLVM bool   `name:"emit-llvm" help:"Also print the expression lowered to LLVM IR."`
	LogLevel string `default:"warn" enum:"debug,info,warn,error" env:"ARITH_LOG_LEVEL" help:"Log level (${enum})."`
}

// MissingArgumentError is returned when no expression was given.
type MissingArgumentError struct{}

func (e *MissingArgumentError) Error() string {
	return "missing expression argument"
}

func main() {
	kctx := kong.Parse(&cli, kong.Description(`
Evaluate an arithmetic expression made of non-negative integers, the
operators + - * / and brackets. Prints the tokens, the expression tree and
the result.
`))

	logger := newLogger(cli.LogLevel)
	if err := run(os.Stdout, logger, cli.Expr, cli.EmitLLVM); err != nil {
		printError(os.Stderr, err)
		kctx.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

func run(w io.Writer, logger zerolog.Logger, expr string, emitLLVM bool) error {
	if expr == "" {
		return &MissingArgumentError{}
	}

	res, err := arith.NewCalculator(arith.WithLogger(logger)).Calculate(expr)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, res.Tokens)
	repr.New(w, repr.Indent("  ")).Println(res.Tree)
	fmt.Fprintln(w, res.Tree)
	fmt.Fprintln(w, res.Value)

	if emitLLVM {
		fmt.Fprint(w, arith.NewLLVMGenerator(res.Tree).Do())
	}

	return nil
}

func printError(w io.Writer, err error) {
	switch e := errors.Cause(err).(type) {
	case *MissingArgumentError:
		fmt.Fprintln(w, "Usage: arith <expr>")
	case *arith.InvalidCharacterError:
		fmt.Fprintf(w, "Invalid character: %q at offset %d\n", e.Char, e.Pos)
	case *arith.NumericOverflowError:
		fmt.Fprintln(w, "Number too large:", e.Digits, "at offset", e.Pos)
	case *arith.SyntaxError:
		fmt.Fprintln(w, "Syntax error:", e.Reason, "at token", e.Pos)
	case *arith.InternalError:
		fmt.Fprintln(w, "Internal error:", e.Reason)
	default:
		fmt.Fprintln(w, "Error:", err)
	}
}

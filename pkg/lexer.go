package arith

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType uint64
type stateFunc func(l *Lexer) stateFunc

const (
	EOF rune = 0

	TokenPlus TokenType = iota
	TokenMinus
	TokenDivide
	TokenMultiply
	TokenOpenBracket
	TokenCloseBracket
	TokenNumber
)

var operatorTable = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'/': TokenDivide,
	'*': TokenMultiply,
	'(': TokenOpenBracket,
	')': TokenCloseBracket,
}

var tokenNames = map[TokenType]string{
	TokenPlus:         "Plus",
	TokenMinus:        "Minus",
	TokenDivide:       "Divide",
	TokenMultiply:     "Multiply",
	TokenOpenBracket:  "OpenBracket",
	TokenCloseBracket: "CloseBracket",
	TokenNumber:       "Number",
}

var tokenText = map[TokenType]string{
	TokenPlus:         "+",
	TokenMinus:        "-",
	TokenDivide:       "/",
	TokenMultiply:     "*",
	TokenOpenBracket:  "(",
	TokenCloseBracket: ")",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return "TokenType(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// Token is a single lexical unit. Value is only set for TokenNumber.
type Token struct {
	Typ   TokenType
	Value uint64
}

// String returns the debug form of the token, such as Number(12) or Plus.
func (t Token) String() string {
	if t.Typ == TokenNumber {
		return fmt.Sprintf("Number(%d)", t.Value)
	}

	return t.Typ.String()
}

// Text returns the canonical source text of the token.
func (t Token) Text() string {
	if t.Typ == TokenNumber {
		return strconv.FormatUint(t.Value, 10)
	}

	return tokenText[t.Typ]
}

func (t Token) isOperator() bool {
	switch t.Typ {
	case TokenPlus, TokenMinus, TokenDivide, TokenMultiply:
		return true
	}

	return false
}

// Render joins the canonical text of the tokens. Tokenizing the result
// yields the same sequence.
func Render(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text())
	}

	return b.String()
}

type Lexer struct {
	input  string
	pos    int
	tokens []Token
	err    error
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
	}
}

// Tokenize converts input into its token sequence.
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Run()
}

func (l *Lexer) Run() ([]Token, error) {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	if l.err != nil {
		return nil, l.err
	}

	return l.tokens, nil
}

func defaultState(l *Lexer) stateFunc {
	for {
		switch r := l.peek(); {
		case r == EOF && l.done():
			return nil
		case unicode.IsSpace(r):
			l.next()
			continue
		case isDigit(r):
			return numberState
		default:
			return operatorState
		}
	}
}

// numberState accumulates a digit run. Whitespace inside the run is
// skipped, so "1 2" is the single number 12.
func numberState(l *Lexer) stateFunc {
	start := l.pos

	var num strings.Builder
	for r := l.peek(); isDigit(r) || unicode.IsSpace(r); r = l.peek() {
		if isDigit(r) {
			num.WriteRune(r)
		}
		l.next()
	}

	v, err := strconv.ParseUint(num.String(), 10, 64)
	if err != nil {
		return l.fail(&NumericOverflowError{Digits: num.String(), Pos: start})
	}

	return l.emmitValue(TokenNumber, v)
}

func operatorState(l *Lexer) stateFunc {
	start := l.pos
	r := l.next()

	if tok, ok := operatorTable[r]; ok {
		return l.emmitValue(tok, 0)
	}

	return l.fail(&InvalidCharacterError{Char: r, Pos: start})
}

func (l *Lexer) fail(err error) stateFunc {
	l.err = err
	return nil
}

func (l *Lexer) emmitValue(t TokenType, val uint64) stateFunc {
	l.tokens = append(l.tokens, Token{
		Typ:   t,
		Value: val,
	})

	return defaultState
}

func (l *Lexer) done() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) peek() rune {
	if l.done() {
		return EOF
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *Lexer) next() rune {
	if l.done() {
		return EOF
	}

	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size

	return r
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

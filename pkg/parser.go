package arith

import "fmt"

// stack holds the pending operands and operators of one parsing scope.
type stack struct {
	nodes []Expr
	ops   []Operator
}

func (s *stack) pushNode(e Expr) {
	s.nodes = append(s.nodes, e)
}

// pushOp merges every pending operator that binds at least as tightly as
// op, then pushes op. Merging equal ranks keeps chains left associative.
func (s *stack) pushOp(op Operator) error {
	for len(s.ops) > 0 && s.ops[len(s.ops)-1].Binds(op) {
		if err := s.merge(); err != nil {
			return err
		}
	}

	s.ops = append(s.ops, op)
	return nil
}

// merge combines the top operator with the top two operands.
func (s *stack) merge() error {
	if len(s.nodes) < 2 {
		return &InternalError{Reason: fmt.Sprintf("merge needs 2 operands, have %d", len(s.nodes))}
	}

	if len(s.ops) < 1 {
		return &InternalError{Reason: "merge with an empty operator stack"}
	}

	right := s.nodes[len(s.nodes)-1]
	left := s.nodes[len(s.nodes)-2]
	op := s.ops[len(s.ops)-1]

	s.nodes = s.nodes[:len(s.nodes)-2]
	s.ops = s.ops[:len(s.ops)-1]

	s.pushNode(&BinaryExpr{
		Operation: op,
		Left:      left,
		Right:     right,
	})

	return nil
}

// resolveAll merges from the top of the stacks until a single tree is left.
func (s *stack) resolveAll() (Expr, error) {
	if len(s.nodes) < 1 {
		return nil, &InternalError{Reason: "resolve with an empty operand stack"}
	}

	for len(s.nodes) > 1 {
		if err := s.merge(); err != nil {
			return nil, err
		}
	}

	if len(s.ops) != 0 {
		return nil, &InternalError{Reason: fmt.Sprintf("%d operators left after resolve", len(s.ops))}
	}

	return s.nodes[0], nil
}

type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// Parse builds the expression tree for tokens.
func Parse(tokens []Token) (Expr, error) {
	return NewParser(tokens).Run()
}

func (p *Parser) Run() (Expr, error) {
	return p.scope(false)
}

func (p *Parser) next() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}

	tok := p.tokens[p.pos]
	p.pos++

	return tok, true
}

// errorf reports a syntax error at the most recently consumed token.
func (p *Parser) errorf(format string, args ...interface{}) error {
	pos := p.pos - 1
	if pos < 0 {
		pos = 0
	}

	return &SyntaxError{
		Reason: fmt.Sprintf(format, args...),
		Pos:    pos,
	}
}

// scope parses until the end of input or, inside brackets, until the
// matching close bracket.
func (p *Parser) scope(inBrackets bool) (Expr, error) {
	s := &stack{}
	var prev *Token

	for {
		tok, ok := p.next()
		if !ok {
			return p.end(s, prev, inBrackets)
		}

		if err := p.validate(prev, tok); err != nil {
			return nil, err
		}

		current := tok
		prev = &current

		switch tok.Typ {
		case TokenNumber:
			s.pushNode(&LiteralExpr{Value: tok.Value})
		case TokenOpenBracket:
			sub, err := p.scope(true)
			if err != nil {
				return nil, err
			}

			s.pushNode(sub)
			prev = &Token{Typ: TokenCloseBracket}
		case TokenCloseBracket:
			if !inBrackets {
				return nil, p.errorf("unexpected close bracket")
			}

			if len(s.nodes) == 0 {
				return nil, p.errorf("empty brackets")
			}

			return s.resolveAll()
		default:
			if err := s.pushOp(tokenOperators[tok.Typ]); err != nil {
				return nil, err
			}
		}
	}
}

func (p *Parser) end(s *stack, prev *Token, inBrackets bool) (Expr, error) {
	p.pos = len(p.tokens) + 1 // errorf points one past the last token

	if inBrackets {
		return nil, p.errorf("unmatched bracket")
	}

	if prev == nil {
		return nil, p.errorf("empty expression")
	}

	if prev.isOperator() {
		return nil, p.errorf("expected Number or Open Bracket")
	}

	return s.resolveAll()
}

// validate checks that tok may follow prev. A nil prev is the start of a
// scope, where a close bracket is left to the scope handler.
func (p *Parser) validate(prev *Token, tok Token) error {
	if prev == nil {
		if tok.isOperator() {
			return p.errorf("expected Number or Open Bracket")
		}

		return nil
	}

	switch {
	case prev.isOperator():
		if tok.Typ != TokenNumber && tok.Typ != TokenOpenBracket {
			return p.errorf("expected Number or Open Bracket")
		}
	case prev.Typ == TokenNumber:
		if !tok.isOperator() && tok.Typ != TokenCloseBracket {
			return p.errorf("expected Operator or Close Bracket")
		}
	case prev.Typ == TokenOpenBracket:
		if tok.Typ != TokenNumber {
			return p.errorf("expected Number")
		}
	case prev.Typ == TokenCloseBracket:
		// Nested groups may close together, as in (1*(2+3)).
		if !tok.isOperator() && tok.Typ != TokenCloseBracket {
			return p.errorf("expected Operator or Close Bracket")
		}
	}

	return nil
}

package calc

// Syntax = Operand { Binary Operand }
// Operand = num | Unary Operand | '(' Syntax ')'
// Unary = '+' | '-'
// Binary = '+' | '-' | '*' | '/' | '^'

// state is the kind of the previous token while validating.
type state int8

const (
	stateStart state = iota
	stateNum
	stateBinary
	stateUnary
	stateOpen
	stateClose
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "at start"
	case stateNum:
		return "after number"
	case stateBinary:
		return "after operator"
	case stateUnary:
		return "after unary operator"
	case stateOpen:
		return "after open paren"
	case stateClose:
		return "after close paren"
	default:
		panic("calc: invalid validator state")
	}
}

// operand reports whether the state ends a complete operand, after which an
// expression may end or a binary operator may follow.
func (s state) operand() bool {
	return s == stateNum || s == stateClose
}

// Validate checks that a token sequence from Tokenize is a well-formed
// expression. The error, if any, is a *SyntaxError.
func Validate(tokens []Token) error {
	if len(tokens) == 0 {
		return &SyntaxError{Col: 1, Reason: "no expression"}
	}
	// opens holds the positions of unclosed parens; its length is the depth.
	var opens []int
	s := stateStart
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			// Neither 3 4 nor (3)4.
			if s.operand() {
				return unexpected(tok, s)
			}
			s = stateNum
		case TokenBinary:
			if !s.operand() {
				return unexpected(tok, s)
			}
			s = stateBinary
		case TokenUnary:
			if s.operand() {
				return unexpected(tok, s)
			}
			s = stateUnary
		case TokenOpen:
			// Neither 2(3) nor (2)(3).
			if s.operand() {
				return unexpected(tok, s)
			}
			opens = append(opens, tok.Pos)
			s = stateOpen
		case TokenClose:
			if len(opens) == 0 {
				return &SyntaxError{Col: tok.Pos, Token: ")", Reason: "close paren with no open paren"}
			}
			// Includes ().
			if !s.operand() {
				return unexpected(tok, s)
			}
			opens = opens[:len(opens)-1]
			s = stateClose
		default:
			return &SyntaxError{Col: tok.Pos, Token: tok.Text(), Reason: "invalid token"}
		}
	}
	if len(opens) != 0 {
		return &SyntaxError{Col: opens[len(opens)-1], Token: "(", Reason: "open paren with no close paren"}
	}
	if !s.operand() {
		last := tokens[len(tokens)-1]
		return &SyntaxError{Col: last.Pos, Token: last.Text(), Reason: "expression ends with operator"}
	}
	return nil
}

func unexpected(tok Token, s state) error {
	var what string
	switch tok.Kind {
	case TokenNum:
		what = "number"
	case TokenBinary:
		what = "operator"
	case TokenUnary:
		what = "unary operator"
	case TokenOpen:
		what = "open paren"
	case TokenClose:
		what = "close paren"
	}
	return &SyntaxError{Col: tok.Pos, Token: tok.Text(), Reason: "unexpected " + what + " " + s.String()}
}

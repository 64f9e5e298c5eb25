package calc

import "strconv"

// ToPostfix reorders a validated infix token sequence into postfix order
// using the shunting-yard algorithm. Binary operators are ordered by their
// OperatorSpec; unary operators bind tighter than any binary operator, so
// -2^2 becomes 2 -(unary) 2 ^.
//
// ToPostfix does not validate its input. The error, if any, is an
// *InternalError for tokens that Validate would have rejected.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenUnary:
			if !tok.Op.valid() {
				return nil, badop(tok)
			}
			stack = append(stack, tok)
		case TokenBinary:
			p, ok := tok.Op.Spec()
			if !ok {
				return nil, badop(tok)
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == TokenOpen || !p.yields(stackPrec(top)) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for {
				if len(stack) == 0 {
					return nil, &InternalError{Stage: "postfix", Msg: "close paren at " + strconv.Itoa(tok.Pos) + " has no open paren"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
		default:
			return nil, &InternalError{Stage: "postfix", Msg: "invalid token " + tok.String()}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenOpen {
			return nil, &InternalError{Stage: "postfix", Msg: "open paren at " + strconv.Itoa(top.Pos) + " has no close paren"}
		}
		out = append(out, top)
	}
	return out, nil
}

// stackPrec gets the precedence of an operator token on the operator stack.
// The token's operator must be valid.
func stackPrec(tok Token) int {
	if tok.Kind == TokenUnary {
		return UnaryPrec
	}
	return opspecs[tok.Op].Prec
}

func badop(tok Token) error {
	return &InternalError{Stage: "postfix", Msg: "invalid operator in " + tok.String()}
}

package calc

import (
	"errors"
	"strconv"
)

// machine is the value stack for evaluating postfix tokens.
type machine struct {
	stack []float64
}

func (m *machine) push(v float64) {
	m.stack = append(m.stack, v)
}

// pop removes the top from the stack and returns it. The second result is
// false if the stack is empty.
func (m *machine) pop() (float64, bool) {
	if len(m.stack) == 0 {
		return 0, false
	}
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return r, true
}

// step applies one postfix token to the stack.
func (m *machine) step(tok Token) error {
	switch tok.Kind {
	case TokenNum:
		m.push(tok.Value)
	case TokenUnary:
		a, ok := m.pop()
		if !ok {
			return underflow(tok)
		}
		switch tok.Op {
		case OpAdd:
			m.push(a)
		case OpSub:
			m.push(-a)
		default:
			return &InternalError{Stage: "evaluate", Msg: "invalid unary operator in " + tok.String()}
		}
	case TokenBinary:
		p, ok := tok.Op.Spec()
		if !ok {
			return &InternalError{Stage: "evaluate", Msg: "invalid operator in " + tok.String()}
		}
		b, ok := m.pop()
		if !ok {
			return underflow(tok)
		}
		a, ok := m.pop()
		if !ok {
			return underflow(tok)
		}
		r, err := p.Apply(a, b)
		if err != nil {
			var dz *DivisionByZeroError
			if errors.As(err, &dz) {
				dz.Col = tok.Pos
			}
			return err
		}
		m.push(r)
	default:
		// Parens never survive ToPostfix.
		return &InternalError{Stage: "evaluate", Msg: "unexpected token " + tok.String()}
	}
	return nil
}

func underflow(tok Token) error {
	return &InternalError{Stage: "evaluate", Msg: "stack underflow at " + tok.String()}
}

// Evaluate computes the value of a postfix token sequence produced by
// ToPostfix. A division by zero gives a *DivisionByZeroError. A sequence that
// is not a well-formed postfix expression gives an *InternalError.
func Evaluate(postfix []Token) (float64, error) {
	m := machine{stack: make([]float64, 0, len(postfix)/2+1)}
	for _, tok := range postfix {
		if err := m.step(tok); err != nil {
			return 0, err
		}
	}
	if len(m.stack) != 1 {
		return 0, &InternalError{Stage: "evaluate", Msg: "inconsistent stack: " + strconv.Itoa(len(m.stack)) + " values at end"}
	}
	return m.stack[0], nil
}

// EvalString is a shortcut to tokenize, validate, convert and evaluate an
// expression.
func EvalString(src string) (float64, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	if err := Validate(tokens); err != nil {
		return 0, err
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return Evaluate(postfix)
}

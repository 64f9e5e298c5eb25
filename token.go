package calc

import (
	"strconv"
	"strings"
)

// Token is a lexical element of an expression. Op is meaningful only for
// TokenUnary and TokenBinary, and Value only for TokenNum.
type Token struct {
	Kind  TokenKind
	Op    Op
	Value float64
	// Pos is the column of the token's first rune, starting from 1.
	Pos int
}

// TokenKind is the variant of a Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is a decimal number.
	TokenNum
	// TokenUnary is a prefix + or -.
	TokenUnary
	// TokenBinary is an infix operator.
	TokenBinary
	// TokenOpen is an open paren.
	TokenOpen
	// TokenClose is a close paren.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenUnary:
		return "Unary"
	case TokenBinary:
		return "Binary"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Num creates a number token.
func Num(v float64) Token {
	return Token{Kind: TokenNum, Value: v}
}

// Unary creates a unary operator token.
func Unary(op Op) Token {
	return Token{Kind: TokenUnary, Op: op}
}

// Binary creates a binary operator token.
func Binary(op Op) Token {
	return Token{Kind: TokenBinary, Op: op}
}

// Open and Close are paren tokens.
var (
	Open  = Token{Kind: TokenOpen}
	Close = Token{Kind: TokenClose}
)

// At returns a copy of t with its position set to pos.
func (t Token) At(pos int) Token {
	t.Pos = pos
	return t
}

// Text returns the source text of the token.
func (t Token) Text() string {
	switch t.Kind {
	case TokenNum:
		return strconv.FormatFloat(t.Value, 'f', -1, 64)
	case TokenUnary, TokenBinary:
		return t.Op.String()
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	default:
		// Invalid tokens use an invalid character.
		return "$"
	}
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text() + "@" + strconv.Itoa(t.Pos)
}

// FormatTokens renders an infix token sequence separated by spaces, with
// unary operators in parentheses, e.g. "3 - (-) 2".
func FormatTokens(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		if t.Kind == TokenUnary {
			b.WriteByte('(')
			b.WriteString(t.Text())
			b.WriteByte(')')
			continue
		}
		b.WriteString(t.Text())
	}
	return b.String()
}

// FormatPostfix renders a postfix token sequence separated by spaces, with
// unary operators marked, e.g. "3 2 -(unary) -".
func FormatPostfix(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text())
		if t.Kind == TokenUnary {
			b.WriteString("(unary)")
		}
	}
	return b.String()
}

package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read so far.
	col int
	// prev is the kind of the last token scanned, for deciding whether + and
	// - are unary.
	prev TokenKind
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. At the end of the input, the
// result is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Pos: l.col}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			v, err := strconv.ParseFloat(l.buf.String(), 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				// scanNum only accepts text ParseFloat understands.
				panic("calc: bad number " + strconv.Quote(l.buf.String()) + ": " + err.Error())
			}
			// On ErrRange, v is already ±Inf.
			tok.Kind = TokenNum
			tok.Value = v
		case r == '(':
			tok.Kind = TokenOpen
		case r == ')':
			tok.Kind = TokenClose
		default:
			op := opFor(r)
			if op == OpNone {
				// Write the rune so that it shows up in the error message.
				l.buf.WriteRune(r)
				return tok, l.error("")
			}
			tok.Kind = TokenBinary
			tok.Op = op
			if (op == OpAdd || op == OpSub) && l.unaryContext() {
				tok.Kind = TokenUnary
			}
		}
		l.prev = tok.Kind
		return tok, nil
	}
}

// unaryContext reports whether a + or - scanned now is a unary operator,
// i.e. it starts the input or follows an open paren or another operator.
func (l *lexer) unaryContext() bool {
	switch l.prev {
	case TokenNone, TokenOpen, TokenBinary, TokenUnary:
		return true
	default:
		return false
	}
}

// scanNum scans a number of the form \d*\.?\d+ into the buffer.
func (l *lexer) scanNum() error {
	var dot, frac bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if '0' <= r && r <= '9' {
			l.buf.WriteRune(r)
			frac = dot
			continue
		}
		if r == '.' {
			l.buf.WriteRune(r)
			if dot {
				return l.error("number")
			}
			dot = true
			continue
		}
		l.unreadRune()
		break
	}
	if dot && !frac {
		// "1." or "."
		return l.error("number")
	}
	return nil
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.col,
	}
}

// Tokenize scans an expression into tokens. Whitespace separates tokens but
// is otherwise ignored. A + or - is a unary operator when it is the first
// token or follows an open paren or another operator; otherwise it is a
// binary operator. The error, if any, is a *LexError.
func Tokenize(src string) ([]Token, error) {
	scan := lex(strings.NewReader(src))
	var tokens []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return tokens, nil
			}
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the column of the invalid rune.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

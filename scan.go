package gocalc

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

// Scanner turns an expression into tokens, one per call to Scan.
type Scanner struct {
	src   string
	start int
	pos   int
	tok   Token
	err   error
	done  bool
}

func NewScanner(src string) *Scanner {
	return &Scanner{
		src: src,
	}
}

// Scan produces the next token. It returns false once the end of input token
// has been produced or an error occurred.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	tok, err := s.lex()
	if err != nil {
		s.err = err
		s.done = true
		return false
	}
	s.tok = tok
	if tok.Kind == TokenEOF {
		s.done = true
		return false
	}
	return true
}

// Token returns the token produced by the last call to Scan.
func (s *Scanner) Token() Token {
	return s.tok
}

func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) Pos() int {
	return s.pos
}

func (s *Scanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *Scanner) advance() byte {
	c := s.src[s.pos]
	s.pos++
	return c
}

func (s *Scanner) skipWhite() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t':
			s.pos++
		default:
			return
		}
	}
}

func (s *Scanner) makeToken(kind TokenKind, value int64) Token {
	return Token{
		Kind:  kind,
		Pos:   s.start,
		Len:   s.pos - s.start,
		Value: value,
	}
}

func (s *Scanner) lex() (Token, error) {
	s.skipWhite()
	s.start = s.pos
	if s.pos >= len(s.src) {
		return s.makeToken(TokenEOF, 0), nil
	}

	c := s.advance()
	switch c {
	case '+':
		return s.makeToken(TokenPlus, 0), nil
	case '-':
		return s.makeToken(TokenMinus, 0), nil
	case '*':
		return s.makeToken(TokenStar, 0), nil
	case '/':
		return s.makeToken(TokenSlash, 0), nil
	case '(':
		return s.makeToken(TokenLeftParen, 0), nil
	case ')':
		return s.makeToken(TokenRightParen, 0), nil
	}
	if isDigit(c) {
		return s.lexInt()
	}

	r, _ := utf8.DecodeRuneInString(s.src[s.start:])
	return Token{}, &LexError{Pos: s.start, Char: r, Err: ErrUnexpectedChar}
}

func (s *Scanner) lexInt() (Token, error) {
	for isDigit(s.peek()) {
		s.advance()
	}
	v, err := strconv.ParseInt(s.src[s.start:s.pos], 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrOverflow
		}
		return Token{}, &LexError{Pos: s.start, Char: rune(s.src[s.start]), Err: err}
	}
	return s.makeToken(TokenInt, v), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Tokenize scans src to completion. The returned slice always ends with
// exactly one TokenEOF.
func Tokenize(src string) ([]Token, error) {
	var tokens []Token
	s := NewScanner(src)
	for s.Scan() {
		tokens = append(tokens, s.Token())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return append(tokens, s.Token()), nil
}

package gocalc

import (
	"fmt"
)

type TokenKind int

const (
	TokenStar TokenKind = iota
	TokenSlash
	TokenPlus
	TokenMinus
	TokenInt
	TokenLeftParen
	TokenRightParen
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenStar:
		return "'*'"
	case TokenSlash:
		return "'/'"
	case TokenPlus:
		return "'+'"
	case TokenMinus:
		return "'-'"
	case TokenInt:
		return "integer"
	case TokenLeftParen:
		return "'('"
	case TokenRightParen:
		return "')'"
	case TokenEOF:
		return "end of input"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one lexical unit. Pos and Len locate it in the scanned source;
// Value is only meaningful for TokenInt.
type Token struct {
	Kind  TokenKind
	Pos   int
	Len   int
	Value int64
}

// Lexeme returns the text the token was scanned from.
func (t Token) Lexeme(src string) string {
	if t.Pos < 0 || t.Pos+t.Len > len(src) {
		return ""
	}
	return src[t.Pos : t.Pos+t.Len]
}

func (t Token) describe() string {
	if t.Kind == TokenInt {
		return fmt.Sprintf("integer %d", t.Value)
	}
	return t.Kind.String()
}

package gocalc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgRed, color.Bold)
	caretColor  = color.New(color.FgGreen, color.Bold)
)

// FormatError renders err for a terminal. Errors carrying a position get the
// source line and a caret under the offending column:
//
//	syntax error at column 7: expected ')', found end of input
//	  (2 + 3
//	        ^
//
// Other errors are rendered as a single "error: ..." line.
func FormatError(err error, src string, colored bool) string {
	header := sprinter(headerColor, colored)
	caret := sprinter(caretColor, colored)

	var (
		label string
		msg   string
		pos   int
	)
	var lexErr *LexError
	var synErr *SyntaxError
	var evalErr *EvalError
	switch {
	case errors.As(err, &lexErr):
		label, msg, pos = "lexical error", lexErr.message(), lexErr.Pos
	case errors.As(err, &synErr):
		label, msg, pos = "syntax error", synErr.message(), synErr.Pos
	case errors.As(err, &evalErr):
		label, msg, pos = "runtime error", evalErr.message(), evalErr.Pos
	default:
		return header("error:") + " " + err.Error() + "\n"
	}

	if pos < 0 {
		pos = 0
	}
	if pos > len(src) {
		pos = len(src)
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "%s %s\n", header(fmt.Sprintf("%s at column %d:", label, pos+1)), msg)
	fmt.Fprintf(&buf, "  %s\n", src)
	fmt.Fprintf(&buf, "  %s%s\n", padding(src[:pos]), caret("^"))
	return buf.String()
}

func sprinter(c *color.Color, colored bool) func(a ...interface{}) string {
	if !colored {
		return fmt.Sprint
	}
	cc := *c
	cc.EnableColor()
	return cc.SprintFunc()
}

// padding keeps tabs so the caret lines up with the echoed source.
func padding(prefix string) string {
	var buf strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			buf.WriteByte('\t')
		} else {
			buf.WriteByte(' ')
		}
	}
	return buf.String()
}

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
)

// CLI holds the command line of gocalc.
type CLI struct {
	Expr    string `arg:"" optional:"" help:"Expression to evaluate. Read one line from stdin when omitted."`
	MaxLine int    `short:"m" default:"1024" help:"Maximum length in bytes of the input line."`
	Tokens  bool   `help:"Print the token stream before the result."`
	AST     bool   `name:"ast" help:"Print the parsed expression tree before the result."`
	Color   string `enum:"auto,always,never" default:"auto" help:"Colorize diagnostics (auto, always, never)."`
}

// Run evaluates one expression and returns the process exit status.
func (c *CLI) Run(stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "gocalc: ", 0)
	colored := c.colored(stderr)

	src := c.Expr
	if src == "" {
		if isTerminal(stdin) {
			fmt.Fprint(stdout, "> ")
		}
		line, err := gocalc.ReadLine(stdin, c.MaxLine)
		if err != nil {
			if !errors.Is(err, gocalc.ErrInputTooLong) && !errors.Is(err, gocalc.ErrNoInput) {
				logger.Printf("reading input: %v", err)
				return 1
			}
			fmt.Fprint(stderr, gocalc.FormatError(err, "", colored))
			return 1
		}
		src = line
	}

	tokens, err := gocalc.Tokenize(src)
	if err != nil {
		fmt.Fprint(stderr, gocalc.FormatError(err, src, colored))
		return 1
	}
	if c.Tokens {
		printTokens(stdout, tokens, src)
	}

	node, err := gocalc.Parse(tokens)
	if err != nil {
		fmt.Fprint(stderr, gocalc.FormatError(err, src, colored))
		return 1
	}
	if c.AST {
		fmt.Fprintln(stdout, node)
	}

	ret, err := gocalc.Eval(node)
	if err != nil {
		fmt.Fprint(stderr, gocalc.FormatError(err, src, colored))
		return 1
	}
	fmt.Fprintf(stdout, "Interpretation result: %d\n", ret)
	return 0
}

func (c *CLI) colored(w io.Writer) bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return isTerminal(w)
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printTokens(w io.Writer, tokens []gocalc.Token, src string) {
	for _, tok := range tokens {
		switch tok.Kind {
		case gocalc.TokenEOF:
		case gocalc.TokenInt:
			fmt.Fprintf(w, "Token '%s' with value: %d\n", tok.Lexeme(src), tok.Value)
		default:
			fmt.Fprintf(w, "Token '%s'\n", tok.Lexeme(src))
		}
	}
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("gocalc"),
		kong.Description("Evaluate an integer arithmetic expression."),
		kong.UsageOnError(),
	)
	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr))
}

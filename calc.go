package gocalc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// DefaultMaxLine is the line bound used when ReadLine is given none.
const DefaultMaxLine = 1024

// ReadLine reads one line from r without its line terminator. Lines longer
// than max bytes are rejected with ErrInputTooLong.
func ReadLine(r io.Reader, max int) (string, error) {
	if max <= 0 {
		max = DefaultMaxLine
	}
	br := bufio.NewReader(r)
	var buf bytes.Buffer
	seen := false
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		seen = true
		if b == '\n' {
			break
		}
		buf.WriteByte(b)
		// one extra byte is allowed for a trailing '\r'
		if buf.Len() > max+1 {
			return "", fmt.Errorf("%w: more than %d bytes", ErrInputTooLong, max)
		}
	}
	if !seen {
		return "", fmt.Errorf("%w: %w", ErrNoInput, io.EOF)
	}
	line := bytes.TrimSuffix(buf.Bytes(), []byte{'\r'})
	if len(line) > max {
		return "", fmt.Errorf("%w: more than %d bytes", ErrInputTooLong, max)
	}
	return string(line), nil
}

// Interpret scans, parses and evaluates src.
func Interpret(src string) (int64, error) {
	node, err := ParseString(src)
	if err != nil {
		return 0, err
	}
	return Eval(node)
}

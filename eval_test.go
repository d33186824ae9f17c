package gocalc

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/google/go-cmp/cmp"
)

func TestEvalGolden(t *testing.T) {
	fns, err := filepath.Glob("testdir/*.calc")
	if err != nil {
		t.Fatal(err)
	}

	for _, fn := range fns {
		t.Log(fn)
		f, err := os.Open(fn)
		if err != nil {
			t.Fatal(err)
		}
		input, err := ReadLine(f, DefaultMaxLine)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		ret, err := Interpret(input)
		if err != nil {
			b, err2 := os.ReadFile(fn[:len(fn)-4] + "err")
			if err2 != nil || err.Error() != strings.TrimSpace(string(b)) {
				t.Error(err)
			}
			continue
		}
		b, err := os.ReadFile(fn[:len(fn)-4] + "out")
		if err != nil {
			t.Fatal(err)
		}
		want := strings.TrimSpace(string(b))
		if diff := cmp.Diff(want, strconv.FormatInt(ret, 10)); diff != "" {
			t.Errorf("%s: %s", fn, diff)
		}
	}
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "2 + 3 * 4", want: 14},
		{input: "(2 + 3) * 4", want: 20},
		{input: "10 - 3 - 2", want: 5},
		{input: "-5 + 3", want: -2},
		{input: "--5", want: 5},
		{input: "---5", want: -5},
		{input: "7 / 2", want: 3},
		{input: "-7 / 2", want: -3},
		{input: "7 / -2", want: -3},
		{input: "0 / 5", want: 0},
		{input: "2+3", want: 5},
		{input: " 2  +   3 ", want: 5},
		{input: "100 / 10 / 5", want: 2},
		{input: "2 * (3 + 4) * 5", want: 70},
		{input: "9223372036854775807", want: math.MaxInt64},
		{input: "-9223372036854775807 - 1", want: math.MinInt64},
		{input: "(-9223372036854775807 - 1) / -2", want: 4611686018427387904},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		got, err := Interpret(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		if got != test.want {
			t.Errorf("want %d for %q but got %d", test.want, test.input, got)
		}
	}
}

func TestInterpretIsRepeatable(t *testing.T) {
	for _, input := range []string{"1 + 2 * 3", "(4 - 8) / 3", "5 / 0"} {
		first, firstErr := Interpret(input)
		for i := 0; i < 3; i++ {
			got, err := Interpret(input)
			assert.Equal(t, first, got)
			assert.Equal(t, firstErr, err)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
		pos   int
	}{
		{input: "5 / 0", err: ErrDivisionByZero, pos: 2},
		{input: "1 + 5 / (2 - 2)", err: ErrDivisionByZero, pos: 6},
		{input: "9223372036854775807 + 1", err: ErrOverflow, pos: 20},
		{input: "-9223372036854775807 - 2", err: ErrOverflow, pos: 21},
		{input: "4611686018427387904 * 2", err: ErrOverflow, pos: 20},
		{input: "(-9223372036854775807 - 1) / -1", err: ErrOverflow, pos: 27},
		{input: "(-9223372036854775807 - 1) * -1", err: ErrOverflow, pos: 27},
		{input: "-(-9223372036854775807 - 1)", err: ErrOverflow, pos: 0},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		_, err := Interpret(test.input)
		assert.IsError(t, err, test.err)
		pos, ok := Position(err)
		assert.True(t, ok)
		assert.Equal(t, test.pos, pos)
	}
}

func TestEvalNil(t *testing.T) {
	_, err := Eval(nil)
	assert.IsError(t, err, ErrNilNode)
}

func TestEvalTree(t *testing.T) {
	node := &BinaryExpr{
		Op:    OpSub,
		Left:  &IntLit{Value: 1},
		Right: &NegExpr{Operand: &IntLit{Value: 2}},
	}
	got, err := Eval(node)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), got)
}

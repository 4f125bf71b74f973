package lang

import (
	"errors"
	"math"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize("this * 2.5e1+f(.5,index)")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	want := []Token{
		{Kind: TokenIdentifier, Name: "this", Pos: 0},
		{Kind: TokenOperator, Op: OpMul, Pos: 5},
		{Kind: TokenNumber, Number: 25, Pos: 7},
		{Kind: TokenOperator, Op: OpAdd, Pos: 12},
		{Kind: TokenIdentifier, Name: "f", Pos: 13},
		{Kind: TokenLParen, Pos: 14},
		{Kind: TokenNumber, Number: 0.5, Pos: 15},
		{Kind: TokenComma, Pos: 17},
		{Kind: TokenIdentifier, Name: "index", Pos: 18},
		{Kind: TokenRParen, Pos: 23},
		{Kind: TokenEnd, Pos: 24},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}

	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestTokenize_Numbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  float64
	}{
		{"1", 1},
		{"2.5", 2.5},
		{".5", 0.5},
		{"1.", 1},
		{"1e3", 1000},
		{"4.2E-1", 0.42},
		{"7e+2", 700},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			toks, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error = %v", tt.input, err)
			}

			if len(toks) != 2 || toks[0].Kind != TokenNumber {
				t.Fatalf("Tokenize(%q) = %v, want one number", tt.input, toks)
			}

			if toks[0].Number != tt.want {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, toks[0].Number, tt.want)
			}
		})
	}
}

func TestTokenize_DanglingExponent(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize("1e")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	if len(toks) != 3 || toks[0].Number != 1 || toks[1].Name != "e" {
		t.Errorf("Tokenize(\"1e\") = %v, want number then identifier", toks)
	}
}

func TestTokenize_MinusIsOperator(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize("-3")
	if err != nil {
		t.Fatal(err)
	}

	if toks[0].Kind != TokenOperator || toks[0].Op != OpSub {
		t.Errorf("leading '-' lexed as %v", toks[0])
	}
}

func TestTokenize_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		pos   int
	}{
		{"1 $ 2", 2},
		{"a.b", 1},
		{"x == y", 2},
		{"π", 0},
		{"this[0]", 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			_, err := Tokenize(tt.input)
			if !errors.Is(err, ErrLex) {
				t.Fatalf("Tokenize(%q) error = %v, want ErrLex", tt.input, err)
			}

			var le *Error
			if !errors.As(err, &le) {
				t.Fatalf("error %T is not *Error", err)
			}

			if pos, ok := le.Position(); !ok || pos != tt.pos {
				t.Errorf("position = %d, %v; want %d", pos, ok, tt.pos)
			}
		})
	}
}

func TestTokenize_OutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  float64
	}{
		{"1e999", math.Inf(1)},
		{"1e-400", 0},
	}

	for _, tt := range tests {
		toks, err := Tokenize(tt.input)
		if err != nil {
			t.Errorf("Tokenize(%q) error = %v", tt.input, err)

			continue
		}

		if toks[0].Kind != TokenNumber || toks[0].Number != tt.want {
			t.Errorf("Tokenize(%q) = %v, want number %v", tt.input, toks[0], tt.want)
		}
	}
}

func TestTokenKind_String(t *testing.T) {
	t.Parallel()

	tests := map[TokenKind]string{
		TokenEnd:        "end of input",
		TokenIdentifier: "identifier",
		TokenLParen:     "'('",
		TokenComma:      "','",
		TokenKind(42):   "TokenKind(42)",
	}

	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("TokenKind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

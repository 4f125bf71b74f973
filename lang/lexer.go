package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"unicode/utf8"
)

// Tokenize splits source into tokens terminated by a [TokenEnd].
// Whitespace is skipped. An unrecognized character fails with [ErrLex].
func Tokenize(source string) ([]Token, error) {
	toks := make([]Token, 0, len(source)/2+1)

	for i := 0; i < len(source); {
		c := source[i]

		switch {
		case isSpace(c):
			i++

		case isDigit(c) || (c == '.' && i+1 < len(source) && isDigit(source[i+1])):
			end := scanNumber(source, i)

			// Out-of-range literals round to ±Inf or 0 like any IEEE overflow.
			f, err := strconv.ParseFloat(source[i:end], 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return nil, ErrLex.At(i).Wrap(err).
					With(slog.String("literal", source[i:end]))
			}

			toks = append(toks, Token{Kind: TokenNumber, Number: f, Pos: i})
			i = end

		case isIdentStart(c):
			end := i + 1
			for end < len(source) && isIdentPart(source[end]) {
				end++
			}

			toks = append(toks, Token{Kind: TokenIdentifier, Name: source[i:end], Pos: i})
			i = end

		case isOperator(c):
			toks = append(toks, Token{Kind: TokenOperator, Op: Operator(c), Pos: i})
			i++

		case c == '(':
			toks = append(toks, Token{Kind: TokenLParen, Pos: i})
			i++

		case c == ')':
			toks = append(toks, Token{Kind: TokenRParen, Pos: i})
			i++

		case c == ',':
			toks = append(toks, Token{Kind: TokenComma, Pos: i})
			i++

		default:
			r, _ := utf8.DecodeRuneInString(source[i:])

			return nil, ErrLex.At(i).With(slog.String("char", string(r)))
		}
	}

	return append(toks, Token{Kind: TokenEnd, Pos: len(source)}), nil
}

// scanNumber returns the end offset of the numeric literal starting at i:
// digits, an optional fraction, and an optional exponent. An exponent marker
// not followed by digits is left for the next token.
func scanNumber(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}

	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}

		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}

			i = j
		}
	}

	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

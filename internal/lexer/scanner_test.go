package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func types(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "begin end for to step do while repeat until if then else CALL return div mod and or not customIdent"
	expected := []TokenType{
		BEGIN, END, FOR, TO, STEP, DO, WHILE, REPEAT, UNTIL, IF, THEN, ELSE,
		CALL, RETURN, DIV, MOD, AND, OR, NOT, IDENT,
	}
	tokens := NewScanner(input).ScanTokens()
	require.GreaterOrEqual(t, len(tokens), len(expected))
	require.Equal(t, expected, types(tokens)[:len(expected)])
}

func TestBooleanLiteralsAreUppercaseOnly(t *testing.T) {
	tokens := NewScanner("T F t f").ScanTokens()
	require.Equal(t, []TokenType{TRUE, FALSE, IDENT, IDENT, EOF}, types(tokens))
}

func TestNumbers(t *testing.T) {
	tokens := NewScanner("42 0 3.14").ScanTokens()
	require.Equal(t, []TokenType{NUMBER, NUMBER, NUMBER, EOF}, types(tokens))
	require.Equal(t, "3.14", tokens[2].Lexeme)
}

func TestUnicodeAndASCIIOperatorsAreEquivalent(t *testing.T) {
	unicodeTokens := NewScanner("i ← 1 while (i ≤ n) a ≥ b c ≠ d ⌊x⌋ ⌈y⌉").ScanTokens()
	asciiTokens := NewScanner("i <- 1 while (i <= n) a >= b c != d floor(x) ceil(y)").ScanTokens()

	wantTypes := []TokenType{
		IDENT, ARROW, NUMBER,
		WHILE, LPAREN, IDENT, LE, IDENT, RPAREN,
		IDENT, GE, IDENT,
		IDENT, NEQ, IDENT,
	}
	require.Equal(t, wantTypes, types(unicodeTokens)[:len(wantTypes)])

	require.Equal(t, wantTypes, types(asciiTokens)[:len(wantTypes)])

	// The ASCII spelling of floor/ceil uses the keyword form, not bracket glyphs.
	require.Contains(t, types(asciiTokens), FLOOR)
	require.Contains(t, types(asciiTokens), CEIL)
}

func TestLineCommentsAreDropped(t *testing.T) {
	tokens := NewScanner("s<-0 ► this is a comment\nx<-1").ScanTokens()
	require.NotContains(t, types(tokens), ILLEGAL)
	// Only the two assignment statements' tokens plus EOF should remain.
	require.Equal(t, []TokenType{IDENT, ARROW, NUMBER, IDENT, ARROW, NUMBER, EOF}, types(tokens))
}

func TestBlankLinesAreSkipped(t *testing.T) {
	tokens := NewScanner("s<-0\n\n\nx<-1").ScanTokens()
	require.Equal(t, []TokenType{IDENT, ARROW, NUMBER, IDENT, ARROW, NUMBER, EOF}, types(tokens))
}

func TestIllegalCharacterIsCollectedNotFatal(t *testing.T) {
	s := NewScanner("x <- 1 @ 2")
	tokens := s.ScanTokens()
	require.NotEmpty(t, s.Errors())
	// Scanning continues past the illegal character.
	require.Contains(t, types(tokens), NUMBER)
}

func TestPositionsTrackLineAndColumn(t *testing.T) {
	tokens := NewScanner("x<-1\ny<-2").ScanTokens()
	require.Equal(t, 1, tokens[0].Line)
	// 'y' begins the second line.
	yTok := tokens[3]
	require.Equal(t, "y", yTok.Lexeme)
	require.Equal(t, 2, yTok.Line)
}

package lsp

import "bigoh/internal/lexer"

// SemanticToken is one LSP semantic-token entry; Line/StartChar are
// 0-based, TokenType/TokenModifiers index SemanticTokenTypes/
// SemanticTokenModifiers in handler.go (see DESIGN.md, teacher:
// internal/lsp/semantic.go's SemanticToken).
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// keywordTokens and operatorTokens classify the flat token stream into
// the two legend categories this server reports; everything else
// (identifiers, numbers) gets its own direct mapping below. Unlike the
// teacher, which walks a parsed AST to find namespaces/structs/imports,
// this server tokenizes straight off internal/lexer's flat stream: the
// pseudocode grammar's tokens already carry exact source spans and don't
// need AST-level disambiguation for highlighting purposes.
var keywordTokens = map[lexer.TokenType]bool{
	lexer.BEGIN: true, lexer.END: true, lexer.FOR: true, lexer.TO: true,
	lexer.STEP: true, lexer.DO: true, lexer.WHILE: true, lexer.REPEAT: true,
	lexer.UNTIL: true, lexer.IF: true, lexer.THEN: true, lexer.ELSE: true,
	lexer.CALL: true, lexer.RETURN: true, lexer.DIV: true, lexer.MOD: true,
	lexer.AND: true, lexer.OR: true, lexer.NOT: true, lexer.FLOOR: true,
	lexer.CEIL: true, lexer.TRUE: true, lexer.FALSE: true,
}

var operatorTokens = map[lexer.TokenType]bool{
	lexer.ARROW: true, lexer.PLUS: true, lexer.MINUS: true, lexer.STAR: true,
	lexer.SLASH: true, lexer.EQ: true, lexer.NEQ: true, lexer.LT: true,
	lexer.LE: true, lexer.GT: true, lexer.GE: true,
}

func collectSemanticTokens(source string) []SemanticToken {
	if source == "" {
		return nil
	}
	scanner := lexer.NewScanner(source)
	tokens := scanner.ScanTokens()

	var out []SemanticToken
	for _, t := range tokens {
		var typeIdx int
		switch {
		case keywordTokens[t.Type]:
			typeIdx = indexOf(SemanticTokenTypes, "keyword")
		case operatorTokens[t.Type]:
			typeIdx = indexOf(SemanticTokenTypes, "operator")
		case t.Type == lexer.NUMBER:
			typeIdx = indexOf(SemanticTokenTypes, "number")
		case t.Type == lexer.IDENT:
			typeIdx = indexOf(SemanticTokenTypes, "variable")
		default:
			continue
		}
		if typeIdx < 0 || t.Line <= 0 {
			continue
		}
		out = append(out, SemanticToken{
			Line: uint32(t.Line - 1), StartChar: uint32(max0(t.Column - 1)),
			Length: uint32(len([]rune(t.Lexeme))), TokenType: typeIdx,
		})
	}
	return out
}

func indexOf(haystack []string, needle string) int {
	for i, s := range haystack {
		if s == needle {
			return i
		}
	}
	return -1
}

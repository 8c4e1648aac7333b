package parser

import (
	"bigoh/internal/ast"
	"bigoh/internal/lexer"
)

// ParseProgram parses a full token stream into a Program, collecting
// ParseErrors along the way rather than stopping at the first one
// (spec.md §4.1).
func (p *Parser) ParseProgram() *ast.Program {
	start := p.peek()
	prog := &ast.Program{Pos: p.pos(start)}

	for !p.isAtEnd() {
		item := p.parseItem()
		if item != nil {
			prog.Items = append(prog.Items, item)
		}
	}

	if len(prog.Items) > 0 {
		prog.EndPos = prog.Items[len(prog.Items)-1].NodeEndPos()
	} else {
		prog.EndPos = prog.Pos
	}
	return prog
}

// parseItem dispatches a top-level class declaration, procedure
// declaration, or bare statement (spec.md §4.1 "program").
func (p *Parser) parseItem() ast.Item {
	// A procedure declaration is IDENT '(' ... followed directly by a
	// block; a class declaration is IDENT '(' ident-list ')' with no
	// block. We disambiguate by looking past the matching ')' for BEGIN.
	if p.check(lexer.IDENT) && p.peekAt(1).Type == lexer.LPAREN {
		if p.looksLikeProc() {
			return p.parseProc()
		}
		return p.parseClass()
	}
	return p.parseStmt()
}

// looksLikeProc scans ahead past the balanced parameter-list parens to see
// whether a 'begin' follows, distinguishing `Name(params) begin ... end`
// (a Proc) from `Name(attr1, attr2)` (a Class declaration).
func (p *Parser) looksLikeProc() bool {
	depth := 0
	i := p.current + 1 // at '('
	for i < len(p.tokens) {
		switch p.tokens[i].Type {
		case lexer.LPAREN:
			depth++
		case lexer.RPAREN:
			depth--
			if depth == 0 {
				return i+1 < len(p.tokens) && p.tokens[i+1].Type == lexer.BEGIN
			}
		case lexer.EOF:
			return false
		}
		i++
	}
	return false
}

func (p *Parser) parseClass() ast.Item {
	start := p.peek()
	name := p.consume(lexer.IDENT, "expected class name").Lexeme
	p.consume(lexer.LPAREN, "expected '(' after class name")

	var attrs []string
	if !p.check(lexer.RPAREN) {
		for {
			attrs = append(attrs, p.consume(lexer.IDENT, "expected attribute name").Lexeme)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	end := p.consume(lexer.RPAREN, "expected ')' to close class attributes")

	return &ast.Class{Pos: p.pos(start), EndPos: p.pos(end), Name: name, Attributes: attrs}
}

func (p *Parser) parseProc() ast.Item {
	start := p.peek()
	name := p.consume(lexer.IDENT, "expected procedure name").Lexeme
	p.consume(lexer.LPAREN, "expected '(' after procedure name")

	var params []*ast.Param
	if !p.check(lexer.RPAREN) {
		for {
			params = append(params, p.parseParam())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RPAREN, "expected ')' to close parameter list")

	body := p.parseBlock()
	return &ast.Proc{Pos: p.pos(start), EndPos: body.NodeEndPos(), Name: name, Params: params, Body: body}
}

func (p *Parser) parseParam() *ast.Param {
	start := p.peek()
	name := p.consume(lexer.IDENT, "expected parameter name").Lexeme
	param := &ast.Param{Pos: p.pos(start), Name: name}

	if p.match(lexer.LBRACKET) {
		param.HasSlice = true
		param.Lo = p.parseExpr()
		p.consume(lexer.DOTDOT, "expected '..' in slice bounds")
		param.Hi = p.parseExpr()
		end := p.consume(lexer.RBRACKET, "expected ']' to close slice bounds")
		param.EndPos = p.pos(end)
	} else {
		param.EndPos = p.pos(p.previous())
	}
	return param
}

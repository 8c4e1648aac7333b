package parser

import (
	"math/big"

	"bigoh/internal/ast"
	"bigoh/internal/lexer"
)

// binOpText maps canonical and Unicode-distinct binary operator tokens to the
// ASCII spelling recorded on ast.BinExpr, so the cost IR and printer never
// need to special-case the Unicode glyphs (spec.md §3).
var binOpText = map[lexer.TokenType]string{
	lexer.EQ:    "=",
	lexer.NEQ:   "!=",
	lexer.LT:    "<",
	lexer.LE:    "<=",
	lexer.GT:    ">",
	lexer.GE:    ">=",
	lexer.PLUS:  "+",
	lexer.MINUS: "-",
	lexer.STAR:  "*",
	lexer.SLASH: "/",
	lexer.DIV:   "div",
	lexer.MOD:   "mod",
	lexer.AND:   "and",
	lexer.OR:    "or",
}

// parseExpr is the entry point for the precedence-climbing expression
// parser. Levels from loosest to tightest binding: or, and, not,
// comparison, additive, multiplicative, unary, postfix, primary
// (spec.md §4.1 expr grammar).
func (p *Parser) parseExpr() ast.Expr {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.check(lexer.OR) {
		op := p.advance()
		right := p.parseAnd()
		left = &ast.BinExpr{Pos: left.NodePos(), EndPos: right.NodeEndPos(), Op: binOpText[op.Type], Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseNot()
	for p.check(lexer.AND) {
		op := p.advance()
		right := p.parseNot()
		left = &ast.BinExpr{Pos: left.NodePos(), EndPos: right.NodeEndPos(), Op: binOpText[op.Type], Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseNot() ast.Expr {
	if p.check(lexer.NOT) {
		start := p.advance()
		operand := p.parseNot()
		return &ast.UnaryExpr{Pos: p.pos(start), EndPos: operand.NodeEndPos(), Op: "not", Value: operand}
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()
	for p.check(lexer.EQ) || p.check(lexer.NEQ) || p.check(lexer.LT) ||
		p.check(lexer.LE) || p.check(lexer.GT) || p.check(lexer.GE) {
		op := p.advance()
		right := p.parseAdditive()
		left = &ast.BinExpr{Pos: left.NodePos(), EndPos: right.NodeEndPos(), Op: binOpText[op.Type], Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinExpr{Pos: left.NodePos(), EndPos: right.NodeEndPos(), Op: binOpText[op.Type], Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.check(lexer.STAR) || p.check(lexer.SLASH) || p.check(lexer.DIV) || p.check(lexer.MOD) {
		op := p.advance()
		right := p.parseUnary()
		left = &ast.BinExpr{Pos: left.NodePos(), EndPos: right.NodeEndPos(), Op: binOpText[op.Type], Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.check(lexer.MINUS) {
		start := p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpr{Pos: p.pos(start), EndPos: operand.NodeEndPos(), Op: "-", Value: operand}
	}
	return p.parsePostfix()
}

// parsePostfix handles index/slice subscripts, member access, and call
// application chained onto a primary expression (spec.md §3 IndexExpr,
// SliceExpr, MemberExpr, CallExpr).
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()

	for {
		switch {
		case p.check(lexer.LBRACKET):
			expr = p.parseSubscript(expr)
		case p.check(lexer.DOT):
			p.advance()
			field := p.consume(lexer.IDENT, "expected field name after '.'")
			expr = &ast.MemberExpr{Pos: expr.NodePos(), EndPos: p.pos(field), Base: expr, Field: field.Lexeme}
		case p.check(lexer.LPAREN):
			if name, ok := expr.(*ast.VarExpr); ok {
				p.advance()
				args := p.parseArgList()
				end := p.consume(lexer.RPAREN, "expected ')' to close call arguments")
				expr = &ast.CallExpr{Pos: expr.NodePos(), EndPos: p.pos(end), Name: name.Name, Args: args}
			} else {
				return expr
			}
		default:
			return expr
		}
	}
}

// parseSubscript parses `[e]`, `[e, e, ...]` (IndexExpr) or `[lo..hi]`
// (SliceExpr); the two share an opening bracket so the distinction is made
// after the first sub-expression.
func (p *Parser) parseSubscript(base ast.Expr) ast.Expr {
	p.consume(lexer.LBRACKET, "expected '['")
	first := p.parseExpr()

	if p.match(lexer.DOTDOT) {
		hi := p.parseExpr()
		end := p.consume(lexer.RBRACKET, "expected ']' to close slice")
		return &ast.SliceExpr{Pos: base.NodePos(), EndPos: p.pos(end), Base: base, Lo: first, Hi: hi}
	}

	indices := []ast.Expr{first}
	for p.match(lexer.COMMA) {
		indices = append(indices, p.parseExpr())
	}
	end := p.consume(lexer.RBRACKET, "expected ']' to close index")
	return &ast.IndexExpr{Pos: base.NodePos(), EndPos: p.pos(end), Base: base, Indices: indices}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()

	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		return p.parseNumLiteral(tok)
	case lexer.TRUE:
		p.advance()
		return &ast.BoolExpr{Pos: p.pos(tok), EndPos: p.pos(tok), Value: true}
	case lexer.FALSE:
		p.advance()
		return &ast.BoolExpr{Pos: p.pos(tok), EndPos: p.pos(tok), Value: false}
	case lexer.IDENT:
		p.advance()
		return &ast.VarExpr{Pos: p.pos(tok), EndPos: p.pos(tok), Name: tok.Lexeme}
	case lexer.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.consume(lexer.RPAREN, "expected ')' to close parenthesized expression")
		return inner
	case lexer.FLOOR_L:
		p.advance()
		inner := p.parseExpr()
		end := p.consume(lexer.FLOOR_R, "expected '⌋' to close floor expression")
		return &ast.FloorExpr{Pos: p.pos(tok), EndPos: p.pos(end), Value: inner}
	case lexer.CEIL_L:
		p.advance()
		inner := p.parseExpr()
		end := p.consume(lexer.CEIL_R, "expected '⌉' to close ceil expression")
		return &ast.CeilExpr{Pos: p.pos(tok), EndPos: p.pos(end), Value: inner}
	case lexer.FLOOR:
		p.advance()
		p.consume(lexer.LPAREN, "expected '(' after 'floor'")
		inner := p.parseExpr()
		end := p.consume(lexer.RPAREN, "expected ')' to close floor(...)")
		return &ast.FloorExpr{Pos: p.pos(tok), EndPos: p.pos(end), Value: inner}
	case lexer.CEIL:
		p.advance()
		p.consume(lexer.LPAREN, "expected '(' after 'ceil'")
		inner := p.parseExpr()
		end := p.consume(lexer.RPAREN, "expected ')' to close ceil(...)")
		return &ast.CeilExpr{Pos: p.pos(tok), EndPos: p.pos(end), Value: inner}
	default:
		p.errorAtCurrent("expected expression")
		p.advance()
		return &ast.VarExpr{Pos: p.pos(tok), EndPos: p.pos(tok), Name: "<error>"}
	}
}

// parseNumLiteral converts the scanned digit text into an exact big.Rat,
// supporting the decimal-point form the scanner also recognizes.
func (p *Parser) parseNumLiteral(tok lexer.Token) ast.Expr {
	val := new(big.Rat)
	val.SetString(tok.Lexeme)
	return &ast.NumExpr{Pos: p.pos(tok), EndPos: p.pos(tok), Value: val, Text: tok.Lexeme}
}

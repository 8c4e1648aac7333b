package parser

import (
	"bigoh/internal/ast"
	"bigoh/internal/lexer"
)

// parseBlock parses `begin stmt* end` (spec.md §4.1 "block").
func (p *Parser) parseBlock() *ast.Block {
	start := p.consume(lexer.BEGIN, "expected 'begin'")
	blk := &ast.Block{Pos: p.pos(start)}

	for !p.check(lexer.END) && !p.isAtEnd() {
		stmt := p.parseStmt()
		if stmt != nil {
			blk.Stmts = append(blk.Stmts, stmt)
		}
	}
	end := p.consume(lexer.END, "expected 'end' to close block")
	blk.EndPos = p.pos(end)
	return blk
}

// parseStmt dispatches on the leading token (spec.md §4.1 "stmt").
func (p *Parser) parseStmt() ast.Stmt {
	switch p.peek().Type {
	case lexer.FOR:
		return p.parseFor()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.REPEAT:
		return p.parseRepeat()
	case lexer.IF:
		return p.parseIf()
	case lexer.CALL:
		return p.parseCallStmt()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.IDENT:
		return p.parseIdentLedStmt()
	default:
		p.errorAtCurrent("expected statement")
		p.synchronize()
		return nil
	}
}

// parseIdentLedStmt disambiguates Assign, ObjectDecl, and ExprStmt, all of
// which begin with a bare identifier (spec.md §3 Assign/ObjectDecl/
// ExprStmt).
func (p *Parser) parseIdentLedStmt() ast.Stmt {
	start := p.peek()

	// `ClassName varName` — two bare identifiers in a row can only be an
	// object declaration; every other identifier-led construct has a
	// distinguishing second token (ARROW, LBRACKET, DOT, LPAREN).
	if p.peekAt(1).Type == lexer.IDENT {
		className := p.advance().Lexeme
		varName := p.advance().Lexeme
		return &ast.ObjectDecl{Pos: p.pos(start), EndPos: p.pos(p.previous()), ClassName: className, VarName: varName}
	}

	expr := p.parseExpr()
	if p.match(lexer.ARROW) {
		value := p.parseExpr()
		return &ast.Assign{Pos: p.pos(start), EndPos: value.NodeEndPos(), Target: expr, Value: value}
	}
	return &ast.ExprStmt{Pos: p.pos(start), EndPos: expr.NodeEndPos(), Value: expr}
}

func (p *Parser) parseFor() ast.Stmt {
	start := p.consume(lexer.FOR, "expected 'for'")
	varName := p.consume(lexer.IDENT, "expected loop variable").Lexeme
	p.consume(lexer.ARROW, "expected '<-' after loop variable")
	from := p.parseExpr()
	p.consume(lexer.TO, "expected 'to' in for-loop header")
	to := p.parseExpr()

	forStmt := &ast.For{Pos: p.pos(start), Var: varName, Start: from, End: to, Inclusive: true}
	if p.match(lexer.STEP) {
		forStmt.Step = p.parseExpr()
		forStmt.HasExplicitStep = true
	}
	p.consume(lexer.DO, "expected 'do' before for-loop body")
	forStmt.Body = p.parseBlock()
	forStmt.EndPos = forStmt.Body.EndPos
	return forStmt
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.consume(lexer.WHILE, "expected 'while'")
	p.consume(lexer.LPAREN, "expected '(' after 'while'")
	cond := p.parseExpr()
	p.consume(lexer.RPAREN, "expected ')' after while-condition")
	p.consume(lexer.DO, "expected 'do' before while-loop body")
	body := p.parseBlock()
	return &ast.While{Pos: p.pos(start), EndPos: body.EndPos, Cond: cond, Body: body}
}

// parseRepeat parses `repeat stmt+ until (cond)`; the body has no
// begin/end wrapper (spec.md §4.1).
func (p *Parser) parseRepeat() ast.Stmt {
	start := p.consume(lexer.REPEAT, "expected 'repeat'")
	var stmts []ast.Stmt
	for !p.check(lexer.UNTIL) && !p.isAtEnd() {
		if s := p.parseStmt(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(lexer.UNTIL, "expected 'until' to close repeat loop")
	p.consume(lexer.LPAREN, "expected '(' after 'until'")
	until := p.parseExpr()
	end := p.consume(lexer.RPAREN, "expected ')' after until-condition")
	return &ast.Repeat{Pos: p.pos(start), EndPos: p.pos(end), Stmts: stmts, Until: until}
}

func (p *Parser) parseIf() ast.Stmt {
	start := p.consume(lexer.IF, "expected 'if'")
	p.consume(lexer.LPAREN, "expected '(' after 'if'")
	cond := p.parseExpr()
	p.consume(lexer.RPAREN, "expected ')' after if-condition")
	p.consume(lexer.THEN, "expected 'then' before if-body")
	then := p.parseBlock()

	ifStmt := &ast.If{Pos: p.pos(start), EndPos: then.EndPos, Cond: cond, Then: then}
	if p.match(lexer.ELSE) {
		elseBlk := p.parseBlock()
		ifStmt.Else = elseBlk
		ifStmt.EndPos = elseBlk.EndPos
	}
	return ifStmt
}

func (p *Parser) parseCallStmt() ast.Stmt {
	start := p.consume(lexer.CALL, "expected 'CALL'")
	name := p.consume(lexer.IDENT, "expected procedure name after 'CALL'").Lexeme
	p.consume(lexer.LPAREN, "expected '(' after procedure name")
	args := p.parseArgList()
	end := p.consume(lexer.RPAREN, "expected ')' to close call arguments")
	return &ast.CallStmt{Pos: p.pos(start), EndPos: p.pos(end), Name: name, Args: args}
}

func (p *Parser) parseReturn() ast.Stmt {
	start := p.consume(lexer.RETURN, "expected 'return'")
	ret := &ast.Return{Pos: p.pos(start), EndPos: p.pos(start)}
	if !p.atStmtBoundary() {
		ret.Value = p.parseExpr()
		ret.EndPos = ret.Value.NodeEndPos()
	}
	return ret
}

// atStmtBoundary reports whether the next token cannot start an
// expression, meaning a preceding optional expression (e.g. after
// 'return') was omitted.
func (p *Parser) atStmtBoundary() bool {
	switch p.peek().Type {
	case lexer.END, lexer.ELSE, lexer.UNTIL, lexer.EOF,
		lexer.FOR, lexer.WHILE, lexer.REPEAT, lexer.IF, lexer.CALL, lexer.RETURN:
		return true
	default:
		return false
	}
}

func (p *Parser) parseArgList() []ast.Expr {
	var args []ast.Expr
	if p.check(lexer.RPAREN) {
		return args
	}
	for {
		args = append(args, p.parseExpr())
		if !p.match(lexer.COMMA) {
			break
		}
	}
	return args
}

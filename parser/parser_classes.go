package parser

import (
	"github.com/akaoio/zen/lexer"
)

// parseClassDefinition parses:
//
//	class NAME [extends PARENT]
//	    [private] method NAME PARAM...
//	        ...
//
// Members are introduced by the contextual word `method` (an ordinary
// identifier everywhere else) or by the `function` keyword; `private` marks
// member visibility. The parent is recorded by name only — resolution
// happens lazily when the class is instantiated, so classes may reference
// parents defined later in the file. A class with no members is legal:
// `class B extends A` followed by a non-indented line.
func (par *Parser) parseClassDefinition() StatementNode {
	classTok := par.CurrToken
	par.advance()

	if !par.curTokenIs(lexer.IDENTIFIER_ID) {
		par.errorf(par.CurrToken, UnexpectedToken, "expected a class name, got %s", describe(par.CurrToken))
		return nil
	}
	node := &ClassDefinitionNode{
		Token:   classTok,
		Name:    par.CurrToken.Literal,
		Methods: make([]*FunctionDefinitionNode, 0),
	}
	par.advance()

	if par.curTokenIs(lexer.EXTENDS_KEY) {
		par.advance()
		if !par.curTokenIs(lexer.IDENTIFIER_ID) {
			par.errorf(par.CurrToken, UnexpectedToken, "expected a parent class name after `extends`, got %s", describe(par.CurrToken))
			return nil
		}
		node.Parent = par.CurrToken.Literal
		par.advance()
	}

	// Body is optional: a class header followed by a line at the same
	// indent defines an empty class.
	if !par.curTokenIs(lexer.NEWLINE_TYPE) {
		par.errorf(par.CurrToken, UnexpectedToken, "unexpected %s after class header", describe(par.CurrToken))
		return nil
	}
	if par.NextToken.Type != lexer.INDENT_TYPE {
		return node
	}
	par.advance() // NEWLINE
	par.advance() // INDENT

	for !par.curTokenIs(lexer.DEDENT_TYPE) && !par.curTokenIs(lexer.EOF_TYPE) {
		if par.curTokenIs(lexer.NEWLINE_TYPE) {
			par.advance()
			continue
		}
		member := par.parseClassMember()
		if member == nil {
			par.synchronize()
			continue
		}
		node.Methods = append(node.Methods, member)
	}
	if par.curTokenIs(lexer.DEDENT_TYPE) {
		par.advance()
	}
	par.justClosedBlock = true
	return node
}

// parseClassMember parses one `[private] method NAME PARAM...` member with
// its indented body.
func (par *Parser) parseClassMember() *FunctionDefinitionNode {
	private := false
	if par.curTokenIs(lexer.PRIVATE_KEY) {
		private = true
		par.advance()
	}

	isMethodWord := par.curTokenIs(lexer.IDENTIFIER_ID) && par.CurrToken.Literal == "method"
	if !isMethodWord && !par.curTokenIs(lexer.FUNCTION_KEY) {
		par.errorf(par.CurrToken, UnexpectedToken, "expected `method` in class body, got %s", describe(par.CurrToken))
		return nil
	}

	member := par.parseFunctionHeaderAndBody(par.CurrToken)
	if member == nil {
		return nil
	}
	member.Private = private
	return member
}

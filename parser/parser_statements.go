package parser

import (
	"github.com/akaoio/zen/lexer"
)

// parseVariableDefinition parses `set NAME value`. The value position is
// where the object-literal and bare-array forms live; see parseSetValue.
func (par *Parser) parseVariableDefinition() StatementNode {
	setTok := par.CurrToken
	par.advance()

	if !par.curTokenIs(lexer.IDENTIFIER_ID) && !par.curTokenIs(lexer.THIS_KEY) {
		par.errorf(par.CurrToken, UnexpectedToken, "expected a name after `set`, got %s", describe(par.CurrToken))
		return nil
	}
	nameTok := par.CurrToken
	par.advance()

	// Dotted target: `set this.x v` / `set o.key v` assigns a property
	// instead of defining a variable.
	if par.curTokenIs(lexer.DOT_OP) {
		var target ExpressionNode = &VariableNode{Token: nameTok, Name: nameTok.Literal}
		if nameTok.Type == lexer.THIS_KEY {
			target = &VariableNode{Token: nameTok, Name: "this"}
		}
		property := ""
		for par.curTokenIs(lexer.DOT_OP) {
			dotTok := par.CurrToken
			par.advance()
			name, ok := par.propertyName()
			if !ok {
				par.errorf(par.CurrToken, UnexpectedToken, "expected a property name after `.`, got %s", describe(par.CurrToken))
				return nil
			}
			par.advance()
			if property != "" {
				target = &PropertyAccessNode{Token: dotTok, Object: target, Property: property}
			}
			property = name
		}
		value := par.parseSetValue(setTok)
		if value == nil {
			return nil
		}
		return &PropertyAssignmentNode{Token: setTok, Object: target, Property: property, Expr: value}
	}

	if nameTok.Type == lexer.THIS_KEY {
		par.errorf(nameTok, UnexpectedToken, "cannot redefine `this`")
		return nil
	}
	value := par.parseSetValue(setTok)
	if value == nil {
		return nil
	}
	return &VariableDefinitionNode{Token: setTok, Name: nameTok.Literal, Expr: value}
}

// parseIf parses the if/elif/else chain. Both forms are supported:
//
//	if cond then stmt              (single-line)
//	if cond                        (block form)
//	    ...
//	elif cond
//	    ...
//	else
//	    ...
//
// An elif chain nests as an IfNode in the Else slot.
func (par *Parser) parseIf() StatementNode {
	ifTok := par.CurrToken
	par.advance()

	cond := par.parseCallOrExpression()
	if cond == nil {
		return nil
	}

	if par.curTokenIs(lexer.THEN_KEY) {
		// Single-line form: the body is one statement on the same line.
		par.advance()
		stmt := par.parseStatement()
		if stmt == nil {
			return nil
		}
		then := &CompoundNode{Token: ifTok, Statements: []StatementNode{stmt}}
		return &IfNode{Token: ifTok, Condition: cond, Then: then}
	}

	then := par.parseBlock(ifTok)
	if then == nil {
		return nil
	}
	node := &IfNode{Token: ifTok, Condition: cond, Then: then}

	switch par.CurrToken.Type {
	case lexer.ELIF_KEY:
		elifStmt := par.parseIf() // elif re-enters as a nested if
		if elifStmt == nil {
			return nil
		}
		node.Else = elifStmt
	case lexer.ELSE_KEY:
		elseTok := par.CurrToken
		par.advance()
		elseBlock := par.parseBlock(elseTok)
		if elseBlock == nil {
			return nil
		}
		node.Else = elseBlock
	}
	return node
}

// parseWhile parses `while cond` with an indented body.
func (par *Parser) parseWhile() StatementNode {
	whileTok := par.CurrToken
	par.advance()

	cond := par.parseCallOrExpression()
	if cond == nil {
		return nil
	}
	body := par.parseBlock(whileTok)
	if body == nil {
		return nil
	}
	return &WhileNode{Token: whileTok, Condition: cond, Body: body}
}

// parseForIn parses `for NAME in iterable` with an indented body.
func (par *Parser) parseForIn() StatementNode {
	forTok := par.CurrToken
	par.advance()

	if !par.curTokenIs(lexer.IDENTIFIER_ID) {
		par.errorf(par.CurrToken, UnexpectedToken, "expected an iterator name after `for`, got %s", describe(par.CurrToken))
		return nil
	}
	iterator := par.CurrToken.Literal
	par.advance()

	if !par.curTokenIs(lexer.IN_KEY) {
		par.errorf(par.CurrToken, UnexpectedToken, "expected `in`, got %s", describe(par.CurrToken))
		return nil
	}
	par.advance()

	iterable := par.parseCallOrExpression()
	if iterable == nil {
		return nil
	}
	body := par.parseBlock(forTok)
	if body == nil {
		return nil
	}
	return &ForInNode{Token: forTok, Iterator: iterator, Iterable: iterable, Body: body}
}

// parseReturn parses `return [expr]`.
func (par *Parser) parseReturn() StatementNode {
	retTok := par.CurrToken
	par.advance()

	node := &ReturnNode{Token: retTok}
	if !par.curTokenIs(lexer.NEWLINE_TYPE) && !par.curTokenIs(lexer.DEDENT_TYPE) &&
		!par.curTokenIs(lexer.EOF_TYPE) {
		node.Expr = par.parseCallOrExpression()
		if node.Expr == nil {
			return nil
		}
	}
	return node
}

// parseFunctionDefinition parses `function NAME PARAM...` with an indented
// body. The parameter list is the run of identifiers up to the end of the
// header line.
func (par *Parser) parseFunctionDefinition() StatementNode {
	fn := par.parseFunctionHeaderAndBody(par.CurrToken)
	if fn == nil {
		return nil
	}
	return fn
}

// parseFunctionHeaderAndBody does the shared work of function statements
// and class members: NAME PARAM... NEWLINE INDENT body DEDENT. The keyword
// token (`function` or the contextual `method`) is already current.
func (par *Parser) parseFunctionHeaderAndBody(keyword lexer.Token) *FunctionDefinitionNode {
	par.advance()

	if !par.curTokenIs(lexer.IDENTIFIER_ID) {
		par.errorf(par.CurrToken, UnexpectedToken, "expected a function name, got %s", describe(par.CurrToken))
		return nil
	}
	name := par.CurrToken.Literal
	par.advance()

	params := make([]string, 0)
	for par.curTokenIs(lexer.IDENTIFIER_ID) {
		params = append(params, par.CurrToken.Literal)
		par.advance()
	}

	body := par.parseBlock(keyword)
	if body == nil {
		return nil
	}
	return &FunctionDefinitionNode{
		Token:  keyword,
		Name:   name,
		Params: params,
		Body:   body,
	}
}

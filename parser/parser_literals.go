package parser

import (
	"github.com/akaoio/zen/lexer"
)

// parseSetValue parses the value position of `set NAME ...`, which is where
// ZEN's literal shorthands live. The tie-break, in order:
//
//   - NEWLINE + INDENT           -> multi-line object literal block
//   - `ID expr, ...`             -> object literal (identifier key, value,
//     and a comma after the first pair)
//   - `ID expr...` (no comma)    -> space-separated function call
//   - `expr, expr, ...`          -> bare array literal
//   - anything else              -> ordinary expression
//
// The ambiguity between object literals and calls is a documented language
// wart: `set o name "Alice", age 30` is an object, `set x add 2 3` is a
// call, and the comma after the first `ID expr` pair is what decides.
func (par *Parser) parseSetValue(setTok lexer.Token) ExpressionNode {
	if par.curTokenIs(lexer.NEWLINE_TYPE) {
		if par.NextToken.Type == lexer.INDENT_TYPE {
			return par.parseObjectBlock(setTok)
		}
		par.errorf(setTok, UnexpectedToken, "missing initializer in `set`")
		return nil
	}

	if par.curTokenIs(lexer.IDENTIFIER_ID) && par.startsArgument(par.NextToken) {
		keyTok := par.CurrToken
		par.advance()
		first := par.parsePostfix()
		if first == nil {
			return nil
		}
		if par.curTokenIs(lexer.COMMA_DELIM) {
			node := &ObjectLiteralNode{
				Token:  setTok,
				Keys:   []string{keyTok.Literal},
				Values: []ExpressionNode{first},
			}
			if !par.parseObjectPairs(node) {
				return nil
			}
			return node
		}
		// No comma: this was a function call after all.
		args := append([]ExpressionNode{first}, par.parseCallArguments()...)
		var left ExpressionNode = &FunctionCallNode{Token: keyTok, Name: keyTok.Literal, Args: args}
		return par.parseBinaryRest(left, LOWEST)
	}

	expr := par.parseCallOrExpression()
	if expr == nil {
		return nil
	}
	if par.curTokenIs(lexer.COMMA_DELIM) {
		return par.parseBareArray(setTok, expr)
	}
	return expr
}

// parseObjectPairs continues an inline object literal after its first pair,
// with the cursor on a comma. Trailing commas are permitted.
func (par *Parser) parseObjectPairs(node *ObjectLiteralNode) bool {
	for par.curTokenIs(lexer.COMMA_DELIM) {
		par.advance()
		if par.curTokenIs(lexer.NEWLINE_TYPE) || par.curTokenIs(lexer.EOF_TYPE) ||
			par.curTokenIs(lexer.DEDENT_TYPE) {
			return true // trailing comma
		}
		if !par.curTokenIs(lexer.IDENTIFIER_ID) {
			par.errorf(par.CurrToken, BadObjectLiteral, "expected a key name, got %s", describe(par.CurrToken))
			return false
		}
		key := par.CurrToken.Literal
		par.advance()
		value := par.parseExpression(LOWEST)
		if value == nil {
			return false
		}
		node.Keys = append(node.Keys, key)
		node.Values = append(node.Values, value)
	}
	return true
}

// parseObjectBlock parses the multi-line object form:
//
//	set o
//	    name "Alice"
//	    age 30
//
// Each line carries one `ID expr` pair; commas between pairs are permitted
// (and, via the lexer's trailing-comma continuation, equivalent).
func (par *Parser) parseObjectBlock(setTok lexer.Token) ExpressionNode {
	par.advance() // NEWLINE
	par.advance() // INDENT

	node := &ObjectLiteralNode{
		Token:  setTok,
		Keys:   make([]string, 0),
		Values: make([]ExpressionNode, 0),
	}
	for !par.curTokenIs(lexer.DEDENT_TYPE) && !par.curTokenIs(lexer.EOF_TYPE) {
		if par.curTokenIs(lexer.NEWLINE_TYPE) {
			par.advance()
			continue
		}
		if !par.curTokenIs(lexer.IDENTIFIER_ID) {
			par.errorf(par.CurrToken, BadObjectLiteral, "expected a key name, got %s", describe(par.CurrToken))
			return nil
		}
		key := par.CurrToken.Literal
		par.advance()
		value := par.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		node.Keys = append(node.Keys, key)
		node.Values = append(node.Values, value)
		if par.curTokenIs(lexer.COMMA_DELIM) {
			par.advance()
		}
	}
	if par.curTokenIs(lexer.DEDENT_TYPE) {
		par.advance()
	}
	par.justClosedBlock = true
	return node
}

// parseBareArray continues the unbracketed array form `set xs 1, 2, 3`
// after its first element, with the cursor on a comma. Trailing commas are
// permitted.
func (par *Parser) parseBareArray(setTok lexer.Token, first ExpressionNode) ExpressionNode {
	node := &ArrayLiteralNode{
		Token:    setTok,
		Elements: []ExpressionNode{first},
	}
	for par.curTokenIs(lexer.COMMA_DELIM) {
		par.advance()
		if par.curTokenIs(lexer.NEWLINE_TYPE) || par.curTokenIs(lexer.EOF_TYPE) ||
			par.curTokenIs(lexer.DEDENT_TYPE) {
			return node // trailing comma
		}
		elem := par.parseExpression(LOWEST)
		if elem == nil {
			return nil
		}
		node.Elements = append(node.Elements, elem)
	}
	return node
}

// parseBracketedArray parses `[e1, e2, ...]`. The lexer suppresses newlines
// inside the brackets, so the literal may span physical lines freely.
func (par *Parser) parseBracketedArray() ExpressionNode {
	open := par.CurrToken
	par.advance()

	node := &ArrayLiteralNode{
		Token:    open,
		Elements: make([]ExpressionNode, 0),
	}
	for {
		if par.curTokenIs(lexer.RIGHT_BRACKET) {
			par.advance()
			return node
		}
		if par.curTokenIs(lexer.EOF_TYPE) {
			par.errorf(open, UnmatchedDelimiter, "missing `]`")
			return nil
		}
		elem := par.parseExpression(LOWEST)
		if elem == nil {
			return nil
		}
		node.Elements = append(node.Elements, elem)
		switch {
		case par.curTokenIs(lexer.COMMA_DELIM):
			par.advance()
		case par.curTokenIs(lexer.RIGHT_BRACKET):
			// closed on the next iteration
		default:
			par.errorf(open, UnmatchedDelimiter, "expected `,` or `]`, got %s", describe(par.CurrToken))
			return nil
		}
	}
}

package parser

import (
	"strconv"

	"github.com/akaoio/zen/lexer"
)

// parseExpressionStatement parses a statement that is just an expression —
// usually a space-separated function call like `print acc`.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseCallOrExpression()
	if expr == nil {
		return nil
	}
	return expr
}

// parseCallOrExpression parses an expression in head position, where a bare
// identifier may open a space-separated function call. The disambiguation
// rule: if the token after the identifier starts an expression, the
// identifier opens a FunctionCall whose arguments are collected until a
// terminator (end of line, a binary operator, or a closing delimiter);
// otherwise the identifier is a plain variable reference and ordinary
// precedence climbing applies. Either way the result can be the left
// operand of binary operators: `add 2 3 > 0` is (add 2 3) > 0.
func (par *Parser) parseCallOrExpression() ExpressionNode {
	if par.curTokenIs(lexer.IDENTIFIER_ID) && par.startsArgument(par.NextToken) {
		tok := par.CurrToken
		par.advance()
		args := par.parseCallArguments()
		var left ExpressionNode = &FunctionCallNode{Token: tok, Name: tok.Literal, Args: args}
		return par.parseBinaryRest(left, LOWEST)
	}
	return par.parseExpression(LOWEST)
}

// parseExpression parses an expression by precedence climbing, starting at
// the unary level.
func (par *Parser) parseExpression(minPrec int) ExpressionNode {
	left := par.parseUnary()
	if left == nil {
		return nil
	}
	return par.parseBinaryRest(left, minPrec)
}

// parseBinaryRest climbs binary operators tighter than minPrec, building a
// left-associative spine.
func (par *Parser) parseBinaryRest(left ExpressionNode, minPrec int) ExpressionNode {
	for {
		prec, isOp := precedences[par.CurrToken.Type]
		if !isOp || prec <= minPrec {
			return left
		}
		op := par.CurrToken
		par.advance()
		right := par.parseUnary()
		if right == nil {
			return nil
		}
		right = par.parseBinaryRest(right, prec)
		if right == nil {
			return nil
		}
		left = &BinaryOpNode{Operation: op, Left: left, Right: right}
	}
}

// parseUnary parses prefix `!` and `-`, then a postfix-qualified primary.
func (par *Parser) parseUnary() ExpressionNode {
	if par.curTokenIs(lexer.NOT_OP) || par.curTokenIs(lexer.MINUS_OP) {
		op := par.CurrToken
		par.advance()
		operand := par.parseUnary()
		if operand == nil {
			return nil
		}
		return &UnaryOpNode{Operation: op, Operand: operand}
	}
	return par.parsePostfix()
}

// parsePostfix parses a primary followed by any chain of `.property`
// accesses. Property access is left-associative and binds tighter than all
// binary operators.
func (par *Parser) parsePostfix() ExpressionNode {
	expr := par.parsePrimary()
	if expr == nil {
		return nil
	}
	for par.curTokenIs(lexer.DOT_OP) {
		dotTok := par.CurrToken
		par.advance()
		name, ok := par.propertyName()
		if !ok {
			par.errorf(par.CurrToken, UnexpectedToken, "expected a property name after `.`, got %s", describe(par.CurrToken))
			return nil
		}
		par.advance()
		expr = &PropertyAccessNode{Token: dotTok, Object: expr, Property: name}
	}
	return expr
}

// propertyName accepts the tokens that may follow a dot: identifiers,
// nonnegative integer indexes (`xs.0`), and keywords used as member names
// (`o.set` is a property, not a statement).
func (par *Parser) propertyName() (string, bool) {
	switch par.CurrToken.Type {
	case lexer.IDENTIFIER_ID, lexer.NUMBER_LIT:
		return par.CurrToken.Literal, true
	}
	if _, isKeyword := lexer.KEYWORDS_MAP[par.CurrToken.Literal]; isKeyword {
		return par.CurrToken.Literal, true
	}
	return "", false
}

// parsePrimary parses a literal, variable, grouped expression, array
// literal, or `new` expression.
func (par *Parser) parsePrimary() ExpressionNode {
	switch par.CurrToken.Type {
	case lexer.NUMBER_LIT:
		tok := par.CurrToken
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			par.errorf(tok, UnexpectedToken, "bad numeric literal %q", tok.Literal)
			return nil
		}
		par.advance()
		return &NumberLiteralNode{Token: tok, Value: v}
	case lexer.STRING_LIT:
		tok := par.CurrToken
		par.advance()
		return &StringLiteralNode{Token: tok, Value: tok.Literal}
	case lexer.TRUE_KEY, lexer.FALSE_KEY:
		tok := par.CurrToken
		par.advance()
		return &BooleanLiteralNode{Token: tok, Value: tok.Type == lexer.TRUE_KEY}
	case lexer.NULL_KEY:
		tok := par.CurrToken
		par.advance()
		return &NullLiteralNode{Token: tok}
	case lexer.UNDECIDABLE_KEY:
		tok := par.CurrToken
		par.advance()
		return &UndecidableLiteralNode{Token: tok}
	case lexer.THIS_KEY:
		tok := par.CurrToken
		par.advance()
		return &VariableNode{Token: tok, Name: "this"}
	case lexer.SUPER_KEY:
		tok := par.CurrToken
		par.advance()
		return &SuperNode{Token: tok}
	case lexer.IDENTIFIER_ID:
		tok := par.CurrToken
		par.advance()
		return &VariableNode{Token: tok, Name: tok.Literal}
	case lexer.LEFT_PAREN:
		return par.parseGrouped()
	case lexer.LEFT_BRACKET:
		return par.parseBracketedArray()
	case lexer.NEW_KEY:
		return par.parseNewExpression()
	default:
		par.errorf(par.CurrToken, UnexpectedToken, "unexpected %s in expression", describe(par.CurrToken))
		return nil
	}
}

// parseGrouped parses `(expr)`. Inside the parentheses an identifier may
// open a space-separated call, which is how calls nest: `print (add 2 3)`.
func (par *Parser) parseGrouped() ExpressionNode {
	open := par.CurrToken
	par.advance()
	expr := par.parseCallOrExpression()
	if expr == nil {
		return nil
	}
	if !par.curTokenIs(lexer.RIGHT_PAREN) {
		par.errorf(open, UnmatchedDelimiter, "missing `)`")
		return nil
	}
	par.advance()
	return expr
}

// parseNewExpression parses `new ClassName args...`.
func (par *Parser) parseNewExpression() ExpressionNode {
	newTok := par.CurrToken
	par.advance()

	if !par.curTokenIs(lexer.IDENTIFIER_ID) {
		par.errorf(par.CurrToken, UnexpectedToken, "expected a class name after `new`, got %s", describe(par.CurrToken))
		return nil
	}
	className := par.CurrToken.Literal
	par.advance()

	args := par.parseCallArguments()
	return &NewExpressionNode{Token: newTok, ClassName: className, Args: args}
}

// startsArgument reports whether tok can begin a call argument. Binary
// operators, layout tokens, commas, and closing delimiters all terminate an
// argument list, so they are exactly the tokens not listed here. `!` and
// `-` are deliberately excluded: after an identifier they read as binary
// context (`f - 1` is subtraction), per the disambiguation rule.
func (par *Parser) startsArgument(tok lexer.Token) bool {
	switch tok.Type {
	case lexer.IDENTIFIER_ID, lexer.NUMBER_LIT, lexer.STRING_LIT,
		lexer.TRUE_KEY, lexer.FALSE_KEY, lexer.NULL_KEY, lexer.UNDECIDABLE_KEY,
		lexer.LEFT_PAREN, lexer.LEFT_BRACKET, lexer.NEW_KEY,
		lexer.THIS_KEY, lexer.SUPER_KEY:
		return true
	}
	return false
}

// parseCallArguments collects space-separated call arguments. Each argument
// is parsed at postfix level, so a binary operator after an argument binds
// outside the call: `f a + b` is (f a) + b.
func (par *Parser) parseCallArguments() []ExpressionNode {
	args := make([]ExpressionNode, 0)
	for par.startsArgument(par.CurrToken) {
		arg := par.parsePostfix()
		if arg == nil {
			return args
		}
		args = append(args, arg)
	}
	return args
}

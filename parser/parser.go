// Package parser converts a stream of tokens from the lexer into an
// abstract syntax tree. Statements are parsed by recursive descent and
// expressions by precedence climbing; a single token of lookahead suffices
// almost everywhere, with a two-token peek for the object-literal tie-break
// and for deciding whether an identifier opens a space-separated call.
//
// The parser collects errors instead of panicking. On a statement-level
// error it synchronizes at the next NEWLINE and continues, so one parse can
// report several diagnostics; RecoveredErrors reports how many statements
// were abandoned that way, and the CLI refuses to execute a program that
// needed recovery.
//
// The parser is the only component that constructs AST, and the AST it
// emits is pure syntax: no scopes, no values. Evaluation state lives
// entirely in the evaluator.
package parser

import (
	"github.com/akaoio/zen/lexer"
)

// Operator precedence levels, low to high. Property access binds tighter
// than every binary operator and is handled structurally in parsePostfix.
const (
	LOWEST     = iota
	OR         // |
	AND        // &
	EQUALITY   // = !=
	COMPARISON // < > <= >=
	SUM        // + -
	PRODUCT    // * / %
)

// precedences maps binary operator tokens to their precedence level.
var precedences = map[lexer.TokenType]int{
	lexer.OR_OP:  OR,
	lexer.AND_OP: AND,
	lexer.EQ_OP:  EQUALITY,
	lexer.NE_OP:  EQUALITY,
	lexer.LT_OP:  COMPARISON,
	lexer.GT_OP:  COMPARISON,
	lexer.LE_OP:  COMPARISON,
	lexer.GE_OP:  COMPARISON,
	lexer.PLUS_OP:  SUM,
	lexer.MINUS_OP: SUM,
	lexer.MUL_OP:   PRODUCT,
	lexer.DIV_OP:   PRODUCT,
	lexer.MOD_OP:   PRODUCT,
}

// Parser holds the token cursor and collected diagnostics.
//
// Cursor convention: CurrToken is the token under examination and NextToken
// the single lookahead. Every parse function leaves CurrToken on the first
// token after its production.
type Parser struct {
	Lex       *lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token

	errors     []error
	recovered  int
	lexErrSeen bool

	// justClosedBlock is set when the last production consumed a DEDENT:
	// such a statement is already at a line boundary and needs no NEWLINE.
	justClosedBlock bool
}

// NewParser creates a parser over the given source with the default lexer
// configuration.
func NewParser(src string) *Parser {
	return NewParserWithConfig(src, lexer.DefaultConfig())
}

// NewParserWithConfig creates a parser with explicit lexer configuration.
func NewParserWithConfig(src string, cfg lexer.Config) *Parser {
	par := &Parser{
		Lex:    lexer.NewLexerWithConfig(src, cfg),
		errors: make([]error, 0),
	}
	// Prime the two-token window.
	par.advance()
	par.advance()
	return par
}

// advance moves the cursor forward one token. A lexical error surfaces here
// exactly once and poisons the rest of the parse (the lexer goes sticky and
// feeds EOF afterwards).
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
	if par.Lex.Err != nil && !par.lexErrSeen {
		par.lexErrSeen = true
		par.errors = append(par.errors, par.Lex.Err)
	}
}

// curTokenIs reports whether the current token has the given type.
func (par *Parser) curTokenIs(t lexer.TokenType) bool {
	return par.CurrToken.Type == t
}

// addError records a diagnostic.
func (par *Parser) addError(err *Error) {
	par.errors = append(par.errors, err)
}

// errorf records a diagnostic anchored at tok.
func (par *Parser) errorf(tok lexer.Token, kind ErrorKind, format string, a ...interface{}) {
	par.addError(newError(tok, kind, format, a...))
}

// HasErrors reports whether any diagnostics were collected.
func (par *Parser) HasErrors() bool {
	return len(par.errors) > 0
}

// GetErrors returns the collected diagnostics in source order.
func (par *Parser) GetErrors() []error {
	return par.errors
}

// RecoveredErrors returns the number of statements abandoned by error
// synchronization. A program with recovered errors parses to a usable tree
// for analysis but must not be executed.
func (par *Parser) RecoveredErrors() int {
	return par.recovered
}

// synchronize skips tokens until just past the next NEWLINE (or EOF),
// bringing the parser back to a statement boundary after an error.
func (par *Parser) synchronize() {
	par.recovered++
	for !par.curTokenIs(lexer.EOF_TYPE) && !par.curTokenIs(lexer.NEWLINE_TYPE) {
		par.advance()
	}
	if par.curTokenIs(lexer.NEWLINE_TYPE) {
		par.advance()
	}
}

// Parse consumes the whole token stream and returns the program as a
// CompoundNode. Call HasErrors afterwards: on errors the returned tree
// holds whatever parsed cleanly.
func (par *Parser) Parse() *CompoundNode {
	root := &CompoundNode{
		Token:      par.CurrToken,
		Statements: make([]StatementNode, 0),
	}

	for !par.curTokenIs(lexer.EOF_TYPE) {
		switch par.CurrToken.Type {
		case lexer.NEWLINE_TYPE:
			par.advance()
			continue
		case lexer.INDENT_TYPE:
			// An indent outside a block header is a structural error:
			// `set x 1` followed by an indented line has no construct to
			// attach the block to.
			par.errorf(par.CurrToken, UnexpectedToken, "unexpected indent")
			par.skipIndentedBlock()
			par.recovered++
			continue
		case lexer.DEDENT_TYPE:
			par.advance()
			continue
		}

		stmt := par.parseStatement()
		if stmt == nil {
			par.synchronize()
			continue
		}
		root.Statements = append(root.Statements, stmt)

		// A statement must end at a line boundary.
		if !par.curTokenIs(lexer.NEWLINE_TYPE) && !par.curTokenIs(lexer.EOF_TYPE) &&
			!par.curTokenIs(lexer.DEDENT_TYPE) && !par.justClosedBlock {
			par.errorf(par.CurrToken, UnexpectedToken, "unexpected %s after statement", describe(par.CurrToken))
			par.synchronize()
		}
	}
	return root
}

// skipIndentedBlock discards tokens of a stray indented region, tracking
// nesting so multi-level strays unwind fully.
func (par *Parser) skipIndentedBlock() {
	depth := 0
	for !par.curTokenIs(lexer.EOF_TYPE) {
		switch par.CurrToken.Type {
		case lexer.INDENT_TYPE:
			depth++
		case lexer.DEDENT_TYPE:
			depth--
			if depth == 0 {
				par.advance()
				return
			}
		}
		par.advance()
	}
}

// parseStatement dispatches on the current token. It returns nil after
// recording an error; the caller synchronizes.
func (par *Parser) parseStatement() StatementNode {
	par.justClosedBlock = false
	switch par.CurrToken.Type {
	case lexer.SET_KEY:
		return par.parseVariableDefinition()
	case lexer.FUNCTION_KEY:
		return par.parseFunctionDefinition()
	case lexer.CLASS_KEY:
		return par.parseClassDefinition()
	case lexer.IF_KEY:
		return par.parseIf()
	case lexer.WHILE_KEY:
		return par.parseWhile()
	case lexer.FOR_KEY:
		return par.parseForIn()
	case lexer.RETURN_KEY:
		return par.parseReturn()
	case lexer.BREAK_KEY:
		node := &BreakNode{Token: par.CurrToken}
		par.advance()
		return node
	case lexer.CONTINUE_KEY:
		node := &ContinueNode{Token: par.CurrToken}
		par.advance()
		return node
	case lexer.IMPORT_KEY, lexer.EXPORT_KEY:
		return par.parseModuleDirective()
	default:
		return par.parseExpressionStatement()
	}
}

// parseModuleDirective consumes an import/export line. Module directives
// are inert in the interpreter core, so the rest of the line is skipped and
// a Noop is produced.
func (par *Parser) parseModuleDirective() StatementNode {
	node := &NoopNode{Token: par.CurrToken}
	for !par.curTokenIs(lexer.NEWLINE_TYPE) && !par.curTokenIs(lexer.EOF_TYPE) {
		par.advance()
	}
	return node
}

// parseBlock parses NEWLINE INDENT statements DEDENT and returns the
// Compound. The header token is used to anchor diagnostics.
func (par *Parser) parseBlock(header lexer.Token) *CompoundNode {
	if !par.curTokenIs(lexer.NEWLINE_TYPE) {
		par.errorf(par.CurrToken, UnexpectedToken, "expected end of line before block, got %s", describe(par.CurrToken))
		return nil
	}
	par.advance()
	// Blank lines between the header and the block body are permitted.
	for par.curTokenIs(lexer.NEWLINE_TYPE) {
		par.advance()
	}
	if !par.curTokenIs(lexer.INDENT_TYPE) {
		par.errorf(header, MissingIndent, "expected an indented block")
		return nil
	}
	block := &CompoundNode{
		Token:      par.CurrToken,
		Statements: make([]StatementNode, 0),
	}
	par.advance()

	for !par.curTokenIs(lexer.DEDENT_TYPE) && !par.curTokenIs(lexer.EOF_TYPE) {
		if par.curTokenIs(lexer.NEWLINE_TYPE) {
			par.advance()
			continue
		}
		stmt := par.parseStatement()
		if stmt == nil {
			par.synchronize()
			continue
		}
		block.Statements = append(block.Statements, stmt)
		if !par.curTokenIs(lexer.NEWLINE_TYPE) && !par.curTokenIs(lexer.DEDENT_TYPE) &&
			!par.curTokenIs(lexer.EOF_TYPE) && !par.justClosedBlock {
			par.errorf(par.CurrToken, UnexpectedToken, "unexpected %s after statement", describe(par.CurrToken))
			par.synchronize()
		}
	}
	if par.curTokenIs(lexer.DEDENT_TYPE) {
		par.advance()
	}
	par.justClosedBlock = true
	return block
}

package lexer

import "fmt"

// TokenType identifies the lexical category of a token in the ZEN language.
// It is defined as a string so token streams stay easy to compare and debug.
type TokenType string

// TokenType constants: every token the ZEN lexer can emit, grouped by role.
const (
	// Special types
	// EOF_TYPE marks the end of the input stream
	EOF_TYPE TokenType = "EOF"
	// INVALID_TYPE represents an unrecognized or malformed token
	INVALID_TYPE TokenType = "INVALID"

	// Layout tokens, synthesized by the lexer from physical line structure.
	// NEWLINE terminates a logical line; INDENT/DEDENT open and close
	// indentation-scoped blocks.
	NEWLINE_TYPE TokenType = "NEWLINE"
	INDENT_TYPE  TokenType = "INDENT"
	DEDENT_TYPE  TokenType = "DEDENT"

	// Arithmetic operators
	PLUS_OP  TokenType = "+" // Addition / string concatenation
	MINUS_OP TokenType = "-" // Subtraction / unary negation
	MUL_OP   TokenType = "*" // Multiplication
	DIV_OP   TokenType = "/" // Division
	MOD_OP   TokenType = "%" // Modulo

	// Comparison operators. Note that in ZEN `=` is equality, never
	// assignment: assignment is always introduced by the `set` keyword.
	EQ_OP TokenType = "="  // Equality comparison
	NE_OP TokenType = "!=" // Inequality comparison
	LT_OP TokenType = "<"  // Less than
	GT_OP TokenType = ">"  // Greater than
	LE_OP TokenType = "<=" // Less than or equal
	GE_OP TokenType = ">=" // Greater than or equal

	// Logical operators
	AND_OP TokenType = "&" // Logical AND (short-circuit)
	OR_OP  TokenType = "|" // Logical OR (short-circuit)
	NOT_OP TokenType = "!" // Logical NOT

	// Punctuation
	QUESTION_OP   TokenType = "?" // Reserved punctuation
	COLON_DELIM   TokenType = ":" // Reserved punctuation
	COMMA_DELIM   TokenType = "," // Separates elements and object entries
	DOT_OP        TokenType = "." // Property access
	LEFT_PAREN    TokenType = "(" // Grouping
	RIGHT_PAREN   TokenType = ")"
	LEFT_BRACKET  TokenType = "[" // Array literals
	RIGHT_BRACKET TokenType = "]"
	LEFT_BRACE    TokenType = "{" // Reserved for brace-delimited constructs
	RIGHT_BRACE   TokenType = "}"

	// Keywords
	SET_KEY         TokenType = "set"         // Variable definition
	FUNCTION_KEY    TokenType = "function"    // Function definition
	RETURN_KEY      TokenType = "return"      // Return from function
	IF_KEY          TokenType = "if"          // Conditional
	ELIF_KEY        TokenType = "elif"        // Conditional chain
	ELSE_KEY        TokenType = "else"        // Conditional fallback
	THEN_KEY        TokenType = "then"        // Single-line conditional body
	WHILE_KEY       TokenType = "while"       // While loop
	FOR_KEY         TokenType = "for"         // For-in loop
	IN_KEY          TokenType = "in"          // Iterable clause of for-in
	BREAK_KEY       TokenType = "break"       // Loop break
	CONTINUE_KEY    TokenType = "continue"    // Loop continue
	TRUE_KEY        TokenType = "true"        // Boolean literal
	FALSE_KEY       TokenType = "false"       // Boolean literal
	NULL_KEY        TokenType = "null"        // Null literal
	UNDECIDABLE_KEY TokenType = "undecidable" // Three-valued logic literal
	CLASS_KEY       TokenType = "class"       // Class definition
	EXTENDS_KEY     TokenType = "extends"     // Single inheritance clause
	NEW_KEY         TokenType = "new"         // Instance construction
	SUPER_KEY       TokenType = "super"       // Parent method dispatch
	THIS_KEY        TokenType = "this"        // Current instance
	PRIVATE_KEY     TokenType = "private"     // Member visibility flag
	IMPORT_KEY      TokenType = "import"      // Module directive
	EXPORT_KEY      TokenType = "export"      // Module directive

	// Identifiers and literals
	IDENTIFIER_ID TokenType = "Identifier"    // User-defined name
	NUMBER_LIT    TokenType = "NumberLiteral" // Numeric literal, normalized decimal
	STRING_LIT    TokenType = "StringLiteral" // String literal, escapes resolved
)

// KEYWORDS_MAP maps reserved words to their token types. When the lexer
// finishes reading an identifier-shaped token it consults this map to decide
// whether the word is a keyword or a plain identifier. Note that `method` is
// deliberately absent: it is only meaningful inside a class body and the
// parser recognizes it contextually, so `method` stays usable as a variable
// name everywhere else.
var KEYWORDS_MAP = map[string]TokenType{
	"set":         SET_KEY,
	"function":    FUNCTION_KEY,
	"return":      RETURN_KEY,
	"if":          IF_KEY,
	"elif":        ELIF_KEY,
	"else":        ELSE_KEY,
	"then":        THEN_KEY,
	"while":       WHILE_KEY,
	"for":         FOR_KEY,
	"in":          IN_KEY,
	"break":       BREAK_KEY,
	"continue":    CONTINUE_KEY,
	"true":        TRUE_KEY,
	"false":       FALSE_KEY,
	"null":        NULL_KEY,
	"undecidable": UNDECIDABLE_KEY,
	"class":       CLASS_KEY,
	"extends":     EXTENDS_KEY,
	"new":         NEW_KEY,
	"super":       SUPER_KEY,
	"this":        THIS_KEY,
	"private":     PRIVATE_KEY,
	"import":      IMPORT_KEY,
	"export":      EXPORT_KEY,
}

// Token is a single lexical token. Tokens are value objects: the parser
// consumes them in order and never mutates them.
//
// Fields:
//   - Type: the category of the token
//   - Literal: the token text. For NUMBER_LIT this is the normalized decimal
//     form (underscores stripped, 0x/0b prefixes converted); for STRING_LIT
//     the escape sequences are already resolved.
//   - Offset: byte offset of the token start in the source buffer
//   - Line, Column: 1-indexed source position of the token start
type Token struct {
	Type    TokenType
	Literal string
	Offset  int
	Line    int
	Column  int
}

// NewToken creates a Token with the given type and literal and no position
// metadata. Used mostly in tests; the lexer itself always records positions.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{Type: tokenType, Literal: literal}
}

// String renders the token as "literal:type" for debugging output.
func (tok Token) String() string {
	return fmt.Sprintf("%s:%v", tok.Literal, tok.Type)
}

// lookupIdent classifies an identifier-shaped word: a reserved keyword gets
// its keyword token type, anything else is IDENTIFIER_ID.
func lookupIdent(ident string) TokenType {
	if tok, ok := KEYWORDS_MAP[ident]; ok {
		return tok
	}
	return IDENTIFIER_ID
}

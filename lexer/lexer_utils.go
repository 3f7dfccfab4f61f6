package lexer

import (
	"strconv"
	"strings"
)

// isNumeric reports whether ch is an ASCII decimal digit.
func isNumeric(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isAlpha reports whether ch is an ASCII letter.
func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isIdentStart reports whether ch can begin an identifier. Bytes >= 0x80 are
// UTF-8 continuation/lead bytes and are accepted when the UTF8Identifiers
// flag is set.
func (lex *Lexer) isIdentStart(ch byte) bool {
	if isAlpha(ch) || ch == '_' {
		return true
	}
	return lex.Config.UTF8Identifiers && ch >= 0x80
}

// isIdentPart reports whether ch can continue an identifier.
func (lex *Lexer) isIdentPart(ch byte) bool {
	return lex.isIdentStart(ch) || isNumeric(ch)
}

// isHexDigit reports whether ch is a hexadecimal digit.
func isHexDigit(ch byte) bool {
	return isNumeric(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// readIdentifier scans an identifier or keyword starting at the current
// character.
func (lex *Lexer) readIdentifier() Token {
	tok := lex.makeToken(IDENTIFIER_ID, "")
	start := lex.Position
	for lex.isIdentPart(lex.Current) {
		lex.Advance()
	}
	tok.Literal = lex.Src[start:lex.Position]
	tok.Type = lookupIdent(tok.Literal)
	return tok
}

// readNumber scans a numeric literal. Decimal numbers may carry a fractional
// part and an exponent; underscores between digits are stripped. The 0x and
// 0b prefixes are accepted and converted, so the token literal is always the
// normalized decimal form the parser's numeric conversion consumes.
func (lex *Lexer) readNumber() Token {
	tok := lex.makeToken(NUMBER_LIT, "")

	if lex.Current == '0' && (lex.Peek() == 'x' || lex.Peek() == 'X') {
		lex.Advance()
		lex.Advance()
		digits := lex.readDigits(isHexDigit)
		if digits == "" {
			lex.Err = lex.newError(BadNumber, "hexadecimal literal has no digits")
			return lex.makeToken(INVALID_TYPE, "")
		}
		v, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			lex.Err = lex.newError(BadNumber, "bad hexadecimal literal %q", digits)
			return lex.makeToken(INVALID_TYPE, "")
		}
		tok.Literal = strconv.FormatUint(v, 10)
		return tok
	}

	if lex.Current == '0' && (lex.Peek() == 'b' || lex.Peek() == 'B') {
		lex.Advance()
		lex.Advance()
		digits := lex.readDigits(func(ch byte) bool { return ch == '0' || ch == '1' })
		if digits == "" {
			lex.Err = lex.newError(BadNumber, "binary literal has no digits")
			return lex.makeToken(INVALID_TYPE, "")
		}
		v, err := strconv.ParseUint(digits, 2, 64)
		if err != nil {
			lex.Err = lex.newError(BadNumber, "bad binary literal %q", digits)
			return lex.makeToken(INVALID_TYPE, "")
		}
		tok.Literal = strconv.FormatUint(v, 10)
		return tok
	}

	var sb strings.Builder
	sb.WriteString(lex.readDigits(isNumeric))

	// Fractional part: a dot only belongs to the number when a digit
	// follows, so `list.0` still lexes as property access.
	if lex.Current == '.' && isNumeric(lex.Peek()) {
		sb.WriteByte('.')
		lex.Advance()
		sb.WriteString(lex.readDigits(isNumeric))
	}

	if lex.Current == 'e' || lex.Current == 'E' {
		sb.WriteByte('e')
		lex.Advance()
		if lex.Current == '+' || lex.Current == '-' {
			sb.WriteByte(lex.Current)
			lex.Advance()
		}
		digits := lex.readDigits(isNumeric)
		if digits == "" {
			lex.Err = lex.newError(BadNumber, "exponent has no digits")
			return lex.makeToken(INVALID_TYPE, "")
		}
		sb.WriteString(digits)
	}

	tok.Literal = sb.String()
	return tok
}

// readDigits consumes a run of digits matched by accept, stripping
// underscore separators.
func (lex *Lexer) readDigits(accept func(byte) bool) string {
	var sb strings.Builder
	for accept(lex.Current) || (lex.Current == '_' && accept(lex.Peek())) {
		if lex.Current != '_' {
			sb.WriteByte(lex.Current)
		}
		lex.Advance()
	}
	return sb.String()
}

// readString scans a double-quoted string literal starting at the opening
// quote. When raw is true (the r"..." form) backslashes are kept verbatim;
// otherwise the escapes \n \t \r \\ \" are resolved and anything else after
// a backslash is a BadEscape error. Interpolation markers ${...} are kept
// literal in the token text.
func (lex *Lexer) readString(raw bool) Token {
	tok := lex.makeToken(STRING_LIT, "")
	lex.Advance() // past the opening quote

	var sb strings.Builder
	for {
		switch lex.Current {
		case '"':
			lex.Advance()
			tok.Literal = sb.String()
			return tok
		case 0, '\n':
			lex.Err = lex.newError(UnterminatedString, "string literal is not terminated")
			return lex.makeToken(INVALID_TYPE, "")
		case '\\':
			if raw {
				sb.WriteByte('\\')
				lex.Advance()
				continue
			}
			lex.Advance()
			switch lex.Current {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				lex.Err = lex.newError(BadEscape, "unknown escape sequence \\%s", string(lex.Current))
				return lex.makeToken(INVALID_TYPE, "")
			}
			lex.Advance()
		default:
			sb.WriteByte(lex.Current)
			lex.Advance()
		}
	}
}

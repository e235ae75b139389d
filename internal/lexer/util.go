package lexer

import (
	"unicode"
	"unicode/utf8"
)

const utf8RuneSelf = 0x80

// The grammar's identifiers are ASCII: [a-zA-Z_$][a-zA-Z0-9_$]*.
func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

// isIdentRune classifies non-ASCII runes that would visually glue onto an
// identifier; such runs become InvalidIdent tokens.
func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isWhitespaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// peekRune decodes the rune at the cursor without advancing.
func (lx *Lexer) peekRune() rune {
	if lx.cursor.EOF() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	return r
}

// bumpRune advances past one full rune.
func (lx *Lexer) bumpRune() {
	if lx.cursor.EOF() {
		return
	}
	_, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	lx.cursor.Off += uint32(sz)
}

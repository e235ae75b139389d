package lexer

// scanQuoted consumes a quoted run starting at the opening quote byte and
// reports whether the closing quote was found before end of input.
// Backslash escapes the next byte, so \" and \\ do not close the literal.
// Escape validity is not checked here.
func (lx *Lexer) scanQuoted(quote byte) bool {
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case quote:
			return true
		case '\\':
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
		}
	}
	return false
}

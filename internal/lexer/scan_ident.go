package lexer

import (
	"solum/internal/token"
)

// scanIdentOrPrefix scans an identifier. An identifier immediately
// followed by a quote is a literal prefix: `hex"..."` and `unicode"..."`
// fold into the literal token, anything else becomes UnknownPrefix
// covering just the prefix text.
func (lx *Lexer) scanIdentOrPrefix(start Mark) token.Token {
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// A non-ASCII continuation glues on and makes the whole run invalid.
	if lx.cursor.Peek() >= utf8RuneSelf && isIdentRune(lx.peekRune()) {
		return lx.scanInvalidIdent()
	}

	next := lx.cursor.Peek()
	if next != '"' && next != '\'' {
		return token.Token{Kind: token.Ident}
	}

	switch string(lx.cursor.Text(start)) {
	case "hex":
		terminated := lx.scanQuoted(next)
		tok := token.Token{Kind: token.Literal, Lit: token.LitHexStr}
		if terminated {
			tok.Flags |= token.FlagTerminated
		}
		return tok
	case "unicode":
		terminated := lx.scanQuoted(next)
		tok := token.Token{Kind: token.Literal, Lit: token.LitStr, Flags: token.FlagUnicode}
		if terminated {
			tok.Flags |= token.FlagTerminated
		}
		return tok
	default:
		// The quote is left for the next token.
		return token.Token{Kind: token.UnknownPrefix}
	}
}

// scanNonASCII handles a non-ASCII byte in leading position: a letter-like
// rune starts an invalid identifier, anything else is Unknown.
func (lx *Lexer) scanNonASCII() token.Token {
	if isIdentRune(lx.peekRune()) {
		return lx.scanInvalidIdent()
	}
	lx.bumpRune()
	return token.Token{Kind: token.Unknown}
}

// scanInvalidIdent consumes the rest of an identifier-like run that
// contains codepoints outside the grammar's ASCII identifier set.
func (lx *Lexer) scanInvalidIdent() token.Token {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isIdentContinueByte(b):
			lx.cursor.Bump()
		case b >= utf8RuneSelf && isIdentRune(lx.peekRune()):
			lx.bumpRune()
		default:
			return token.Token{Kind: token.InvalidIdent}
		}
	}
	return token.Token{Kind: token.InvalidIdent}
}

package lexer

import (
	"solum/internal/token"
)

// scanSlashOrComment handles `/`, `//...`, `///...`, `/*...*/`, `/**...*/`.
func (lx *Lexer) scanSlashOrComment() token.Token {
	switch lx.cursor.PeekAt(1) {
	case '/':
		return lx.scanLineComment()
	case '*':
		return lx.scanBlockComment()
	default:
		lx.cursor.Bump()
		return token.Token{Kind: token.Slash}
	}
}

func (lx *Lexer) scanLineComment() token.Token {
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '/'

	// `///` is a doc comment, `////...` is not.
	var flags token.Flags
	if lx.cursor.Peek() == '/' && lx.cursor.PeekAt(1) != '/' {
		flags |= token.FlagDoc
	}

	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return token.Token{Kind: token.LineComment, Flags: flags}
}

func (lx *Lexer) scanBlockComment() token.Token {
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'

	// `/**` is a doc comment, but `/***...` is not and `/**/` is empty.
	var flags token.Flags
	if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) != '*' && lx.cursor.PeekAt(1) != '/' {
		flags |= token.FlagDoc
	}

	// Block comments do not nest; the first `*/` closes. If input runs out
	// first, the token covers the rest of the file unterminated.
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			flags |= token.FlagTerminated
			return token.Token{Kind: token.BlockComment, Flags: flags}
		}
		lx.cursor.Bump()
	}
	return token.Token{Kind: token.BlockComment, Flags: flags}
}

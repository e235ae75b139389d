package lexer

import (
	"solum/internal/source"
	"solum/internal/token"
)

// Lexer turns source bytes into raw tokens. Tokens carry only a kind and a
// byte length; the caller keeps a running offset (see Offset) to slice the
// lexeme text back out of the file. Malformed input never stops the lexer:
// unterminated comments and strings, empty digit runs and the like come
// back as flags on the token.
type Lexer struct {
	file   *source.File
	cursor Cursor
}

// New creates a lexer over the file's content.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Offset returns the byte offset of the next token.
func (lx *Lexer) Offset() uint32 {
	return lx.cursor.Off
}

// Next returns the next raw token. At end of input it returns the Eof
// token (length 0) and keeps returning it on every further call.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return token.EOF()
	}

	start := lx.cursor.Mark()
	b := lx.cursor.Peek()

	var tok token.Token
	switch {
	case b == '/':
		tok = lx.scanSlashOrComment()

	case isWhitespaceByte(b):
		for !lx.cursor.EOF() && isWhitespaceByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		tok = token.Token{Kind: token.Whitespace}

	case isIdentStartByte(b):
		tok = lx.scanIdentOrPrefix(start)

	case b >= utf8RuneSelf:
		tok = lx.scanNonASCII()

	case isDec(b):
		tok = lx.scanNumber()

	case b == '"' || b == '\'':
		terminated := lx.scanQuoted(b)
		tok = token.Token{Kind: token.Literal, Lit: token.LitStr}
		if terminated {
			tok.Flags |= token.FlagTerminated
		}

	default:
		lx.cursor.Bump()
		if kind, ok := token.PunctKind(b); ok {
			tok = token.Token{Kind: kind}
		} else {
			tok = token.Token{Kind: token.Unknown}
		}
	}

	tok.Len = lx.cursor.LenFrom(start)
	return tok
}

// Tokens scans the remaining input and returns all raw tokens including
// the trailing Eof.
func (lx *Lexer) Tokens() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.Eof {
			return out
		}
	}
}

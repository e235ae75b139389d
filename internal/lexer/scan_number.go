package lexer

import (
	"solum/internal/token"
)

// scanNumber scans an integer or rational literal. Shapes:
//
//	0x[hex digits]           Int, hexadecimal; bare `0x` sets FlagEmptyDigits
//	digits                   Int, decimal
//	digits . digits          Rational
//	digits [.digits] e[+-]d  Rational; a signed marker with no digits sets
//	                         FlagEmptyExponent
//
// `_` separators are consumed inside digit runs; their placement is
// validated by a later stage, not here.
func (lx *Lexer) scanNumber() token.Token {
	if lx.cursor.Peek() == '0' {
		if b1 := lx.cursor.PeekAt(1); b1 == 'x' || b1 == 'X' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			tok := token.Token{Kind: token.Literal, Lit: token.LitInt, Base: token.BaseHexadecimal}
			if !lx.eatHexDigits() {
				tok.Flags |= token.FlagEmptyDigits
			}
			return tok
		}
	}

	lx.eatDecDigits()
	lit := token.LitInt
	var flags token.Flags

	// A fraction only when the dot is followed by a digit; `1.x` and `1..2`
	// leave the dot for the next token.
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		lx.eatDecDigits()
		lit = token.LitRational
	}

	// An exponent only when the marker is followed by a sign or a digit.
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		b1 := lx.cursor.PeekAt(1)
		if b1 == '+' || b1 == '-' || isDec(b1) {
			lx.cursor.Bump()
			if b1 == '+' || b1 == '-' {
				lx.cursor.Bump()
			}
			if !lx.eatDecDigits() {
				flags |= token.FlagEmptyExponent
			}
			lit = token.LitRational
		}
	}

	return token.Token{Kind: token.Literal, Lit: lit, Base: token.BaseDecimal, Flags: flags}
}

func (lx *Lexer) eatDecDigits() bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		if isDec(b) {
			seen = true
		} else if b != '_' {
			return seen
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) eatHexDigits() bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		if isHex(b) {
			seen = true
		} else if b != '_' {
			return seen
		}
		lx.cursor.Bump()
	}
}

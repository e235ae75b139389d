package token

// Token is one raw lexeme: a category and its byte length in the source
// buffer. It carries no text; callers reconstruct the lexeme by slicing
// the buffer at a running offset. The struct is 8 bytes and is produced
// once per lexeme.
type Token struct {
	Kind  Kind
	Lit   LitKind // meaningful only when Kind == Literal
	Base  Base    // meaningful only for LitInt and LitRational
	Flags Flags
	Len   uint32
}

// New builds a token of the given kind and byte length.
func New(kind Kind, length uint32) Token {
	return Token{Kind: kind, Len: length}
}

// EOF returns the end-of-input token. It always has length 0.
func EOF() Token {
	return Token{Kind: Eof}
}

// LitKind sub-classifies a Literal token.
type LitKind uint8

const (
	// LitNone is the zero value for non-literal tokens.
	LitNone LitKind = iota
	// LitInt is `123` or `0x123`; FlagEmptyDigits marks a bare `0x`.
	LitInt
	// LitRational is `1.2`, `1e3`, `1.2e-3`; FlagEmptyExponent marks an
	// exponent marker with no digits after it.
	LitRational
	// LitStr is `"abc"` or `unicode"abc"`; FlagTerminated, FlagUnicode.
	LitStr
	// LitHexStr is `hex"abcd"`; FlagTerminated.
	LitHexStr
)

var litNames = [...]string{
	LitNone:     "None",
	LitInt:      "Int",
	LitRational: "Rational",
	LitStr:      "Str",
	LitHexStr:   "HexStr",
}

func (k LitKind) String() string {
	if int(k) < len(litNames) {
		return litNames[k]
	}
	return "LitKind(?)"
}

// Base is the radix of a numeric literal, determined by its prefix. It is
// carried on the token so downstream number parsing never re-scans the
// prefix.
type Base uint8

const (
	// BaseDecimal means no radix prefix.
	BaseDecimal Base = 10
	// BaseHexadecimal means the literal starts with "0x".
	BaseHexadecimal Base = 16
)

func (b Base) String() string {
	switch b {
	case BaseDecimal:
		return "decimal"
	case BaseHexadecimal:
		return "hexadecimal"
	}
	return "Base(?)"
}

// Flags encodes malformed-lexeme shapes and lexeme variants. The scanner
// never fails on malformed input; it sets flags and a later stage decides
// what to report.
type Flags uint8

const (
	// FlagDoc marks a documentation comment (`///`, `/** */`).
	FlagDoc Flags = 1 << iota
	// FlagTerminated marks a block comment, string, or hex string that was
	// properly closed. Unset means the lexeme ran to end of input.
	FlagTerminated
	// FlagUnicode marks a string literal with the unicode prefix.
	FlagUnicode
	// FlagEmptyDigits marks an integer literal whose digit sequence after
	// the radix prefix is empty, e.g. a bare `0x`.
	FlagEmptyDigits
	// FlagEmptyExponent marks a rational literal whose exponent marker is
	// not followed by any digits.
	FlagEmptyExponent
)

// Has reports whether every bit in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// IsDoc reports whether the token is a documentation comment.
func (t Token) IsDoc() bool {
	return (t.Kind == LineComment || t.Kind == BlockComment) && t.Flags.Has(FlagDoc)
}

// Terminated reports whether a block comment, string, or hex string was
// closed before end of input. True for every other kind.
func (t Token) Terminated() bool {
	switch {
	case t.Kind == BlockComment:
		return t.Flags.Has(FlagTerminated)
	case t.Kind == Literal && (t.Lit == LitStr || t.Lit == LitHexStr):
		return t.Flags.Has(FlagTerminated)
	default:
		return true
	}
}

// IsTrivia reports whether the token is whitespace or a non-doc comment.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case Whitespace:
		return true
	case LineComment, BlockComment:
		return !t.Flags.Has(FlagDoc)
	default:
		return false
	}
}

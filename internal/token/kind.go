package token

// Kind is the category of a raw lexeme. The set is closed: the scanner
// never produces anything outside of it.
type Kind uint8

const (
	// LineComment is `// comment` or `/// doc comment`.
	LineComment Kind = iota
	// BlockComment is `/* comment */` or `/** doc comment */`.
	BlockComment
	// Whitespace is any run of whitespace characters.
	Whitespace
	// Ident is an identifier; at this stage keywords are identifiers too.
	Ident
	// InvalidIdent is an identifier containing codepoints the language
	// grammar does not allow.
	InvalidIdent
	// UnknownPrefix is identifier text immediately preceding a quote that
	// is not a recognized literal prefix, e.g. `foo"..."`. Only the prefix
	// is covered by the token; the quote is lexed separately.
	UnknownPrefix
	// Literal is a numeric, string, or hex-string literal. See LitKind.
	Literal

	// Semi is `;`.
	Semi
	// Comma is `,`.
	Comma
	// Dot is `.`.
	Dot
	// OpenParen is `(`.
	OpenParen
	// CloseParen is `)`.
	CloseParen
	// OpenBrace is `{`.
	OpenBrace
	// CloseBrace is `}`.
	CloseBrace
	// OpenBracket is `[`.
	OpenBracket
	// CloseBracket is `]`.
	CloseBracket
	// Tilde is `~`.
	Tilde
	// Question is `?`.
	Question
	// Colon is `:`.
	Colon
	// Dollar is `$`.
	Dollar
	// Eq is `=`.
	Eq
	// Lt is `<`.
	Lt
	// Gt is `>`.
	Gt
	// Minus is `-`.
	Minus
	// And is `&`.
	And
	// Or is `|`.
	Or
	// Plus is `+`.
	Plus
	// Star is `*`.
	Star
	// Slash is `/`.
	Slash
	// Caret is `^`.
	Caret
	// Percent is `%`.
	Percent

	// Unknown is a character the scanner does not recognize.
	Unknown
	// Eof marks the end of input; its token always has length 0.
	Eof
)

var kindNames = [...]string{
	LineComment:   "LineComment",
	BlockComment:  "BlockComment",
	Whitespace:    "Whitespace",
	Ident:         "Ident",
	InvalidIdent:  "InvalidIdent",
	UnknownPrefix: "UnknownPrefix",
	Literal:       "Literal",
	Semi:          "Semi",
	Comma:         "Comma",
	Dot:           "Dot",
	OpenParen:     "OpenParen",
	CloseParen:    "CloseParen",
	OpenBrace:     "OpenBrace",
	CloseBrace:    "CloseBrace",
	OpenBracket:   "OpenBracket",
	CloseBracket:  "CloseBracket",
	Tilde:         "Tilde",
	Question:      "Question",
	Colon:         "Colon",
	Dollar:        "Dollar",
	Eq:            "Eq",
	Lt:            "Lt",
	Gt:            "Gt",
	Minus:         "Minus",
	And:           "And",
	Or:            "Or",
	Plus:          "Plus",
	Star:          "Star",
	Slash:         "Slash",
	Caret:         "Caret",
	Percent:       "Percent",
	Unknown:       "Unknown",
	Eof:           "Eof",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsPunct reports whether the kind is one of the single-character
// punctuation kinds.
func (k Kind) IsPunct() bool {
	return k >= Semi && k <= Percent
}

// punctKinds maps a punctuation byte to its kind. Zero means "not punct".
var punctKinds = [128]Kind{
	';': Semi,
	',': Comma,
	'.': Dot,
	'(': OpenParen,
	')': CloseParen,
	'{': OpenBrace,
	'}': CloseBrace,
	'[': OpenBracket,
	']': CloseBracket,
	'~': Tilde,
	'?': Question,
	':': Colon,
	'$': Dollar,
	'=': Eq,
	'<': Lt,
	'>': Gt,
	'-': Minus,
	'&': And,
	'|': Or,
	'+': Plus,
	'*': Star,
	'/': Slash,
	'^': Caret,
	'%': Percent,
}

// PunctKind returns the punctuation kind for b, if b is one of the 21
// recognized single-character punctuation bytes.
func PunctKind(b byte) (Kind, bool) {
	if b >= 128 {
		return Unknown, false
	}
	k := punctKinds[b]
	if k == 0 {
		return Unknown, false
	}
	return k, true
}

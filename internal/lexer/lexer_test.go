package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"solum/internal/lexer"
	"solum/internal/source"
	"solum/internal/token"
)

// makeTestLexer creates a lexer over an in-memory file.
func makeTestLexer(input string) *lexer.Lexer {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sol", []byte(input))
	return lexer.New(fs.Get(fileID))
}

// collectAllTokens collects all tokens including the trailing Eof.
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.Eof {
			break
		}
	}
	return tokens
}

// scan tokenizes input and strips the trailing Eof.
func scan(input string) []token.Token {
	tokens := collectAllTokens(makeTestLexer(input))
	return tokens[:len(tokens)-1]
}

// expectKinds checks the token kind sequence (Eof excluded).
func expectKinds(t *testing.T, input string, expected ...token.Kind) {
	t.Helper()
	tokens := scan(input)

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %s",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v", i, expected[i], tok.Kind)
		}
	}
}

// expectSingleToken checks that input yields exactly one token before Eof.
func expectSingleToken(t *testing.T, input string, want token.Token) {
	t.Helper()
	tokens := scan(input)
	if len(tokens) != 1 {
		t.Fatalf("Expected 1 token, got %d: %s", len(tokens), tokensToString(tokens))
	}
	if tokens[0] != want {
		t.Errorf("Token mismatch:\n got %+v\nwant %+v", tokens[0], want)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(len=%d)", tok.Kind, tok.Len)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== identifiers ======

func TestIdentifiers_ASCII(t *testing.T) {
	tests := []string{
		"foo",
		"_bar",
		"__test",
		"x123",
		"camelCase",
		"UPPER",
		"$",
		"$dollar",
		"mid$dle",
		"_",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.Token{
				Kind: token.Ident,
				Len:  uint32(len(input)),
			})
		})
	}
}

func TestIdentifiers_NonASCII(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"leading_cyrillic", "переменная"},
		{"mixed_latin_accent", "héllo"},
		{"trailing_accent", "valueé"},
		{"greek", "αβγ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Token{
				Kind: token.InvalidIdent,
				Len:  uint32(len(tt.input)),
			})
		})
	}
}

func TestIdentifiers_KeywordsAreIdents(t *testing.T) {
	// Keyword recognition is not the scanner's job.
	for _, kw := range []string{"contract", "function", "uint256", "if", "while"} {
		expectSingleToken(t, kw, token.Token{Kind: token.Ident, Len: uint32(len(kw))})
	}
}

func TestUnknown_NonLetterRune(t *testing.T) {
	// A non-ASCII rune that is not letter-like is Unknown, one rune per token.
	expectKinds(t, "→", token.Unknown)
	tokens := scan("→")
	if tokens[0].Len != uint32(len("→")) {
		t.Errorf("Unknown rune token len = %d, want %d", tokens[0].Len, len("→"))
	}
}

// ====== comments ======

func TestLineComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		doc   bool
	}{
		{"plain", "// hello", false},
		{"doc", "/// docs", true},
		{"four_slashes", "//// not docs", false},
		{"empty_doc", "///", true},
		{"empty_plain", "//", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scan(tt.input)
			if len(tokens) != 1 || tokens[0].Kind != token.LineComment {
				t.Fatalf("Expected single LineComment, got %s", tokensToString(tokens))
			}
			if got := tokens[0].IsDoc(); got != tt.doc {
				t.Errorf("IsDoc() = %v, want %v", got, tt.doc)
			}
		})
	}
}

func TestLineComment_StopsAtNewline(t *testing.T) {
	expectKinds(t, "// c\nx",
		token.LineComment, token.Whitespace, token.Ident)
}

func TestBlockComments(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		doc        bool
		terminated bool
	}{
		{"plain", "/* c */", false, true},
		{"doc", "/** d */", true, true},
		{"three_stars", "/*** n */", false, true},
		{"empty", "/**/", false, true},
		{"unterminated", "/* runs on", false, false},
		{"unterminated_doc", "/** runs on", true, false},
		{"star_not_close", "/* * */", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scan(tt.input)
			if len(tokens) != 1 || tokens[0].Kind != token.BlockComment {
				t.Fatalf("Expected single BlockComment, got %s", tokensToString(tokens))
			}
			if got := tokens[0].IsDoc(); got != tt.doc {
				t.Errorf("IsDoc() = %v, want %v", got, tt.doc)
			}
			if got := tokens[0].Terminated(); got != tt.terminated {
				t.Errorf("Terminated() = %v, want %v", got, tt.terminated)
			}
		})
	}
}

func TestBlockComment_NoNesting(t *testing.T) {
	// The first */ closes; the rest is scanned as ordinary tokens.
	expectKinds(t, "/* a /* b */ c */",
		token.BlockComment, token.Whitespace, token.Ident,
		token.Whitespace, token.Star, token.Slash)
}

func TestUnterminatedBlockComment_CoversRest(t *testing.T) {
	input := "x /* everything else"
	tokens := scan(input)
	last := tokens[len(tokens)-1]
	if last.Kind != token.BlockComment || last.Terminated() {
		t.Fatalf("Expected unterminated BlockComment last, got %+v", last)
	}
	if last.Len != uint32(len("/* everything else")) {
		t.Errorf("comment len = %d, want %d", last.Len, len("/* everything else"))
	}
}

func TestSlash_Alone(t *testing.T) {
	expectKinds(t, "a / b",
		token.Ident, token.Whitespace, token.Slash, token.Whitespace, token.Ident)
}

// ====== numbers ======

func TestNumbers_Int(t *testing.T) {
	tests := []struct {
		input string
		base  token.Base
		flags token.Flags
	}{
		{"0", token.BaseDecimal, 0},
		{"123", token.BaseDecimal, 0},
		{"1_000", token.BaseDecimal, 0},
		{"0x1f", token.BaseHexadecimal, 0},
		{"0XABC", token.BaseHexadecimal, 0},
		{"0x", token.BaseHexadecimal, token.FlagEmptyDigits},
		{"0x_", token.BaseHexadecimal, token.FlagEmptyDigits},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Token{
				Kind:  token.Literal,
				Lit:   token.LitInt,
				Base:  tt.base,
				Flags: tt.flags,
				Len:   uint32(len(tt.input)),
			})
		})
	}
}

func TestNumbers_Rational(t *testing.T) {
	tests := []struct {
		input string
		flags token.Flags
	}{
		{"1.2", 0},
		{"1.2e3", 0},
		{"1e5", 0},
		{"1E5", 0},
		{"1e+5", 0},
		{"1.2e-3", 0},
		{"1e+", token.FlagEmptyExponent},
		{"1e-", token.FlagEmptyExponent},
		{"1.5e+_", token.FlagEmptyExponent},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Token{
				Kind:  token.Literal,
				Lit:   token.LitRational,
				Base:  token.BaseDecimal,
				Flags: tt.flags,
				Len:   uint32(len(tt.input)),
			})
		})
	}
}

func TestNumbers_DotNotFraction(t *testing.T) {
	// `1.` with no digit after the dot: the dot stays punctuation.
	expectKinds(t, "1.", token.Literal, token.Dot)
	expectKinds(t, "1..2", token.Literal, token.Dot, token.Dot, token.Literal)
	expectKinds(t, "1.e5", token.Literal, token.Dot, token.Ident)
	expectKinds(t, "a.b", token.Ident, token.Dot, token.Ident)
}

func TestNumbers_ExponentNotTaken(t *testing.T) {
	// `e` not followed by a sign or digit is the start of an identifier.
	expectKinds(t, "1e", token.Literal, token.Ident)
	expectKinds(t, "1ex", token.Literal, token.Ident)

	tokens := scan("1e")
	if tokens[0].Lit != token.LitInt {
		t.Errorf("1 before dangling e should stay Int, got %v", tokens[0].Lit)
	}
}

// ====== strings ======

func TestStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		flags token.Flags
	}{
		{"double", `"abc"`, token.FlagTerminated},
		{"single", `'abc'`, token.FlagTerminated},
		{"empty", `""`, token.FlagTerminated},
		{"escaped_quote", `"a\"b"`, token.FlagTerminated},
		{"escaped_backslash", `"a\\"`, token.FlagTerminated},
		{"unterminated", `"abc`, 0},
		{"unterminated_escape", `"abc\`, 0},
		{"mixed_quotes", `"it's"`, token.FlagTerminated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Token{
				Kind:  token.Literal,
				Lit:   token.LitStr,
				Flags: tt.flags,
				Len:   uint32(len(tt.input)),
			})
		})
	}
}

func TestStrings_Prefixed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lit   token.LitKind
		flags token.Flags
	}{
		{"hex", `hex"1234"`, token.LitHexStr, token.FlagTerminated},
		{"hex_single", `hex'12'`, token.LitHexStr, token.FlagTerminated},
		{"hex_unterminated", `hex"12`, token.LitHexStr, 0},
		{"unicode", `unicode"héllo"`, token.LitStr, token.FlagTerminated | token.FlagUnicode},
		{"unicode_unterminated", `unicode"x`, token.LitStr, token.FlagUnicode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Token{
				Kind:  token.Literal,
				Lit:   tt.lit,
				Flags: tt.flags,
				Len:   uint32(len(tt.input)),
			})
		})
	}
}

func TestStrings_UnknownPrefix(t *testing.T) {
	// Prefix text covers only the identifier; the quote restarts scanning.
	tokens := scan(`foo"bar"`)
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %s", tokensToString(tokens))
	}
	if tokens[0].Kind != token.UnknownPrefix || tokens[0].Len != 3 {
		t.Errorf("Token 0 = %+v, want UnknownPrefix len 3", tokens[0])
	}
	if tokens[1].Kind != token.Literal || tokens[1].Lit != token.LitStr {
		t.Errorf("Token 1 = %+v, want Str literal", tokens[1])
	}
}

func TestStrings_PrefixNeedsAdjacency(t *testing.T) {
	// Whitespace between ident and quote: plain ident plus plain string.
	expectKinds(t, `hex "12"`,
		token.Ident, token.Whitespace, token.Literal)
}

// ====== punctuation ======

func TestPunctuation_All(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{";", token.Semi},
		{",", token.Comma},
		{".", token.Dot},
		{"(", token.OpenParen},
		{")", token.CloseParen},
		{"{", token.OpenBrace},
		{"}", token.CloseBrace},
		{"[", token.OpenBracket},
		{"]", token.CloseBracket},
		{"~", token.Tilde},
		{"?", token.Question},
		{":", token.Colon},
		{"=", token.Eq},
		{"<", token.Lt},
		{">", token.Gt},
		{"-", token.Minus},
		{"&", token.And},
		{"|", token.Or},
		{"+", token.Plus},
		{"*", token.Star},
		{"/", token.Slash},
		{"^", token.Caret},
		{"%", token.Percent},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Token{Kind: tt.kind, Len: 1})
			if !tt.kind.IsPunct() {
				t.Errorf("%v should report IsPunct", tt.kind)
			}
		})
	}
}

func TestPunctuation_NoMultiChar(t *testing.T) {
	// Multi-character operators are glued together by the parser, not here.
	expectKinds(t, "==", token.Eq, token.Eq)
	expectKinds(t, "->", token.Minus, token.Gt)
	expectKinds(t, "<<=", token.Lt, token.Lt, token.Eq)
}

func TestUnknown_ASCII(t *testing.T) {
	expectKinds(t, "#", token.Unknown)
	expectKinds(t, "`", token.Unknown)
	expectKinds(t, "\\", token.Unknown)
}

// ====== whitespace and structure ======

func TestWhitespace_Runs(t *testing.T) {
	expectSingleToken(t, " \t\r\n\v\f ", token.Token{
		Kind: token.Whitespace,
		Len:  7,
	})
}

func TestEof_Idempotent(t *testing.T) {
	lx := makeTestLexer("x")
	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("Expected Ident, got %v", tok.Kind)
	}
	for i := 0; i < 3; i++ {
		tok := lx.Next()
		if tok.Kind != token.Eof || tok.Len != 0 {
			t.Fatalf("Eof call %d: got %+v", i, tok)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	tokens := collectAllTokens(makeTestLexer(""))
	if len(tokens) != 1 || tokens[0].Kind != token.Eof {
		t.Fatalf("Expected lone Eof, got %s", tokensToString(tokens))
	}
}

func TestTokenLengths_SumToContent(t *testing.T) {
	inputs := []string{
		"contract C { uint256 x = 0x1f; }",
		`pragma solidity ^0.8.0; // header`,
		"/* block */ hex\"00ff\" unicode\"π\" 'str'",
		"aéb 1.2e-3 foo\"bar\"",
		"/* unterminated",
	}
	for _, input := range inputs {
		total := uint32(0)
		for _, tok := range scan(input) {
			total += tok.Len
		}
		if total != uint32(len(input)) {
			t.Errorf("Input %q: lengths sum to %d, want %d", input, total, len(input))
		}
	}
}

func TestRealisticSource(t *testing.T) {
	input := "pragma solidity ^0.8.0;\n" +
		"contract Coin {\n" +
		"\taddress public minter;\n" +
		"}\n"
	expectKinds(t, input,
		token.Ident, token.Whitespace, token.Ident, token.Whitespace,
		token.Caret, token.Literal, token.Dot, token.Literal, token.Semi,
		token.Whitespace,
		token.Ident, token.Whitespace, token.Ident, token.Whitespace,
		token.OpenBrace, token.Whitespace,
		token.Ident, token.Whitespace, token.Ident, token.Whitespace,
		token.Ident, token.Semi, token.Whitespace,
		token.CloseBrace, token.Whitespace,
	)
}

func BenchmarkLexer(b *testing.B) {
	input := strings.Repeat("contract C { uint256 x = 0x1f; /* c */ }\n", 100)
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bench.sol", []byte(input))
	file := fs.Get(fileID)

	b.ResetTimer()
	b.SetBytes(int64(len(input)))
	for i := 0; i < b.N; i++ {
		lx := lexer.New(file)
		for {
			if lx.Next().Kind == token.Eof {
				break
			}
		}
	}
}

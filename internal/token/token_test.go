package token_test

import (
	"testing"
	"unsafe"

	"solum/internal/token"
)

func TestToken_Size(t *testing.T) {
	// The scanner produces one Token per lexeme; keep it at 8 bytes.
	if size := unsafe.Sizeof(token.Token{}); size != 8 {
		t.Errorf("Token size = %d bytes, want 8", size)
	}
}

func TestEOF(t *testing.T) {
	tok := token.EOF()
	if tok.Kind != token.Eof || tok.Len != 0 {
		t.Errorf("EOF() = %+v, want Eof with len 0", tok)
	}
}

func TestFlags_Has(t *testing.T) {
	f := token.FlagDoc | token.FlagTerminated
	if !f.Has(token.FlagDoc) || !f.Has(token.FlagTerminated) {
		t.Error("Has should report set bits")
	}
	if f.Has(token.FlagUnicode) {
		t.Error("Has should reject unset bits")
	}
	if !f.Has(token.FlagDoc | token.FlagTerminated) {
		t.Error("Has should require every bit in the mask")
	}
	if f.Has(token.FlagDoc | token.FlagUnicode) {
		t.Error("Has with a partially-set mask should be false")
	}
}

func TestToken_IsDoc(t *testing.T) {
	doc := token.Token{Kind: token.LineComment, Flags: token.FlagDoc}
	if !doc.IsDoc() {
		t.Error("Doc line comment should report IsDoc")
	}
	plain := token.Token{Kind: token.LineComment}
	if plain.IsDoc() {
		t.Error("Plain comment should not report IsDoc")
	}
	// FlagDoc on a non-comment kind means nothing.
	odd := token.Token{Kind: token.Ident, Flags: token.FlagDoc}
	if odd.IsDoc() {
		t.Error("IsDoc is comment-only")
	}
}

func TestToken_Terminated(t *testing.T) {
	tests := []struct {
		name string
		tok  token.Token
		want bool
	}{
		{"closed_block", token.Token{Kind: token.BlockComment, Flags: token.FlagTerminated}, true},
		{"open_block", token.Token{Kind: token.BlockComment}, false},
		{"closed_str", token.Token{Kind: token.Literal, Lit: token.LitStr, Flags: token.FlagTerminated}, true},
		{"open_str", token.Token{Kind: token.Literal, Lit: token.LitStr}, false},
		{"open_hexstr", token.Token{Kind: token.Literal, Lit: token.LitHexStr}, false},
		{"int_always", token.Token{Kind: token.Literal, Lit: token.LitInt}, true},
		{"ident_always", token.Token{Kind: token.Ident}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.Terminated(); got != tt.want {
				t.Errorf("Terminated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToken_IsTrivia(t *testing.T) {
	tests := []struct {
		name string
		tok  token.Token
		want bool
	}{
		{"whitespace", token.Token{Kind: token.Whitespace}, true},
		{"plain_line", token.Token{Kind: token.LineComment}, true},
		{"plain_block", token.Token{Kind: token.BlockComment}, true},
		{"doc_line", token.Token{Kind: token.LineComment, Flags: token.FlagDoc}, false},
		{"doc_block", token.Token{Kind: token.BlockComment, Flags: token.FlagDoc}, false},
		{"ident", token.Token{Kind: token.Ident}, false},
		{"eof", token.EOF(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.IsTrivia(); got != tt.want {
				t.Errorf("IsTrivia() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_IsPunct(t *testing.T) {
	for k := token.Semi; k <= token.Percent; k++ {
		if !k.IsPunct() {
			t.Errorf("%v should be punct", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.Literal, token.Unknown, token.Eof, token.Whitespace} {
		if k.IsPunct() {
			t.Errorf("%v should not be punct", k)
		}
	}
}

func TestPunctKind(t *testing.T) {
	tests := map[byte]token.Kind{
		';': token.Semi,
		'.': token.Dot,
		'{': token.OpenBrace,
		'%': token.Percent,
		'$': token.Dollar,
	}
	for b, want := range tests {
		got, ok := token.PunctKind(b)
		if !ok || got != want {
			t.Errorf("PunctKind(%q) = %v, %v; want %v, true", b, got, ok, want)
		}
	}
	for _, b := range []byte{'a', '0', ' ', '#', 0x80, 0xFF} {
		if _, ok := token.PunctKind(b); ok {
			t.Errorf("PunctKind(%q) should not match", b)
		}
	}
}

func TestKind_String(t *testing.T) {
	if token.Ident.String() != "Ident" {
		t.Errorf("Ident.String() = %q", token.Ident.String())
	}
	if token.Eof.String() != "Eof" {
		t.Errorf("Eof.String() = %q", token.Eof.String())
	}
	if token.Kind(200).String() != "Kind(?)" {
		t.Errorf("Out-of-range kind String() = %q", token.Kind(200).String())
	}
}

func TestBase_Values(t *testing.T) {
	// Base doubles as the radix value for number parsing.
	if uint8(token.BaseDecimal) != 10 || uint8(token.BaseHexadecimal) != 16 {
		t.Error("Base constants must equal their radix")
	}
}

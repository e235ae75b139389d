// Package driver runs the lexical front-end over files and directories:
// it scans raw tokens, attaches spans, interns identifier text into the
// session's symbol table, and turns malformed-lexeme flags into
// diagnostics.
package driver

import (
	"fmt"

	"solum/internal/diag"
	"solum/internal/lexer"
	"solum/internal/source"
	"solum/internal/symbol"
	"solum/internal/token"
)

// DefaultMaxDiagnostics bounds per-file diagnostics when Options leaves it
// unset.
const DefaultMaxDiagnostics = 100

// Options configures tokenization.
type Options struct {
	// MaxDiagnostics bounds the per-file diagnostic bag; 0 means
	// DefaultMaxDiagnostics.
	MaxDiagnostics int
	// Jobs bounds parallelism in TokenizeDir; 0 means GOMAXPROCS.
	Jobs int
	// Extension selects source files in TokenizeDir; empty means ".sol".
	Extension string
	// Cache, when non-nil, is consulted before scanning and updated after.
	Cache *DiskCache
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// Token is a cooked token: the raw lexeme plus its span, and for
// identifiers the interned symbol.
type Token struct {
	Raw  token.Token
	Span source.Span
	// Ident is set for Kind == token.Ident; HasIdent guards it because
	// the zero Symbol is a real handle.
	Ident    symbol.Ident
	HasIdent bool
}

// Result is the outcome of tokenizing one file.
type Result struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []Token
	Bag     *diag.Bag
	Session *symbol.Session
}

// Tokenize loads one file from disk and tokenizes it under a fresh
// session.
func Tokenize(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return tokenizeLoaded(fs, id, opts), nil
}

// TokenizeBytes tokenizes in-memory content under a fresh session.
func TokenizeBytes(name string, content []byte, opts Options) *Result {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return tokenizeLoaded(fs, id, opts)
}

func tokenizeLoaded(fs *source.FileSet, id source.FileID, opts Options) *Result {
	sess := symbol.NewSession()
	bag := diag.NewBag(opts.maxDiagnostics())
	tokens := TokenizeFile(fs.Get(id), sess, bag)
	return &Result{
		FileSet: fs,
		FileID:  id,
		Tokens:  tokens,
		Bag:     bag,
		Session: sess,
	}
}

// TokenizeFile scans one file and cooks the stream against the given
// session. Diagnostics derived from malformed-lexeme flags land in bag.
func TokenizeFile(file *source.File, sess *symbol.Session, bag *diag.Bag) []Token {
	raw := lexer.New(file).Tokens()
	return cook(file, raw, sess, bag)
}

// cook attaches spans, interns identifier text, and reports malformed
// shapes. It works the same for freshly scanned and cache-restored raw
// streams.
func cook(file *source.File, raw []token.Token, sess *symbol.Session, bag *diag.Bag) []Token {
	out := make([]Token, 0, len(raw))
	off := uint32(0)
	for _, rt := range raw {
		span := source.Span{File: file.ID, Start: off, End: off + rt.Len}
		off = span.End

		ct := Token{Raw: rt, Span: span}
		if rt.Kind == token.Ident {
			name := sess.Interner.InternBytes(file.Content[span.Start:span.End])
			ct.Ident = symbol.NewIdent(name, span)
			ct.HasIdent = true
		}
		report(rt, span, bag)
		out = append(out, ct)
	}
	return out
}

// report converts a token's malformed-shape flags into diagnostics.
func report(t token.Token, span source.Span, bag *diag.Bag) {
	switch t.Kind {
	case token.BlockComment:
		if !t.Flags.Has(token.FlagTerminated) {
			add(bag, diag.SevError, diag.LexUnterminatedBlockComment, span,
				"unterminated block comment")
		}
	case token.Literal:
		switch t.Lit {
		case token.LitStr:
			if !t.Flags.Has(token.FlagTerminated) {
				add(bag, diag.SevError, diag.LexUnterminatedString, span,
					"unterminated string literal")
			}
		case token.LitHexStr:
			if !t.Flags.Has(token.FlagTerminated) {
				add(bag, diag.SevError, diag.LexUnterminatedHexString, span,
					"unterminated hex string literal")
			}
		case token.LitInt:
			if t.Flags.Has(token.FlagEmptyDigits) {
				add(bag, diag.SevError, diag.LexEmptyIntDigits, span,
					"missing digits after radix prefix")
			}
		case token.LitRational:
			if t.Flags.Has(token.FlagEmptyExponent) {
				add(bag, diag.SevError, diag.LexEmptyExponent, span,
					"missing digits after exponent")
			}
		}
	case token.UnknownPrefix:
		add(bag, diag.SevError, diag.LexUnknownPrefix, span,
			"unknown literal prefix")
	case token.InvalidIdent:
		add(bag, diag.SevError, diag.LexInvalidIdent, span,
			"identifier contains invalid characters")
	case token.Unknown:
		add(bag, diag.SevError, diag.LexUnknownChar, span,
			"unrecognized character")
	}
}

func add(bag *diag.Bag, sev diag.Severity, code diag.Code, span source.Span, msg string) {
	bag.Add(diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}

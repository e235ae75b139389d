// Package tokfmt renders token streams and diagnostics for the CLI.
package tokfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"solum/internal/driver"
	"solum/internal/source"
	"solum/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Lit   string `json:"lit,omitempty"`
	Base  uint8  `json:"base,omitempty"`
	Flags uint8  `json:"flags,omitempty"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// tokenText returns the lexeme for kinds where showing it helps: idents,
// literals, prefixes, and anything unrecognized. Whitespace and comments
// stay silent.
func tokenText(t driver.Token, file *source.File) string {
	switch t.Raw.Kind {
	case token.Ident, token.InvalidIdent, token.UnknownPrefix, token.Literal, token.Unknown:
		return string(file.Content[t.Span.Start:t.Span.End])
	default:
		return ""
	}
}

// FormatTokensPretty writes one line per token:
// index, kind, optional lexeme, line:col range.
func FormatTokensPretty(w io.Writer, tokens []driver.Token, fs *source.FileSet) error {
	// Kind column sized to the widest name in this stream.
	width := 0
	for _, t := range tokens {
		if n := runewidth.StringWidth(t.Raw.Kind.String()); n > width {
			width = n
		}
	}

	for i, t := range tokens {
		startPos, endPos := fs.Resolve(t.Span)
		file := fs.Get(t.Span.File)

		if _, err := fmt.Fprintf(w, "%3d: %s", i+1,
			runewidth.FillRight(t.Raw.Kind.String(), width)); err != nil {
			return err
		}

		if text := tokenText(t, file); text != "" {
			if _, err := fmt.Fprintf(w, " %q", text); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col); err != nil {
			return err
		}

		if t.Raw.Kind == token.Eof {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []driver.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, t := range tokens {
		file := fs.Get(t.Span.File)
		out := TokenOutput{
			Kind:  t.Raw.Kind.String(),
			Text:  tokenText(t, file),
			Flags: uint8(t.Raw.Flags),
			Start: t.Span.Start,
			End:   t.Span.End,
		}
		if t.Raw.Kind == token.Literal {
			out.Lit = t.Raw.Lit.String()
			out.Base = uint8(t.Raw.Base)
		}
		output = append(output, out)

		if t.Raw.Kind == token.Eof {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// Package testkit holds invariant checks shared by tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"solum/internal/driver"
	"solum/internal/source"
	"solum/internal/token"
)

// CheckTokenStream runs structural invariants over a cooked token stream:
// 1) spans are contiguous from offset 0 and lengths add up to the content
// 2) the stream ends with exactly one Eof of length zero
// 3) identifier tokens carry an interned symbol, nothing else does
func CheckTokenStream(tokens []driver.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}

	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	// 1) contiguity
	off := uint32(0)
	for i, t := range tokens {
		if t.Span.File != sf.ID {
			return fmt.Errorf("token %d span points to different file id: got=%d want=%d", i, t.Span.File, sf.ID)
		}
		if t.Span.Start != off {
			return fmt.Errorf("token %d span start %d, want %d", i, t.Span.Start, off)
		}
		if t.Span.End != t.Span.Start+t.Raw.Len {
			return fmt.Errorf("token %d span end %d does not match len %d", i, t.Span.End, t.Raw.Len)
		}
		off = t.Span.End
	}
	if off != lenContent {
		return fmt.Errorf("token lengths sum to %d, content is %d bytes", off, lenContent)
	}

	// 2) single trailing Eof
	last := tokens[len(tokens)-1]
	if last.Raw.Kind != token.Eof {
		return fmt.Errorf("stream does not end with Eof, got %s", last.Raw.Kind)
	}
	if last.Raw.Len != 0 {
		return fmt.Errorf("Eof has non-zero length %d", last.Raw.Len)
	}
	for i, t := range tokens[:len(tokens)-1] {
		if t.Raw.Kind == token.Eof {
			return fmt.Errorf("interior Eof at index %d", i)
		}
	}

	// 3) idents and only idents carry symbols
	for i, t := range tokens {
		if (t.Raw.Kind == token.Ident) != t.HasIdent {
			return fmt.Errorf("token %d: kind %s with HasIdent=%v", i, t.Raw.Kind, t.HasIdent)
		}
	}
	return nil
}

package symbol

import (
	"cmp"

	"solum/internal/source"
)

// Ident is a Symbol with the source location it was written at. Identity
// is the symbol alone: two idents spelled the same at different locations
// are equal, compare equal, and should hash identically — use Name as the
// map key. The span is metadata.
type Ident struct {
	Name Symbol
	Span source.Span
}

// NewIdent pairs an already-interned symbol with a location.
func NewIdent(name Symbol, span source.Span) Ident {
	return Ident{Name: name, Span: span}
}

// IdentFrom interns text in the active session and wraps it with an empty
// span.
func IdentFrom(text string) Ident {
	return Ident{Name: Intern(text)}
}

// IdentFromSpan interns text in the active session and wraps it with span.
func IdentFromSpan(text string, span source.Span) Ident {
	return Ident{Name: Intern(text), Span: span}
}

// Equal compares idents by symbol only.
func (i Ident) Equal(other Ident) bool {
	return i.Name == other.Name
}

// Compare orders idents by symbol only.
func (i Ident) Compare(other Ident) int {
	return cmp.Compare(i.Name, other.Name)
}

func (i Ident) String() string {
	return i.Name.String()
}

// IsUsedKeyword reports whether the ident is a keyword used in the
// language.
func (i Ident) IsUsedKeyword() bool { return i.Name.IsUsedKeyword() }

// IsUnusedKeyword reports whether the ident is reserved for future use.
func (i Ident) IsUnusedKeyword() bool { return i.Name.IsUnusedKeyword() }

// IsWeakKeyword reports whether the ident is a weak keyword.
func (i Ident) IsWeakKeyword() bool { return i.Name.IsWeakKeyword() }

// IsYulKeyword reports whether the ident is a keyword in a Yul context.
func (i Ident) IsYulKeyword() bool { return i.Name.IsYulKeyword() }

// IsYulBuiltin reports whether the ident is a Yul EVM builtin.
func (i Ident) IsYulBuiltin() bool { return i.Name.IsYulBuiltin() }

// IsReserved reports whether the ident is a keyword for the given dialect.
func (i Ident) IsReserved(yul bool) bool { return i.Name.IsReserved(yul) }

// IsNonReserved is the negation of IsReserved.
func (i Ident) IsNonReserved(yul bool) bool { return i.Name.IsNonReserved(yul) }

// IsElementaryType reports whether the ident names an elementary type.
func (i Ident) IsElementaryType() bool { return i.Name.IsElementaryType() }

// IsBoolLit reports whether the ident is `true` or `false`.
func (i Ident) IsBoolLit() bool { return i.Name.IsBoolLit() }

package symbol

import (
	"fmt"
	"strconv"
)

// Symbol is an interned string handle. Equality, ordering, and hashing
// operate on the index value, never on the resolved text. A handle is only
// meaningful for the interner that issued it; keeping handles apart across
// sessions is the caller's obligation.
type Symbol uint32

// String resolves the symbol against the active session. Outside a session
// it falls back to a positional form so formatting never panics.
func (s Symbol) String() string {
	if sess := activeSession.Load(); sess != nil {
		return sess.Interner.Resolve(s)
	}
	return "sym#" + strconv.FormatUint(uint64(s), 10)
}

// IsUsedKeyword reports whether the symbol is a keyword used in the
// language. Yul keywords are separate; see IsYulKeyword.
func (s Symbol) IsUsedKeyword() bool {
	return s < KwAfter
}

// IsUnusedKeyword reports whether the symbol is reserved for possible
// future use.
func (s Symbol) IsUnusedKeyword() bool {
	return s >= KwAfter && s <= KwVar
}

// IsWeakKeyword reports whether the symbol is a weak keyword, legal as an
// ordinary name.
func (s Symbol) IsWeakKeyword() bool {
	return s >= KwLeave && s <= KwBuiltin
}

// IsYulKeyword reports whether the symbol is a keyword in a Yul context.
// EVM builtins are excluded; see IsYulBuiltin.
func (s Symbol) IsYulKeyword() bool {
	switch s {
	case KwFunction, KwLet, KwIf, KwSwitch, KwCase, KwDefault,
		KwFor, KwBreak, KwContinue, KwLeave, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsYulBuiltin reports whether the symbol is a Yul EVM builtin.
func (s Symbol) IsYulBuiltin() bool {
	if s >= KwAdd && s <= KwXor {
		return true
	}
	switch s {
	case KwAddress, KwByte, KwReturn, KwRevert:
		return true
	default:
		return false
	}
}

// IsReserved reports whether the symbol is a keyword, in use or reserved,
// for the given dialect.
func (s Symbol) IsReserved(yul bool) bool {
	if yul {
		return s.IsYulKeyword() || s.IsYulBuiltin()
	}
	return s.IsUsedKeyword() || s.IsUnusedKeyword()
}

// IsNonReserved is the negation of IsReserved.
func (s Symbol) IsNonReserved(yul bool) bool {
	return !s.IsReserved(yul)
}

// IsElementaryType reports whether the symbol is an elementary type name.
// [u]fixedMxN variants are not pre-interned and so are not included.
func (s Symbol) IsElementaryType() bool {
	return s >= KwInt && s <= KwUFixed
}

// IsBoolLit reports whether the symbol is `true` or `false`.
func (s Symbol) IsBoolLit() bool {
	return s == KwFalse || s == KwTrue
}

// IsPreinterned reports whether the symbol was part of the prefill set.
func (s Symbol) IsPreinterned() bool {
	return s < preinternedCount
}

// BooleanSymbol returns the keyword for a boolean value.
func BooleanSymbol(b bool) Symbol {
	if b {
		return KwTrue
	}
	return KwFalse
}

// IntSymbol returns the `int` keyword for the given byte (not bit) size.
// Size 0 is the unsized `int`. Sizes above 32 violate the constructor
// contract and panic.
func IntSymbol(byteSize uint8) Symbol {
	if byteSize > 32 {
		panic(fmt.Sprintf("symbol: int size %d out of range [0, 32]", byteSize))
	}
	return KwInt + Symbol(byteSize)
}

// UintSymbol returns the `uint` keyword for the given byte (not bit) size.
// Size 0 is the unsized `uint`. Sizes above 32 panic.
func UintSymbol(byteSize uint8) Symbol {
	if byteSize > 32 {
		panic(fmt.Sprintf("symbol: uint size %d out of range [0, 32]", byteSize))
	}
	return KwUInt + Symbol(byteSize)
}

// FixedBytesSymbol returns the `bytesN` keyword for the given byte size.
// Size 0 and sizes above 32 panic.
func FixedBytesSymbol(byteSize uint8) Symbol {
	if byteSize == 0 || byteSize > 32 {
		panic(fmt.Sprintf("symbol: bytes size %d out of range [1, 32]", byteSize))
	}
	return KwBytes + Symbol(byteSize)
}

// IntegerSymbol returns the symbol for the decimal text of n. The digits
// 0..9 are prefilled and resolve without interning; larger values are
// formatted and interned in the active session.
func IntegerSymbol(n int) Symbol {
	if n >= 0 && n < 10 {
		return symDigitsBase + Symbol(n)
	}
	return Intern(strconv.Itoa(n))
}

package symbol

import (
	"fmt"
	"strings"
	"sync"

	"fortio.org/safecast"
)

// Interner maps string content to stable Symbol handles and back. Handles
// are issued sequentially; equal content always resolves to the same handle
// for the interner's lifetime. All operations go through one short critical
// section, so an interner may be shared across goroutines.
type Interner struct {
	mu    sync.Mutex
	byIdx []string
	index map[string]Symbol
}

// NewInterner creates an empty interner. Sessions use Prefill instead.
func NewInterner() *Interner {
	return Prefill(nil)
}

// Prefill builds an interner whose first handles match init in order:
// handle 0 is init[0], and so on. Duplicates collapse to the first
// occurrence; the prefill sets used here are duplicate-free by
// construction.
func Prefill(init []string) *Interner {
	in := &Interner{
		byIdx: make([]string, 0, len(init)),
		index: make(map[string]Symbol, len(init)+64),
	}
	for _, s := range init {
		in.internLocked(s)
	}
	return in
}

// Intern returns the handle for text, interning it first if needed. The
// content is copied into interner-owned storage, so the caller's buffer
// may be reused afterwards.
func (in *Interner) Intern(text string) Symbol {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.internLocked(text)
}

// InternBytes interns the string content of b.
func (in *Interner) InternBytes(b []byte) Symbol {
	return in.Intern(string(b))
}

func (in *Interner) internLocked(text string) Symbol {
	if id, ok := in.index[text]; ok {
		return id
	}
	lenIdx, err := safecast.Conv[uint32](len(in.byIdx))
	if err != nil {
		panic(fmt.Errorf("interner overflow: %w", err))
	}
	// Clone so the entry does not alias a caller-owned buffer.
	cpy := strings.Clone(text)
	id := Symbol(lenIdx)
	in.byIdx = append(in.byIdx, cpy)
	in.index[cpy] = id
	return id
}

// Resolve returns the text for a handle issued by this interner. The
// returned string is owned by the interner and stays valid for its
// lifetime. Passing a foreign or out-of-range handle is a programming
// error and panics.
func (in *Interner) Resolve(sym Symbol) string {
	in.mu.Lock()
	defer in.mu.Unlock()
	if int(sym) >= len(in.byIdx) {
		panic(fmt.Sprintf("symbol: handle %d out of range (interner has %d entries)", sym, len(in.byIdx)))
	}
	return in.byIdx[sym]
}

// Has reports whether the handle was issued by this interner.
func (in *Interner) Has(sym Symbol) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return int(sym) < len(in.byIdx)
}

// Len returns the number of interned strings.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.byIdx)
}

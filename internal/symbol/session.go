package symbol

import "sync/atomic"

// Session owns the shared interning state of one compilation unit. A fresh
// session comes prefilled with the keyword set, so the Kw*/Sym* constants
// resolve correctly against it.
//
// One session may be active per process at a time. Code that wants several
// isolated sessions threads *Session (or *Interner) explicitly and never
// touches the active slot; symbols from different sessions are not
// interchangeable, which is the caller's obligation to uphold.
type Session struct {
	Interner *Interner
}

var activeSession atomic.Pointer[Session]

// NewSession creates a session with a prefilled interner. It is not active
// until Enter is called.
func NewSession() *Session {
	return &Session{Interner: Prefill(PrefillStrings())}
}

// Enter installs the session as the process-wide active session and
// returns the function that deactivates it. Entering while another session
// is active is a programming error.
func (s *Session) Enter() (leave func()) {
	if !activeSession.CompareAndSwap(nil, s) {
		panic("symbol: a session is already active")
	}
	return func() {
		if !activeSession.CompareAndSwap(s, nil) {
			panic("symbol: active session changed before leave")
		}
	}
}

// CurrentSession returns the active session. Calling it outside an active
// session is a programming error.
func CurrentSession() *Session {
	s := activeSession.Load()
	if s == nil {
		panic("symbol: no active session")
	}
	return s
}

// With runs fn against the active session.
func With(fn func(*Session)) {
	fn(CurrentSession())
}

// Intern interns text in the active session.
func Intern(text string) Symbol {
	return CurrentSession().Interner.Intern(text)
}

// Resolve resolves a handle against the active session.
func Resolve(sym Symbol) string {
	return CurrentSession().Interner.Resolve(sym)
}

package tokfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// ShowCode prints the SOLnnnn code after the severity.
	ShowCode bool
}

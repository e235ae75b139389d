package diag

import "solum/internal/source"

// Diagnostic is one reportable finding with its primary location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
}

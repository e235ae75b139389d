package diag_test

import (
	"testing"

	"solum/internal/diag"
	"solum/internal/source"
)

func mk(sev diag.Severity, code diag.Code, start uint32) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  "m",
		Primary:  source.Span{Start: start, End: start + 1},
	}
}

func TestBag_AddAndLimit(t *testing.T) {
	bag := diag.NewBag(2)
	if !bag.Add(mk(diag.SevError, diag.LexUnknownChar, 0)) {
		t.Error("First Add should succeed")
	}
	if !bag.Add(mk(diag.SevError, diag.LexUnknownChar, 1)) {
		t.Error("Second Add should succeed")
	}
	if bag.Add(mk(diag.SevError, diag.LexUnknownChar, 2)) {
		t.Error("Add past the limit should report false")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBag_HasErrorsAndWarnings(t *testing.T) {
	bag := diag.NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("Empty bag should have nothing")
	}

	bag.Add(mk(diag.SevInfo, diag.UnknownCode, 0))
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("Info only: no errors, no warnings")
	}

	bag.Add(mk(diag.SevWarning, diag.UnknownCode, 1))
	if bag.HasErrors() {
		t.Error("Warning is not an error")
	}
	if !bag.HasWarnings() {
		t.Error("HasWarnings should see the warning")
	}

	bag.Add(mk(diag.SevError, diag.LexUnknownChar, 2))
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Error("Error should count for both")
	}
}

func TestBag_Merge(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(mk(diag.SevError, diag.LexUnknownChar, 0))
	b := diag.NewBag(1)
	b.Add(mk(diag.SevWarning, diag.UnknownCode, 1))

	a.Merge(b)
	if a.Len() != 2 {
		t.Errorf("Len after merge = %d, want 2", a.Len())
	}
}

func TestBag_Sort(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(mk(diag.SevWarning, diag.LexUnknownChar, 9))
	bag.Add(mk(diag.SevError, diag.LexInvalidIdent, 3))
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownPrefix,
		Primary:  source.Span{File: 1, Start: 0, End: 1},
	})
	bag.Add(mk(diag.SevError, diag.LexUnterminatedString, 3))

	bag.Sort()
	items := bag.Items()

	// File 0 first, by start offset; same span sorts by code.
	if items[0].Primary.Start != 3 || items[1].Primary.Start != 3 {
		t.Fatalf("Offset order wrong: %+v", items)
	}
	if items[0].Code > items[1].Code {
		t.Error("Same-span diagnostics should order by code")
	}
	if items[2].Primary.Start != 9 {
		t.Errorf("Third should be offset 9, got %d", items[2].Primary.Start)
	}
	if items[3].Primary.File != 1 {
		t.Errorf("File 1 should sort last, got file %d", items[3].Primary.File)
	}
}

func TestCode_String(t *testing.T) {
	if got := diag.LexUnterminatedBlockComment.String(); got != "SOL1001" {
		t.Errorf("String = %q, want SOL1001", got)
	}
	if got := diag.IOLoadFileError.String(); got != "SOL1100" {
		t.Errorf("String = %q, want SOL1100", got)
	}
}

func TestSeverity_String(t *testing.T) {
	tests := map[diag.Severity]string{
		diag.SevInfo:    "INFO",
		diag.SevWarning: "WARNING",
		diag.SevError:   "ERROR",
	}
	for sev, want := range tests {
		if got := sev.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", sev, got, want)
		}
	}
}

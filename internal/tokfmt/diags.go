package tokfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"solum/internal/diag"
	"solum/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
)

func severityLabel(sev diag.Severity, useColor bool) string {
	label := sev.String()
	if !useColor {
		return label
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(label)
	case diag.SevWarning:
		return warnColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

// FormatDiagnostics writes one line per diagnostic:
// <path>:<line>:<col>: <severity> [<code>]: <message>
// Call bag.Sort() first for deterministic order. Diagnostics with an
// empty span (I/O failures) print without a location.
func FormatDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	for _, d := range bag.Items() {
		label := severityLabel(d.Severity, opts.Color)

		// I/O failures carry an empty span pointing at no real file.
		if d.Code == diag.IOLoadFileError {
			if err := writeLine(w, "", label, d, opts); err != nil {
				return err
			}
			continue
		}

		file := fs.Get(d.Primary.File)
		startPos, _ := fs.Resolve(d.Primary)
		loc := fmt.Sprintf("%s:%d:%d", file.Path, startPos.Line, startPos.Col)
		if err := writeLine(w, loc, label, d, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, loc, label string, d diag.Diagnostic, opts PrettyOpts) error {
	var err error
	switch {
	case loc == "" && opts.ShowCode:
		_, err = fmt.Fprintf(w, "%s %s: %s\n", label, d.Code, d.Message)
	case loc == "":
		_, err = fmt.Fprintf(w, "%s: %s\n", label, d.Message)
	case opts.ShowCode:
		_, err = fmt.Fprintf(w, "%s: %s %s: %s\n", loc, label, d.Code, d.Message)
	default:
		_, err = fmt.Fprintf(w, "%s: %s: %s\n", loc, label, d.Message)
	}
	return err
}

package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	failGlyph = "❌"
	warnGlyph = "⚠️ "
)

// Reporter streams issues as they are found and tracks whether the run has
// failed. A Reporter belongs to a single run.
type Reporter struct {
	out    io.Writer
	errOut io.Writer

	failures int
	warnings int

	red    *color.Color
	yellow *color.Color
	green  *color.Color
}

// NewReporter writes the success banner to out and everything else to errOut.
// Color is used only when the destination is a terminal and noColor is false.
func NewReporter(out, errOut io.Writer, noColor bool) *Reporter {
	r := &Reporter{
		out:    out,
		errOut: errOut,
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		green:  color.New(color.FgGreen),
	}

	if noColor || !isTerminal(errOut) {
		r.red.DisableColor()
		r.yellow.DisableColor()
	} else {
		r.red.EnableColor()
		r.yellow.EnableColor()
	}
	if noColor || !isTerminal(out) {
		r.green.DisableColor()
	} else {
		r.green.EnableColor()
	}
	return r
}

// Fail prints issue as a failure and marks the run failed.
func (r *Reporter) Fail(issue *Issue) {
	r.failures++
	fmt.Fprintf(r.errOut, "%s %s\n", failGlyph, r.red.Sprint(issue.Error()))
}

// Warn prints issue as a warning. Warnings never fail the run.
func (r *Reporter) Warn(issue *Issue) {
	r.warnings++
	fmt.Fprintf(r.errOut, "%s %s\n", warnGlyph, r.yellow.Sprint(issue.Error()))
}

// Report dispatches each issue by severity.
func (r *Reporter) Report(issues ...*Issue) {
	for _, issue := range issues {
		if issue.Severity == SeverityWarning {
			r.Warn(issue)
			continue
		}
		r.Fail(issue)
	}
}

// Failed reports whether any failure has been recorded.
func (r *Reporter) Failed() bool {
	return r.failures > 0
}

// Failures returns the number of failures recorded.
func (r *Reporter) Failures() int {
	return r.failures
}

// Warnings returns the number of warnings recorded.
func (r *Reporter) Warnings() int {
	return r.warnings
}

// Finish prints the closing banner. It returns ErrValidationFailed when any
// failure was recorded.
func (r *Reporter) Finish() error {
	if r.Failed() {
		fmt.Fprintf(r.errOut, "\n%s\n", r.red.Sprint("Validation failed."))
		return ErrValidationFailed
	}
	fmt.Fprintf(r.out, "%s %s\n", "✅", r.green.Sprint("Validation passed."))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/bfi/foundation/bf/parser"
	bfierror "github.com/msto63/bfi/foundation/core/error"
)

// diagnostics holds the styles of one stderr renderer
type diagnostics struct {
	code   lipgloss.Style
	path   lipgloss.Style
	gutter lipgloss.Style
	caret  lipgloss.Style
	hint   lipgloss.Style
}

func newDiagnostics(w io.Writer) diagnostics {
	r := lipgloss.NewRenderer(w)
	return diagnostics{
		code:   r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		path:   r.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		gutter: r.NewStyle().Foreground(lipgloss.Color("#64748B")),
		caret:  r.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true),
		hint:   r.NewStyle().Foreground(lipgloss.Color("#94A3B8")).Italic(true),
	}
}

// renderError writes err to w. Errors carrying a source position also show
// the offending line with a caret under the column.
func renderError(w io.Writer, err error) {
	d := newDiagnostics(w)

	header := "error"
	if code := bfierror.GetCode(err); code != bfierror.CodeUnknown {
		header = fmt.Sprintf("error[%s]", code)
	}
	fmt.Fprintf(w, "%s: %s\n", d.code.Render(header), err.Error())

	var se *sourceError
	if errors.As(err, &se) {
		line, column, ok := errorPosition(err)
		if ok {
			d.renderSnippet(w, se, line, column)
		} else {
			fmt.Fprintf(w, "  --> %s\n", d.path.Render(se.path))
		}
	}

	if hint := hintFor(bfierror.GetCode(err)); hint != "" {
		fmt.Fprintf(w, "  = %s\n", d.hint.Render(hint))
	}
}

func (d diagnostics) renderSnippet(w io.Writer, se *sourceError, line, column int) {
	lines := strings.Split(se.source, "\n")
	if line < 1 || line > len(lines) {
		fmt.Fprintf(w, "  --> %s\n", d.path.Render(se.path))
		return
	}
	text := strings.TrimRight(lines[line-1], "\r")

	number := strconv.Itoa(line)
	pad := strings.Repeat(" ", len(number))

	fmt.Fprintf(w, "%s--> %s\n", pad, d.path.Render(fmt.Sprintf("%s:%d:%d", se.path, line, column)))
	fmt.Fprintf(w, "%s %s\n", pad, d.gutter.Render("|"))
	fmt.Fprintf(w, "%s %s %s\n", number, d.gutter.Render("|"), text)
	fmt.Fprintf(w, "%s %s %s%s\n", pad, d.gutter.Render("|"), caretIndent(text, column), d.caret.Render("^"))
}

// caretIndent reproduces tabs of the source line so the caret lines up
func caretIndent(text string, column int) string {
	var b strings.Builder
	n := 0
	for _, r := range text {
		if n >= column-1 {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		n++
	}
	return b.String()
}

// errorPosition extracts line and column from structural and runtime errors
func errorPosition(err error) (int, int, bool) {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return pe.Pos.Line, pe.Pos.Column, pe.Pos.IsValid()
	}

	var e *bfierror.Error
	if errors.As(err, &e) {
		line, okLine := e.IntDetail("line")
		column, okColumn := e.IntDetail("column")
		if okLine && okColumn && line > 0 {
			return line, column, true
		}
	}
	return 0, 0, false
}

func hintFor(code bfierror.Code) string {
	switch code {
	case bfierror.CodeStepLimit:
		return "raise --max-steps or interpreter.max_steps"
	case bfierror.CodeInputExhausted:
		return "use --eof zero or --eof unchanged to continue at end of input"
	case bfierror.CodePointerOutOfRange:
		return "the tape is fixed; adjust --start or --tape-length"
	default:
		return ""
	}
}

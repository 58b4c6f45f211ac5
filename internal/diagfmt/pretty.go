package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"g5/internal/diag"
	"g5/internal/source"
)

type palette struct {
	path, err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		path:   mk(color.Bold),
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		code:   mk(color.FgMagenta),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgGreen, color.Bold),
		note:   mk(color.FgCyan),
	}
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty prints every diagnostic in bag as
//
//	<path>:<line>:<col>: <severity> <CODE>: <message>
//
// followed by the source line and a caret under the primary span. Notes
// are printed the same way when opts.ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		pos := file.Position(d.Primary.Start)
		if err := writeOne(w, pal, d.Severity, d.Code, d.Message, file.Path, pos, d.Primary, file, opts); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			npos := nf.Position(n.Span.Start)
			if _, err := fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"),
				formatPath(nf.Path, opts.PathMode, opts.BaseDir), npos.Line, npos.Col, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// PrettyError prints a single fatal error. file supplies the source
// excerpt and may be nil.
func PrettyError(w io.Writer, e *diag.Error, file *source.File, opts PrettyOpts) error {
	return writeOne(w, newPalette(opts.Color), diag.SevError, e.Code, e.Msg, e.Path, e.Pos, e.Span, file, opts)
}

func writeOne(w io.Writer, pal palette, sev diag.Severity, code diag.Code, msg, path string,
	pos source.LineCol, span source.Span, file *source.File, opts PrettyOpts) error {
	header := fmt.Sprintf("%s: %s %s: %s\n",
		pal.path.Sprintf("%s:%d:%d", formatPath(path, opts.PathMode, opts.BaseDir), pos.Line, pos.Col),
		pal.severity(sev).Sprint(sev.String()),
		pal.code.Sprint(code.ID()),
		msg)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	if opts.HideSource || file == nil || pos.Line == 0 {
		return nil
	}
	return writeExcerpt(w, pal, file, pos, span, opts.Context)
}

// writeExcerpt prints up to context lines before pos.Line, the line itself
// and the caret row. Columns are measured in display cells so wide runes
// and tabs keep the caret aligned.
func writeExcerpt(w io.Writer, pal palette, file *source.File, pos source.LineCol, span source.Span, context uint8) error {
	first := pos.Line
	for first > 1 && pos.Line-first < uint32(context) {
		first--
	}
	width := len(fmt.Sprint(pos.Line))
	for ln := first; ln <= pos.Line; ln++ {
		if _, err := fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", width, ln), file.GetLine(ln)); err != nil {
			return err
		}
	}

	line := file.GetLine(pos.Line)
	col := min(int(pos.Col)-1, len(line))
	col = max(col, 0)
	pad := caretPad(line[:col])

	n := 1
	if span.End > span.Start {
		end := min(col+int(span.End-span.Start), len(line))
		n = max(runewidth.StringWidth(line[col:end]), 1)
	}
	marker := "^" + strings.Repeat("~", n-1)
	_, err := fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", width, ""), pad, pal.caret.Sprint(marker))
	return err
}

// caretPad mirrors prefix as blank space, keeping tabs so the caret lines
// up under the same tab stops.
func caretPad(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

package diagfmt

import (
	"encoding/json"
	"io"

	"g5/internal/diag"
	"g5/internal/source"
)

type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the root object of the JSON report.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, opts JSONOpts) LocationJSON {
	f := fs.Get(span.File)
	loc := LocationJSON{
		File:      formatPath(f.Path, opts.PathMode, opts.BaseDir),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if opts.IncludePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildDiagnosticsOutput converts bag without serializing it.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	n := len(items)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}
	diagnostics := make([]DiagnosticJSON, 0, n)
	for _, d := range items[:n] {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts),
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{Message: note.Msg, Location: makeLocation(note.Span, fs, opts)})
			}
		}
		diagnostics = append(diagnostics, dj)
	}
	return DiagnosticsOutput{Diagnostics: diagnostics, Count: len(diagnostics)}
}

// ErrorJSON converts a fatal error whose position was resolved already.
func ErrorJSON(e *diag.Error, opts JSONOpts) DiagnosticJSON {
	loc := LocationJSON{
		File:      formatPath(e.Path, opts.PathMode, opts.BaseDir),
		StartByte: e.Span.Start,
		EndByte:   e.Span.End,
	}
	if opts.IncludePositions {
		loc.StartLine = e.Pos.Line
		loc.StartCol = e.Pos.Col
	}
	return DiagnosticJSON{
		Severity: diag.SevError.String(),
		Code:     e.Code.ID(),
		Title:    e.Code.Title(),
		Message:  e.Msg,
		Location: loc,
	}
}

// JSON writes bag as an indented DiagnosticsOutput.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	return encodeIndented(w, BuildDiagnosticsOutput(bag, fs, opts))
}

// ErrorsJSON writes errs as an indented DiagnosticsOutput.
func ErrorsJSON(w io.Writer, errs []*diag.Error, opts JSONOpts) error {
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, len(errs))}
	for _, e := range errs {
		if opts.Max > 0 && len(out.Diagnostics) == opts.Max {
			break
		}
		out.Diagnostics = append(out.Diagnostics, ErrorJSON(e, opts))
	}
	out.Count = len(out.Diagnostics)
	return encodeIndented(w, out)
}

func encodeIndented(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

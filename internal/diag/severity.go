package diag

// Severity ranks a diagnostic. The lexer and parser only report SevError;
// Bag.HasErrors and the pretty palette still honor the lower levels.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "info",
	SevWarning: "warning",
	SevError:   "error",
}

// String returns the lowercase label printed in diagnostics headers and
// JSON output.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "unknown"
}

func (s Severity) IsError() bool { return s >= SevError }

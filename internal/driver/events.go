package driver

import (
	"time"

	"g5/internal/diag"
)

// EventKind reports whether a file started or finished.
type EventKind uint8

const (
	// EventStart is sent when a worker picks a file up.
	EventStart EventKind = iota
	// EventDone is sent once the file's verdict is known.
	EventDone
)

func (k EventKind) String() string {
	if k == EventDone {
		return "done"
	}
	return "start"
}

// Event describes progress of one file within a CheckDir run.
type Event struct {
	Err     *diag.Error
	Path    string
	Elapsed time.Duration
	Index   int
	Total   int
	Kind    EventKind
	OK      bool
	Cached  bool
}

package app

import (
	"errors"

	"procwin/internal/inventory"
	"procwin/internal/platform"
)

// Op is a window state transition.
type Op int

const (
	OpMinimize Op = iota
	OpMaximize
	OpRestore
)

// String returns the verb form, used in flags and error messages.
func (o Op) String() string {
	switch o {
	case OpMinimize:
		return "minimize"
	case OpMaximize:
		return "maximize"
	case OpRestore:
		return "restore"
	}
	return "unknown"
}

// PastTense returns the form used in success summaries.
func (o Op) PastTense() string {
	switch o {
	case OpMinimize:
		return "minimized"
	case OpMaximize:
		return "maximized"
	case OpRestore:
		return "restored"
	}
	return "modified"
}

// Capitalized returns the form used in per-target report lines.
func (o Op) Capitalized() string {
	switch o {
	case OpMinimize:
		return "Minimized"
	case OpMaximize:
		return "Maximized"
	case OpRestore:
		return "Restored"
	}
	return "Modified"
}

// OpEvent is one per-target outcome inside a best-effort batch.
type OpEvent struct {
	Window platform.Window
	Err    error // nil on success
}

// BatchResult aggregates a window mutation batch. A returned BatchResult
// with a nil error means the batch completed; it does not mean every
// target succeeded.
type BatchResult struct {
	Events    []OpEvent
	Matched   int
	Successes int
	Warning   string
}

var (
	// ErrNoWindows is the validation failure for an empty candidate set;
	// no mutation has been issued when it is returned.
	ErrNoWindows = errors.New("no matching windows found")
	// ErrNoneModified reports a completed batch in which every target
	// failed.
	ErrNoneModified = errors.New("no windows were modified")
)

// ownerNames indexes process names by PID for window-side filtering and
// display.
func ownerNames(entries []inventory.Entry) map[int32]string {
	names := make(map[int32]string, len(entries))
	for _, e := range entries {
		names[e.PID] = e.Name
	}
	return names
}

// resolveWindows applies the filter engine to the window inventory. A
// process with zero windows is never a candidate here, whatever else the
// filter matches.
func resolveWindows(snap Snap, f inventory.Filter) []platform.Window {
	names := ownerNames(snap.Entries)
	out := make([]platform.Window, 0, len(snap.Windows))
	for _, w := range snap.Windows {
		if f.MatchWindow(w, names[w.PID]) {
			out = append(out, w)
		}
	}
	return out
}

// target pairs a candidate window with its 1-based position in the sorted
// candidate list; placement batches address windows by that position.
type target struct {
	Index  int
	Window platform.Window
}

// selectTargets applies the placement selection rule: explicit indices
// win, otherwise every candidate with --all, otherwise only the first.
func selectTargets(windows []platform.Window, indices []int, all bool) []target {
	var out []target
	for i, w := range windows {
		if len(indices) > 0 {
			if !containsIndex(indices, i+1) {
				continue
			}
		} else if !all && i > 0 {
			break
		}
		out = append(out, target{Index: i + 1, Window: w})
	}
	return out
}

func containsIndex(indices []int, idx int) bool {
	for _, v := range indices {
		if v == idx {
			return true
		}
	}
	return false
}

package inventory

import (
	"errors"
	"fmt"
	"strings"

	"procwin/internal/platform"
)

// Filter is an immutable match specification built once per invocation.
// All present predicates are AND-combined; the zero Filter matches
// everything.
type Filter struct {
	PID       int32  // exact match when > 0
	Name      string // case-insensitive substring of the process name
	Title     string // case-insensitive substring of the representative title
	HasWindow bool
	NoWindow  bool
}

// Validate rejects filter input before evaluation. Negative PIDs and
// contradictory presence flags are caller errors, never silent no-matches.
func (f Filter) Validate() error {
	if f.PID < 0 {
		return fmt.Errorf("invalid pid filter: %d", f.PID)
	}
	if f.HasWindow && f.NoWindow {
		return errors.New("--has-window and --no-window are mutually exclusive")
	}
	return nil
}

// Match reports whether a joined entry satisfies every present predicate.
// The title predicate evaluates against the representative title, so a
// windowless process matches through its fallback.
func (f Filter) Match(e Entry) bool {
	if f.PID > 0 && e.PID != f.PID {
		return false
	}
	if f.Name != "" && !containsFold(e.Name, f.Name) {
		return false
	}
	if f.Title != "" && !containsFold(e.Title, f.Title) {
		return false
	}
	if f.HasWindow && !e.HasWindow {
		return false
	}
	if f.NoWindow && e.HasWindow {
		return false
	}
	return true
}

// MatchWindow applies the PID/name/title predicates to a single window on
// the write path. ownerName is the owning process's name, empty when the
// process record is gone. Presence predicates do not apply here.
func (f Filter) MatchWindow(w platform.Window, ownerName string) bool {
	if f.PID > 0 && w.PID != f.PID {
		return false
	}
	if f.Name != "" && !containsFold(ownerName, f.Name) {
		return false
	}
	if f.Title != "" && !containsFold(w.Title, f.Title) {
		return false
	}
	return true
}

// Apply returns the matching subset, preserving input order. An empty
// result is valid at this layer; callers decide what "no matches" means.
func (f Filter) Apply(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

package inventory

import "procwin/internal/platform"

// Process is one row of a process-table snapshot. Records are immutable;
// re-enumeration produces fresh ones and stale PIDs are simply absent.
type Process struct {
	PID     int32
	Name    string // best effort, may be empty when the OS denies access
	Cmdline string
	Memory  uint64 // resident bytes at snapshot time, zero when unreadable
}

// Entry is the joined process+window record presented to filtering and
// rendering. Title is the representative title: the first owned window's
// title in provider enumeration order, or a synthesized fallback when the
// process owns no windows.
type Entry struct {
	Process

	Title     string
	HasWindow bool
	Windows   []platform.Window
}

// FallbackTitle synthesizes a representative title for a windowless
// process: process name, then command line, then a fixed placeholder. The
// fallback keeps the title predicate total over windowless processes.
func FallbackTitle(p Process) string {
	if p.Name != "" {
		return p.Name
	}
	if p.Cmdline != "" {
		return p.Cmdline
	}
	return "No Title"
}

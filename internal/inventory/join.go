package inventory

import "procwin/internal/platform"

// Join cross-references a process snapshot with a window enumeration,
// producing exactly one Entry per process in input order. The join is
// one-to-many on PID; windows whose owning process is absent from the
// snapshot (exited mid-enumeration) are dropped silently. The quadratic
// scan is deliberate — both sides are hundreds to low thousands of rows.
func Join(processes []Process, windows []platform.Window) []Entry {
	entries := make([]Entry, 0, len(processes))
	for _, p := range processes {
		var owned []platform.Window
		for _, w := range windows {
			if w.PID == p.PID {
				owned = append(owned, w)
			}
		}

		entry := Entry{
			Process:   p,
			HasWindow: len(owned) > 0,
			Windows:   owned,
		}
		if entry.HasWindow {
			entry.Title = owned[0].Title
		} else {
			entry.Title = FallbackTitle(p)
		}
		entries = append(entries, entry)
	}
	return entries
}

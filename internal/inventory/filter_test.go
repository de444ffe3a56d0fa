package inventory

import (
	"testing"

	"procwin/internal/platform"
)

func sampleInventory() []Entry {
	return Join(
		[]Process{
			{PID: 100, Name: "chrome.exe", Memory: 512 << 20},
			{PID: 200, Name: "code", Memory: 256 << 20},
			{PID: 300, Name: "sshd"},
			{PID: 400, Name: ""},
		},
		[]platform.Window{
			{ID: 1, PID: 100, Title: "New Tab - Chrome"},
			{ID: 2, PID: 200, Title: "main.go - Editor"},
		},
	)
}

func TestFilterIdentity(t *testing.T) {
	inv := sampleInventory()
	out := Filter{}.Apply(inv)
	if len(out) != len(inv) {
		t.Fatalf("identity filter changed length: %d != %d", len(out), len(inv))
	}
	for i := range inv {
		if out[i].PID != inv[i].PID || out[i].Title != inv[i].Title {
			t.Fatalf("identity filter changed entry %d: %+v != %+v", i, out[i], inv[i])
		}
	}
}

func TestFilterNameCaseInsensitive(t *testing.T) {
	out := Filter{Name: "CHROME"}.Apply(sampleInventory())
	if len(out) != 1 || out[0].PID != 100 {
		t.Fatalf("expected pid 100 for name CHROME, got %+v", out)
	}
}

func TestFilterEmptyProcessNameNeverMatches(t *testing.T) {
	out := Filter{Name: "anything"}.Apply(sampleInventory())
	for _, e := range out {
		if e.Name == "" {
			t.Fatalf("nameless process matched name filter: %+v", e)
		}
	}
}

func TestFilterPIDExact(t *testing.T) {
	out := Filter{PID: 200}.Apply(sampleInventory())
	if len(out) != 1 || out[0].PID != 200 {
		t.Fatalf("expected exactly pid 200, got %+v", out)
	}
}

func TestFilterTitleUsesFallback(t *testing.T) {
	// sshd has no window; its representative title is its name, and the
	// title predicate must see it.
	out := Filter{Title: "SSHD"}.Apply(sampleInventory())
	if len(out) != 1 || out[0].PID != 300 {
		t.Fatalf("expected fallback title match for sshd, got %+v", out)
	}
}

func TestFilterWindowPresencePartitions(t *testing.T) {
	inv := sampleInventory()
	with := Filter{HasWindow: true}.Apply(inv)
	without := Filter{NoWindow: true}.Apply(inv)

	if len(with)+len(without) != len(inv) {
		t.Fatalf("partition does not cover inventory: %d + %d != %d", len(with), len(without), len(inv))
	}
	seen := make(map[int32]bool)
	for _, e := range with {
		if !e.HasWindow {
			t.Fatalf("windowless entry in has-window subset: %+v", e)
		}
		seen[e.PID] = true
	}
	for _, e := range without {
		if e.HasWindow {
			t.Fatalf("windowed entry in no-window subset: %+v", e)
		}
		if seen[e.PID] {
			t.Fatalf("pid %d in both subsets", e.PID)
		}
	}
}

func TestFilterCombinedAnd(t *testing.T) {
	out := Filter{Name: "c", HasWindow: true}.Apply(sampleInventory())
	if len(out) != 2 {
		t.Fatalf("expected chrome.exe and code, got %+v", out)
	}
	out = Filter{Name: "code", NoWindow: true}.Apply(sampleInventory())
	if len(out) != 0 {
		t.Fatalf("expected no windowless code process, got %+v", out)
	}
}

func TestFilterValidate(t *testing.T) {
	if err := (Filter{PID: -5}).Validate(); err == nil {
		t.Fatal("expected error for negative pid")
	}
	if err := (Filter{HasWindow: true, NoWindow: true}).Validate(); err == nil {
		t.Fatal("expected error for contradictory presence flags")
	}
	if err := (Filter{PID: 42, Name: "x"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFilterScenarioFromJoin(t *testing.T) {
	inv := Join(
		[]Process{{PID: 100, Name: "code"}},
		[]platform.Window{{ID: 1, PID: 100, Title: "Editor"}},
	)
	if len(inv) != 1 || !inv[0].HasWindow || inv[0].Title != "Editor" {
		t.Fatalf("unexpected join result: %+v", inv)
	}
	if out := (Filter{Name: "CODE"}).Apply(inv); len(out) != 1 {
		t.Fatalf("expected case-insensitive name match, got %+v", out)
	}
	if out := (Filter{NoWindow: true}).Apply(inv); len(out) != 0 {
		t.Fatalf("expected empty no-window subset, got %+v", out)
	}
}

func TestMatchWindow(t *testing.T) {
	w := platform.Window{ID: 9, PID: 321, Title: "Settings - Chrome"}

	if !(Filter{}).MatchWindow(w, "chrome.exe") {
		t.Fatal("zero filter must match any window")
	}
	if !(Filter{PID: 321, Name: "CHROME", Title: "settings"}).MatchWindow(w, "chrome.exe") {
		t.Fatal("combined window predicates should match")
	}
	if (Filter{PID: 99}).MatchWindow(w, "chrome.exe") {
		t.Fatal("pid mismatch should not match")
	}
	if (Filter{Name: "chrome"}).MatchWindow(w, "") {
		t.Fatal("unknown owner must not match a name filter")
	}
}

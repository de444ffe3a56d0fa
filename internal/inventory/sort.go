package inventory

import (
	"fmt"
	"sort"
	"strings"

	"procwin/internal/platform"
)

// SortOrder is a single-axis ordering parsed from operator input:
// 1 ascending, -1 descending, 0 none.
type SortOrder int

const (
	SortNone       SortOrder = 0
	SortAscending  SortOrder = 1
	SortDescending SortOrder = -1
)

// ParseSortOrder parses "1", "-1" or "0".
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "1":
		return SortAscending, nil
	case "-1":
		return SortDescending, nil
	case "0":
		return SortNone, nil
	}
	return SortNone, fmt.Errorf("invalid sort order %q: use 1 (ascending), -1 (descending), or 0 (none)", s)
}

// PositionSort orders windows by screen position, one SortOrder per axis.
type PositionSort struct {
	X SortOrder
	Y SortOrder
}

// DefaultPositionSort sorts both axes ascending, the reading order most
// batch placement operations want.
func DefaultPositionSort() PositionSort {
	return PositionSort{X: SortAscending, Y: SortAscending}
}

// ParsePositionSort parses "X_ORDER|Y_ORDER", e.g. "1|-1".
func ParsePositionSort(s string) (PositionSort, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 2 {
		return PositionSort{}, fmt.Errorf("position sort format is X_ORDER|Y_ORDER, e.g. 1|-1, got %q", s)
	}
	x, err := ParseSortOrder(parts[0])
	if err != nil {
		return PositionSort{}, err
	}
	y, err := ParseSortOrder(parts[1])
	if err != nil {
		return PositionSort{}, err
	}
	return PositionSort{X: x, Y: y}, nil
}

// SortWindows orders windows in place: position first (X then Y, per-axis
// direction), then PID as the tie-break. Remaining ties keep enumeration
// order.
func SortWindows(windows []platform.Window, byPID SortOrder, byPos PositionSort) {
	sort.SliceStable(windows, func(i, j int) bool {
		a, b := windows[i], windows[j]

		if byPos.X != SortNone && a.Bounds.X != b.Bounds.X {
			if byPos.X == SortDescending {
				return a.Bounds.X > b.Bounds.X
			}
			return a.Bounds.X < b.Bounds.X
		}
		if byPos.Y != SortNone && a.Bounds.Y != b.Bounds.Y {
			if byPos.Y == SortDescending {
				return a.Bounds.Y > b.Bounds.Y
			}
			return a.Bounds.Y < b.Bounds.Y
		}
		if byPID != SortNone && a.PID != b.PID {
			if byPID == SortDescending {
				return a.PID > b.PID
			}
			return a.PID < b.PID
		}
		return false
	})
}

package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Point is a screen coordinate in pixels. Negative values are legal on
// multi-monitor setups.
type Point struct {
	X int
	Y int
}

// ParseIndices parses a 1-based index list like "1,2,3". Blank elements
// and out-of-range values are skipped, not errors; an empty string means
// no index selection at all.
func ParseIndices(s string, max int) []int {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 1 || idx > max {
			continue
		}
		out = append(out, idx)
	}
	return out
}

// ParsePosition parses a single "X,Y" coordinate.
func ParsePosition(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("invalid position format %q: expected X,Y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, fmt.Errorf("invalid X coordinate %q", parts[0])
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, fmt.Errorf("invalid Y coordinate %q", parts[1])
	}
	return Point{X: x, Y: y}, nil
}

// ParseLayout parses "X1,Y1,X2,Y2,..." into per-window coordinates. The
// layout must cover at least count windows; extra pairs are dropped.
func ParseLayout(s string, count int) ([]Point, error) {
	coords := strings.Split(s, ",")
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("layout must have an even number of coordinates, got %d", len(coords))
	}
	points := make([]Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		x, err := strconv.Atoi(strings.TrimSpace(coords[i]))
		if err != nil {
			return nil, fmt.Errorf("invalid X coordinate in layout: %q", coords[i])
		}
		y, err := strconv.Atoi(strings.TrimSpace(coords[i+1]))
		if err != nil {
			return nil, fmt.Errorf("invalid Y coordinate in layout: %q", coords[i+1])
		}
		points = append(points, Point{X: x, Y: y})
	}
	if len(points) < count {
		return nil, fmt.Errorf("not enough positions in layout (need %d, got %d)", count, len(points))
	}
	return points[:count], nil
}

// PlacementSpec is the raw placement input from the CLI. Exactly one of
// the three methods must be chosen: a single position, an explicit
// layout, or a grid walk.
type PlacementSpec struct {
	Position string
	Layout   string
	XStart   string
	YStart   string
	XStep    string
	YStep    string
}

// Validate rejects zero or mixed placement methods before any window is
// touched.
func (p PlacementSpec) Validate() error {
	methods := 0
	if p.Position != "" {
		methods++
	}
	if strings.TrimSpace(p.Layout) != "" {
		methods++
	}
	if p.XStart != "" || p.YStart != "" || p.XStep != "" || p.YStep != "" {
		methods++
	}
	if methods == 0 {
		return errors.New("no position method specified: use --position, --layout, or --x-start/--y-start with steps")
	}
	if methods > 1 {
		return errors.New("multiple position methods specified: use only one of --position, --layout, or grid parameters")
	}
	return nil
}

// Positions expands the spec into one target coordinate per candidate
// window, in candidate order. Grid parameters that fail to parse fall
// back to their defaults: start 0, step 100.
func (p PlacementSpec) Positions(count int) ([]Point, error) {
	switch {
	case p.Position != "":
		pt, err := ParsePosition(p.Position)
		if err != nil {
			return nil, err
		}
		points := make([]Point, count)
		for i := range points {
			points[i] = pt
		}
		return points, nil
	case strings.TrimSpace(p.Layout) != "":
		return ParseLayout(p.Layout, count)
	case p.XStart != "" || p.YStart != "":
		xStart := atoiDefault(p.XStart, 0)
		yStart := atoiDefault(p.YStart, 0)
		xStep := atoiDefault(p.XStep, 100)
		yStep := atoiDefault(p.YStep, 100)
		points := make([]Point, count)
		for i := range points {
			points[i] = Point{X: xStart + i*xStep, Y: yStart + i*yStep}
		}
		return points, nil
	}
	return nil, errors.New("no valid position configuration found")
}

func atoiDefault(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"procwin/internal/app"
	"procwin/internal/inventory"
)

// ProcessRecord is the serialized shape of one inventory entry, shared by
// the JSON and YAML formats.
type ProcessRecord struct {
	PID           string  `json:"pid" yaml:"pid"`
	Name          string  `json:"name" yaml:"name"`
	Title         string  `json:"title" yaml:"title"`
	MemoryUsage   uint64  `json:"memory_usage" yaml:"memory_usage"`
	MemoryUsageMB float64 `json:"memory_usage_mb" yaml:"memory_usage_mb"`
	HasWindow     bool    `json:"has_window" yaml:"has_window"`
}

// WindowRecord is the serialized shape of one window row.
type WindowRecord struct {
	PID        string `json:"pid" yaml:"pid"`
	Name       string `json:"name" yaml:"name"`
	Title      string `json:"title" yaml:"title"`
	X          int    `json:"x" yaml:"x"`
	Y          int    `json:"y" yaml:"y"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Dimensions string `json:"dimensions" yaml:"dimensions"`
}

func processRecord(e inventory.Entry) ProcessRecord {
	return ProcessRecord{
		PID:           strconv.FormatInt(int64(e.PID), 10),
		Name:          e.Name,
		Title:         e.Title,
		MemoryUsage:   e.Memory,
		MemoryUsageMB: float64(e.Memory) / 1024 / 1024,
		HasWindow:     e.HasWindow,
	}
}

func windowRecord(r app.WindowRow) WindowRecord {
	return WindowRecord{
		PID:        strconv.FormatInt(int64(r.PID), 10),
		Name:       r.Name,
		Title:      r.Title,
		X:          r.Bounds.X,
		Y:          r.Bounds.Y,
		Width:      r.Bounds.Width,
		Height:     r.Bounds.Height,
		Dimensions: r.Bounds.String(),
	}
}

// Renderer writes listings to Out. TruncateWidth caps the title column in
// the table format; zero disables truncation.
type Renderer struct {
	Out           io.Writer
	TruncateWidth int
	Verbose       bool
}

var tableBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

func (r Renderer) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorder).
		Headers(headers...)
}

func (r Renderer) truncate(s string) string {
	if r.TruncateWidth <= 0 {
		return s
	}
	return Truncate(s, r.TruncateWidth)
}

// Processes renders the process inventory in the requested format.
func (r Renderer) Processes(format Format, entries []inventory.Entry) error {
	switch format {
	case FormatTable:
		return r.processTable(entries)
	case FormatJSON:
		return r.renderJSON(processRecords(entries))
	case FormatYAML:
		return r.renderYAML(processRecords(entries))
	case FormatCSV:
		return r.processCSV(entries)
	case FormatSimple:
		return r.processSimple(entries)
	case FormatDetailed:
		return r.processDetailed(entries)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// Windows renders the window listing in the requested format.
func (r Renderer) Windows(format Format, rows []app.WindowRow) error {
	switch format {
	case FormatTable:
		return r.windowTable(rows)
	case FormatJSON:
		return r.renderJSON(windowRecords(rows))
	case FormatYAML:
		return r.renderYAML(windowRecords(rows))
	case FormatCSV:
		return r.windowCSV(rows)
	case FormatSimple:
		return r.windowSimple(rows)
	case FormatDetailed:
		return r.windowDetailed(rows)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func processRecords(entries []inventory.Entry) []ProcessRecord {
	out := make([]ProcessRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, processRecord(e))
	}
	return out
}

func windowRecords(rows []app.WindowRow) []WindowRecord {
	out := make([]WindowRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, windowRecord(row))
	}
	return out
}

func (r Renderer) renderJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.Out, string(data))
	return err
}

func (r Renderer) renderYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(r.Out, string(data))
	return err
}

func (r Renderer) processTable(entries []inventory.Entry) error {
	fmt.Fprintf(r.Out, "Found %d matching processes:\n", len(entries))

	headers := []string{"PID", "Name", "Title", "Memory"}
	if r.Verbose {
		headers = append(headers, "Window")
	}
	t := r.newTable(headers...)
	for _, e := range entries {
		rec := processRecord(e)
		row := []string{
			rec.PID,
			r.truncate(rec.Name),
			r.truncate(rec.Title),
			fmt.Sprintf("%.2f MB", rec.MemoryUsageMB),
		}
		if r.Verbose {
			row = append(row, yesNo(e.HasWindow))
		}
		t.Row(row...)
	}
	_, err := fmt.Fprintln(r.Out, t.String())
	return err
}

func (r Renderer) processCSV(entries []inventory.Entry) error {
	w := csv.NewWriter(r.Out)
	if err := w.Write([]string{"PID", "Name", "Title", "MemoryUsage", "MemoryUsageMB", "HasWindow"}); err != nil {
		return err
	}
	for _, e := range entries {
		rec := processRecord(e)
		err := w.Write([]string{
			rec.PID,
			rec.Name,
			rec.Title,
			strconv.FormatUint(rec.MemoryUsage, 10),
			fmt.Sprintf("%.2f", rec.MemoryUsageMB),
			strconv.FormatBool(rec.HasWindow),
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (r Renderer) processSimple(entries []inventory.Entry) error {
	for _, e := range entries {
		presence := "No Window"
		if e.HasWindow {
			presence = "Has Window"
		}
		memMB := float64(e.Memory) / 1024 / 1024
		fmt.Fprintf(r.Out, "%d: %s (%.1f MB) - %s\n", e.PID, e.Name, memMB, presence)
	}
	return nil
}

func (r Renderer) processDetailed(entries []inventory.Entry) error {
	for i, e := range entries {
		memMB := float64(e.Memory) / 1024 / 1024
		fmt.Fprintf(r.Out, "Process #%d:\n", i+1)
		fmt.Fprintf(r.Out, "  PID:          %d\n", e.PID)
		fmt.Fprintf(r.Out, "  Name:         %s\n", e.Name)
		fmt.Fprintf(r.Out, "  Title:        %s\n", e.Title)
		fmt.Fprintf(r.Out, "  Memory:       %.2f MB\n", memMB)
		fmt.Fprintf(r.Out, "  Raw Memory:   %d bytes\n", e.Memory)
		fmt.Fprintf(r.Out, "  Has Window:   %s\n", yesNo(e.HasWindow))
		fmt.Fprintln(r.Out)
	}
	return nil
}

func (r Renderer) windowTable(rows []app.WindowRow) error {
	fmt.Fprintf(r.Out, "Found %d windows:\n", len(rows))

	t := r.newTable("PID", "Name", "Title", "Size", "Position")
	for _, row := range rows {
		t.Row(
			strconv.FormatInt(int64(row.PID), 10),
			r.truncate(row.Name),
			r.truncate(row.Title),
			fmt.Sprintf("%dx%d", row.Bounds.Width, row.Bounds.Height),
			fmt.Sprintf("+%d+%d", row.Bounds.X, row.Bounds.Y),
		)
	}
	_, err := fmt.Fprintln(r.Out, t.String())
	return err
}

func (r Renderer) windowCSV(rows []app.WindowRow) error {
	w := csv.NewWriter(r.Out)
	if err := w.Write([]string{"PID", "Name", "Title", "X", "Y", "Width", "Height", "Dimensions"}); err != nil {
		return err
	}
	for _, row := range rows {
		rec := windowRecord(row)
		err := w.Write([]string{
			rec.PID,
			rec.Name,
			rec.Title,
			strconv.Itoa(rec.X),
			strconv.Itoa(rec.Y),
			strconv.Itoa(rec.Width),
			strconv.Itoa(rec.Height),
			rec.Dimensions,
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (r Renderer) windowSimple(rows []app.WindowRow) error {
	for _, row := range rows {
		fmt.Fprintf(r.Out, "%d: %s - %s (%dx%d at +%d+%d)\n",
			row.PID, row.Name, row.Title,
			row.Bounds.Width, row.Bounds.Height, row.Bounds.X, row.Bounds.Y)
	}
	return nil
}

func (r Renderer) windowDetailed(rows []app.WindowRow) error {
	for i, row := range rows {
		fmt.Fprintf(r.Out, "Window #%d:\n", i+1)
		fmt.Fprintf(r.Out, "  PID:        %d\n", row.PID)
		fmt.Fprintf(r.Out, "  Name:       %s\n", row.Name)
		fmt.Fprintf(r.Out, "  Title:      %s\n", row.Title)
		fmt.Fprintf(r.Out, "  Size:       %dx%d\n", row.Bounds.Width, row.Bounds.Height)
		fmt.Fprintf(r.Out, "  Position:   +%d+%d\n", row.Bounds.X, row.Bounds.Y)
		fmt.Fprintf(r.Out, "  Dimensions: %s\n", row.Bounds.String())
		fmt.Fprintln(r.Out)
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// Package output renders inventory listings in the formats the CLI
// exposes.
package output

import "fmt"

// Format names a rendering strategy.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCSV      Format = "csv"
	FormatSimple   Format = "simple"
	FormatDetailed Format = "detailed"
)

// ParseFormat validates a format name from flags or config.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatYAML, FormatCSV, FormatSimple, FormatDetailed:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q: use table, json, yaml, csv, simple, or detailed", s)
}

// Truncate shortens s to at most max runes, marking the cut with an
// ellipsis that counts toward the limit.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

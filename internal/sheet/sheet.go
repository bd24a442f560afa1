// Package sheet parses the CSV exports of a human-edited spreadsheet.
// The exports are forgiving: quoted fields may embed commas, fields carry
// stray whitespace, and rows may be shorter or longer than the header.
package sheet

import "strings"

// Record is one data row, keyed by header name.
type Record map[string]string

// Table is a parsed export: the header in source order plus the data rows.
type Table struct {
	Headers []string
	Rows    []Record
}

// Parse splits a CSV export blob into a Table. Lines whose trimmed form is
// empty are discarded; the first surviving line is the header. A short row
// binds missing trailing fields to ""; surplus fields on a long row are
// dropped. Parse never fails; downstream components decide whether the
// records are usable.
func Parse(blob string) *Table {
	lines := dataLines(blob)
	if len(lines) == 0 {
		return &Table{}
	}

	headers := parseLine(lines[0])
	rows := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := parseLine(line)
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(values) {
				rec[h] = values[i]
			} else {
				rec[h] = ""
			}
		}
		rows = append(rows, rec)
	}

	return &Table{Headers: headers, Rows: rows}
}

// FindRow returns the 1-based sheet row of the first data row whose column
// equals value exactly. Row 1 is the header, so the first data row is 2,
// the convention the spreadsheet itself uses. Returns 0 when no row
// matches. Matching is by parsed field equality, not substring containment,
// so an order number buried in an address cell cannot misfire.
func FindRow(blob, column, value string) int {
	lines := dataLines(blob)
	if len(lines) == 0 {
		return 0
	}

	headers := parseLine(lines[0])
	col := -1
	for i, h := range headers {
		if h == column {
			col = i
			break
		}
	}
	if col < 0 {
		return 0
	}

	for i, line := range lines[1:] {
		values := parseLine(line)
		if col < len(values) && values[col] == value {
			return i + 2
		}
	}
	return 0
}

// dataLines splits the blob on newlines and drops wholly blank lines.
func dataLines(blob string) []string {
	var out []string
	for _, line := range strings.Split(blob, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// parseLine scans one line character by character. A double quote toggles
// quoted mode; a comma outside quotes terminates the field. Every field is
// trimmed of surrounding whitespace after collection.
func parseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

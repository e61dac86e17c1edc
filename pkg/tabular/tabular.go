// Package tabular is the one CSV formatter shared by every export endpoint.
// An export declares its column schema as a []Column (header text and
// accessor), keeping per-endpoint header casing and column order distinct
// while the escaping and row assembly live here once.
package tabular

import "strings"

// Column describes one output column: the header cell and the accessor that
// produces the field value for a row.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Escape applies RFC 4180 quoting: a field containing a comma, double quote,
// or newline is wrapped in double quotes with internal quotes doubled. Other
// fields pass through untouched.
func Escape(field string) string {
	if !strings.ContainsAny(field, ",\"\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Row escapes and comma-joins a slice of cells into one CSV line (without a
// trailing newline).
func Row(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = Escape(c)
	}
	return strings.Join(escaped, ",")
}

// Format renders a complete flat CSV document: one header line from the
// column schema, then one line per row, each terminated by \n.
func Format[T any](cols []Column[T], rows []T) string {
	var b strings.Builder
	writeTable(&b, cols, rows)
	return b.String()
}

func writeTable[T any](b *strings.Builder, cols []Column[T], rows []T) {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	b.WriteString(Row(headers))
	b.WriteByte('\n')

	cells := make([]string, len(cols))
	for _, r := range rows {
		for i, c := range cols {
			cells[i] = c.Value(r)
		}
		b.WriteString(Row(cells))
		b.WriteByte('\n')
	}
}

// Headers returns the header cells of a column schema.
func Headers[T any](cols []Column[T]) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

// Cells renders rows into a raw cell grid, without CSV escaping. Non-CSV
// sinks (the workbook writer) consume column schemas through this.
func Cells[T any](cols []Column[T], rows []T) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = c.Value(r)
		}
		out[i] = cells
	}
	return out
}

// Report builds a multi-section CSV document: free-form lines, embedded
// tables and blank-line separators. The batch export composes its
// header-block / coach-table / player-table layout from this.
type Report struct {
	b strings.Builder
}

// Line appends one escaped CSV line built from the given cells.
func (r *Report) Line(cells ...string) {
	r.b.WriteString(Row(cells))
	r.b.WriteByte('\n')
}

// Blank appends n empty lines.
func (r *Report) Blank(n int) {
	for i := 0; i < n; i++ {
		r.b.WriteByte('\n')
	}
}

// String returns the assembled document.
func (r *Report) String() string {
	return r.b.String()
}

// AppendTable writes a header-plus-rows table into the report. It is a free
// function because Go methods cannot introduce type parameters.
func AppendTable[T any](r *Report, cols []Column[T], rows []T) {
	writeTable(&r.b, cols, rows)
}

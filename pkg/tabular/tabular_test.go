package tabular

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain field untouched", "Asha", "Asha"},
		{"comma wrapped", "Mehta, Asha", `"Mehta, Asha"`},
		{"internal quotes doubled", `the "wall"`, `"the ""wall"""`},
		{"newline wrapped", "line1\nline2", "\"line1\nline2\""},
		{"empty field untouched", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Round-trip property: parsing the produced CSV must recover the original
// strings, for fields containing commas, quotes and newlines.
func TestFormatRoundTrip(t *testing.T) {
	type rec struct{ name, notes string }
	cols := []Column[rec]{
		{Header: "Name", Value: func(r rec) string { return r.name }},
		{Header: "Notes", Value: func(r rec) string { return r.notes }},
	}
	rows := []rec{
		{"Mehta, Asha", `said "ready"`},
		{"Kiran", "first line\nsecond line"},
		{"plain", ""},
	}

	out := Format(cols, rows)

	parsed, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("produced CSV does not parse: %v", err)
	}
	if len(parsed) != len(rows)+1 {
		t.Fatalf("parsed %d lines, want %d", len(parsed), len(rows)+1)
	}
	if parsed[0][0] != "Name" || parsed[0][1] != "Notes" {
		t.Errorf("header = %v", parsed[0])
	}
	for i, r := range rows {
		if parsed[i+1][0] != r.name || parsed[i+1][1] != r.notes {
			t.Errorf("row %d = %v, want %q %q", i, parsed[i+1], r.name, r.notes)
		}
	}
}

func TestReportComposition(t *testing.T) {
	type item struct{ id string }
	cols := []Column[item]{
		{Header: "ID", Value: func(i item) string { return i.id }},
	}

	var r Report
	r.Line("Batch:", "U-14 Morning")
	AppendTable(&r, cols, []item{{"a"}, {"b"}})
	r.Blank(3)

	lines := strings.Split(r.String(), "\n")
	want := []string{"Batch:,U-14 Morning", "ID", "a", "b", "", "", "", ""}
	if len(lines) != len(want) {
		t.Fatalf("report has %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

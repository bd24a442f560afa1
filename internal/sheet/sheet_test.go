package sheet_test

import (
	"testing"

	"github.com/easyrokra/gateway/internal/sheet"
)

func TestParseBasic(t *testing.T) {
	blob := "Order No,Status\n1001,Pending\n1002,Complete\n"
	table := sheet.Parse(blob)

	if got := len(table.Headers); got != 2 {
		t.Fatalf("expected 2 headers, got %d", got)
	}
	if got := len(table.Rows); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}
	if table.Rows[0]["Order No"] != "1001" || table.Rows[0]["Status"] != "Pending" {
		t.Errorf("row 0 mismatch: %v", table.Rows[0])
	}
	if table.Rows[1]["Status"] != "Complete" {
		t.Errorf("row 1 mismatch: %v", table.Rows[1])
	}
}

func TestParseQuotedFieldWithCommas(t *testing.T) {
	blob := "Order No,Item Name,Weight\n7001,\"Balm,Cream\",\"50g,100g\"\n"
	table := sheet.Parse(blob)

	if got := table.Rows[0]["Item Name"]; got != "Balm,Cream" {
		t.Errorf("quoted field: expected %q, got %q", "Balm,Cream", got)
	}
	if got := table.Rows[0]["Weight"]; got != "50g,100g" {
		t.Errorf("quoted field: expected %q, got %q", "50g,100g", got)
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	blob := "Name , Price \n  Balm  ,  1250  \n"
	table := sheet.Parse(blob)

	if table.Headers[0] != "Name" || table.Headers[1] != "Price" {
		t.Errorf("headers not trimmed: %v", table.Headers)
	}
	if got := table.Rows[0]["Name"]; got != "Balm" {
		t.Errorf("value not trimmed: %q", got)
	}
	if got := table.Rows[0]["Price"]; got != "1250" {
		t.Errorf("value not trimmed: %q", got)
	}
}

func TestParseDiscardsBlankLines(t *testing.T) {
	blob := "A,B\n\n1,2\n   \n3,4\n\n"
	table := sheet.Parse(blob)

	if got := len(table.Rows); got != 2 {
		t.Fatalf("expected 2 rows after blank-line discard, got %d", got)
	}
}

func TestParseShortRowPadsMissingFields(t *testing.T) {
	blob := "A,B,C\n1,2\n"
	table := sheet.Parse(blob)

	row := table.Rows[0]
	if row["A"] != "1" || row["B"] != "2" {
		t.Errorf("bound fields wrong: %v", row)
	}
	if got, ok := row["C"]; !ok || got != "" {
		t.Errorf("missing trailing field should bind to empty string, got %q (present=%v)", got, ok)
	}
}

func TestParseLongRowDropsSurplus(t *testing.T) {
	blob := "A,B\n1,2,3,4\n"
	table := sheet.Parse(blob)

	row := table.Rows[0]
	if len(row) != 2 || row["A"] != "1" || row["B"] != "2" {
		t.Errorf("surplus fields should be dropped: %v", row)
	}
}

func TestParseEmptyBlob(t *testing.T) {
	table := sheet.Parse("")
	if len(table.Headers) != 0 || len(table.Rows) != 0 {
		t.Errorf("empty blob should yield empty table: %+v", table)
	}
}

// A value with an embedded comma round-trips through a well-formed quoted
// encoding unchanged modulo surrounding whitespace.
func TestParseRoundTripEmbeddedComma(t *testing.T) {
	want := "Rose Balm, Extra"
	blob := "Name\n\"" + want + "\"\n"
	table := sheet.Parse(blob)

	if got := table.Rows[0]["Name"]; got != want {
		t.Errorf("round trip: expected %q, got %q", want, got)
	}
}

func TestFindRow(t *testing.T) {
	blob := "Order No,Customer,Address\n" +
		"7001,Ayesha,\"House 7002, Lane 4\"\n" +
		"7002,Bilal,Main Road\n" +
		"7003,Sana,Mall Plaza\n"

	tests := []struct {
		name   string
		column string
		value  string
		want   int
	}{
		{"first data row", "Order No", "7001", 2},
		// 7002 appears inside row 2's address; structured matching must
		// still land on row 3.
		{"value embedded in another field", "Order No", "7002", 3},
		{"last row", "Order No", "7003", 4},
		{"absent value", "Order No", "9999", 0},
		{"absent column", "Nope", "7001", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sheet.FindRow(blob, tt.column, tt.value); got != tt.want {
				t.Errorf("FindRow(%q, %q) = %d, want %d", tt.column, tt.value, got, tt.want)
			}
		})
	}
}

func TestFindRowSkipsBlankLines(t *testing.T) {
	blob := "Order No\n\n7001\n\n7002\n"
	if got := sheet.FindRow(blob, "Order No", "7002"); got != 3 {
		t.Errorf("blank lines must not count toward the sheet row, got %d", got)
	}
}

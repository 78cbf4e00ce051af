package service

import (
	"strings"
	"testing"
)

func sheetRows(data [][]string) [][]string {
	rows := [][]string{
		{"", ""},
		{"", ""},
		{"Carrier", "PostNord Business Mail"},
		{"PO", "5500123.0"},
		{"", ""},
		{"", ""},
		{"", ""},
		{"Country", "Service", "Format", "Items", "Weight (KG)"},
	}
	return append(rows, data...)
}

func TestParseCarrierSheet(t *testing.T) {
	sheet, err := ParseCarrierSheet(sheetRows([][]string{
		{"France", "Priority", "Letters", "10", "1.234"},
		{"", "Priority", "Letters", "1", "0.1"}, // без страны — пропуск
		{"Germany", "Economy", "Packets", "junk", ""},
	}))
	if err != nil {
		t.Fatal(err)
	}

	if sheet.CarrierName != "PostNord Business Mail" {
		t.Errorf("carrier = %q", sheet.CarrierName)
	}
	if sheet.PONumber != "5500123" {
		t.Errorf("po = %q", sheet.PONumber)
	}
	if len(sheet.Records) != 2 {
		t.Fatalf("records = %d", len(sheet.Records))
	}

	r := sheet.Records[0]
	if r.Country != "France" || r.Items != 10 || r.Weight != 1.234 {
		t.Errorf("record[0] = %+v", r)
	}
	// мусор и пустота в числовых колонках -> 0
	r = sheet.Records[1]
	if r.Items != 0 || r.Weight != 0 {
		t.Errorf("record[1] = %+v", r)
	}
}

func TestParseCarrierSheetMissingColumn(t *testing.T) {
	rows := sheetRows(nil)
	rows[7] = []string{"Country", "Service", "Format", "Items"} // без Weight (KG)
	_, err := ParseCarrierSheet(rows)
	if err == nil || !strings.Contains(err.Error(), "Weight (KG)") {
		t.Fatalf("err = %v", err)
	}
}

func TestParseCarrierSheetTooShort(t *testing.T) {
	if _, err := ParseCarrierSheet([][]string{{"a"}, {"b"}}); err == nil {
		t.Fatal("want error for truncated sheet")
	}
}

func TestParseCarrierSheetZeroRecords(t *testing.T) {
	sheet, err := ParseCarrierSheet(sheetRows(nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(sheet.Records) != 0 {
		t.Errorf("records = %d, want 0", len(sheet.Records))
	}
}

package fileio

import (
	"strings"
	"testing"
)

func TestReadAnyRowsCSV(t *testing.T) {
	src := "Carrier,PostNord\nPO,5500123\nFrance,Priority,Letters,10,\"1,234\"\n"
	rows, err := ReadAnyRows(strings.NewReader(src), "sheet.csv")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0][1] != "PostNord" || rows[2][0] != "France" {
		t.Errorf("rows = %v", rows)
	}
}

func TestReadAnyRowsUnsupported(t *testing.T) {
	if _, err := ReadAnyRows(strings.NewReader(""), "sheet.pdf"); err == nil {
		t.Fatal("want error for unsupported extension")
	}
}

func TestCell(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c"}}
	cases := []struct {
		row, col int
		want     string
	}{
		{0, 1, "b"},
		{1, 0, "c"},
		{1, 5, ""}, // за пределами строки
		{9, 0, ""}, // за пределами листа
		{-1, 0, ""},
	}
	for _, c := range cases {
		if got := Cell(rows, c.row, c.col); got != c.want {
			t.Errorf("Cell(%d, %d) = %q, want %q", c.row, c.col, got, c.want)
		}
	}
}

func TestNormalizeCell(t *testing.T) {
	if got := normalizeCell(" France "); got != "France" {
		t.Errorf("normalizeCell = %q", got)
	}
}

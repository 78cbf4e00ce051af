package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadAnyRows — выберет парсер по расширению и вернёт лист как срез строк
// (AoA). Для carrier sheet важны и метаданные над шапкой, поэтому строки
// отдаются как есть, без схлопывания в map.
func ReadAnyRows(r io.Reader, filename string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSXRows(r)
	case ".xls":
		return readXLSRows(r)
	case ".csv":
		return readCSVRows(r)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// Cell — безопасный доступ: за пределами строки возвращает "".
func Cell(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) {
		return ""
	}
	if col < 0 || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}

func normalizeCell(v string) string {
	v = strings.ReplaceAll(v, "\u00A0", " ")
	return strings.TrimSpace(v)
}

package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var rxKeepNums = regexp.MustCompile(`[^\d\.\-]`)

// ParseFloat парсит "1 234,50", "1.234", " 12 " (NBSP/NNBSP) и т.п.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// убрать неразрывные/узкие пробелы и обычные пробелы
	repl := strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", "\t", "", ",", ".")
	s = repl.Replace(s)
	s = rxKeepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CoerceFloat — пустое/мусорное значение ячейки считаем нулём.
// Единственное место, где молчаливое восстановление — осознанное решение.
func CoerceFloat(s string) float64 {
	f, _ := ParseFloat(s)
	return f
}

// CoerceInt — как CoerceFloat, но с усечением дробной части ("10.0" -> 10).
func CoerceInt(s string) int {
	f, ok := ParseFloat(s)
	if !ok {
		return 0
	}
	return int(f)
}

// Round3 — вес в манифесте всегда до трёх знаков.
func Round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

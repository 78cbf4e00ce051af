package carrier

import (
	"regexp"
	"strconv"
	"strings"
)

// Текстовые весовые диапазоны встречаются в трёх видах:
// "0 - 2000 grs", "51-200g", "0g-2000g". Суффиксы и пробелы вокруг
// дефиса плавают от шаблона к шаблону.
var rxBandSuffix = regexp.MustCompile(`(?i)grs?|g`)

const (
	fullRangeLowerG = 0
	fullRangeUpperG = 2000
)

// ParseBandText разбирает текстовый диапазон в (lower, upper) в граммах.
// Неразборчивый текст -> полный диапазон 0–2000, не ошибка: шаблоны
// перевозчиков слишком разношёрстны, чтобы падать на каждой опечатке.
func ParseBandText(s string) (int, int) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fullRangeLowerG, fullRangeUpperG
	}
	cleaned := rxBandSuffix.ReplaceAllString(strings.ToLower(s), "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	parts := strings.Split(cleaned, "-")
	if len(parts) == 2 {
		lower, err1 := strconv.Atoi(parts[0])
		upper, err2 := strconv.Atoi(parts[1])
		if err1 == nil && err2 == nil {
			return lower, upper
		}
	}
	return fullRangeLowerG, fullRangeUpperG
}

// ParseBandNumbers — вариант с двумя явными числовыми колонками
// (в ячейках может оказаться "500.0").
func ParseBandNumbers(lowerRaw, upperRaw string) (int, int, bool) {
	lower, err1 := strconv.ParseFloat(strings.TrimSpace(lowerRaw), 64)
	upper, err2 := strconv.ParseFloat(strings.TrimSpace(upperRaw), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return int(lower), int(upper), true
}

package carrier

import (
	"fmt"
	"strings"
)

// ErrUnsupportedCarrier — фатальная конфигурационная ошибка: ни одна запись
// не обрабатывается, прогон завершается до основного цикла.
type UnsupportedCarrierError struct {
	Name   string
	Reason string
}

func (e *UnsupportedCarrierError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s is not a supported carrier: %s", e.Reason, e.Name)
	}
	return fmt.Sprintf("unknown carrier: %s. Available: %v", e.Name, List())
}

// denyList: известные неподдерживаемые алиасы. Отдельно от matchers, чтобы
// «похожее» имя не уехало в ближайшую стратегию.
var denyList = []struct {
	substr string
	reason string
}{
	{"jersey post", "Jersey Post"},
	{"publications", "Asendia Publications"},
	{"mmp parcel", "PostNord MMP Parcel"},
	{"lettershop", "Lettershop"},
}

// matchers: подстрока (lower-case) → фабрика. Порядок важен: более
// специфичные варианты выше.
var matchers = []struct {
	substr  string
	factory func() Strategy
}{
	{"postnord", func() Strategy { return NewPostNord() }},
	{"spring", func() Strategy { return NewSpring() }},
	{"air business", func() Strategy { return NewAirBusiness() }},
	{"airbusiness", func() Strategy { return NewAirBusiness() }},
	{"mail americas", func() Strategy { return NewMailAmericas() }},
	{"mail africa", func() Strategy { return NewMailAmericas() }},
	{"landmark", func() Strategy { return NewLandmark() }},
	{"deutsche", func() Strategy { return NewDeutschePost() }},
}

// ForName подбирает стратегию по имени перевозчика из carrier sheet:
// регистронезависимое совпадение по подстроке + явный deny-list.
func ForName(name string) (Strategy, error) {
	lower := strings.ToLower(strings.TrimSpace(name))

	for _, d := range denyList {
		if strings.Contains(lower, d.substr) {
			return nil, &UnsupportedCarrierError{Name: name, Reason: d.reason}
		}
	}

	// Asendia различается годом шаблона.
	if strings.Contains(lower, "asendia") {
		if strings.Contains(name, "2025") {
			return NewAsendia2025(), nil
		}
		return NewAsendia(), nil
	}

	// United Business: сперва более специфичные ETOE-варианты.
	if strings.Contains(lower, "united business") || strings.Contains(lower, "ubl") {
		switch {
		case strings.Contains(lower, "spl"):
			return NewUnitedBusinessSPL(), nil
		case strings.Contains(lower, "nzp"), strings.Contains(lower, "etoe"),
			strings.Contains(lower, "t&d"), strings.Contains(lower, "t d"):
			return NewUnitedBusinessNZP(), nil
		}
		return NewUnitedBusinessADS(), nil
	}

	for _, m := range matchers {
		if strings.Contains(lower, m.substr) {
			return m.factory(), nil
		}
	}

	return nil, &UnsupportedCarrierError{Name: name}
}

// List — имена поддерживаемых перевозчиков (для ошибок и /carriers).
func List() []string {
	return []string{
		"Asendia 2026",
		"Asendia 2025",
		"PostNord",
		"Spring",
		"Air Business",
		"Mail Americas",
		"Landmark Global",
		"Deutsche Post",
		"United Business ADS",
		"United Business NZP ETOE",
		"United Business SPL ETOE",
	}
}

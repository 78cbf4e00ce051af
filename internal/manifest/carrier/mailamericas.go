package carrier

import (
	"fmt"
	"strings"
	"time"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

// Mail Americas/Africa: три листа с разной механикой. Africa и Americas —
// weight-break (явные числовые колонки lower/upper), Europe & ROW —
// форматные колонки и текстовые диапазоны ("0 - 2000 grs").
type MailAmericas struct {
	mapping CountryMapping
	idx     *Index
}

const (
	maSheetAfrica    = "Mail Africa 2025"
	maSheetAmericas  = "Mail Americas 2025"
	maSheetEuropeROW = "Europe & ROW 2025"

	sectionWeightBreak = "weight-break"
	sectionFormatBased = "format-based"
)

// Africa/Americas: колонки по сервису (items, kg).
var maServiceColumns = map[model.Service][2]int{
	model.ServiceEconomy:  {5, 6},
	model.ServicePriority: {7, 8},
}

// Europe & ROW: колонки по формату.
var maFormatColumns = map[model.Format][2]int{
	model.FormatLetters: {4, 5},
	model.FormatFlats:   {6, 7},
	model.FormatPackets: {8, 9},
}

var maBoundaryTokens = map[string]struct{}{
	"TOTALS:":          {},
	"Indicia Service":  {},
	"GRAND TOTAL:":     {},
}

var maRegionHeaders = map[string]struct{}{
	"AFRICA": {}, "AMERICAS": {}, "ASIA": {}, "EUROPE": {},
	"FAR EAST & AUSTRALASIA": {}, "MIDDLE EAST": {}, "OCEANIA": {},
}

func NewMailAmericas() *MailAmericas {
	return &MailAmericas{
		mapping: CountryMapping{
			"Vietnam":                      "Viet Nam",
			"Viet nam":                     "Viet Nam",
			"UAE":                          "United Arab Emirates",
			"U.A.E.":                       "United Arab Emirates",
			"Czech Republic":               "Czech Rep",
			"South Korea":                  "Korea",
			"Republic of Korea":            "Korea",
			"DRC":                          "Congo, Democratic Republic.",
			"Democratic Republic of Congo": "Congo, Democratic Republic.",
			"Republic of Congo":            "Congo, Republic of",
			"Cote d'Ivoire":                "Ivory Coast",
			"Côte d'Ivoire":                "Ivory Coast",
			"Bosnia":                       "Bosnia & Herzegovina",
			"Serbia":                       "Serbia & Montenegro",
			"Montenegro":                   "Serbia & Montenegro",
			"Central African Republic":     "Central African Rep.",
		},
	}
}

func (m *MailAmericas) Name() string         { return "Mail Americas" }
func (m *MailAmericas) TemplateFile() string { return "Mail_America_Africa_2025.xlsx" }

func (m *MailAmericas) MapCountry(raw string) string { return m.mapping.Map(raw) }

func maBoundary(s string) bool {
	_, ok := maBoundaryTokens[strings.TrimSpace(s)]
	return ok
}

// scanWeightBreakSheet: страны в колонке B, диапазон в числовых колонках C/D.
// Указатель «текущая страна» живёт до следующей непустой страны или границы.
func (m *MailAmericas) scanWeightBreakSheet(src store.Store, idx *Index, sheet string, lastRow int) {
	var current *Location
	for row := 9; row <= lastRow; row++ {
		country := strings.TrimSpace(src.Get(sheet, row, 2))
		lowerRaw := src.Get(sheet, row, 3)
		upperRaw := src.Get(sheet, row, 4)

		if country != "" && !maBoundary(country) {
			current = &Location{Sheet: sheet, Row: row, Section: sectionWeightBreak}
			idx.Add(country, model.ServicePriority, current)
			idx.Add(country, model.ServiceEconomy, current)
		}

		if current == nil {
			continue
		}
		if lower, upper, ok := ParseBandNumbers(lowerRaw, upperRaw); ok {
			current.Bands = append(current.Bands, Band{Row: row, LowerG: lower, UpperG: upper})
		}
	}
}

// scanFormatSheet: Europe & ROW — диапазон текстом, заголовки регионов
// сбрасывают текущую страну.
func (m *MailAmericas) scanFormatSheet(src store.Store, idx *Index, sheet string, lastRow int) {
	var current *Location
	for row := 9; row <= lastRow; row++ {
		country := strings.TrimSpace(src.Get(sheet, row, 2))
		bandText := strings.TrimSpace(src.Get(sheet, row, 3))

		if country != "" {
			if _, isRegion := maRegionHeaders[country]; isRegion || maBoundary(country) {
				current = nil
				continue
			}
			current = &Location{Sheet: sheet, Row: row, Section: sectionFormatBased}
			idx.Add(country, model.ServicePriority, current)
			idx.Add(country, model.ServiceEconomy, current)
		}

		if current == nil || bandText == "" {
			continue
		}
		lower, upper := ParseBandText(bandText)
		current.Bands = append(current.Bands, Band{Row: row, LowerG: lower, UpperG: upper})
	}
}

func (m *MailAmericas) BuildIndex(src store.Store) (*Index, error) {
	if m.idx != nil {
		return m.idx, nil
	}
	idx := NewIndex()
	m.scanWeightBreakSheet(src, idx, maSheetAfrica, 66)
	m.scanWeightBreakSheet(src, idx, maSheetAmericas, 122)
	m.scanFormatSheet(src, idx, maSheetEuropeROW, 122)
	m.idx = idx
	return idx, nil
}

func (m *MailAmericas) Resolve(idx *Index, rec model.ShipmentRecord) (model.Target, error) {
	mapped := m.MapCountry(rec.Country)
	byService, ok := idx.Lookup(mapped)
	if !ok {
		byService, ok = idx.LookupFold(mapped)
	}
	if !ok {
		return model.Target{}, errCountryNotFound(rec.Country, mapped)
	}

	svc := NormalizeService(rec.Service)
	loc, ok := byService[svc]
	if !ok {
		return model.Target{}, errServiceUnavailable(svc, mapped)
	}

	if loc.Section == sectionFormatBased {
		if len(loc.Bands) == 0 {
			return model.Target{}, &ResolveError{
				Reason:  ReasonCountryNotFound,
				Message: fmt.Sprintf("no row mapping for %s in Europe & ROW", rec.Country),
			}
		}
		// Формат без нормализации уехал бы мимо колонок — неизвестный
		// формат у этого перевозчика консолидируется во Flats.
		format, ok := NormalizeFormat(rec.Format)
		if !ok {
			format = model.FormatFlats
		}
		cols := maFormatColumns[format]
		return cellTarget(loc.Sheet, loc.Bands[0].Row, cols[0], cols[1]), nil
	}

	// Weight-break: без совпадения (после допуска ±1 г) — отказ, а не
	// последний диапазон. Политика именно этого перевозчика.
	avgG := AvgWeightG(rec)
	row, matched := pickBand(loc.Bands, avgG)
	if !matched {
		return model.Target{}, errNoWeightBreak(mapped, avgG)
	}

	svcCols, ok := maServiceColumns[svc]
	if !ok {
		svcCols = maServiceColumns[model.ServiceEconomy]
	}
	return cellTarget(loc.Sheet, row, svcCols[0], svcCols[1]), nil
}

func (m *MailAmericas) SetMetadata(st store.Store, poNumber, shipmentDate string) {
	formatted := shipmentDate
	if t, err := time.Parse("2006-01-02", shipmentDate); err == nil {
		formatted = t.Format("02/01/2006")
	}
	for _, sheet := range []string{maSheetAfrica, maSheetAmericas, maSheetEuropeROW} {
		st.Set(sheet, 5, 5, "REF: "+poNumber) // E5
		dateCol := 7                          // G5
		if sheet == maSheetEuropeROW {
			dateCol = 8 // H5
		}
		st.Set(sheet, 5, dateCol, "DATE: "+formatted)
	}
}

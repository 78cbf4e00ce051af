package carrier

import (
	"strings"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

// United Business ADS Mail: один лист, Untracked Economy Mail. У части стран
// (Китай, Россия, Украина) несколько строк под разные весовые диапазоны,
// диапазон записан текстом в колонке B ("0g-2000g", "51-200g").
type UnitedBusinessADS struct {
	mapping CountryMapping
	idx     *Index
	sheet   string
}

const ubsScanStart = 9

var ubsFormatColumns = map[model.Format][2]int{
	model.FormatLetters: {3, 4},
	model.FormatFlats:   {5, 6},
	model.FormatPackets: {7, 8},
}

func NewUnitedBusinessADS() *UnitedBusinessADS {
	return &UnitedBusinessADS{
		sheet: "Manifest",
		mapping: CountryMapping{
			"Bosnia and Herzegovina":      "Bosnia & Herzegovina",
			"Bosnia-Herzegovina":          "Bosnia & Herzegovina",
			"Czechia":                     "Czech Republic",
			"Moldova":                     "Moldova Republic",
			"Republic of Moldova":         "Moldova Republic",
			"Moldova, Republic of":        "Moldova Republic",
			"North Macedonia":             "Macedonia",
			"Republic of North Macedonia": "Macedonia",
			"Serbia and Montenegro":       "Serbia & Montenegro",
			"Serbia":                      "Serbia & Montenegro",
			"Montenegro":                  "Serbia & Montenegro",
			"Myanmar (Burma)":             "Myanmar",
			"Taiwan, Province of China":   "Taiwan",
			"Russian Federation":          "Russia",
			"Viet Nam":                    "Vietnam",
			// в шаблоне исторические опечатки
			"Kyrgyzstan":  "Kyrgystan",
			"Afghanistan": "Afganistan",
			"Azerbaijan":  "Azerbajan",
		},
	}
}

func (u *UnitedBusinessADS) Name() string         { return "United Business ADS" }
func (u *UnitedBusinessADS) TemplateFile() string { return "United_Business.xlsx" }

func (u *UnitedBusinessADS) MapCountry(raw string) string { return u.mapping.Map(raw) }

// BuildIndex: указатель «текущая страна» живёт, пока не встретится новая
// непустая ячейка страны; каждая строка до этого — ещё один диапазон.
func (u *UnitedBusinessADS) BuildIndex(src store.Store) (*Index, error) {
	if u.idx != nil {
		return u.idx, nil
	}
	idx := NewIndex()

	var current *Location
	maxRow := src.MaxRow(u.sheet)
	for row := ubsScanStart; row <= maxRow; row++ {
		country := strings.TrimSpace(src.Get(u.sheet, row, 1))
		bandText := strings.TrimSpace(src.Get(u.sheet, row, 2))

		if country != "" {
			// Страна может повторяться на каждой строке диапазона —
			// продолжаем существующую запись, а не заводим новую.
			if byService, ok := idx.Lookup(country); ok {
				current = byService[model.ServiceEconomy]
			} else {
				current = &Location{Sheet: u.sheet, Row: row}
				idx.Add(country, model.ServiceEconomy, current)
			}
		}
		if current == nil {
			continue
		}

		lower, upper := ParseBandText(bandText)
		current.Bands = append(current.Bands, Band{Row: row, LowerG: lower, UpperG: upper})
	}

	u.idx = idx
	return idx, nil
}

func (u *UnitedBusinessADS) Resolve(idx *Index, rec model.ShipmentRecord) (model.Target, error) {
	mapped := u.MapCountry(rec.Country)
	byService, ok := idx.Lookup(mapped)
	if !ok {
		return model.Target{}, errCountryNotFound(rec.Country, mapped)
	}

	// Единственный сервис — Economy, сырое значение игнорируем.
	loc := byService[model.ServiceEconomy]

	format, ok := NormalizeFormat(rec.Format)
	if !ok {
		return model.Target{}, errUnknownFormat(rec.Format)
	}

	avgG := AvgWeightG(rec)
	row, matched := pickBand(loc.Bands, avgG)
	if !matched {
		// Политика ADS: без совпадения берём последний (самый тяжёлый) диапазон.
		row = loc.Bands[len(loc.Bands)-1].Row
	}

	cols := ubsFormatColumns[format]
	return cellTarget(loc.Sheet, row, cols[0], cols[1]), nil
}

func (u *UnitedBusinessADS) SetMetadata(st store.Store, poNumber, shipmentDate string) {
	st.Set(u.sheet, 1, 6, poNumber)     // F1, Ref. Nr.
	st.Set(u.sheet, 2, 6, shipmentDate) // F2
}

package carrier

import (
	"strings"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

// Asendia UK Business Mail: два листа-манифеста (Priority / Non-Priority),
// одна строка на страну. EU-блок с колонками по формату, ниже ROW-блок,
// разбитый на левую и правую половины (второй список стран в колонке K
// на тех же строках).
type Asendia struct {
	name     string
	template string
	mapping  CountryMapping
	idx      *Index
}

const (
	asendiaScanStart  = 13
	asendiaRowSection = 76 // с этой строки начинается Rest-of-World блок

	asendiaCountryCol      = 2
	asendiaRightCountryCol = 11
)

// Колонки EU-блока по формату (items, weight).
var asendiaEUColumns = map[model.Format][2]int{
	model.FormatLetters: {5, 6},
	model.FormatFlats:   {10, 11},
	model.FormatPackets: {15, 16},
}

// ROW-блок: форматы консолидированы, колонки зависят только от половины.
var asendiaROWColumns = map[string][2]int{
	sectionROWLeft:  {5, 6},
	sectionROWRight: {15, 16},
}

const (
	sectionEU       = "eu"
	sectionROWLeft  = "row-left"
	sectionROWRight = "row-right"
)

var asendiaSkipTokens = map[string]struct{}{
	"Asendia UK Business Mail": {},
	"Work Required":            {},
	"Customer Name":            {},
	"Office Check":             {},
	"Subtotal":                 {},
	"TOTAL":                    {},
	"Shipment date":            {},
	"Customer Ref":             {},
	"PO":                       {},
}

var asendiaSheets = []struct {
	Name    string
	Service model.Service
}{
	{"Priority Manifest", model.ServicePriority},
	{"Non-Priority Manifest", model.ServiceEconomy},
}

func NewAsendia() *Asendia {
	return &Asendia{
		name:     "Asendia 2026",
		template: "Asendia_UK_Business_2026_Mail_Manifest.xlsx",
		mapping:  asendiaCountryMapping,
	}
}

// NewAsendia2025 — раскладка идентична 2026, другой файл шаблона.
func NewAsendia2025() *Asendia {
	a := NewAsendia()
	a.name = "Asendia 2025"
	a.template = "Asendia_UK_Business_Mail_2025.xlsx"
	return a
}

func (a *Asendia) Name() string         { return a.name }
func (a *Asendia) TemplateFile() string { return a.template }

func (a *Asendia) MapCountry(raw string) string { return a.mapping.Map(raw) }

// scanState — явная машина состояний прохода по строкам манифеста.
type scanState int

const (
	stateBeforeData scanState = iota
	stateInPrimary            // EU-блок
	stateInSecondary          // ROW-блок
)

// asendiaAdvance переводит состояние по номеру строки.
func asendiaAdvance(st scanState, row int) scanState {
	switch {
	case row >= asendiaRowSection:
		return stateInSecondary
	case row >= asendiaScanStart:
		if st == stateBeforeData {
			return stateInPrimary
		}
	}
	return st
}

func asendiaSkip(country string) bool {
	if _, ok := asendiaSkipTokens[country]; ok {
		return true
	}
	return strings.HasPrefix(country, "Valid from")
}

func (a *Asendia) BuildIndex(src store.Store) (*Index, error) {
	if a.idx != nil {
		return a.idx, nil
	}
	idx := NewIndex()

	for _, sh := range asendiaSheets {
		st := stateBeforeData
		maxRow := src.MaxRow(sh.Name)
		for row := asendiaScanStart; row <= maxRow; row++ {
			st = asendiaAdvance(st, row)

			country := strings.TrimSpace(src.Get(sh.Name, row, asendiaCountryCol))
			if country == "" || asendiaSkip(country) {
				continue
			}

			if st == stateInSecondary {
				// Правая половина ROW-блока живёт в колонке K тех же строк.
				right := strings.TrimSpace(src.Get(sh.Name, row, asendiaRightCountryCol))
				if right != "" && !asendiaSkip(right) {
					idx.Add(right, sh.Service, &Location{
						Sheet:   sh.Name,
						Row:     row,
						Section: sectionROWRight,
					})
				}
				idx.Add(country, sh.Service, &Location{
					Sheet:   sh.Name,
					Row:     row,
					Section: sectionROWLeft,
				})
				continue
			}

			idx.Add(country, sh.Service, &Location{
				Sheet:   sh.Name,
				Row:     row,
				Section: sectionEU,
			})
		}
	}

	a.idx = idx
	return idx, nil
}

func (a *Asendia) Resolve(idx *Index, rec model.ShipmentRecord) (model.Target, error) {
	mapped := a.MapCountry(rec.Country)
	byService, ok := idx.Lookup(mapped)
	if !ok {
		return model.Target{}, errCountryNotFound(rec.Country, mapped)
	}

	svc := NormalizeService(rec.Service)
	loc, ok := byService[svc]
	if !ok {
		return model.Target{}, errServiceUnavailable(svc, mapped)
	}

	if loc.Section == sectionEU {
		format, ok := NormalizeFormat(rec.Format)
		if !ok {
			return model.Target{}, errUnknownFormat(rec.Format)
		}
		cols := asendiaEUColumns[format]
		return cellTarget(loc.Sheet, loc.Row, cols[0], cols[1]), nil
	}

	cols := asendiaROWColumns[loc.Section]
	return cellTarget(loc.Sheet, loc.Row, cols[0], cols[1]), nil
}

func (a *Asendia) SetMetadata(st store.Store, poNumber, shipmentDate string) {
	for _, sh := range asendiaSheets {
		st.Set(sh.Name, 6, 9, poNumber)      // I6
		st.Set(sh.Name, 6, 14, shipmentDate) // N6
	}
}

// Имена из carrier sheet → имена в манифесте Asendia.
var asendiaCountryMapping = CountryMapping{
	"United States of America":         "United States",
	"Aland Islands":                    "Åland Islands",
	"South Korea":                      "Korea, Republic of",
	"Taiwan":                           "Taiwan, Province of China",
	"Bolivia":                          "Bolivia, Plurinational State of",
	"Reunion":                          "Réunion",
	"Saint Martin":                     "Saint Martin (French part)",
	"Sint Maarten":                     "Sint Maarten (Dutch part)",
	"Falkland Islands":                 "Falkland Islands (Malvinas)",
	"Saint Helena":                     "Saint Helena, Ascension and Tristan da Cunha",
	"Svalbard":                         "Svalbard and Jan Mayen",
	"Palestine":                        "Palestine, State of",
	"Democratic Republic of the Congo": "Democratic Republic of Congo",
	"Antigua and Barbuda":              "Antigua And Barbuda",
	"Saint Kitts and Nevis":            "Saint Kitts And Nevis",
	"Sao Tome and Principe":            "Sao Tome And Principe",
	"Trinidad and Tobago":              "Trinidad And Tobago",
	"Turks and Caicos Islands":         "Turks And Caicos Islands",
	"Czech Republic":                   "Czechia",
	"Côte d'Ivoire":                    "Cote d'Ivoire",
	"Ivory Coast":                      "Cote d'Ivoire",
	"Vietnam":                          "Viet Nam",
	"Laos":                             "Lao People's Democratic Republic",
	"Russia":                           "Russian Federation",
	"Venezuela":                        "Venezuela, Bolivarian Republic of",
	"Iran":                             "Iran, Islamic Republic of",
	"Syria":                            "Syrian Arab Republic",
	"Tanzania":                         "Tanzania, United Republic of",
	"Micronesia":                       "Micronesia, Federated States of",
	"Moldova":                          "Moldova, Republic of",
	"Brunei":                           "Brunei Darussalam",
	"North Korea":                      "Korea, Democratic People's Republic of",
	"Republic of the Congo":            "Congo",
	"Virgin Islands (US)":              "Virgin Islands, U.S.",
	"Virgin Islands (British)":         "Virgin Islands, British",
	"Bonaire":                          "Bonaire, Sint Eustatius and Saba",
	"Eswatini":                         "Swaziland",
	"Myanmar (Burma)":                  "Myanmar",
	"East Timor":                       "Timor-Leste",
	"Macedonia":                        "North Macedonia",
	"Cape Verde":                       "Cabo Verde",
}

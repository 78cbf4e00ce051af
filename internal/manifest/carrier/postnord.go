package carrier

import (
	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

// PostNord Business Mail: четыре листа-матрицы. Позиции стран фиксированы
// в шаблоне, поэтому индекс статический — надёжнее, чем сканировать
// объединённые ячейки.
type PostNord struct {
	mapping CountryMapping
	idx     *Index
}

const (
	sectionEurope = "europe" // колонки по сервису+формату
)

// Main Europe / Rest of Europe: Priority C-H, Economy I-N.
var postnordEuropeColumns = map[model.Service]map[model.Format][2]int{
	model.ServicePriority: {
		model.FormatLetters: {3, 4},
		model.FormatFlats:   {5, 6},
		model.FormatPackets: {7, 8},
	},
	model.ServiceEconomy: {
		model.FormatLetters: {9, 10},
		model.FormatFlats:   {11, 12},
		model.FormatPackets: {13, 14},
	},
}

// ROW-листы: левая половина A-G, правая H-N; сервис зашит в строку, не в колонку.
var postnordROWColumns = map[string]map[model.Format][2]int{
	sectionROWLeft: {
		model.FormatLetters: {2, 3},
		model.FormatFlats:   {4, 5},
		model.FormatPackets: {6, 7},
	},
	sectionROWRight: {
		model.FormatLetters: {9, 10},
		model.FormatFlats:   {11, 12},
		model.FormatPackets: {13, 14},
	},
}

func NewPostNord() *PostNord {
	return &PostNord{mapping: postnordCountryMapping}
}

func (p *PostNord) Name() string         { return "PostNord" }
func (p *PostNord) TemplateFile() string { return "PostNord.xlsx" }

func (p *PostNord) MapCountry(raw string) string { return p.mapping.Map(raw) }

// BuildIndex собирает индекс из статических таблиц; src не нужен.
func (p *PostNord) BuildIndex(_ store.Store) (*Index, error) {
	if p.idx != nil {
		return p.idx, nil
	}
	idx := NewIndex()

	addBoth := func(sheet string, countries map[string]int) {
		for country, row := range countries {
			loc := &Location{Sheet: sheet, Row: row, Section: sectionEurope}
			idx.Add(country, model.ServicePriority, loc)
			idx.Add(country, model.ServiceEconomy, loc)
		}
	}
	addOne := func(sheet string, svc model.Service, section string, countries map[string]int) {
		for country, row := range countries {
			idx.Add(country, svc, &Location{Sheet: sheet, Row: row, Section: section})
		}
	}

	addBoth("Main Europe", postnordMainEurope)
	addBoth("Rest of Europe", postnordRestOfEurope)

	addOne("ROW", model.ServicePriority, sectionROWLeft, postnordROWPriorityLeft)
	addOne("ROW", model.ServicePriority, sectionROWRight, postnordROWPriorityRight)
	addOne("ROW", model.ServiceEconomy, sectionROWLeft, postnordROWEconomyLeft)
	addOne("ROW", model.ServiceEconomy, sectionROWRight, postnordROWEconomyRight)

	addOne("ROW (Continued)", model.ServicePriority, sectionROWLeft, postnordROWContPriorityLeft)
	addOne("ROW (Continued)", model.ServicePriority, sectionROWRight, postnordROWContPriorityRight)
	addOne("ROW (Continued)", model.ServiceEconomy, sectionROWLeft, postnordROWContEconomyLeft)
	addOne("ROW (Continued)", model.ServiceEconomy, sectionROWRight, postnordROWContEconomyRight)

	p.idx = idx
	return idx, nil
}

func (p *PostNord) Resolve(idx *Index, rec model.ShipmentRecord) (model.Target, error) {
	mapped := p.MapCountry(rec.Country)
	byService, ok := idx.Lookup(mapped)
	if !ok {
		return model.Target{}, errCountryNotFound(rec.Country, mapped)
	}

	svc := NormalizeService(rec.Service)
	loc, ok := byService[svc]
	if !ok {
		return model.Target{}, errServiceUnavailable(svc, mapped)
	}

	format, ok := NormalizeFormat(rec.Format)
	if !ok {
		return model.Target{}, errUnknownFormat(rec.Format)
	}

	var cols [2]int
	if loc.Section == sectionEurope {
		cols = postnordEuropeColumns[svc][format]
	} else {
		cols = postnordROWColumns[loc.Section][format]
	}
	return cellTarget(loc.Sheet, loc.Row, cols[0], cols[1]), nil
}

func (p *PostNord) SetMetadata(st store.Store, poNumber, shipmentDate string) {
	st.Set("Summary", 7, 8, poNumber)     // H7, Customer Ref
	st.Set("Summary", 8, 3, shipmentDate) // C8, Shipment Date
}

var postnordCountryMapping = CountryMapping{
	"United States of America":         "USA",
	"United States":                    "USA",
	"Czech Republic":                   "Czech Rep",
	"Czechia":                          "Czech Rep",
	"Bosnia and Herzegovina":           "Bosnia Her.",
	"Bosnia-Herzegovina":               "Bosnia Her.",
	"North Macedonia":                  "Macedonia",
	"Republic of North Macedonia":      "Macedonia",
	"Côte d'Ivoire":                    "Ivory Coast",
	"Cote d'Ivoire":                    "Ivory Coast",
	"Democratic Republic of the Congo": "Congo, Dem. Rep.",
	"Democratic Republic of Congo":     "Congo, Dem. Rep.",
	"Republic of the Congo":            "Congo, Rep. of",
	"Congo":                            "Congo, Rep. of",
	"Central African Republic":         "Central African Rep.",
	"Laos":                             "Laos, Rep. of",
	"Lao People's Democratic Republic": "Laos, Rep. of",
	"South Korea":                      "Korea",
	"Korea, Republic of":               "Korea",
	"Viet Nam":                         "Vietnam",
	"Brunei":                           "Brunei Darussalam",
	"United Arab Emirates":             "UAE",
	"Antigua and Barbuda":              "Antigua & Barbuda",
	"Trinidad and Tobago":              "Trinidad & Tobago",
	"Saint Kitts and Nevis":            "St. Kitts & Nevis",
	"Saint Lucia":                      "St. Lucia",
	"Saint Vincent":                    "St. Vincent",
	"Saint Vincent and the Grenadines": "St. Vincent",
	"Turks and Caicos Islands":         "Turks & Caicos",
	"Turks and Caicos":                 "Turks & Caicos",
	"Réunion":                          "Reunion",
	"Russian Federation":               "Russia",
	"Eswatini":                         "Swaziland",
	"Taiwan, Province of China":        "Taiwan",
	"Bolivia, Plurinational State of":  "Bolivia",
	"Venezuela, Bolivarian Republic of": "Venezuela",
	"Iran, Islamic Republic of":         "Iran",
	"Moldova, Republic of":              "Moldova",
	"Tanzania, United Republic of":      "Tanzania",
	"Micronesia, Federated States of":   "Micronesia",
	// в шаблоне встречаются имена с хвостовыми/ведущими пробелами
	"Norway ":     "Norway",
	"Romania ":    "Romania",
	"Slovakia ":   "Slovakia",
	" Montenegro": "Montenegro",
	"Russia ":     "Russia",
	"Serbia ":     "Serbia",
	"Turkey ":     "Turkey",
	"Ukraine ":    "Ukraine",
	"Kazakhstan ": "Kazakhstan",
}

package carrier

import (
	"strings"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

// United Business ETOE-манифесты (NZP и SPL): один лист Untracked Priority,
// одна строка на страну, единственный сервис Priority. Различаются только
// шаблоном, списком стран и диапазоном строк.
type UnitedBusinessETOE struct {
	name     string
	template string
	startRow int
	endRow   int
	mapping  CountryMapping
	idx      *Index
}

const etoeSheet = "Untracked Priority"

// P/G/E-форматы: P = Letters, G = Flats, E = Packets.
var etoeFormatColumns = map[model.Format][2]int{
	model.FormatLetters: {7, 8},
	model.FormatFlats:   {9, 10},
	model.FormatPackets: {11, 12},
}

func NewUnitedBusinessNZP() *UnitedBusinessETOE {
	return &UnitedBusinessETOE{
		name:     "United Business NZP ETOE",
		template: "UBL_CP_Pre_Alert_T_D-ETOE.xlsx",
		startRow: 6,
		endRow:   50,
		mapping: CountryMapping{
			"Czech Republic":            "Czechia",
			"Taiwan":                    "Taiwan, China",
			"Taiwan, Province of China": "Taiwan, China",
			"Korea":                     "South Korea",
			"Republic of Korea":         "South Korea",
			"Korea, Republic of":        "South Korea",
		},
	}
}

func NewUnitedBusinessSPL() *UnitedBusinessETOE {
	return &UnitedBusinessETOE{
		name:     "United Business SPL ETOE",
		template: "UBL_CP_Pre_Alert_SPL-ETOE.xlsx",
		startRow: 6,
		endRow:   33,
		mapping: CountryMapping{
			"Taiwan":                      "Taiwan, China",
			"Taiwan, Province of China":   "Taiwan, China",
			"Korea":                       "South Korea",
			"Republic of Korea":           "South Korea",
			"Korea, Republic of":          "South Korea",
			"Republic of North Macedonia": "North Macedonia",
			"Macedonia":                   "North Macedonia",
		},
	}
}

func (u *UnitedBusinessETOE) Name() string         { return u.name }
func (u *UnitedBusinessETOE) TemplateFile() string { return u.template }

func (u *UnitedBusinessETOE) MapCountry(raw string) string { return u.mapping.Map(raw) }

func (u *UnitedBusinessETOE) BuildIndex(src store.Store) (*Index, error) {
	if u.idx != nil {
		return u.idx, nil
	}
	idx := NewIndex()

	for row := u.startRow; row <= u.endRow; row++ {
		country := strings.TrimSpace(src.Get(etoeSheet, row, 2)) // B = Destination
		if country == "" {
			continue
		}
		idx.Add(country, model.ServicePriority, &Location{Sheet: etoeSheet, Row: row})
	}

	u.idx = idx
	return idx, nil
}

func (u *UnitedBusinessETOE) Resolve(idx *Index, rec model.ShipmentRecord) (model.Target, error) {
	mapped := u.MapCountry(rec.Country)
	byService, ok := idx.Lookup(mapped)
	if !ok {
		return model.Target{}, errCountryNotFound(rec.Country, mapped)
	}

	// Единственный сервис — Priority.
	loc := byService[model.ServicePriority]

	format, ok := NormalizeFormat(rec.Format)
	if !ok {
		return model.Target{}, errUnknownFormat(rec.Format)
	}

	cols := etoeFormatColumns[format]
	return cellTarget(loc.Sheet, loc.Row, cols[0], cols[1]), nil
}

func (u *UnitedBusinessETOE) SetMetadata(st store.Store, poNumber, shipmentDate string) {
	st.Set(etoeSheet, 3, 2, poNumber)     // B3, Citipost Job Reference
	st.Set(etoeSheet, 2, 2, shipmentDate) // B2, DATE:
}

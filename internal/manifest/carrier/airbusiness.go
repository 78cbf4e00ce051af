package carrier

import (
	"fmt"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

// Air Business: перевозчик только для Ирландии. Один лист, три фиксированные
// строки по формату, вес в колонке K, количество в L.
type AirBusiness struct {
	mapping CountryMapping
	idx     *Index
}

const (
	airBusinessSheet     = "Ireland Mail"
	airBusinessWeightCol = 11 // K
	airBusinessItemsCol  = 12 // L
)

var airBusinessFormatRows = map[model.Format]int{
	model.FormatLetters: 16,
	model.FormatFlats:   19,
	model.FormatPackets: 22,
}

func NewAirBusiness() *AirBusiness {
	return &AirBusiness{
		mapping: CountryMapping{
			"Republic of Ireland": "Ireland",
			"Eire":                "Ireland",
			"IE":                  "Ireland",
		},
	}
}

func (a *AirBusiness) Name() string         { return "Air Business" }
func (a *AirBusiness) TemplateFile() string { return "Air_Business_Ireland.xlsx" }

func (a *AirBusiness) MapCountry(raw string) string { return a.mapping.Map(raw) }

func (a *AirBusiness) BuildIndex(_ store.Store) (*Index, error) {
	if a.idx != nil {
		return a.idx, nil
	}
	idx := NewIndex()
	loc := &Location{Sheet: airBusinessSheet, Section: "fixed"}
	idx.Add("Ireland", model.ServicePriority, loc)
	idx.Add("Ireland", model.ServiceEconomy, loc)
	a.idx = idx
	return idx, nil
}

func (a *AirBusiness) Resolve(_ *Index, rec model.ShipmentRecord) (model.Target, error) {
	mapped := a.MapCountry(rec.Country)
	if mapped != "Ireland" {
		return model.Target{}, &ResolveError{
			Reason:  ReasonCountryNotFound,
			Message: fmt.Sprintf("Air Business only handles Ireland, got: %s", rec.Country),
		}
	}

	format, ok := NormalizeFormat(rec.Format)
	if !ok {
		return model.Target{}, errUnknownFormat(rec.Format)
	}

	row := airBusinessFormatRows[format]
	return cellTarget(airBusinessSheet, row, airBusinessItemsCol, airBusinessWeightCol), nil
}

// В шаблоне Air Business нет полей PO/даты.
func (a *AirBusiness) SetMetadata(_ store.Store, _, _ string) {}

package carrier

import (
	"fmt"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

// Spring: плоская выгрузка Orders вместо матрицы. Каждая комбинация
// страна+формат — отдельная строка заказа, строки никогда не сливаются.
type Spring struct {
	poNumber string
	idx      *Index
}

const (
	springSheet          = "Orders"
	springCustomerNumber = "100007596"
	springCountSort      = "N"
	springPreFranked     = "Y"

	springProductPriority = "1MI"
	springProductEconomy  = "2MI"
)

// Прямые коды назначения (страна → код Spring).
var springCountryCodes = map[string]string{
	"Africa":                    "AFR",
	"Argentina":                 "AR",
	"Australia":                 "AU",
	"Austria":                   "AT",
	"Belarus":                   "BY",
	"Belgium":                   "BE",
	"Brazil":                    "BR",
	"Bulgaria":                  "BG",
	"Canada":                    "CA",
	"Central and South America": "CSA",
	"Chile":                     "CL",
	"China":                     "CN",
	"Croatia":                   "HR",
	"Cyprus":                    "CY",
	"Czech Republic":            "CZ",
	"Denmark":                   "DK",
	"Estonia":                   "EE",
	"Far East":                  "FEA",
	"Finland":                   "FI",
	"France":                    "FR",
	"Germany":                   "DE",
	"Greece":                    "GR",
	"Hong Kong":                 "HK",
	"Hungary":                   "HU",
	"Iceland":                   "IS",
	"India":                     "IN",
	"Indonesia":                 "ID",
	"Ireland":                   "IE",
	"Israel":                    "IL",
	"Italy":                     "IT",
	"Japan":                     "JP",
	"Latvia":                    "LV",
	"Lithuania":                 "LT",
	"Luxembourg":                "LU",
	"Malaysia":                  "MY",
	"Malta":                     "MT",
	"Mexico":                    "MX",
	"Middle East":               "MEA",
	"Netherlands":               "NL",
	"New Zealand":               "NZ",
	"Norway":                    "NO",
	"Poland":                    "PL",
	"Portugal":                  "PT",
	"Rest of Europe non EU":     "EUR",
	"Rest of World":             "ROW",
	"Romania":                   "RO",
	"Russian Federation":        "RU",
	"Saudi Arabia":              "SA",
	"Serbia":                    "RS",
	"Singapore":                 "SG",
	"Slovakia":                  "SK",
	"Slovenia":                  "SI",
	"South Africa":              "ZA",
	"South Korea":               "KR",
	"Spain":                     "ES",
	"Sweden":                    "SE",
	"Switzerland":               "CH",
	"Taiwan":                    "TW",
	"Thailand":                  "TH",
	"Turkey":                    "TR",
	"Ukraine":                   "UA",
	"United Arab Emirates":      "AE",
	"United States of America":  "US",
	"United States":             "US",
}

// Региональные коды для стран без прямого маппинга.
var springRegionalFallbacks = map[string]string{
	// Европа вне ЕС
	"Aland Islands":          "EUR",
	"Gibraltar":              "EUR",
	"Monaco":                 "EUR",
	"Liechtenstein":          "EUR",
	"Andorra":                "EUR",
	"San Marino":             "EUR",
	"Vatican City":           "EUR",
	"Faroe Islands":          "EUR",
	"Greenland":              "EUR",
	"Moldova":                "EUR",
	"North Macedonia":        "EUR",
	"Montenegro":             "EUR",
	"Albania":                "EUR",
	"Bosnia and Herzegovina": "EUR",
	"Kosovo":                 "EUR",

	// Ближний Восток
	"Qatar":   "MEA",
	"Kuwait":  "MEA",
	"Bahrain": "MEA",
	"Oman":    "MEA",
	"Jordan":  "MEA",
	"Lebanon": "MEA",
	"Iraq":    "MEA",
	"Iran":    "MEA",
	"Yemen":   "MEA",
	"Syria":   "MEA",

	// Африка
	"Ghana":         "AFR",
	"Eswatini":      "AFR",
	"Libya":         "AFR",
	"Egypt":         "AFR",
	"Morocco":       "AFR",
	"Tunisia":       "AFR",
	"Algeria":       "AFR",
	"Nigeria":       "AFR",
	"Kenya":         "AFR",
	"Tanzania":      "AFR",
	"Uganda":        "AFR",
	"Ethiopia":      "AFR",
	"Senegal":       "AFR",
	"Ivory Coast":   "AFR",
	"Côte d'Ivoire": "AFR",
	"Cameroon":      "AFR",
	"Zimbabwe":      "AFR",
	"Zambia":        "AFR",
	"Botswana":      "AFR",
	"Namibia":       "AFR",
	"Mozambique":    "AFR",
	"Madagascar":    "AFR",
	"Mauritius":     "AFR",
	"Reunion":       "AFR",
	"Seychelles":    "AFR",
	"Somalia":       "AFR",

	// Центральная и Южная Америка
	"Guatemala":     "CSA",
	"Guyana":        "CSA",
	"Honduras":      "CSA",
	"Nicaragua":     "CSA",
	"El Salvador":   "CSA",
	"Costa Rica":    "CSA",
	"Panama":        "CSA",
	"Colombia":      "CSA",
	"Ecuador":       "CSA",
	"Peru":          "CSA",
	"Bolivia":       "CSA",
	"Paraguay":      "CSA",
	"Uruguay":       "CSA",
	"Venezuela":     "CSA",
	"Suriname":      "CSA",
	"French Guiana": "CSA",

	// Карибы — отдельного региона нет
	"Anguilla":                         "ROW",
	"British Virgin Islands":           "ROW",
	"Canary Islands":                   "ES",
	"Cayman Islands":                   "ROW",
	"Saint Barthelemy":                 "ROW",
	"Saint Helena":                     "ROW",
	"Saint Kitts and Nevis":            "ROW",
	"Saint Vincent and the Grenadines": "ROW",
	"Turks and Caicos Islands":         "ROW",
	"Bermuda":                          "ROW",
	"Bahamas":                          "ROW",
	"Jamaica":                          "ROW",
	"Barbados":                         "ROW",
	"Trinidad and Tobago":              "ROW",
	"Antigua and Barbuda":              "ROW",
	"Dominica":                         "ROW",
	"Grenada":                          "ROW",
	"Saint Lucia":                      "ROW",
	"Martinique":                       "ROW",
	"Guadeloupe":                       "ROW",
	"Aruba":                            "ROW",
	"Curacao":                          "ROW",
	"Puerto Rico":                      "US",

	// Дальний Восток
	"Cook Islands":     "FEA",
	"Vietnam":          "FEA",
	"Philippines":      "FEA",
	"Cambodia":         "FEA",
	"Myanmar":          "FEA",
	"Laos":             "FEA",
	"Brunei":           "FEA",
	"Fiji":             "FEA",
	"Papua New Guinea": "FEA",
	"Samoa":            "FEA",
	"Tonga":            "FEA",
	"Vanuatu":          "FEA",

	// Остальной мир
	"Falkland Islands": "ROW",
	"Pakistan":         "ROW",
	"Bangladesh":       "ROW",
	"Sri Lanka":        "ROW",
	"Nepal":            "ROW",
	"Afghanistan":      "ROW",
	"Maldives":         "ROW",
}

// Коды форматов ЕС-направлений. EUR сюда не входит: Rest of Europe non EU
// идёт по ROW-кодам.
var springEUCodes = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "HR": {}, "CY": {}, "CZ": {}, "DK": {},
	"EE": {}, "FI": {}, "FR": {}, "DE": {}, "GR": {}, "HU": {}, "IS": {},
	"IE": {}, "IT": {}, "LV": {}, "LT": {}, "LU": {}, "MT": {}, "NL": {},
	"NO": {}, "PL": {}, "PT": {}, "RO": {}, "RS": {}, "SK": {}, "SI": {},
	"ES": {}, "SE": {}, "CH": {},
}

var springFormatEU = map[model.Format]string{
	model.FormatLetters: "L",
	model.FormatFlats:   "B", // BOXABLE
	model.FormatPackets: "N", // NON BOXABLE
}

var springFormatROW = map[model.Format]string{
	model.FormatLetters: "P",
	model.FormatFlats:   "G",
	model.FormatPackets: "E",
}

func NewSpring() *Spring { return &Spring{} }

func (s *Spring) Name() string         { return "Spring" }
func (s *Spring) TemplateFile() string { return "MailOrderTemplate.xlsx" }

// MapCountry для Spring — identity: маппинг в коды назначения идёт в Resolve.
func (s *Spring) MapCountry(raw string) string { return raw }

func (s *Spring) BuildIndex(_ store.Store) (*Index, error) {
	if s.idx == nil {
		s.idx = NewIndex()
	}
	return s.idx, nil
}

// DestinationCode: сначала прямой маппинг, затем региональный код.
func (s *Spring) DestinationCode(country string) (string, bool) {
	if code, ok := springCountryCodes[country]; ok {
		return code, true
	}
	if code, ok := springRegionalFallbacks[country]; ok {
		return code, true
	}
	return "", false
}

func (s *Spring) formatCode(format model.Format, destCode string) string {
	if _, eu := springEUCodes[destCode]; eu {
		return springFormatEU[format]
	}
	if code, ok := springFormatROW[format]; ok {
		return code
	}
	return "P"
}

func (s *Spring) Resolve(_ *Index, rec model.ShipmentRecord) (model.Target, error) {
	destCode, ok := s.DestinationCode(rec.Country)
	if !ok {
		return model.Target{}, &ResolveError{
			Reason:  ReasonCountryNotFound,
			Message: fmt.Sprintf("no destination code mapping for: %s", rec.Country),
		}
	}

	var productCode string
	switch NormalizeService(rec.Service) {
	case model.ServicePriority:
		productCode = springProductPriority
	case model.ServiceEconomy:
		productCode = springProductEconomy
	default:
		return model.Target{}, errServiceUnavailable(NormalizeService(rec.Service), rec.Country)
	}

	format, ok := NormalizeFormat(rec.Format)
	if !ok {
		return model.Target{}, errUnknownFormat(rec.Format)
	}

	return model.Target{
		Kind: model.TargetOrderLine,
		Line: &model.OrderLine{
			Destination: destCode,
			FormatCode:  s.formatCode(format, destCode),
			ProductCode: productCode,
			Items:       rec.Items,
			Weight:      rec.Weight,
		},
	}, nil
}

// SetMetadata запоминает PO: он уходит в order-level колонки при записи.
func (s *Spring) SetMetadata(_ store.Store, poNumber, _ string) {
	s.poNumber = poNumber
}

// WriteOrders пишет накопленные строки в лист Orders: блок 1MI, затем 2MI.
// Order-level колонки A-L заполняются только на первой строке блока.
func (s *Spring) WriteOrders(st store.Store, lines []model.OrderLine) error {
	// чистим данные шаблона, заголовок в строке 1 остаётся
	for row := 2; row <= st.MaxRow(springSheet); row++ {
		for col := 1; col <= 18; col++ {
			st.Set(springSheet, row, col, "")
		}
	}

	row := 2
	for _, productCode := range []string{springProductPriority, springProductEconomy} {
		first := true
		for _, line := range lines {
			if line.ProductCode != productCode {
				continue
			}
			if first {
				st.Set(springSheet, row, 1, springCustomerNumber)
				st.Set(springSheet, row, 2, s.poNumber)
				st.Set(springSheet, row, 5, springCountSort)
				st.Set(springSheet, row, 6, springPreFranked)
				st.Set(springSheet, row, 7, productCode)
				st.Set(springSheet, row, 11, 1) // Nr pallets
				first = false
			}
			st.Set(springSheet, row, 13, line.Destination)
			st.Set(springSheet, row, 14, line.FormatCode)
			st.Set(springSheet, row, 17, line.Items)
			st.Set(springSheet, row, 18, line.Weight)
			row++
		}
	}

	// служебные листы шаблона в выгрузку не идут
	if x, ok := st.(*store.XLSXStore); ok {
		x.DeleteSheet("Instructions")
		x.DeleteSheet("Product Combinations")
	}
	return nil
}

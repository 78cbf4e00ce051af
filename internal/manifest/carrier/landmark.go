package carrier

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
	"manifest-service/internal/utils"
)

// Landmark Global: выгрузка CSV с разделителем "|". Economy (12SL03) и
// Priority (12SL02) уходят отдельными файлами. "Шаблон" перевозчика —
// справочник ISO-кодов, не книга манифеста.
type Landmark struct {
	poNumber    string
	depositDate string
	fileDate    string
	isoMap      map[string]string
	idx         *Index
}

const (
	landmarkContractNr     = "BPI/2024/00011075"
	landmarkDepositDayPart = "PM"

	landmarkProductPriority = "12SL02"
	landmarkProductEconomy  = "12SL03"
)

var landmarkFormatCodes = map[model.Format]string{
	model.FormatLetters: "P",
	model.FormatFlats:   "G",
	model.FormatPackets: "E",
}

// Частые варианты имён, отсутствующие в справочнике.
var landmarkVariations = map[string]string{
	"hong kong":                "HK",
	"hong-kong":                "HK",
	"turkey":                   "TR",
	"türkiye":                  "TR",
	"usa":                      "US",
	"united states of america": "US",
	"uk":                       "GB",
	"united kingdom":           "GB",
	"great britain":            "GB",
	"south korea":              "KR",
	"north korea":              "KP",
	"czech republic":           "CZ",
	"czechia":                  "CZ",
	"uae":                      "AE",
	"russia":                   "RU",
	"russian federation":       "RU",
	"vietnam":                  "VN",
	"viet nam":                 "VN",
}

func NewLandmark() *Landmark { return &Landmark{} }

func (l *Landmark) Name() string         { return "Landmark Global" }
func (l *Landmark) TemplateFile() string { return "UploadCodeList_-_Citipost.xls" }

func (l *Landmark) MapCountry(raw string) string { return raw }

// BuildIndex загружает справочник ISO-кодов: ищем лист с колонками
// NAME/ISO_CODE и читаем пары до конца листа.
func (l *Landmark) BuildIndex(src store.Store) (*Index, error) {
	if l.idx != nil {
		return l.idx, nil
	}

	isoMap := make(map[string]string)
	for _, sheet := range src.Sheets() {
		nameCol, codeCol := 0, 0
		for col := 1; col <= 10; col++ {
			switch strings.TrimSpace(strings.ToUpper(src.Get(sheet, 1, col))) {
			case "NAME":
				nameCol = col
			case "ISO_CODE":
				codeCol = col
			}
		}
		if nameCol == 0 || codeCol == 0 {
			continue
		}
		for row := 2; row <= src.MaxRow(sheet); row++ {
			name := strings.ToLower(strings.TrimSpace(src.Get(sheet, row, nameCol)))
			code := strings.TrimSpace(src.Get(sheet, row, codeCol))
			if name != "" && code != "" {
				isoMap[name] = code
			}
		}
	}
	if len(isoMap) == 0 {
		return nil, fmt.Errorf("no NAME/ISO_CODE sheet found in code list")
	}

	for name, code := range landmarkVariations {
		if _, ok := isoMap[name]; !ok {
			isoMap[name] = code
		}
	}

	l.isoMap = isoMap
	l.idx = NewIndex()
	return l.idx, nil
}

func (l *Landmark) isoCode(country string) (string, bool) {
	code, ok := l.isoMap[strings.ToLower(strings.TrimSpace(country))]
	return code, ok
}

func (l *Landmark) Resolve(_ *Index, rec model.ShipmentRecord) (model.Target, error) {
	iso, ok := l.isoCode(rec.Country)
	if !ok {
		return model.Target{}, &ResolveError{
			Reason:  ReasonCountryNotFound,
			Message: fmt.Sprintf("no ISO code mapping for: %s", rec.Country),
		}
	}

	var productCode string
	switch NormalizeService(rec.Service) {
	case model.ServicePriority:
		productCode = landmarkProductPriority
	case model.ServiceEconomy:
		productCode = landmarkProductEconomy
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
			Destination: iso,
			FormatCode:  landmarkFormatCodes[format],
			ProductCode: productCode,
			Items:       rec.Items,
			Weight:      utils.Round3(rec.Weight),
		},
	}, nil
}

// SetMetadata фиксирует PO и считает дату депозита: следующий рабочий день
// от сегодняшней даты, выходные пропускаются.
func (l *Landmark) SetMetadata(_ store.Store, poNumber, _ string) {
	l.poNumber = poNumber

	now := time.Now()
	deposit := nextWorkingDay(now)
	l.depositDate = deposit.Format("02/01/2006")
	l.fileDate = now.Format("20060102")
}

func nextWorkingDay(from time.Time) time.Time {
	d := from.AddDate(0, 0, 1)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// EmitFiles пишет CSV-файлы выгрузки, по одному на сервис.
func (l *Landmark) EmitFiles(outputDir string, lines []model.OrderLine) ([]string, error) {
	var created []string
	for _, svc := range []struct {
		label   string
		product string
	}{
		{"Economy", landmarkProductEconomy},
		{"Priority", landmarkProductPriority},
	} {
		var group []model.OrderLine
		for _, line := range lines {
			if line.ProductCode == svc.product {
				group = append(group, line)
			}
		}
		if len(group) == 0 {
			continue
		}

		name := fmt.Sprintf("Landmark_%s_%s_%s.csv", svc.label, l.fileDate, l.poNumber)
		path := filepath.Join(outputDir, name)
		if err := l.writeCSV(path, svc.product, group); err != nil {
			return created, err
		}
		created = append(created, path)
	}
	return created, nil
}

func (l *Landmark) writeCSV(path, productCode string, lines []model.OrderLine) error {
	var b strings.Builder
	// заголовок: CONTRACT|PRODUCT|DD/MM/YYYY|PM||PO|
	fmt.Fprintf(&b, "%s|%s|%s|%s||%s|\n",
		landmarkContractNr, productCode, l.depositDate, landmarkDepositDayPart, l.poNumber)
	for _, line := range lines {
		fmt.Fprintf(&b, "%s|%s|%s|%d\n",
			line.Destination, line.FormatCode,
			strconv.FormatFloat(line.Weight, 'f', -1, 64), line.Items)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

package carrier

import (
	"sort"
	"strings"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
	"manifest-service/internal/utils"
)

// Deutsche Post: шаблона манифеста нет. Из carrier sheet извлекается сводка
// (PO, суммарные вес/количество, набор форматов), лист "(EMB) Manifest"
// удаляется, книга сохраняется как есть. Портал заполняется формой по сводке.
type DeutschePost struct {
	idx *Index
}

const dpCarrierSheet = "Manifest"

func NewDeutschePost() *DeutschePost { return &DeutschePost{} }

func (d *DeutschePost) Name() string         { return "Deutsche Post" }
func (d *DeutschePost) TemplateFile() string { return "" }

func (d *DeutschePost) MapCountry(raw string) string { return raw }

func (d *DeutschePost) BuildIndex(_ store.Store) (*Index, error) {
	if d.idx == nil {
		d.idx = NewIndex()
	}
	return d.idx, nil
}

// Resolve не используется: записи не размещаются, движок идёт через ExtractData.
func (d *DeutschePost) Resolve(_ *Index, rec model.ShipmentRecord) (model.Target, error) {
	return model.Target{}, &ResolveError{
		Reason:  ReasonServiceUnavailable,
		Message: "Deutsche Post does not place records into a manifest",
	}
}

func (d *DeutschePost) SetMetadata(_ store.Store, _, _ string) {}

// ExtractData читает сводку из carrier sheet: PO из B4, данные с 9-й строки
// до первой пустой страны, за которой идёт строка итогов (items E, weight F).
func (d *DeutschePost) ExtractData(src store.Store) model.DeutschePostData {
	po := strings.TrimSpace(src.Get(dpCarrierSheet, 4, 2))
	po = strings.TrimSuffix(po, ".0")

	formatSet := make(map[model.Format]struct{})
	var totalItems int
	var totalWeight float64

	maxRow := src.MaxRow(dpCarrierSheet)
	for row := 9; row <= maxRow; row++ {
		country := strings.TrimSpace(src.Get(dpCarrierSheet, row, 1))
		if country == "" {
			totalItems = utils.CoerceInt(src.Get(dpCarrierSheet, row, 5))
			totalWeight = utils.CoerceFloat(src.Get(dpCarrierSheet, row, 6))
			break
		}
		if raw := src.Get(dpCarrierSheet, row, 4); raw != "" {
			if format, ok := NormalizeFormat(raw); ok {
				formatSet[format] = struct{}{}
			}
		}
	}

	formats := make([]string, 0, len(formatSet))
	for f := range formatSet {
		formats = append(formats, string(f))
	}
	sort.Strings(formats)

	return model.DeutschePostData{
		PONumber:    po,
		TotalItems:  totalItems,
		TotalWeight: utils.Round3(totalWeight),
		Formats:     formats,
		ItemFormat:  itemFormat(formatSet),
	}
}

// itemFormat — значение для выпадающего списка портала: P/G/E либо mixed.
func itemFormat(formats map[model.Format]struct{}) string {
	if len(formats) == 1 {
		for f := range formats {
			switch f {
			case model.FormatLetters:
				return "P"
			case model.FormatFlats:
				return "G"
			case model.FormatPackets:
				return "E"
			}
		}
	}
	return "mixed (P/G/E)"
}

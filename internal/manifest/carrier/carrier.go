package carrier

import (
	"fmt"
	"strings"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

// Strategy — политика перевозчика: таблица стран, построение индекса,
// выбор ячеек/строк, метаданные. Вся вариативность раскладок за этим
// интерфейсом, вызывающий код одинаков для всех перевозчиков.
type Strategy interface {
	Name() string
	TemplateFile() string

	// BuildIndex строит индекс стран по шаблону. Индекс строится не более
	// одного раза на экземпляр стратегии: повторный вызов возвращает кэш.
	BuildIndex(src store.Store) (*Index, error)

	// Resolve находит цель для записи либо возвращает *ResolveError.
	Resolve(idx *Index, rec model.ShipmentRecord) (model.Target, error)

	MapCountry(raw string) string
	SetMetadata(st store.Store, poNumber, shipmentDate string)
}

// OrderWriter реализуют стратегии, которые накапливают строки заказа и
// записывают их в книгу шаблона одним блоком.
type OrderWriter interface {
	WriteOrders(st store.Store, lines []model.OrderLine) error
}

// FileEmitter реализуют стратегии, порождающие собственные файлы выгрузки
// вместо книги шаблона. Возвращает пути созданных файлов.
type FileEmitter interface {
	EmitFiles(outputDir string, lines []model.OrderLine) ([]string, error)
}

// Reason — структурированная причина отказа размещения.
type Reason string

const (
	ReasonCountryNotFound    Reason = "country_not_found"
	ReasonServiceUnavailable Reason = "service_unavailable"
	ReasonUnknownFormat      Reason = "unknown_format"
	ReasonNoWeightBreak      Reason = "no_weight_break"
)

// ResolveError — per-record ошибка. Никогда не паникует и не фатальна:
// сессия считает их и решает, останавливаться ли.
type ResolveError struct {
	Reason  Reason
	Message string
}

func (e *ResolveError) Error() string { return e.Message }

func errCountryNotFound(raw, mapped string) error {
	return &ResolveError{
		Reason:  ReasonCountryNotFound,
		Message: fmt.Sprintf("country not found in manifest: %s (mapped to: %s)", raw, mapped),
	}
}

func errServiceUnavailable(svc model.Service, country string) error {
	return &ResolveError{
		Reason:  ReasonServiceUnavailable,
		Message: fmt.Sprintf("service %q not available for %s", svc, country),
	}
}

func errUnknownFormat(raw string) error {
	return &ResolveError{
		Reason:  ReasonUnknownFormat,
		Message: fmt.Sprintf("unknown format: %s", raw),
	}
}

func errNoWeightBreak(country string, avgG float64) error {
	return &ResolveError{
		Reason:  ReasonNoWeightBreak,
		Message: fmt.Sprintf("no matching weight break for %s (avg: %.0fg)", country, avgG),
	}
}

// CountryMapping — таблица «имя из carrier sheet → имя в манифесте».
// Для неизвестных имён работает identity.
type CountryMapping map[string]string

func (m CountryMapping) Map(raw string) string {
	if mapped, ok := m[raw]; ok {
		return mapped
	}
	return raw
}

// Band — весовой диапазон (включительно с обеих сторон), граммы.
type Band struct {
	Row    int
	LowerG int
	UpperG int
}

// Location — место страны в раскладке перевозчика.
type Location struct {
	Sheet   string
	Row     int
	Section string // EU / ROW / left / right / europe / fixed — смысл задаёт перевозчик
	Bands   []Band // только для weight-break перевозчиков
}

// Index — страна (каноническое имя) → локации по сервисам.
type Index struct {
	locs map[string]map[model.Service]*Location
}

func NewIndex() *Index {
	return &Index{locs: make(map[string]map[model.Service]*Location)}
}

func (ix *Index) Add(country string, svc model.Service, loc *Location) {
	byService, ok := ix.locs[country]
	if !ok {
		byService = make(map[model.Service]*Location)
		ix.locs[country] = byService
	}
	byService[svc] = loc
}

func (ix *Index) Lookup(country string) (map[model.Service]*Location, bool) {
	byService, ok := ix.locs[country]
	return byService, ok
}

func (ix *Index) Len() int { return len(ix.locs) }

// LookupFold — запасной регистронезависимый поиск (в шаблонах встречаются
// страны с пробелами и разным регистром).
func (ix *Index) LookupFold(country string) (map[model.Service]*Location, bool) {
	want := strings.ToLower(strings.TrimSpace(country))
	for name, byService := range ix.locs {
		if strings.ToLower(strings.TrimSpace(name)) == want {
			return byService, true
		}
	}
	return nil, false
}

// NormalizeService — сырое имя сервиса → Priority/Economy.
// Неопознанное значение проходит как есть и отсеется при lookup.
func NormalizeService(raw string) model.Service {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "priority"), strings.Contains(s, "velociti"):
		return model.ServicePriority
	case strings.Contains(s, "economy"):
		return model.ServiceEconomy
	}
	return model.Service(strings.TrimSpace(raw))
}

// NormalizeFormat — сырой формат → Letters/Flats/Packets.
func NormalizeFormat(raw string) (model.Format, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "letter"):
		return model.FormatLetters, true
	case strings.Contains(s, "flat"), strings.Contains(s, "boxable") && !strings.Contains(s, "non"):
		return model.FormatFlats, true
	case strings.Contains(s, "packet"), strings.Contains(s, "non-boxable"), strings.Contains(s, "nonboxable"):
		return model.FormatPackets, true
	}
	return "", false
}

// AvgWeightG — средний вес на единицу в граммах; при items=0 берём вес как есть.
func AvgWeightG(rec model.ShipmentRecord) float64 {
	if rec.Items > 0 {
		return rec.Weight / float64(rec.Items) * 1000
	}
	return rec.Weight * 1000
}

// pickBand — точное включительное совпадение, затем допуск до 1 г
// (строго: ровно на грамм за границей — уже мимо). Политика fallback
// (последний диапазон vs отказ) остаётся за перевозчиком.
func pickBand(bands []Band, avgG float64) (int, bool) {
	for _, b := range bands {
		if float64(b.LowerG) <= avgG && avgG <= float64(b.UpperG) {
			return b.Row, true
		}
	}
	for _, b := range bands {
		if float64(b.LowerG)-1 < avgG && avgG < float64(b.UpperG)+1 {
			return b.Row, true
		}
	}
	return 0, false
}

func cellTarget(sheet string, row, itemsCol, weightCol int) model.Target {
	return model.Target{
		Kind:      model.TargetCell,
		Sheet:     sheet,
		Row:       row,
		ItemsCol:  itemsCol,
		WeightCol: weightCol,
	}
}

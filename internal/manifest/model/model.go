package model

// Service — уровень сервиса после нормализации.
type Service string

const (
	ServicePriority Service = "Priority"
	ServiceEconomy  Service = "Economy"
)

// Format — тип отправления после нормализации.
type Format string

const (
	FormatLetters Format = "Letters"
	FormatFlats   Format = "Flats"
	FormatPackets Format = "Packets"
)

// ShipmentRecord — одна строка carrier sheet, как есть (service/format сырые,
// нормализуются стратегией при размещении).
type ShipmentRecord struct {
	Country string
	Service string
	Format  string
	Items   int
	Weight  float64 // kg
}

type TargetKind int

const (
	TargetCell TargetKind = iota
	TargetOrderLine
)

// Target — куда попадает запись: пара ячеек (items/weight) либо новая
// строка заказа для «плоских» перевозчиков.
type Target struct {
	Kind      TargetKind
	Sheet     string
	Row       int
	ItemsCol  int
	WeightCol int
	Line      *OrderLine
}

// OrderLine — одна строка плоского манифеста (Spring/Landmark).
// Записи никогда не сливаются: одна входная строка = одна OrderLine.
type OrderLine struct {
	Destination string // код направления (ISO-2 или региональный)
	FormatCode  string
	ProductCode string
	Items       int
	Weight      float64
}

// PlacementResult — итог размещения одной записи. Живёт только внутри прогона.
type PlacementResult struct {
	Success   bool
	Sheet     string
	Row       int
	ItemsCol  int
	WeightCol int
	Error     string
}

// ProcessingResult — итог обработки одного перевозчика.
type ProcessingResult struct {
	Carrier          string              `json:"carrier"`
	OutputFile       string              `json:"outputFile"`
	RecordsProcessed int                 `json:"recordsProcessed"`
	RecordsFailed    int                 `json:"recordsFailed"`
	Errors           []string            `json:"errors"`
	Success          bool                `json:"success"`
	PONumber         string              `json:"poNumber"`
	AdditionalFiles  []string            `json:"additionalFiles,omitempty"`
	Summary          *DeutschePostData   `json:"summary,omitempty"`
}

// DeutschePostData — сводка, извлечённая из carrier sheet (у DP нет шаблона,
// портал заполняется формой).
type DeutschePostData struct {
	PONumber    string   `json:"poNumber"`
	TotalItems  int      `json:"totalItems"`
	TotalWeight float64  `json:"totalWeight"`
	Formats     []string `json:"formats"`
	ItemFormat  string   `json:"itemFormat"` // P / G / E / mixed (P/G/E)
}

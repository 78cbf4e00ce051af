package service

import (
	"fmt"
	"strings"

	"manifest-service/internal/fileio"
	"manifest-service/internal/manifest/model"
	"manifest-service/internal/utils"
)

// CarrierSheet — распарсенный внутренний carrier sheet: метаданные из
// B3/B4 и строки отгрузки под шапкой в 8-й строке.
type CarrierSheet struct {
	CarrierName string
	PONumber    string
	Records     []model.ShipmentRecord
}

const sheetHeaderRow = 8

var requiredColumns = []string{"Country", "Service", "Format", "Items", "Weight (KG)"}

// ParseCarrierSheet разбирает лист carrier sheet (AoA, 0-based).
// Строки без страны пропускаются, Items/Weight приводятся к числам
// (мусор и пустые значения → 0).
func ParseCarrierSheet(rows [][]string) (*CarrierSheet, error) {
	carrierName := strings.TrimSpace(fileio.Cell(rows, 2, 1)) // B3
	poNumber := strings.TrimSpace(fileio.Cell(rows, 3, 1))    // B4
	poNumber = strings.TrimSuffix(poNumber, ".0")

	if len(rows) < sheetHeaderRow {
		return nil, fmt.Errorf("carrier sheet too short: %d rows", len(rows))
	}

	cols := make(map[string]int)
	for i, h := range rows[sheetHeaderRow-1] {
		cols[strings.TrimSpace(h)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column: %s", name)
		}
	}

	var records []model.ShipmentRecord
	for r := sheetHeaderRow; r < len(rows); r++ {
		country := strings.TrimSpace(fileio.Cell(rows, r, cols["Country"]))
		if country == "" {
			continue
		}
		records = append(records, model.ShipmentRecord{
			Country: country,
			Service: strings.TrimSpace(fileio.Cell(rows, r, cols["Service"])),
			Format:  strings.TrimSpace(fileio.Cell(rows, r, cols["Format"])),
			Items:   utils.CoerceInt(fileio.Cell(rows, r, cols["Items"])),
			Weight:  utils.CoerceFloat(fileio.Cell(rows, r, cols["Weight (KG)"])),
		})
	}

	return &CarrierSheet{
		CarrierName: carrierName,
		PONumber:    poNumber,
		Records:     records,
	}, nil
}

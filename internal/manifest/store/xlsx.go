package store

import (
	"fmt"
	"strconv"

	excelize "github.com/xuri/excelize/v2"
)

// XLSXStore — хранилище поверх excelize-книги (шаблон перевозчика).
type XLSXStore struct {
	f *excelize.File
}

func OpenXLSX(path string) (*XLSXStore, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &XLSXStore{f: f}, nil
}

func NewXLSX() *XLSXStore { return &XLSXStore{f: excelize.NewFile()} }

func (s *XLSXStore) Get(sheet string, row, col int) string {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	v, _ := s.f.GetCellValue(sheet, cell)
	return v
}

func (s *XLSXStore) Set(sheet string, row, col int, v any) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	_ = s.f.SetCellValue(sheet, cell, v)
}

func (s *XLSXStore) MaxRow(sheet string) int {
	rows, err := s.f.GetRows(sheet)
	if err != nil {
		return 0
	}
	return len(rows)
}

func (s *XLSXStore) Sheets() []string { return s.f.GetSheetList() }

func (s *XLSXStore) DeleteSheet(name string) { _ = s.f.DeleteSheet(name) }

func (s *XLSXStore) SaveAs(path string) error {
	defer s.f.Close()
	return s.f.SaveAs(path)
}

func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

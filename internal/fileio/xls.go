// Надёжный парсер .xls: фиксируем ширину таблицы сами и читаем все ячейки до неё.
package fileio

import (
	"bytes"
	"errors"
	"io"
	"os"

	xls "github.com/extrame/xls"

	"manifest-service/internal/manifest/store"
)

// вычисляем "реальную" ширину: пробегаем разумное число колонок и ищем непустые
func computeMaxCols(sheet *xls.WorkSheet) int {
	const probeMax = 512
	maxCols := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		r := sheet.Row(i)
		if r == nil {
			continue
		}
		for j := 0; j < probeMax; j++ {
			if v := normalizeCell(r.Col(j)); v != "" && j+1 > maxCols {
				maxCols = j + 1
			}
		}
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

func openXLS(b []byte) (*xls.WorkBook, error) {
	// legacy-выгрузки чаще всего cp1251, но попадаются UTF-8/KOI8-R
	tryCharsets := []string{"windows-1251", "utf-8", "koi8-r"}
	var lastErr error
	for _, ch := range tryCharsets {
		wb, err := xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			return wb, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("xls: failed to open workbook")
	}
	return nil, lastErr
}

func sheetRows(sheet *xls.WorkSheet) [][]string {
	maxCols := computeMaxCols(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cols := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = normalizeCell(row.Col(j)) // безопасно: пустые -> ""
			}
		}
		rows = append(rows, cols)
	}
	return rows
}

func readXLSRows(r io.Reader) ([][]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	wb, err := openXLS(b)
	if err != nil {
		return nil, err
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}
	return sheetRows(sheet), nil
}

// OpenXLSStore читает все листы .xls в MapStore (справочники перевозчиков,
// у которых шаблон — legacy-книга, а не xlsx).
func OpenXLSStore(path string) (store.Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	wb, err := openXLS(b)
	if err != nil {
		return nil, err
	}

	st := store.NewMapStore()
	for i := 0; i < int(wb.NumSheets()); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		for r, cols := range sheetRows(sheet) {
			for c, v := range cols {
				if v != "" {
					st.Set(sheet.Name, r+1, c+1, v)
				}
			}
		}
	}
	return st, nil
}

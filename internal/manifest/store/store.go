package store

// Store — шаблон манифеста как ассоциативное хранилище ячеек.
// Реальная кодировка xlsx (merge, стили) остаётся за XLSXStore,
// движок работает только через этот интерфейс.
type Store interface {
	Get(sheet string, row, col int) string
	Set(sheet string, row, col int, v any)
	MaxRow(sheet string) int
	Sheets() []string
}

type cellKey struct {
	sheet    string
	row, col int
}

// MapStore — in-memory реализация для тестов и промежуточных артефактов.
type MapStore struct {
	cells  map[cellKey]string
	maxRow map[string]int
	order  []string
}

func NewMapStore() *MapStore {
	return &MapStore{
		cells:  make(map[cellKey]string),
		maxRow: make(map[string]int),
	}
}

func (m *MapStore) Get(sheet string, row, col int) string {
	return m.cells[cellKey{sheet, row, col}]
}

func (m *MapStore) Set(sheet string, row, col int, v any) {
	if _, seen := m.maxRow[sheet]; !seen {
		m.order = append(m.order, sheet)
	}
	m.cells[cellKey{sheet, row, col}] = toString(v)
	if row > m.maxRow[sheet] {
		m.maxRow[sheet] = row
	}
}

func (m *MapStore) MaxRow(sheet string) int { return m.maxRow[sheet] }

func (m *MapStore) Sheets() []string { return m.order }

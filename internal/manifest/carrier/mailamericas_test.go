package carrier

import (
	"testing"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

func maTestStore() *store.MapStore {
	st := store.NewMapStore()
	// weight-break лист: страна + числовые границы диапазонов
	st.Set("Mail Americas 2025", 9, 2, "Brazil")
	st.Set("Mail Americas 2025", 9, 3, "0")
	st.Set("Mail Americas 2025", 9, 4, "2000")
	st.Set("Mail Americas 2025", 10, 3, "2001")
	st.Set("Mail Americas 2025", 10, 4, "5000")
	st.Set("Mail Americas 2025", 11, 2, "TOTALS:")

	// форматный лист: текстовый диапазон, регионы-заголовки
	st.Set("Europe & ROW 2025", 9, 2, "EUROPE")
	st.Set("Europe & ROW 2025", 10, 2, "Albania")
	st.Set("Europe & ROW 2025", 10, 3, "0 - 2000 grs")
	return st
}

func TestMailAmericasWeightBreak(t *testing.T) {
	m := NewMailAmericas()
	idx, err := m.BuildIndex(maTestStore())
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		items   int
		weight  float64
		wantRow int
		wantErr bool
	}{
		{"inside first band", 1, 1.999, 9, false},
		{"upper bound inclusive", 1, 2.0, 9, false},
		{"tolerance above bound", 2, 4.001, 9, false}, // 2000.5 г, в пределах грамма
		{"second band", 1, 3.0, 10, false},
		{"beyond all bands", 1, 5.002, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			target, err := m.Resolve(idx, model.ShipmentRecord{
				Country: "Brazil", Service: "Economy", Format: "Letters",
				Items: c.items, Weight: c.weight,
			})
			if c.wantErr {
				re, ok := err.(*ResolveError)
				if !ok || re.Reason != ReasonNoWeightBreak {
					t.Fatalf("want no_weight_break, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if target.Row != c.wantRow || target.ItemsCol != 5 || target.WeightCol != 6 {
				t.Errorf("target = %+v", target)
			}
		})
	}

	// Priority уходит в свои колонки
	target, err := m.Resolve(idx, model.ShipmentRecord{
		Country: "Brazil", Service: "Priority", Format: "Letters", Items: 1, Weight: 0.5,
	})
	if err != nil {
		t.Fatal(err)
	}
	if target.ItemsCol != 7 || target.WeightCol != 8 {
		t.Errorf("priority columns = %+v", target)
	}
}

func TestMailAmericasFormatSheet(t *testing.T) {
	m := NewMailAmericas()
	idx, err := m.BuildIndex(maTestStore())
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := idx.Lookup("EUROPE"); ok {
		t.Fatal("region header leaked into index")
	}

	cases := []struct {
		format    string
		items, wt int
	}{
		{"Letters", 4, 5},
		{"Flats", 6, 7},
		{"Packets", 8, 9},
		{"Tube", 6, 7}, // неизвестный формат -> Flats
	}
	for _, c := range cases {
		target, err := m.Resolve(idx, model.ShipmentRecord{
			Country: "Albania", Service: "Economy", Format: c.format, Items: 1, Weight: 0.1,
		})
		if err != nil {
			t.Fatal(err)
		}
		if target.Row != 10 || target.ItemsCol != c.items || target.WeightCol != c.wt {
			t.Errorf("%s: target = %+v", c.format, target)
		}
	}
}

func TestMailAmericasCaseInsensitiveLookup(t *testing.T) {
	m := NewMailAmericas()
	idx, _ := m.BuildIndex(maTestStore())

	if _, err := m.Resolve(idx, model.ShipmentRecord{
		Country: "BRAZIL", Service: "Economy", Format: "Letters", Items: 1, Weight: 0.5,
	}); err != nil {
		t.Errorf("case-insensitive fallback failed: %v", err)
	}
}

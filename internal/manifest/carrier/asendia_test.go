package carrier

import (
	"testing"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

func asendiaTestStore() *store.MapStore {
	st := store.NewMapStore()
	for _, sheet := range []string{"Priority Manifest", "Non-Priority Manifest"} {
		st.Set(sheet, 13, 2, "France")
		st.Set(sheet, 14, 2, "Germany")
		st.Set(sheet, 20, 2, "Subtotal") // служебная строка, в индекс не идёт
		// ROW-блок: левая и правая половины на одной строке
		st.Set(sheet, 76, 2, "Argentina")
		st.Set(sheet, 76, 11, "Japan")
		st.Set(sheet, 77, 2, "Valid from 01/01/2026")
		st.Set(sheet, 78, 2, "Brazil")
	}
	return st
}

func TestAsendiaBuildIndex(t *testing.T) {
	a := NewAsendia()
	idx, err := a.BuildIndex(asendiaTestStore())
	if err != nil {
		t.Fatal(err)
	}

	byService, ok := idx.Lookup("France")
	if !ok {
		t.Fatal("France not indexed")
	}
	loc := byService[model.ServicePriority]
	if loc.Sheet != "Priority Manifest" || loc.Row != 13 || loc.Section != sectionEU {
		t.Errorf("France: %+v", loc)
	}

	byService, ok = idx.Lookup("Japan")
	if !ok {
		t.Fatal("right-hand ROW country not indexed")
	}
	if loc := byService[model.ServiceEconomy]; loc.Row != 76 || loc.Section != sectionROWRight {
		t.Errorf("Japan: %+v", loc)
	}

	if _, ok := idx.Lookup("Subtotal"); ok {
		t.Error("skip token leaked into index")
	}
	if _, ok := idx.Lookup("Valid from 01/01/2026"); ok {
		t.Error("Valid from row leaked into index")
	}

	// повторный вызов отдаёт кэш
	idx2, _ := a.BuildIndex(store.NewMapStore())
	if idx2 != idx {
		t.Error("BuildIndex is not idempotent")
	}
}

func TestAsendiaResolve(t *testing.T) {
	a := NewAsendia()
	idx, _ := a.BuildIndex(asendiaTestStore())

	cases := []struct {
		name    string
		rec     model.ShipmentRecord
		sheet   string
		row     int
		items   int
		weight  int
		wantErr Reason
	}{
		{
			name:  "eu letters priority",
			rec:   model.ShipmentRecord{Country: "France", Service: "Priority", Format: "Letters"},
			sheet: "Priority Manifest", row: 13, items: 5, weight: 6,
		},
		{
			name:  "eu packets economy",
			rec:   model.ShipmentRecord{Country: "Germany", Service: "Economy", Format: "Packets"},
			sheet: "Non-Priority Manifest", row: 14, items: 15, weight: 16,
		},
		{
			name:  "row left ignores format",
			rec:   model.ShipmentRecord{Country: "Argentina", Service: "Priority", Format: "Packets"},
			sheet: "Priority Manifest", row: 76, items: 5, weight: 6,
		},
		{
			name:  "row right",
			rec:   model.ShipmentRecord{Country: "Japan", Service: "Priority", Format: "Letters"},
			sheet: "Priority Manifest", row: 76, items: 15, weight: 16,
		},
		{
			name:  "mapped country",
			rec:   model.ShipmentRecord{Country: "Vietnam", Service: "Priority", Format: "Letters"},
			wantErr: ReasonCountryNotFound, // Viet Nam отсутствует в тестовом шаблоне
		},
		{
			name:    "unknown format in eu",
			rec:     model.ShipmentRecord{Country: "France", Service: "Priority", Format: "Tube"},
			wantErr: ReasonUnknownFormat,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			target, err := a.Resolve(idx, c.rec)
			if c.wantErr != "" {
				re, ok := err.(*ResolveError)
				if !ok || re.Reason != c.wantErr {
					t.Fatalf("want %s, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if target.Sheet != c.sheet || target.Row != c.row ||
				target.ItemsCol != c.items || target.WeightCol != c.weight {
				t.Errorf("target = %+v", target)
			}
		})
	}
}

func TestAsendiaSetMetadata(t *testing.T) {
	st := store.NewMapStore()
	NewAsendia().SetMetadata(st, "5500123", "2026-01-15")
	if got := st.Get("Priority Manifest", 6, 9); got != "5500123" {
		t.Errorf("PO cell = %q", got)
	}
	if got := st.Get("Non-Priority Manifest", 6, 14); got != "2026-01-15" {
		t.Errorf("date cell = %q", got)
	}
}

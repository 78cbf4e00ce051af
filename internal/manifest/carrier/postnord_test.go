package carrier

import (
	"testing"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

func TestPostNordResolve(t *testing.T) {
	p := NewPostNord()
	idx, err := p.BuildIndex(store.NewMapStore())
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		rec    model.ShipmentRecord
		sheet  string
		row    int
		items  int
		weight int
	}{
		{
			name:  "france priority letters",
			rec:   model.ShipmentRecord{Country: "France", Service: "Priority", Format: "Letters"},
			sheet: "Main Europe", row: 15, items: 3, weight: 4,
		},
		{
			name:  "france economy packets",
			rec:   model.ShipmentRecord{Country: "France", Service: "Economy", Format: "Packets"},
			sheet: "Main Europe", row: 15, items: 13, weight: 14,
		},
		{
			name:  "usa mapped name",
			rec:   model.ShipmentRecord{Country: "United States of America", Service: "Priority", Format: "Letters"},
			sheet: "ROW", row: postnordROWPriorityLeft["USA"], items: 2, weight: 3,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			target, err := p.Resolve(idx, c.rec)
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

func TestPostNordUnknownCountry(t *testing.T) {
	p := NewPostNord()
	idx, _ := p.BuildIndex(store.NewMapStore())

	_, err := p.Resolve(idx, model.ShipmentRecord{Country: "Atlantis", Service: "Priority", Format: "Letters"})
	re, ok := err.(*ResolveError)
	if !ok || re.Reason != ReasonCountryNotFound {
		t.Fatalf("want country_not_found, got %v", err)
	}
}

func TestPostNordSetMetadata(t *testing.T) {
	st := store.NewMapStore()
	NewPostNord().SetMetadata(st, "5500123", "2026-01-15")
	if st.Get("Summary", 7, 8) != "5500123" {
		t.Error("PO not written to H7")
	}
	if st.Get("Summary", 8, 3) != "2026-01-15" {
		t.Error("date not written to C8")
	}
}

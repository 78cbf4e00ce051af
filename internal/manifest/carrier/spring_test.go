package carrier

import (
	"testing"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

func TestSpringResolve(t *testing.T) {
	s := NewSpring()
	idx, _ := s.BuildIndex(store.NewMapStore())

	cases := []struct {
		name        string
		rec         model.ShipmentRecord
		dest        string
		formatCode  string
		productCode string
		wantErr     Reason
	}{
		{
			name:       "eu boxable",
			rec:        model.ShipmentRecord{Country: "France", Service: "Priority", Format: "Flats", Items: 5, Weight: 1.2},
			dest:       "FR", formatCode: "B", productCode: "1MI",
		},
		{
			name:       "eu letters economy",
			rec:        model.ShipmentRecord{Country: "Germany", Service: "Economy", Format: "Letters"},
			dest:       "DE", formatCode: "L", productCode: "2MI",
		},
		{
			name:       "row codes",
			rec:        model.ShipmentRecord{Country: "Australia", Service: "Priority", Format: "Packets"},
			dest:       "AU", formatCode: "E", productCode: "1MI",
		},
		{
			name:       "eur region uses row codes",
			rec:        model.ShipmentRecord{Country: "Monaco", Service: "Priority", Format: "Letters"},
			dest:       "EUR", formatCode: "P", productCode: "1MI",
		},
		{
			name:       "regional fallback",
			rec:        model.ShipmentRecord{Country: "Qatar", Service: "Economy", Format: "Flats"},
			dest:       "MEA", formatCode: "G", productCode: "2MI",
		},
		{
			name:    "no destination code",
			rec:     model.ShipmentRecord{Country: "Atlantis", Service: "Priority", Format: "Letters"},
			wantErr: ReasonCountryNotFound,
		},
		{
			name:    "unknown service",
			rec:     model.ShipmentRecord{Country: "France", Service: "Standard", Format: "Letters"},
			wantErr: ReasonServiceUnavailable,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			target, err := s.Resolve(idx, c.rec)
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
			if target.Kind != model.TargetOrderLine {
				t.Fatal("want order line target")
			}
			line := target.Line
			if line.Destination != c.dest || line.FormatCode != c.formatCode || line.ProductCode != c.productCode {
				t.Errorf("line = %+v", line)
			}
		})
	}
}

func TestSpringWriteOrders(t *testing.T) {
	s := NewSpring()
	s.SetMetadata(nil, "5500123", "")

	st := store.NewMapStore()
	// остатки прошлой выгрузки должны быть очищены
	st.Set("Orders", 2, 13, "XX")
	st.Set("Orders", 3, 13, "YY")

	lines := []model.OrderLine{
		{Destination: "FR", FormatCode: "L", ProductCode: "1MI", Items: 10, Weight: 1.2},
		{Destination: "DE", FormatCode: "B", ProductCode: "1MI", Items: 5, Weight: 0.8},
		{Destination: "AU", FormatCode: "E", ProductCode: "2MI", Items: 3, Weight: 0.3},
	}
	if err := s.WriteOrders(st, lines); err != nil {
		t.Fatal(err)
	}

	// order-level колонки только на первой строке блока 1MI
	if st.Get("Orders", 2, 1) != springCustomerNumber || st.Get("Orders", 2, 2) != "5500123" {
		t.Error("order-level columns missing on first 1MI row")
	}
	if st.Get("Orders", 2, 7) != "1MI" || st.Get("Orders", 2, 11) != "1" {
		t.Error("product code / pallets missing on first 1MI row")
	}
	if st.Get("Orders", 3, 1) != "" {
		t.Error("order-level columns duplicated on second 1MI row")
	}

	// строки не сливаются: вторая 1MI строка на своём месте
	if st.Get("Orders", 3, 13) != "DE" || st.Get("Orders", 3, 17) != "5" {
		t.Errorf("second line = %q/%q", st.Get("Orders", 3, 13), st.Get("Orders", 3, 17))
	}

	// блок 2MI начинается после 1MI и снова несёт order-level колонки
	if st.Get("Orders", 4, 7) != "2MI" || st.Get("Orders", 4, 13) != "AU" {
		t.Errorf("2MI block = %q/%q", st.Get("Orders", 4, 7), st.Get("Orders", 4, 13))
	}
}

package carrier

import (
	"errors"
	"testing"
)

func TestForName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Asendia UK Business Mail 2026", "Asendia 2026"},
		{"asendia 2025", "Asendia 2025"},
		{"PostNord Business Mail", "PostNord"},
		{"Spring Global Delivery Solutions", "Spring"},
		{"Air Business (Ireland)", "Air Business"},
		{"AirBusiness", "Air Business"},
		{"Mail Americas", "Mail Americas"},
		{"Mail Africa 2025", "Mail Americas"},
		{"Landmark Global", "Landmark Global"},
		{"Deutsche Post", "Deutsche Post"},
		{"United Business ADS Mail", "United Business ADS"},
		{"UBL SPL ETOE", "United Business SPL ETOE"},
		{"United Business NZP", "United Business NZP ETOE"},
		{"United Business T&D ETOE", "United Business NZP ETOE"},
	}
	for _, c := range cases {
		s, err := ForName(c.in)
		if err != nil {
			t.Errorf("ForName(%q): unexpected error %v", c.in, err)
			continue
		}
		if s.Name() != c.want {
			t.Errorf("ForName(%q) = %s; want %s", c.in, s.Name(), c.want)
		}
	}
}

func TestForNameDenyList(t *testing.T) {
	for _, name := range []string{
		"Jersey Post",
		"Asendia Publications 2025",
		"PostNord MMP Parcel",
		"Lettershop Deliveries",
	} {
		_, err := ForName(name)
		var unsupported *UnsupportedCarrierError
		if !errors.As(err, &unsupported) {
			t.Errorf("ForName(%q): want UnsupportedCarrierError, got %v", name, err)
		}
	}
}

func TestForNameUnknown(t *testing.T) {
	_, err := ForName("Some Random Carrier")
	var unsupported *UnsupportedCarrierError
	if !errors.As(err, &unsupported) {
		t.Fatalf("want UnsupportedCarrierError, got %v", err)
	}
}

package carrier

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

func landmarkCodeListStore() *store.MapStore {
	st := store.NewMapStore()
	st.Set("Codes", 1, 1, "NAME")
	st.Set("Codes", 1, 2, "ISO_CODE")
	st.Set("Codes", 2, 1, "France")
	st.Set("Codes", 2, 2, "FR")
	st.Set("Codes", 3, 1, "Germany")
	st.Set("Codes", 3, 2, "DE")
	return st
}

func TestLandmarkResolve(t *testing.T) {
	l := NewLandmark()
	idx, err := l.BuildIndex(landmarkCodeListStore())
	if err != nil {
		t.Fatal(err)
	}

	target, err := l.Resolve(idx, model.ShipmentRecord{
		Country: "france", Service: "Priority", Format: "Letters", Items: 10, Weight: 1.2345,
	})
	if err != nil {
		t.Fatal(err)
	}
	line := target.Line
	if line.Destination != "FR" || line.ProductCode != "12SL02" || line.FormatCode != "P" {
		t.Errorf("line = %+v", line)
	}
	if line.Weight != 1.234 {
		t.Errorf("weight not rounded: %v", line.Weight)
	}

	// вариация имени, которой нет в справочнике
	target, err = l.Resolve(idx, model.ShipmentRecord{
		Country: "USA", Service: "Economy", Format: "Packets", Items: 1, Weight: 0.1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if target.Line.Destination != "US" || target.Line.ProductCode != "12SL03" {
		t.Errorf("variation line = %+v", target.Line)
	}

	if _, err := l.Resolve(idx, model.ShipmentRecord{
		Country: "Atlantis", Service: "Priority", Format: "Letters",
	}); err == nil {
		t.Error("want error for unmapped country")
	}
}

func TestLandmarkBuildIndexNoCodeSheet(t *testing.T) {
	l := NewLandmark()
	st := store.NewMapStore()
	st.Set("Sheet1", 1, 1, "whatever")
	if _, err := l.BuildIndex(st); err == nil {
		t.Fatal("want error when code list sheet is missing")
	}
}

func TestLandmarkEmitFiles(t *testing.T) {
	l := NewLandmark()
	if _, err := l.BuildIndex(landmarkCodeListStore()); err != nil {
		t.Fatal(err)
	}
	l.SetMetadata(nil, "5500123", "")

	lines := []model.OrderLine{
		{Destination: "FR", FormatCode: "P", ProductCode: "12SL02", Items: 10, Weight: 1.234},
		{Destination: "DE", FormatCode: "G", ProductCode: "12SL03", Items: 5, Weight: 0.5},
		{Destination: "FR", FormatCode: "E", ProductCode: "12SL03", Items: 2, Weight: 0.25},
	}

	dir := t.TempDir()
	files, err := l.EmitFiles(dir, lines)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v", files)
	}

	// Economy первым, Priority вторым
	if !strings.Contains(filepath.Base(files[0]), "Landmark_Economy_") ||
		!strings.Contains(filepath.Base(files[1]), "Landmark_Priority_") {
		t.Errorf("file order = %v", files)
	}

	raw, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(got) != 3 {
		t.Fatalf("economy file lines = %d", len(got))
	}
	header := strings.Split(got[0], "|")
	if header[0] != "BPI/2024/00011075" || header[1] != "12SL03" || header[3] != "PM" || header[5] != "5500123" {
		t.Errorf("header = %q", got[0])
	}
	if got[1] != "DE|G|0.5|5" || got[2] != "FR|E|0.25|2" {
		t.Errorf("data rows = %v", got[1:])
	}
}

func TestNextWorkingDay(t *testing.T) {
	cases := []struct {
		from string
		want string
	}{
		{"2026-08-27", "2026-08-28"}, // Thu -> Fri
		{"2026-08-28", "2026-08-31"}, // Fri -> Mon
		{"2026-08-29", "2026-08-31"}, // Sat -> Mon
	}
	for _, c := range cases {
		from, _ := time.Parse("2006-01-02", c.from)
		if got := nextWorkingDay(from).Format("2006-01-02"); got != c.want {
			t.Errorf("nextWorkingDay(%s) = %s, want %s", c.from, got, c.want)
		}
	}
}

package service

import (
	"strings"
	"testing"

	"manifest-service/internal/manifest/carrier"
	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
)

func TestSessionAccumulates(t *testing.T) {
	p := carrier.NewPostNord()
	st := store.NewMapStore()
	idx, _ := p.BuildIndex(st)

	s := NewSession(p, idx, st, 5)
	s.Run([]model.ShipmentRecord{
		{Country: "France", Service: "Priority", Format: "Letters", Items: 10, Weight: 1.234},
		{Country: "France", Service: "Priority", Format: "Letters", Items: 5, Weight: 0.5},
	})

	if s.State() != StateCompleted {
		t.Fatalf("state = %s", s.State())
	}
	if s.Processed() != 2 || s.Failed() != 0 {
		t.Fatalf("processed/failed = %d/%d", s.Processed(), s.Failed())
	}
	// обе записи в одну пару ячеек: суммы, не перезапись
	if got := st.Get("Main Europe", 15, 3); got != "15" {
		t.Errorf("items = %q", got)
	}
	if got := st.Get("Main Europe", 15, 4); got != "1.734" {
		t.Errorf("weight = %q", got)
	}
}

func TestSessionCoercesJunkCells(t *testing.T) {
	p := carrier.NewPostNord()
	st := store.NewMapStore()
	idx, _ := p.BuildIndex(st)

	// шаблон пришёл с мусором в целевых ячейках
	st.Set("Main Europe", 15, 3, "n/a")
	st.Set("Main Europe", 15, 4, " ")

	s := NewSession(p, idx, st, 5)
	s.Run([]model.ShipmentRecord{
		{Country: "France", Service: "Priority", Format: "Letters", Items: 3, Weight: 0.25},
	})

	if got := st.Get("Main Europe", 15, 3); got != "3" {
		t.Errorf("items = %q", got)
	}
	if got := st.Get("Main Europe", 15, 4); got != "0.25" {
		t.Errorf("weight = %q", got)
	}
}

func TestSessionCircuitBreaker(t *testing.T) {
	p := carrier.NewPostNord()
	st := store.NewMapStore()
	idx, _ := p.BuildIndex(st)

	records := []model.ShipmentRecord{
		{Country: "Atlantis", Service: "Priority", Format: "Letters"},
		{Country: "Lemuria", Service: "Priority", Format: "Letters"},
		{Country: "Mu", Service: "Priority", Format: "Letters"},
		{Country: "France", Service: "Priority", Format: "Letters", Items: 1, Weight: 0.1},
	}

	s := NewSession(p, idx, st, 2)
	s.Run(records)

	if s.State() != StateAborted {
		t.Fatalf("state = %s", s.State())
	}
	// третья ошибка превысила порог: Франция не обработана
	if s.Processed() != 0 || s.Failed() != 3 {
		t.Errorf("processed/failed = %d/%d", s.Processed(), s.Failed())
	}
	errs := s.Errors()
	if len(errs) != 4 || !strings.Contains(errs[3], "Stopping: exceeded 2 errors") {
		t.Errorf("errors = %v", errs)
	}
	if s.Succeeded() {
		t.Error("aborted run must not be successful")
	}
	// частично заполненный манифест сохраняется как есть, ячейки не трогаем
	if got := st.Get("Main Europe", 15, 3); got != "" {
		t.Errorf("France cell = %q, want untouched", got)
	}
}

func TestSessionBelowThresholdSucceeds(t *testing.T) {
	p := carrier.NewPostNord()
	st := store.NewMapStore()
	idx, _ := p.BuildIndex(st)

	s := NewSession(p, idx, st, 5)
	s.Run([]model.ShipmentRecord{
		{Country: "Atlantis", Service: "Priority", Format: "Letters"},
		{Country: "France", Service: "Priority", Format: "Letters", Items: 2, Weight: 0.2},
	})

	if s.State() != StateCompleted || !s.Succeeded() {
		t.Fatalf("state = %s, succeeded = %v", s.State(), s.Succeeded())
	}
	if s.Processed() != 1 || s.Failed() != 1 {
		t.Errorf("processed/failed = %d/%d", s.Processed(), s.Failed())
	}
}

func TestSessionOrderLinesNeverMerge(t *testing.T) {
	sp := carrier.NewSpring()
	st := store.NewMapStore()
	idx, _ := sp.BuildIndex(st)

	rec := model.ShipmentRecord{Country: "France", Service: "Priority", Format: "Letters", Items: 5, Weight: 0.5}
	s := NewSession(sp, idx, st, 5)
	s.Run([]model.ShipmentRecord{rec, rec})

	if len(s.Lines()) != 2 {
		t.Fatalf("lines = %d, want 2 (identical records stay separate)", len(s.Lines()))
	}
}

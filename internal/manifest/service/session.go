package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"manifest-service/internal/manifest/carrier"
	"manifest-service/internal/manifest/model"
	"manifest-service/internal/manifest/store"
	"manifest-service/internal/utils"
)

// State — жизненный цикл сессии обработки.
type State int

const (
	StateReady State = iota
	StateProcessing
	StateCompleted
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateProcessing:
		return "processing"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	}
	return "unknown"
}

// Session — один прогон записей через стратегию. Per-record ошибки
// копятся; как только их становится больше maxErrors, прогон обрывается,
// частично заполненный манифест сохраняется вызывающим кодом как есть.
type Session struct {
	strategy  carrier.Strategy
	idx       *carrier.Index
	st        store.Store
	maxErrors int

	state     State
	processed int
	failed    int
	errors    []string
	lines     []model.OrderLine
}

func NewSession(strategy carrier.Strategy, idx *carrier.Index, st store.Store, maxErrors int) *Session {
	return &Session{
		strategy:  strategy,
		idx:       idx,
		st:        st,
		maxErrors: maxErrors,
		state:     StateReady,
	}
}

// Run прогоняет записи по одной. Повторный вызов на завершённой сессии
// не допускается.
func (s *Session) Run(records []model.ShipmentRecord) {
	if s.state != StateReady {
		return
	}
	s.state = StateProcessing

	for _, rec := range records {
		target, err := s.strategy.Resolve(s.idx, rec)
		if err != nil {
			s.failed++
			s.errors = append(s.errors, err.Error())
			log.Warn().
				Str("carrier", s.strategy.Name()).
				Str("country", rec.Country).
				Err(err).
				Msg("record placement failed")

			if len(s.errors) > s.maxErrors {
				s.errors = append(s.errors, fmt.Sprintf("Stopping: exceeded %d errors", s.maxErrors))
				s.state = StateAborted
				return
			}
			continue
		}

		switch target.Kind {
		case model.TargetOrderLine:
			s.lines = append(s.lines, *target.Line)
		default:
			s.accumulate(target, rec)
		}
		s.processed++
	}

	s.state = StateCompleted
}

// accumulate дописывает запись в целевые ячейки: текущее значение читается,
// мусор и пустота считаются нулём, вес округляется до трёх знаков.
func (s *Session) accumulate(t model.Target, rec model.ShipmentRecord) {
	items := utils.CoerceInt(s.st.Get(t.Sheet, t.Row, t.ItemsCol))
	weight := utils.CoerceFloat(s.st.Get(t.Sheet, t.Row, t.WeightCol))

	s.st.Set(t.Sheet, t.Row, t.ItemsCol, items+rec.Items)
	s.st.Set(t.Sheet, t.Row, t.WeightCol, utils.Round3(weight+rec.Weight))
}

func (s *Session) State() State             { return s.state }
func (s *Session) Processed() int           { return s.processed }
func (s *Session) Failed() int              { return s.failed }
func (s *Session) Errors() []string         { return s.errors }
func (s *Session) Lines() []model.OrderLine { return s.lines }

// Succeeded — прогон считается успешным, пока ошибок не больше порога.
func (s *Session) Succeeded() bool { return len(s.errors) <= s.maxErrors }

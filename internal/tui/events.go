package tui

import (
	"time"

	coretable "github.com/colonyops/echotable/internal/core/table"
)

// EventRecord is one line of the event log.
type EventRecord struct {
	Time    time.Time              `json:"time"`
	Dataset string                 `json:"dataset,omitempty"`
	Phase   string                 `json:"phase"`
	Kind    coretable.EmissionKind `json:"kind"`
	Payload coretable.Emission     `json:"payload"`
}

// record logs an emission and appends it to the event sink. Sink failures
// are logged and never interrupt the UI.
func (m Model) record(phase coretable.Phase, em coretable.Emission) {
	m.log.Debug().
		Ctx(m.ctx).
		Str("phase", phase.String()).
		Str("kind", string(em.Kind())).
		Interface("payload", em).
		Msg("table event")

	if m.events == nil {
		return
	}

	rec := EventRecord{
		Time:    m.now().UTC(),
		Dataset: m.ds.Title,
		Phase:   phase.String(),
		Kind:    em.Kind(),
		Payload: em,
	}
	if err := m.events.Write(rec); err != nil {
		m.log.Error().Ctx(m.ctx).Err(err).Msg("write event log")
	}
}

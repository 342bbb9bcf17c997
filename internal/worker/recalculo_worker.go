package worker

// recalculo_worker.go
// Processes aggregate-recompute jobs from QueueRecalculo. A job arrives when
// the inline recompute after registering a venta or cliente failed: the event
// row already exists, only the cached totals are stale.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Recalculador recomputes one team's cached aggregates from its event ledger.
// Defined here (instead of importing the service package) so the dependency
// points service → worker only.
type Recalculador interface {
	RecalcularEquipo(ctx context.Context, equipoID uuid.UUID) error
}

type RecalculoWorker struct {
	recalculador Recalculador
}

func NewRecalculoWorker(recalculador Recalculador) *RecalculoWorker {
	return &RecalculoWorker{recalculador: recalculador}
}

// Process re-runs the full recompute for the team in the payload.
// The recompute is idempotent, so duplicate jobs for the same team are harmless.
func (w *RecalculoWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload RecalculoPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recalculo_worker: invalid payload")
		return nil // malformed payloads never succeed; don't retry
	}

	equipoID, err := uuid.Parse(payload.EquipoID)
	if err != nil {
		log.Error().Str("equipo_id", payload.EquipoID).Msg("recalculo_worker: invalid equipo_id")
		return nil
	}

	if err := w.recalculador.RecalcularEquipo(ctx, equipoID); err != nil {
		log.Warn().Err(err).Str("equipo_id", payload.EquipoID).Msg("recalculo_worker: recompute failed")
		return fmt.Errorf("recalculando equipo %s: %w", payload.EquipoID, err)
	}
	log.Info().Str("equipo_id", payload.EquipoID).Msg("recalculo_worker: aggregates reconciled")
	return nil
}

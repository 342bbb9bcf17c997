package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecalculador struct {
	llamadas []uuid.UUID
	err      error
}

func (s *stubRecalculador) RecalcularEquipo(_ context.Context, equipoID uuid.UUID) error {
	s.llamadas = append(s.llamadas, equipoID)
	return s.err
}

func TestRecalculoWorkerProcesaPayload(t *testing.T) {
	stub := &stubRecalculador{}
	w := NewRecalculoWorker(stub)

	equipoID := uuid.New()
	raw, err := json.Marshal(RecalculoPayload{EquipoID: equipoID.String()})
	require.NoError(t, err)

	require.NoError(t, w.Process(context.Background(), raw))
	require.Len(t, stub.llamadas, 1)
	assert.Equal(t, equipoID, stub.llamadas[0])
}

func TestRecalculoWorkerPropagaFallo(t *testing.T) {
	// Un recálculo fallido devuelve error para que el pool reintente.
	stub := &stubRecalculador{err: errors.New("db caída")}
	w := NewRecalculoWorker(stub)

	raw, err := json.Marshal(RecalculoPayload{EquipoID: uuid.New().String()})
	require.NoError(t, err)

	require.Error(t, w.Process(context.Background(), raw))
}

func TestRecalculoWorkerDescartaPayloadInvalido(t *testing.T) {
	// Payloads que nunca van a poder procesarse no se reintentan: nil.
	stub := &stubRecalculador{}
	w := NewRecalculoWorker(stub)

	assert.NoError(t, w.Process(context.Background(), json.RawMessage(`{no es json`)))
	assert.NoError(t, w.Process(context.Background(), json.RawMessage(`{"equipo_id":"no-es-uuid"}`)))
	assert.Empty(t, stub.llamadas)
}

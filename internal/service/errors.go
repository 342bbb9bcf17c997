package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrSinEquipoAsignado bloquea la atribución de puntos cuando el perfil que
// registra el evento no pertenece a ningún equipo.
var ErrSinEquipoAsignado = errors.New("el representante no tiene equipo asignado")

// AgregadoPendienteError señala éxito parcial: el evento crudo (venta o
// cliente captado) quedó persistido pero el recálculo del agregado del equipo
// falló. El caller debe reintentar solo el recálculo, nunca re-registrar el
// evento. EventoID identifica la fila ya insertada.
type AgregadoPendienteError struct {
	EquipoID uuid.UUID
	EventoID uuid.UUID
	Causa    error
}

func (e *AgregadoPendienteError) Error() string {
	return fmt.Sprintf("evento %s registrado pero el agregado del equipo %s quedó pendiente: %v",
		e.EventoID, e.EquipoID, e.Causa)
}

func (e *AgregadoPendienteError) Unwrap() error { return e.Causa }

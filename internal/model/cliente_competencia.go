package model

import (
	"time"

	"github.com/google/uuid"
)

// ClienteCompetencia es un cliente captado a la competencia.
// Cada fila es un evento de captura inmutable; los puntos que aporta al equipo
// se derivan al momento de agregar según la política configurada
// (politica_puntos_cliente), nunca se guardan en la fila.
type ClienteCompetencia struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EquipoID          uuid.UUID `gorm:"type:uuid;index;not null"`
	RepresentanteID   uuid.UUID `gorm:"type:uuid;index;not null"`
	NombreCliente     string    `gorm:"not null"`
	Finca             *string
	Telefono          *string
	ProveedorAnterior *string
	CreatedAt         time.Time

	Equipo *Equipo `gorm:"foreignKey:EquipoID"`
}

// TableName overrides GORM's default pluralization (cliente_competencias → clientes_competencia).
func (ClienteCompetencia) TableName() string { return "clientes_competencia" }

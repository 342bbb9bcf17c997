package model

import (
	"time"

	"github.com/google/uuid"
)

// Penal lleva los créditos de penal disponibles por equipo.
// Usar un penal consume un crédito y otorga goles extra
// (floor(goles_actuales × 0.25)) sin tocar el ledger de puntos.
type Penal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EquipoID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Disponibles int       `gorm:"not null;default:0;check:disponibles >= 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Penal) TableName() string { return "penales" }

// HistorialPenal registra cada uso de penal para auditoría.
type HistorialPenal struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EquipoID   uuid.UUID `gorm:"type:uuid;index;not null"`
	UsadoPorID uuid.UUID `gorm:"type:uuid;not null"`
	GolesAntes int       `gorm:"not null"`
	Bonus      int       `gorm:"not null"`
	CreatedAt  time.Time
}

func (HistorialPenal) TableName() string { return "historial_penales" }

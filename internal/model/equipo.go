package model

import (
	"time"

	"github.com/google/uuid"
)

// Equipo es la unidad que compite en el torneo.
//
// PuntosTotales y Goles son agregados materializados: la fuente de verdad son
// las ventas y las capturas de clientes, y ambos campos se refrescan con una
// sola sentencia UPDATE durante el recálculo. Goles puede superar
// puntos/puntos_para_gol cuando el equipo usó penales (bonus registrado en
// AjusteGoles con fuente "penal").
type Equipo struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre         string    `gorm:"uniqueIndex;not null"`
	ZonaID         uuid.UUID `gorm:"type:uuid;index;not null"`
	DistribuidorID uuid.UUID `gorm:"type:uuid;index;not null"`
	PuntosTotales  int       `gorm:"not null;default:0;check:puntos_totales >= 0"`
	Goles          int       `gorm:"not null;default:0;check:goles >= 0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Zona         *Zona         `gorm:"foreignKey:ZonaID"`
	Distribuidor *Distribuidor `gorm:"foreignKey:DistribuidorID"`
}

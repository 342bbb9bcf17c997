package model

import (
	"time"

	"github.com/google/uuid"
)

// Fuentes válidas de un ajuste de goles.
const (
	FuentePuntos = "puntos" // recálculo derivado del ledger
	FuentePenal  = "penal"  // bonus por uso de penal
)

// AjusteGoles es la bitácora etiquetada de mutaciones del contador de goles.
// Permite reconciliar por qué equipos.goles difiere de
// floor(puntos_totales / puntos_para_gol): la diferencia debe ser exactamente
// la suma de los deltas con fuente "penal".
type AjusteGoles struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EquipoID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Fuente    string    `gorm:"type:varchar(10);index;not null"`
	Delta     int       `gorm:"not null"`
	Motivo    string    `gorm:"not null"`
	CreatedAt time.Time
}

func (AjusteGoles) TableName() string { return "ajustes_goles" }

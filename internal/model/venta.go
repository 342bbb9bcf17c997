package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta es un evento inmutable del ledger de puntos.
// Puntos y Monto son snapshots tomados al momento de registrar:
// Puntos = Cantidad × Producto.Puntos, Monto = Cantidad × Producto.PrecioLista.
type Venta struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EquipoID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductoID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	RepresentanteID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Cantidad        int             `gorm:"not null;check:cantidad > 0"`
	Puntos          int             `gorm:"not null;check:puntos >= 0"`
	Monto           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt       time.Time

	Equipo   *Equipo   `gorm:"foreignKey:EquipoID"`
	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto del catálogo del concurso. Puntos es el valor por unidad vendida;
// las ventas guardan su propia copia, así que editar este campo nunca altera
// ventas históricas.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion *string
	Puntos      int             `gorm:"not null;default:0;check:puntos >= 0"`
	PrecioLista decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Activo      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

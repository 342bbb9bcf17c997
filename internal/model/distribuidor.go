package model

import (
	"time"

	"github.com/google/uuid"
)

// Distribuidor es la empresa distribuidora a la que pertenece un equipo.
type Distribuidor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Distribuidor) TableName() string { return "distribuidores" }

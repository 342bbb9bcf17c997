package model

import (
	"time"

	"github.com/google/uuid"
)

// Zona agrupa equipos para el ranking por zona.
type Zona struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

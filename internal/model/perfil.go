package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles del concurso.
const (
	RolAdministrador   = "administrador"
	RolCapitan         = "capitan"
	RolDirectorTecnico = "director_tecnico"
	RolSupervisor      = "supervisor"
	RolRepresentante   = "representante"
	RolArbitro         = "arbitro"
)

// Perfil almacena los usuarios del sistema con acceso basado en roles.
// EquipoID es nil para roles administrativos que no pertenecen a un equipo;
// representantes y capitanes deben tenerlo asignado para sumar puntos.
type Perfil struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	Email        *string
	PasswordHash string     `gorm:"not null"`
	Rol          string     `gorm:"type:varchar(20);not null"`
	EquipoID     *uuid.UUID `gorm:"type:uuid;index"`
	Activo       bool       `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Equipo *Equipo `gorm:"foreignKey:EquipoID"`
}

func (Perfil) TableName() string { return "perfiles" }

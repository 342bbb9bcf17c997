package dto

type ActualizarConfigRequest struct {
	Valor string `json:"valor" validate:"required"`
}

type ConfigResponse struct {
	Clave string `json:"clave"`
	Valor string `json:"valor"`
}

// RecalculoResponse resume una pasada de mantenimiento fix-team-points.
type RecalculoResponse struct {
	EquiposProcesados int `json:"equipos_procesados"`
}

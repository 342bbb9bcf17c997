package dto

type UsarPenalRequest struct {
	EquipoID string `json:"equipo_id" validate:"required,uuid"`
}

type OtorgarPenalRequest struct {
	EquipoID string `json:"equipo_id" validate:"required,uuid"`
	Cantidad int    `json:"cantidad"  validate:"required,min=1"`
}

type PenalResponse struct {
	EquipoID     string `json:"equipo_id"`
	Disponibles  int    `json:"disponibles"`
	GolesAntes   int    `json:"goles_antes"`
	Bonus        int    `json:"bonus"`
	GolesDespues int    `json:"goles_despues"`
}

type HistorialPenalResponse struct {
	ID         string `json:"id"`
	EquipoID   string `json:"equipo_id"`
	UsadoPorID string `json:"usado_por_id"`
	GolesAntes int    `json:"goles_antes"`
	Bonus      int    `json:"bonus"`
	CreatedAt  string `json:"created_at"`
}

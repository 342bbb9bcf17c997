package dto

// RankingFilter se bindea del query string de GET /v1/ranking.
type RankingFilter struct {
	ZonaID string `form:"zona_id" validate:"omitempty,uuid"`
	Limit  int    `form:"limit"   validate:"omitempty,min=1,max=500"`
}

type FilaRankingResponse struct {
	Posicion int    `json:"posicion"`
	EquipoID string `json:"equipo_id"`
	Equipo   string `json:"equipo"`
	Zona     string `json:"zona"`
	Puntos   int    `json:"puntos"`
	Goles    int    `json:"goles"`
}

type RankingResponse struct {
	Data  []FilaRankingResponse `json:"data"`
	Total int                   `json:"total"`
}

// PosicionEquipoResponse responde "¿en qué puesto va el equipo X?".
// Posicion es nil cuando el equipo no figura en el ranking (sin puntos
// registrados); no es un error.
type PosicionEquipoResponse struct {
	EquipoID     string `json:"equipo_id"`
	Posicion     *int   `json:"posicion"`
	TotalEquipos int    `json:"total_equipos"`
}

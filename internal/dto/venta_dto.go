package dto

import "github.com/shopspring/decimal"

// RegistrarVentaRequest es el cuerpo de POST /v1/ventas.
// El equipo se resuelve desde el perfil del representante autenticado.
type RegistrarVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type VentaResponse struct {
	ID        string          `json:"id"`
	EquipoID  string          `json:"equipo_id"`
	Producto  string          `json:"producto"`
	Cantidad  int             `json:"cantidad"`
	Puntos    int             `json:"puntos"`
	Monto     decimal.Decimal `json:"monto"`
	CreatedAt string          `json:"created_at"`
}

// VentaFilter se bindea del query string de GET /v1/ventas.
type VentaFilter struct {
	EquipoID string `form:"equipo_id" validate:"omitempty,uuid"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

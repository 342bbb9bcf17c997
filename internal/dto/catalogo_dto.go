package dto

import "github.com/shopspring/decimal"

// ─── Zonas ───────────────────────────────────────────────────────────────────

type CrearZonaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2"`
}

type ZonaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// ─── Distribuidores ──────────────────────────────────────────────────────────

type CrearDistribuidorRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2"`
}

type DistribuidorResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Activo bool   `json:"activo"`
}

// ─── Equipos ─────────────────────────────────────────────────────────────────

type CrearEquipoRequest struct {
	Nombre         string `json:"nombre"          validate:"required,min=2"`
	ZonaID         string `json:"zona_id"         validate:"required,uuid"`
	DistribuidorID string `json:"distribuidor_id" validate:"required,uuid"`
}

type ActualizarEquipoRequest struct {
	Nombre         string `json:"nombre"`
	ZonaID         string `json:"zona_id"         validate:"omitempty,uuid"`
	DistribuidorID string `json:"distribuidor_id" validate:"omitempty,uuid"`
}

type EquipoResponse struct {
	ID             string `json:"id"`
	Nombre         string `json:"nombre"`
	ZonaID         string `json:"zona_id"`
	Zona           string `json:"zona,omitempty"`
	DistribuidorID string `json:"distribuidor_id"`
	Distribuidor   string `json:"distribuidor,omitempty"`
	PuntosTotales  int    `json:"puntos_totales"`
	Goles          int    `json:"goles"`
}

// ─── Productos ───────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required,min=2"`
	Descripcion *string         `json:"descripcion"`
	Puntos      int             `json:"puntos"       validate:"min=0"`
	PrecioLista decimal.Decimal `json:"precio_lista" validate:"min=0"`
}

type ActualizarProductoRequest struct {
	Nombre      string           `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Puntos      *int             `json:"puntos"       validate:"omitempty,min=0"`
	PrecioLista *decimal.Decimal `json:"precio_lista"`
}

type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion,omitempty"`
	Puntos      int             `json:"puntos"`
	PrecioLista decimal.Decimal `json:"precio_lista"`
	Activo      bool            `json:"activo"`
}

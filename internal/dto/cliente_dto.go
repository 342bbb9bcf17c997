package dto

// RegistrarClienteRequest es el cuerpo de POST /v1/clientes-competencia.
type RegistrarClienteRequest struct {
	NombreCliente     string  `json:"nombre_cliente" validate:"required,min=3"`
	Finca             *string `json:"finca"`
	Telefono          *string `json:"telefono"`
	ProveedorAnterior *string `json:"proveedor_anterior"`
}

type ClienteResponse struct {
	ID                string  `json:"id"`
	EquipoID          string  `json:"equipo_id"`
	NombreCliente     string  `json:"nombre_cliente"`
	Finca             *string `json:"finca,omitempty"`
	Telefono          *string `json:"telefono,omitempty"`
	ProveedorAnterior *string `json:"proveedor_anterior,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

type ClienteFilter struct {
	EquipoID string `form:"equipo_id" validate:"omitempty,uuid"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ClienteListResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

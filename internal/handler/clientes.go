package handler

import (
	"errors"
	"net/http"

	"superganaderia/internal/apierror"
	"superganaderia/internal/dto"
	"superganaderia/internal/middleware"
	"superganaderia/internal/model"
	"superganaderia/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientesHandler struct{ svc service.PuntajeService }

func NewClientesHandler(svc service.PuntajeService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// RegistrarCliente godoc
// @Summary      Registrar cliente captado a la competencia
// @Description  El equipo se resuelve desde el perfil autenticado; los puntos por captación se derivan al agregar según la política configurada.
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarClienteRequest true "Datos del cliente"
// @Success      201 {object} dto.ClienteResponse
// @Success      202 {object} dto.ClienteResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/clientes-competencia [post]
func (h *ClientesHandler) RegistrarCliente(c *gin.Context) {
	var req dto.RegistrarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	representanteID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.RegistrarCliente(c.Request.Context(), representanteID, req)
	if err != nil {
		var pendiente *service.AgregadoPendienteError
		if errors.As(err, &pendiente) {
			c.JSON(http.StatusAccepted, resp)
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ClientesHandler) ListarClientes(c *gin.Context) {
	var filter dto.ClienteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	// Mismo alcance que ventas: los roles de equipo solo ven su propio equipo.
	claims := middleware.GetClaims(c)
	if claims.Rol == model.RolRepresentante || claims.Rol == model.RolCapitan {
		if claims.EquipoID == nil {
			c.JSON(http.StatusForbidden, apierror.New("perfil sin equipo asignado"))
			return
		}
		filter.EquipoID = *claims.EquipoID
	}
	resp, err := h.svc.ListClientes(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar clientes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

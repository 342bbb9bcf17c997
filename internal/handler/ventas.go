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

type VentasHandler struct{ svc service.PuntajeService }

func NewVentasHandler(svc service.PuntajeService) *VentasHandler { return &VentasHandler{svc: svc} }

// RegistrarVenta godoc
// @Summary      Registrar una venta
// @Description  Inserta el evento de venta con snapshot de puntos del producto y recalcula los agregados del equipo. Si el recálculo falla el evento igual queda registrado y se responde 202 con un reintento encolado.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarVentaRequest true "Detalle de la venta"
// @Success      201  {object} dto.VentaResponse
// @Success      202  {object} dto.VentaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/ventas [post]
func (h *VentasHandler) RegistrarVenta(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	representanteID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.RegistrarVenta(c.Request.Context(), representanteID, req)
	if err != nil {
		var pendiente *service.AgregadoPendienteError
		if errors.As(err, &pendiente) {
			// El evento quedó registrado; solo el agregado está pendiente.
			c.JSON(http.StatusAccepted, resp)
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarVentas godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        equipo_id query string false "Filtrar por equipo (UUID)"
// @Param        page      query int    false "Página (default 1)"
// @Param        limit     query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.VentaListResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/ventas [get]
func (h *VentasHandler) ListarVentas(c *gin.Context) {
	var filter dto.VentaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	// Representantes y capitanes solo ven las ventas de su equipo.
	claims := middleware.GetClaims(c)
	if claims.Rol == model.RolRepresentante || claims.Rol == model.RolCapitan {
		if claims.EquipoID == nil {
			c.JSON(http.StatusForbidden, apierror.New("perfil sin equipo asignado"))
			return
		}
		filter.EquipoID = *claims.EquipoID
	}
	resp, err := h.svc.ListVentas(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

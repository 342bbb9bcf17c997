package handler

import (
	"net/http"

	"superganaderia/internal/apierror"
	"superganaderia/internal/dto"
	"superganaderia/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MantenimientoHandler expone las operaciones de reconciliación manual.
type MantenimientoHandler struct{ svc service.PuntajeService }

func NewMantenimientoHandler(svc service.PuntajeService) *MantenimientoHandler {
	return &MantenimientoHandler{svc: svc}
}

// RecalcularTodos godoc
// @Summary      Recalcular agregados de todos los equipos
// @Description  Recorre cada equipo y recomputa puntos/goles desde el ledger de eventos. Idempotente.
// @Tags         mantenimiento
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.RecalculoResponse
// @Failure      500 {object} apierror.APIError
// @Router       /v1/mantenimiento/recalcular [post]
func (h *MantenimientoHandler) RecalcularTodos(c *gin.Context) {
	procesados, err := h.svc.RecalcularTodos(c.Request.Context())
	if err != nil {
		// Algunos equipos pueden haber fallado; el contador refleja los que sí.
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.RecalculoResponse{EquiposProcesados: procesados})
}

// RecalcularEquipo recomputa los agregados de un solo equipo.
func (h *MantenimientoHandler) RecalcularEquipo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.RecalcularEquipo(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.RecalculoResponse{EquiposProcesados: 1})
}

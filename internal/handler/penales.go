package handler

import (
	"errors"
	"net/http"

	"superganaderia/internal/apierror"
	"superganaderia/internal/dto"
	"superganaderia/internal/middleware"
	"superganaderia/internal/repository"
	"superganaderia/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PenalesHandler struct{ svc service.PenalService }

func NewPenalesHandler(svc service.PenalService) *PenalesHandler {
	return &PenalesHandler{svc: svc}
}

// Usar godoc
// @Summary      Usar un penal
// @Description  Consume un crédito de penal del equipo y otorga floor(goles × 0.25) goles de bonus. Atómico: dos usos concurrentes nunca gastan el mismo crédito.
// @Tags         penales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.UsarPenalRequest true "Equipo que usa el penal"
// @Success      200 {object} dto.PenalResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/penales/usar [post]
func (h *PenalesHandler) Usar(c *gin.Context) {
	var req dto.UsarPenalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	equipoID, err := uuid.Parse(req.EquipoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("equipo_id invalido"))
		return
	}
	claims := middleware.GetClaims(c)
	usadoPorID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.Usar(c.Request.Context(), equipoID, usadoPorID)
	if err != nil {
		if errors.Is(err, repository.ErrSinCreditos) {
			c.JSON(http.StatusConflict, apierror.New("El equipo no tiene penales disponibles"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PenalesHandler) Otorgar(c *gin.Context) {
	var req dto.OtorgarPenalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	equipoID, err := uuid.Parse(req.EquipoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("equipo_id invalido"))
		return
	}
	resp, err := h.svc.Otorgar(c.Request.Context(), equipoID, req.Cantidad)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PenalesHandler) Historial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Historial(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar el historial"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
